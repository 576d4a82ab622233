package handler

import (
	"errors"
	"log"
	"net/http"

	"moodlink/backend/internal/auth"
	"moodlink/backend/internal/domain"
	"moodlink/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ProfileResponse is the authenticated user's own profile.
type ProfileResponse struct {
	Username  string   `json:"username" example:"alice"`
	Mood      string   `json:"mood" example:"curious"`
	Interests []string `json:"interests"`
}

// UserResponse is the public view of a user record. Credential material has
// no field here and can never be serialized.
type UserResponse struct {
	ID        uint     `json:"id" example:"1"`
	Username  string   `json:"username" example:"alice"`
	Mood      string   `json:"mood" example:"curious"`
	Interests []string `json:"interests"`
}

// SummaryResponse is the display projection of a friend or requester.
type SummaryResponse struct {
	ID       uint   `json:"id" example:"2"`
	Username string `json:"username" example:"bob"`
}

// RecommendationResponse ranks a suggested friend by shared friendships.
type RecommendationResponse struct {
	Username           string `json:"username" example:"carol"`
	MutualFriendsCount int    `json:"mutualFriendsCount" example:"3"`
}

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"Friend request sent successfully"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
}

// endregion

// Handler bundles the HTTP handlers over the social service.
type Handler struct {
	Social *service.Social
}

func New(social *service.Social) *Handler {
	return &Handler{Social: social}
}

// writeServiceError maps domain errors to client-facing statuses. Anything
// unrecognized is logged and surfaced as a generic server error.
func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, domain.ErrDuplicateRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Friend request already sent"})
	case errors.Is(err, domain.ErrNoSuchRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No friend request from this user"})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}

// GetProfile godoc
// @Summary      Get current user's profile
// @Description  Returns the authenticated user's username, mood and interests.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	profile, err := h.Social.Profile(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err, "Error fetching user profile")
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Username:  profile.Username,
		Mood:      profile.Mood,
		Interests: profile.Interests,
	})
}

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches for users whose username contains the query, case-insensitively.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search query for username"
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	query := c.Query("q")

	users, err := h.Social.Search(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err, "Error searching users")
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Mood:      u.Mood,
			Interests: u.Interests,
		})
	}

	c.JSON(http.StatusOK, responses)
}
