package handler

import (
	"net/http"

	"moodlink/backend/internal/auth"
	"moodlink/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// FriendInput identifies the counterpart of a friendship operation.
type FriendInput struct {
	FriendID uint `json:"friendId" binding:"required" example:"2"`
}

// bindFriendInput extracts the authenticated user and the friendId parameter
// shared by all friendship mutations.
func bindFriendInput(c *gin.Context) (*domain.User, uint, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return nil, 0, false
	}

	var input FriendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Friend ID is required"})
		return nil, 0, false
	}

	return user, input.FriendID, true
}

// SendFriendRequest godoc
// @Summary      Send a friend request
// @Description  Records a pending friend request on the target user's record.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  FriendInput  true  "Target user"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Missing friend ID or request already sent"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/request [post]
func (h *Handler) SendFriendRequest(c *gin.Context) {
	user, friendID, ok := bindFriendInput(c)
	if !ok {
		return
	}

	if err := h.Social.SendFriendRequest(c.Request.Context(), user.ID, friendID); err != nil {
		writeServiceError(c, err, "Error sending friend request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request sent successfully"})
}

// AcceptFriendRequest godoc
// @Summary      Accept a friend request
// @Description  Turns a pending request into a symmetric friendship.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  FriendInput  true  "Requesting user"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Missing friend ID or no pending request"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/accept [post]
func (h *Handler) AcceptFriendRequest(c *gin.Context) {
	user, friendID, ok := bindFriendInput(c)
	if !ok {
		return
	}

	if err := h.Social.AcceptFriendRequest(c.Request.Context(), user.ID, friendID); err != nil {
		writeServiceError(c, err, "Error accepting friend request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
}

// RejectFriendRequest godoc
// @Summary      Reject a friend request
// @Description  Drops a pending request without touching the requester's record.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  FriendInput  true  "Requesting user"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Missing friend ID or no pending request"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/reject [post]
func (h *Handler) RejectFriendRequest(c *gin.Context) {
	user, friendID, ok := bindFriendInput(c)
	if !ok {
		return
	}

	if err := h.Social.RejectFriendRequest(c.Request.Context(), user.ID, friendID); err != nil {
		writeServiceError(c, err, "Error rejecting friend request")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request rejected"})
}

// Unfriend godoc
// @Summary      Remove a friend
// @Description  Removes the friendship from both records. Succeeds even if the users were not friends.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body  FriendInput  true  "Friend to remove"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /friends/remove [post]
func (h *Handler) Unfriend(c *gin.Context) {
	user, friendID, ok := bindFriendInput(c)
	if !ok {
		return
	}

	if err := h.Social.Unfriend(c.Request.Context(), user.ID, friendID); err != nil {
		writeServiceError(c, err, "Error removing friend")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed successfully"})
}

// GetFriends godoc
// @Summary      List friends
// @Description  Returns the authenticated user's friends as id/username pairs.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   SummaryResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me/friends [get]
func (h *Handler) GetFriends(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	friends, err := h.Social.Friends(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err, "Error getting friends")
		return
	}

	c.JSON(http.StatusOK, toSummaryResponses(friends))
}

// GetFriendRequests godoc
// @Summary      List pending friend requests
// @Description  Returns the users who asked to befriend the authenticated user.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   SummaryResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me/requests [get]
func (h *Handler) GetFriendRequests(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	requests, err := h.Social.FriendRequests(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err, "Error getting friend requests")
		return
	}

	c.JSON(http.StatusOK, toSummaryResponses(requests))
}

// GetRecommendations godoc
// @Summary      Recommend new friends
// @Description  Returns up to five non-friends ranked by mutual friends count.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   RecommendationResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me/recommendations [get]
func (h *Handler) GetRecommendations(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	recs, err := h.Social.Recommendations(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err, "Error getting recommendations")
		return
	}

	responses := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		responses = append(responses, RecommendationResponse{
			Username:           r.Username,
			MutualFriendsCount: r.MutualFriendsCount,
		})
	}
	c.JSON(http.StatusOK, responses)
}

func toSummaryResponses(summaries []domain.Summary) []SummaryResponse {
	responses := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, SummaryResponse{ID: s.ID, Username: s.Username})
	}
	return responses
}
