package handler

import "github.com/gin-gonic/gin"

// Register mounts all protected routes on the given API group.
func (h *Handler) Register(api *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	userRoutes := api.Group("/users")
	userRoutes.Use(authMiddleware)
	{
		userRoutes.GET("", h.SearchUsers)
		userRoutes.GET("/me", h.GetProfile)
		userRoutes.GET("/me/friends", h.GetFriends)
		userRoutes.GET("/me/requests", h.GetFriendRequests)
		userRoutes.GET("/me/recommendations", h.GetRecommendations)
	}

	friendRoutes := api.Group("/friends")
	friendRoutes.Use(authMiddleware)
	{
		friendRoutes.POST("/request", h.SendFriendRequest)
		friendRoutes.POST("/accept", h.AcceptFriendRequest)
		friendRoutes.POST("/reject", h.RejectFriendRequest)
		friendRoutes.POST("/remove", h.Unfriend)
	}
}
