package routes

import (
	"github.com/antera/antera-backend/internal/handler"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	connectionHandler *handler.ConnectionHandler,
	messageHandler *handler.MessageHandler,
	postHandler *handler.PostHandler,
	jobHandler *handler.JobHandler,
	companyHandler *handler.CompanyHandler,
	wsHandler *handler.WSHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api")
	authRequired := middleware.JWTAuth(jwtManager)
	authOptional := middleware.OptionalJWTAuth(jwtManager)

	// Authentication endpoints (register/login/listing need no token)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/users", authHandler.ListUsers)

	// Users
	users := api.Group("/users")
	users.GET("/search", authRequired, profileHandler.Search)

	// Profiles
	profile := api.Group("/profile")
	profile.GET("", authRequired, profileHandler.GetMe)
	profile.PUT("", authRequired, profileHandler.Update)
	profile.GET("/:userId", authRequired, profileHandler.Get)
	profile.POST("/experience", authRequired, profileHandler.AddExperience)
	profile.PUT("/experience/:id", authRequired, profileHandler.UpdateExperience)
	profile.DELETE("/experience/:id", authRequired, profileHandler.DeleteExperience)
	profile.POST("/education", authRequired, profileHandler.AddEducation)
	profile.DELETE("/education/:id", authRequired, profileHandler.DeleteEducation)
	profile.POST("/skills", authRequired, profileHandler.AddSkill)
	profile.DELETE("/skills/:id", authRequired, profileHandler.RemoveSkill)

	// Connections (all auth required)
	connections := api.Group("/connections", authRequired)
	connections.POST("", connectionHandler.Send)
	connections.GET("", connectionHandler.List)
	connections.GET("/pending", connectionHandler.ListPending)
	connections.GET("/status/:userId", connectionHandler.Status)
	connections.PATCH("/:id/accept", connectionHandler.Accept)
	connections.PATCH("/:id/reject", connectionHandler.Reject)
	connections.DELETE("/:id", connectionHandler.Remove)

	// Messaging (all auth required). On GET /conversations/:id the id is
	// the other user, elsewhere it is the conversation.
	messages := api.Group("/messages", authRequired)
	messages.GET("/unread-count", messageHandler.UnreadCount)
	messages.GET("/conversations", messageHandler.ListConversations)
	messages.GET("/conversations/:id", messageHandler.Resolve)
	messages.GET("/conversations/:id/messages", messageHandler.ListMessages)
	messages.POST("/conversations/:id/messages", messageHandler.SendMessage)
	messages.PATCH("/conversations/:id/read", messageHandler.MarkAsRead)

	// Feed
	posts := api.Group("/posts")
	posts.GET("", authOptional, postHandler.ListFeed)
	posts.POST("", authRequired, postHandler.Create)
	posts.GET("/:id", authOptional, postHandler.Get)
	posts.PUT("/:id", authRequired, postHandler.Update)
	posts.DELETE("/:id", authRequired, postHandler.Delete)
	posts.POST("/:id/like", authRequired, postHandler.ToggleLike)
	posts.GET("/:id/comments", postHandler.ListComments)
	posts.POST("/:id/comments", authRequired, postHandler.AddComment)
	posts.DELETE("/comments/:id", authRequired, postHandler.DeleteComment)

	// Jobs (applying is open to anonymous candidates)
	jobs := api.Group("/jobs")
	jobs.GET("", authRequired, jobHandler.List)
	jobs.GET("/:id", authRequired, jobHandler.Get)
	jobs.POST("", authRequired, jobHandler.Create)
	jobs.PUT("/:id", authRequired, jobHandler.Update)
	jobs.DELETE("/:id", authRequired, jobHandler.Delete)
	jobs.PATCH("/:id/deactivate", authRequired, jobHandler.Deactivate)
	jobs.POST("/:id/apply", jobHandler.Apply)
	jobs.GET("/:id/applications", authRequired, jobHandler.ListApplications)
	jobs.PATCH("/:id/applications/:appId", authRequired, jobHandler.UpdateApplicationStatus)

	// Companies
	companies := api.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.GET("/:id", companyHandler.Get)
	companies.POST("", authRequired, companyHandler.Create)
	companies.PUT("/:id", authRequired, companyHandler.Update)
	companies.DELETE("/:id", authRequired, companyHandler.Delete)

	// Realtime events
	router.GET("/ws", authRequired, wsHandler.Connect)
}
