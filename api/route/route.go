package route

import (
	"github.com/kboussakridev/plateform-d-entrevue/api/controller"
	"github.com/kboussakridev/plateform-d-entrevue/api/middleware"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	InterviewController *controller.InterviewController
	CommentController   *controller.CommentController
	UserController      *controller.UserController
	WebhookController   *controller.WebhookController
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "plateform-d-entrevue",
		})
	})

	// Clerk Webhook（使用 svix 签名验证，不使用 JWT）
	router.POST("/clerk-webhook", deps.WebhookController.HandleClerkWebhook)

	// --- 只读列表路由（可选认证）---
	// 未登录返回空列表而不是 401
	router.GET("/api/interviews/my", middleware.ClerkAuthOptional(), deps.InterviewController.GetMyInterviews)

	// --- API 路由（需要 Clerk JWT 认证）---
	api := router.Group("/api")
	api.Use(middleware.ClerkAuth())
	{
		// 面试
		api.GET("/interviews/stream/:streamCallId", deps.InterviewController.GetInterviewByStreamCallID)
		api.POST("/interviews", deps.InterviewController.CreateInterview)
		api.PUT("/interviews/:id/status", deps.InterviewController.UpdateInterviewStatus)

		// 评价
		api.POST("/interviews/:id/comments", deps.CommentController.AddComment)
		api.GET("/interviews/:id/comments", deps.CommentController.GetComments)

		// 用户（只读）
		api.GET("/users", deps.UserController.GetUsers)
		api.GET("/users/:clerkId", deps.UserController.GetUserByClerkID)
	}
}
