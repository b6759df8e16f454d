package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kboussakridev/plateform-d-entrevue/api/controller"
	"github.com/kboussakridev/plateform-d-entrevue/api/route"
	"github.com/kboussakridev/plateform-d-entrevue/bootstrap"
	"github.com/kboussakridev/plateform-d-entrevue/repository"
	"github.com/kboussakridev/plateform-d-entrevue/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("[Server] Plateform d'entrevue 启动中...")

	// 加载环境变量
	env := bootstrap.LoadEnv()

	// 初始化 Clerk
	bootstrap.InitClerk(env.ClerkSecretKey)

	// 连接数据库
	db := bootstrap.NewDatabase(env.DatabaseURL)

	// 依赖注入 - Repository 层
	userRepo := repository.NewUserRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// 依赖注入 - UseCase 层
	userUseCase := usecase.NewUserUseCase(userRepo)
	interviewUseCase := usecase.NewInterviewUseCase(interviewRepo)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, interviewRepo)

	// 依赖注入 - Controller 层
	// Webhook 密钥在构造时注入，不在请求时读取环境
	interviewController := controller.NewInterviewController(interviewUseCase)
	commentController := controller.NewCommentController(commentUseCase)
	userController := controller.NewUserController(userUseCase)
	webhookController := controller.NewWebhookController(userUseCase, env.WebhookSecret)

	// 配置 Gin 路由
	router := gin.Default()

	// CORS 配置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 设置路由
	route.Setup(router, &route.Dependencies{
		InterviewController: interviewController,
		CommentController:   commentController,
		UserController:      userController,
		WebhookController:   webhookController,
	})

	// 启动 HTTP 服务
	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] 服务已启动: http://localhost:%s", env.Port)
		log.Printf("[Server] API 端点:")
		log.Printf("   GET  /health                            - 健康检查")
		log.Printf("   POST /clerk-webhook                     - Clerk Webhook")
		log.Printf("   GET  /api/interviews/my                 - 我的面试列表")
		log.Printf("   GET  /api/interviews/stream/:callId     - 按通话会话查面试")
		log.Printf("   POST /api/interviews                    - 创建面试")
		log.Printf("   PUT  /api/interviews/:id/status         - 更新面试状态")
		log.Printf("   POST /api/interviews/:id/comments       - 添加评价")
		log.Printf("   GET  /api/interviews/:id/comments       - 评价列表")
		log.Printf("   GET  /api/users                         - 用户列表")
		log.Printf("   GET  /api/users/:clerkId                - 按 Clerk ID 查用户")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] 服务启动失败: %v", err)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] 收到停机信号，正在优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] 服务强制关闭: %v", err)
	}

	log.Println("[Server] 服务已安全停止")
}
