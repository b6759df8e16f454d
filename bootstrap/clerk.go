package bootstrap

import (
	"log"

	"github.com/clerk/clerk-sdk-go/v2"
)

// InitClerk 初始化 Clerk SDK
// JWT 验证中间件依赖这里设置的全局 API 密钥
func InitClerk(secretKey string) {
	if secretKey == "" {
		log.Fatal("❌ 缺少必需环境变量: CLERK_SECRET_KEY")
	}
	clerk.SetKey(secretKey)

	log.Println("✅ Clerk 初始化成功")
}
