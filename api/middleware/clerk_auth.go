package middleware

import (
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/gin-gonic/gin"
)

// ClerkAuth 强制认证中间件
// 验证 Authorization 头中的 Clerk JWT，失败时中断请求返回 401
func ClerkAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 获取 Token (支持 Bearer Token)
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "缺少 Authorization 头"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 2. 验证 Token (核心)
		// Clerk SDK 会自动拉取公钥并验证签名、过期时间
		claims, err := jwt.Verify(c.Request.Context(), &jwt.VerifyParams{
			Token: token,
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token 无效"})
			return
		}

		// 3. 将调用者身份注入上下文，供后续 Controller 使用
		c.Set(ContextKeyUserID, claims.Subject)

		c.Next()
	}
}

// ClerkAuthOptional 可选认证中间件
// 有有效 Token 时解析出调用者身份，没有或无效时匿名放行
// 用于"未登录返回空列表"的只读端点
func ClerkAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.Verify(c.Request.Context(), &jwt.VerifyParams{
			Token: token,
		})
		if err == nil {
			c.Set(ContextKeyUserID, claims.Subject)
		}

		c.Next()
	}
}

// CallerID 从上下文中取出已解析的调用者身份
// 未认证时返回空字符串，由调用方决定如何处理
func CallerID(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
