package controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/kboussakridev/plateform-d-entrevue/usecase"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookController 处理 Clerk Webhook 回调
// webhookSecret 在构造时注入，不在请求时读取进程环境，测试可使用固定密钥
type WebhookController struct {
	userUseCase   *usecase.UserUseCase
	webhookSecret string
}

// NewWebhookController 构造函数
func NewWebhookController(userUseCase *usecase.UserUseCase, webhookSecret string) *WebhookController {
	return &WebhookController{
		userUseCase:   userUseCase,
		webhookSecret: webhookSecret,
	}
}

// ClerkWebhookPayload Clerk Webhook 事件结构（按 type 区分的标签联合）
// 只有 user.created 的 Data 会被进一步解析，其它已验证事件原样确认并忽略
type ClerkWebhookPayload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ClerkUserData user.created 事件携带的用户数据
// first_name / last_name / image_url 在 Clerk 侧可独立为 null
type ClerkUserData struct {
	ID             string `json:"id"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ImageURL  *string `json:"image_url"`
}

// HandleClerkWebhook 处理 Clerk Webhook 回调
// POST /clerk-webhook
// 流程：检查 svix 头 → 验证签名 → 解析事件 → user.created 触发用户同步
func (wc *WebhookController) HandleClerkWebhook(c *gin.Context) {
	// 1. 三个 svix 头缺一不可，缺失时不做任何验证尝试
	svixID := c.GetHeader("svix-id")
	svixTimestamp := c.GetHeader("svix-timestamp")
	svixSignature := c.GetHeader("svix-signature")
	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		c.String(http.StatusBadRequest, "No svix headers found")
		return
	}

	// 2. 读取原始请求体
	// 签名直接对原始字节验证，不做解析后再序列化（避免字节不稳定导致验签失败）
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[Webhook] ❌ 读取请求体失败: %v", err)
		c.String(http.StatusBadRequest, "Could not read request body")
		return
	}

	// 3. 未配置密钥时拒绝请求（fail closed），响应不暴露失败原因
	if wc.webhookSecret == "" {
		log.Println("[Webhook] ❌ 缺少 CLERK_WEBHOOK_SECRET 配置，拒绝请求")
		c.String(http.StatusBadRequest, "Error occurred")
		return
	}

	wh, err := svix.NewWebhook(wc.webhookSecret)
	if err != nil {
		log.Printf("[Webhook] ❌ 初始化 Webhook 验证器失败: %v", err)
		c.String(http.StatusBadRequest, "Error occurred")
		return
	}

	headers := http.Header{}
	headers.Set("svix-id", svixID)
	headers.Set("svix-timestamp", svixTimestamp)
	headers.Set("svix-signature", svixSignature)

	// svix 库内部做时间戳容忍和常数时间比较，不自行实现签名校验
	if err := wh.Verify(body, headers); err != nil {
		log.Printf("[Webhook] ❌ 签名验证失败: %v", err)
		c.String(http.StatusBadRequest, "Error occurred")
		return
	}

	// 4. 解析事件
	var payload ClerkWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Webhook] ❌ 解析 Webhook 失败: %v", err)
		c.String(http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// 5. 只处理 user.created
	// 其它已验证事件直接确认不产生副作用，为后续事件类型留出空间
	if payload.Type == "user.created" {
		if err := wc.handleUserCreated(payload.Data); err != nil {
			c.String(http.StatusInternalServerError, "Error creating user")
			return
		}
	} else {
		log.Printf("[Webhook] ℹ️ 忽略事件: %s", payload.Type)
	}

	c.String(http.StatusOK, "Webhook processed successfully")
}

// handleUserCreated 提取用户字段并调用同步服务
func (wc *WebhookController) handleUserCreated(data json.RawMessage) error {
	var userData ClerkUserData
	if err := json.Unmarshal(data, &userData); err != nil {
		log.Printf("[Webhook] ❌ 解析用户数据失败: %v", err)
		return err
	}

	// 邮箱取列表中的第一个
	email := ""
	if len(userData.EmailAddresses) > 0 {
		email = userData.EmailAddresses[0].EmailAddress
	}

	// first_name / last_name 可独立为空，单个空格拼接后去除首尾空白
	var firstName, lastName string
	if userData.FirstName != nil {
		firstName = *userData.FirstName
	}
	if userData.LastName != nil {
		lastName = *userData.LastName
	}
	name := strings.TrimSpace(firstName + " " + lastName)

	user, err := wc.userUseCase.SyncUser(usecase.SyncUserParams{
		ClerkID: userData.ID,
		Email:   email,
		Name:    name,
		Image:   userData.ImageURL,
	})
	if err != nil {
		// 存储错误说明更深层的问题（数据库不可达、约束冲突），记录后向上返回 500
		log.Printf("[Webhook] ❌ 用户同步失败: %v", err)
		return err
	}

	if user != nil {
		log.Printf("[Webhook] ✅ 用户同步成功: %s (%s)", user.ClerkID, user.Email)
	} else {
		log.Printf("[Webhook] ℹ️ 用户已存在，跳过: %s", userData.ID)
	}
	return nil
}
