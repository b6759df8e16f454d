package entity

import "time"

// 用户角色
// Clerk Webhook 同步进来的用户默认为候选人，面试官由运营侧调整
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// User Clerk 用户同步表
// ClerkID 是 Clerk 侧的唯一标识，也是幂等同步的键（唯一索引）
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClerkID   string    `gorm:"uniqueIndex;size:64" json:"clerkId"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Image     *string   `gorm:"size:500" json:"image,omitempty"` // 头像 URL，可为空
	Role      string    `gorm:"size:20;default:candidate" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
