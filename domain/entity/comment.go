package entity

import "time"

// Comment 面试评价表
// 由面试官针对某场面试提交，创建后不支持修改和删除
type Comment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Content       string    `gorm:"type:text" json:"content"`
	Rating        int       `json:"rating"`
	InterviewerID string    `gorm:"size:64" json:"interviewerId"` // 评价人 Clerk user_id
	InterviewID   uint      `gorm:"index" json:"interviewId"`
	CreatedAt     time.Time `json:"createdAt"`
}
