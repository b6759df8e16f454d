package entity

import (
	"time"

	"gorm.io/datatypes"
)

// StatusCompleted 面试完成状态
// 状态更新为该值时自动写入 EndTime，其它状态不产生副作用
const StatusCompleted = "completed"

// Interview 面试记录表
// StartTime / EndTime 使用毫秒时间戳，与客户端的数值格式保持一致
// InterviewerIDs 为 Clerk user_id 的 JSON 数组（jsonb）
type Interview struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:255" json:"title"`
	Description    *string        `gorm:"size:1000" json:"description,omitempty"`
	StartTime      int64          `json:"startTime"`
	EndTime        *int64         `json:"endTime,omitempty"`
	Status         string         `gorm:"size:32" json:"status"`
	StreamCallID   string         `gorm:"uniqueIndex;size:128" json:"streamCallId"` // 视频通话会话 ID
	CandidateID    string         `gorm:"index;size:64" json:"candidateId"`         // 候选人 Clerk user_id
	InterviewerIDs datatypes.JSON `gorm:"type:jsonb" json:"interviewerIds"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
