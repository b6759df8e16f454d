package repository

import "github.com/kboussakridev/plateform-d-entrevue/domain/entity"

// CommentRepository 评价数据仓库接口
type CommentRepository interface {
	// Create 创建新评价
	Create(comment *entity.Comment) error

	// GetByInterviewID 获取某场面试的所有评价（走 interview_id 索引）
	GetByInterviewID(interviewID uint) ([]entity.Comment, error)
}
