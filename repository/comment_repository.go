package repository

import (
	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"
	domainRepo "github.com/kboussakridev/plateform-d-entrevue/domain/repository"

	"gorm.io/gorm"
)

// commentRepository GORM 实现 CommentRepository 接口
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 构造函数
func NewCommentRepository(db *gorm.DB) domainRepo.CommentRepository {
	return &commentRepository{db: db}
}

// Create 创建新评价
func (r *commentRepository) Create(comment *entity.Comment) error {
	return r.db.Create(comment).Error
}

// GetByInterviewID 查询某场面试的所有评价
func (r *commentRepository) GetByInterviewID(interviewID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.db.Where("interview_id = ?", interviewID).Find(&comments).Error
	return comments, err
}
