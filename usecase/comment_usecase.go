package usecase

import (
	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"
	domainErrors "github.com/kboussakridev/plateform-d-entrevue/domain/errors"
	"github.com/kboussakridev/plateform-d-entrevue/domain/repository"
)

// CommentUseCase 面试评价业务逻辑层
type CommentUseCase struct {
	comments   repository.CommentRepository
	interviews repository.InterviewRepository
}

// NewCommentUseCase 构造函数，依赖注入
func NewCommentUseCase(comments repository.CommentRepository, interviews repository.InterviewRepository) *CommentUseCase {
	return &CommentUseCase{comments: comments, interviews: interviews}
}

// AddComment 为某场面试添加评价，评价人为当前调用者
// 面试不存在时返回 ErrInterviewNotFound
func (uc *CommentUseCase) AddComment(callerID string, interviewID uint, content string, rating int) (*entity.Comment, error) {
	interview, err := uc.interviews.GetByID(interviewID)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, domainErrors.ErrInterviewNotFound
	}

	comment := &entity.Comment{
		Content:       content,
		Rating:        rating,
		InterviewerID: callerID,
		InterviewID:   interviewID,
	}
	if err := uc.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComments 获取某场面试的所有评价
func (uc *CommentUseCase) GetComments(interviewID uint) ([]entity.Comment, error) {
	return uc.comments.GetByInterviewID(interviewID)
}
