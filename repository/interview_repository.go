package repository

import (
	"errors"

	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"
	domainErrors "github.com/kboussakridev/plateform-d-entrevue/domain/errors"
	domainRepo "github.com/kboussakridev/plateform-d-entrevue/domain/repository"

	"gorm.io/gorm"
)

// interviewRepository GORM 实现 InterviewRepository 接口
type interviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository 构造函数
func NewInterviewRepository(db *gorm.DB) domainRepo.InterviewRepository {
	return &interviewRepository{db: db}
}

// Create 创建新面试
func (r *interviewRepository) Create(interview *entity.Interview) error {
	return r.db.Create(interview).Error
}

// GetByID 根据主键查询面试
func (r *interviewRepository) GetByID(id uint) (*entity.Interview, error) {
	var interview entity.Interview
	err := r.db.First(&interview, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// GetByCandidateID 查询某候选人的所有面试
func (r *interviewRepository) GetByCandidateID(candidateID string) ([]entity.Interview, error) {
	var interviews []entity.Interview
	err := r.db.Where("candidate_id = ?", candidateID).Find(&interviews).Error
	return interviews, err
}

// GetByStreamCallID 根据通话会话 ID 查询面试
func (r *interviewRepository) GetByStreamCallID(streamCallID string) (*entity.Interview, error) {
	var interview entity.Interview
	err := r.db.Where("stream_call_id = ?", streamCallID).First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// UpdateStatus 更新面试状态
// endTime 非 nil 时一并写入（状态为 completed 的场景）
func (r *interviewRepository) UpdateStatus(id uint, status string, endTime *int64) error {
	updates := map[string]interface{}{"status": status}
	if endTime != nil {
		updates["end_time"] = *endTime
	}

	result := r.db.Model(&entity.Interview{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	// RowsAffected == 0 说明面试不存在
	if result.RowsAffected == 0 {
		return domainErrors.ErrInterviewNotFound
	}
	return nil
}
