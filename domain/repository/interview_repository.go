package repository

import "github.com/kboussakridev/plateform-d-entrevue/domain/entity"

// InterviewRepository 面试数据仓库接口
type InterviewRepository interface {
	// Create 创建新面试
	Create(interview *entity.Interview) error

	// GetByID 根据主键获取面试，不存在返回 nil
	GetByID(id uint) (*entity.Interview, error)

	// GetByCandidateID 获取某候选人的所有面试（走 candidate_id 索引）
	GetByCandidateID(candidateID string) ([]entity.Interview, error)

	// GetByStreamCallID 根据通话会话 ID 获取面试，不存在返回 nil
	GetByStreamCallID(streamCallID string) (*entity.Interview, error)

	// UpdateStatus 更新面试状态
	// endTime 非 nil 时一并写入；面试不存在返回 ErrInterviewNotFound
	UpdateStatus(id uint, status string, endTime *int64) error
}
