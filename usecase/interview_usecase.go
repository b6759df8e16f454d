package usecase

import (
	"encoding/json"
	"time"

	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"
	domainErrors "github.com/kboussakridev/plateform-d-entrevue/domain/errors"
	"github.com/kboussakridev/plateform-d-entrevue/domain/repository"

	"gorm.io/datatypes"
)

// CreateInterviewParams 创建面试所需字段
type CreateInterviewParams struct {
	Title          string
	Description    *string
	StartTime      int64 // 毫秒时间戳
	Status         string
	StreamCallID   string
	CandidateID    string
	InterviewerIDs []string
}

// InterviewUseCase 面试业务逻辑层
type InterviewUseCase struct {
	repo repository.InterviewRepository
}

// NewInterviewUseCase 构造函数，依赖注入
func NewInterviewUseCase(repo repository.InterviewRepository) *InterviewUseCase {
	return &InterviewUseCase{repo: repo}
}

// GetMyInterviews 获取"我的"面试（候选人视角）
// callerID 为空（未认证）时返回空列表而不是报错，只读列表端点的约定
func (uc *InterviewUseCase) GetMyInterviews(callerID string) ([]entity.Interview, error) {
	if callerID == "" {
		return []entity.Interview{}, nil
	}
	return uc.repo.GetByCandidateID(callerID)
}

// GetByStreamCallID 根据通话会话 ID 获取面试，不存在返回 nil
func (uc *InterviewUseCase) GetByStreamCallID(streamCallID string) (*entity.Interview, error) {
	return uc.repo.GetByStreamCallID(streamCallID)
}

// CreateInterview 创建面试
// 调用者必须是该面试的候选人本人，否则返回 ErrNotInterviewOwner
func (uc *InterviewUseCase) CreateInterview(callerID string, params CreateInterviewParams) (*entity.Interview, error) {
	if callerID != params.CandidateID {
		return nil, domainErrors.ErrNotInterviewOwner
	}

	interviewerIDs, err := json.Marshal(params.InterviewerIDs)
	if err != nil {
		return nil, err
	}

	interview := &entity.Interview{
		Title:          params.Title,
		Description:    params.Description,
		StartTime:      params.StartTime,
		Status:         params.Status,
		StreamCallID:   params.StreamCallID,
		CandidateID:    params.CandidateID,
		InterviewerIDs: datatypes.JSON(interviewerIDs),
	}

	if err := uc.repo.Create(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// UpdateStatus 更新面试状态
// 新状态为 completed 时写入结束时间（当前毫秒时间戳）
// 其它状态不改动 EndTime
func (uc *InterviewUseCase) UpdateStatus(id uint, status string) error {
	var endTime *int64
	if status == entity.StatusCompleted {
		now := time.Now().UnixMilli()
		endTime = &now
	}
	return uc.repo.UpdateStatus(id, status, endTime)
}
