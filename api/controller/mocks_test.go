package controller

import (
	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ========== MockUserRepository ==========
// 实现 repository.UserRepository 接口
// Webhook 测试通过真实的 UserUseCase 驱动到仓库层，只 mock 存储

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateIfAbsent(user *entity.User) (bool, error) {
	args := m.Called(user)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByClerkID(clerkID string) (*entity.User, error) {
	args := m.Called(clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

// ========== MockInterviewRepository ==========

type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) Create(interview *entity.Interview) error {
	args := m.Called(interview)
	return args.Error(0)
}

func (m *MockInterviewRepository) GetByID(id uint) (*entity.Interview, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetByCandidateID(candidateID string) ([]entity.Interview, error) {
	args := m.Called(candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetByStreamCallID(streamCallID string) (*entity.Interview, error) {
	args := m.Called(streamCallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Interview), args.Error(1)
}

func (m *MockInterviewRepository) UpdateStatus(id uint, status string, endTime *int64) error {
	args := m.Called(id, status, endTime)
	return args.Error(0)
}

// ========== MockCommentRepository ==========

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByInterviewID(interviewID uint) ([]entity.Comment, error) {
	args := m.Called(interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}
