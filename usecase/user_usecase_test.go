package usecase

import (
	"errors"
	"testing"

	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ========== UserUseCase 单元测试 ==========
// 核心是 Clerk Webhook 触发的幂等用户同步

// TestUserUseCase_SyncUser_NewUser 首次同步
// 应以 candidate 角色插入，字段原样保存
func TestUserUseCase_SyncUser_NewUser(t *testing.T) {
	mockRepo := new(MockUserRepository)

	image := "https://img.clerk.com/u1.png"
	mockRepo.On("CreateIfAbsent", mock.MatchedBy(func(user *entity.User) bool {
		return user.ClerkID == "u1" &&
			user.Email == "a@x.com" &&
			user.Name == "A B" &&
			user.Image != nil && *user.Image == image &&
			user.Role == entity.RoleCandidate
	})).Return(true, nil).Once()

	uc := NewUserUseCase(mockRepo)

	user, err := uc.SyncUser(SyncUserParams{
		ClerkID: "u1",
		Email:   "a@x.com",
		Name:    "A B",
		Image:   &image,
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "u1", user.ClerkID)
	assert.Equal(t, entity.RoleCandidate, user.Role)

	mockRepo.AssertExpectations(t)
}

// TestUserUseCase_SyncUser_AlreadyExists 重复同步（幂等）
// clerk_id 已存在时不插入、不修改，也不报错
func TestUserUseCase_SyncUser_AlreadyExists(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("CreateIfAbsent", mock.Anything).Return(false, nil).Twice()

	uc := NewUserUseCase(mockRepo)

	params := SyncUserParams{ClerkID: "u1", Email: "a@x.com", Name: "A B"}

	// 两次同步同一个 clerk_id，第二次同样是 no-op
	for i := 0; i < 2; i++ {
		user, err := uc.SyncUser(params)
		assert.NoError(t, err)
		assert.Nil(t, user)
	}

	mockRepo.AssertNumberOfCalls(t, "CreateIfAbsent", 2)
}

// TestUserUseCase_SyncUser_StoreError 存储错误向上传播
func TestUserUseCase_SyncUser_StoreError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	storeErr := errors.New("connection refused")
	mockRepo.On("CreateIfAbsent", mock.Anything).Return(false, storeErr)

	uc := NewUserUseCase(mockRepo)

	user, err := uc.SyncUser(SyncUserParams{ClerkID: "u1"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, storeErr)
}

// TestUserUseCase_GetUserByClerkID 按 Clerk ID 查询
func TestUserUseCase_GetUserByClerkID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByClerkID", "u1").Return(&entity.User{ClerkID: "u1", Name: "A B"}, nil).Once()
	mockRepo.On("GetByClerkID", "missing").Return(nil, nil).Once()

	uc := NewUserUseCase(mockRepo)

	user, err := uc.GetUserByClerkID("u1")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "A B", user.Name)

	user, err = uc.GetUserByClerkID("missing")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
