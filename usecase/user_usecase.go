package usecase

import (
	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"
	"github.com/kboussakridev/plateform-d-entrevue/domain/repository"
)

// SyncUserParams Clerk Webhook 提取出的用户字段
type SyncUserParams struct {
	ClerkID string
	Email   string
	Name    string
	Image   *string
}

// UserUseCase 用户业务逻辑层
// 核心职责是 Clerk Webhook 触发的幂等用户同步
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase 构造函数，依赖注入
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// SyncUser 幂等同步 Clerk 用户
// clerk_id 已存在时不做任何修改（首次同步的字段视为最终值），返回 nil
// 不存在时以 candidate 角色创建，返回新建记录
// "已存在"不是错误，只有底层存储错误才会向上传播
func (uc *UserUseCase) SyncUser(params SyncUserParams) (*entity.User, error) {
	user := &entity.User{
		ClerkID: params.ClerkID,
		Email:   params.Email,
		Name:    params.Name,
		Image:   params.Image,
		Role:    entity.RoleCandidate,
	}

	inserted, err := uc.repo.CreateIfAbsent(user)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, nil
	}
	return user, nil
}

// GetUsers 获取所有用户
func (uc *UserUseCase) GetUsers() ([]entity.User, error) {
	return uc.repo.GetAll()
}

// GetUserByClerkID 根据 Clerk user_id 获取用户，不存在返回 nil
func (uc *UserUseCase) GetUserByClerkID(clerkID string) (*entity.User, error) {
	return uc.repo.GetByClerkID(clerkID)
}
