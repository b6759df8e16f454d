package repository

import "github.com/kboussakridev/plateform-d-entrevue/domain/entity"

// UserRepository 用户数据仓库接口
type UserRepository interface {
	// CreateIfAbsent 条件插入（ON CONFLICT DO NOTHING）
	// clerk_id 已存在时不修改任何字段，返回 false；插入成功返回 true
	// 并发重复投递下也只会产生一条记录
	CreateIfAbsent(user *entity.User) (bool, error)

	// GetByClerkID 根据 Clerk user_id 获取用户，不存在返回 nil
	GetByClerkID(clerkID string) (*entity.User, error)

	// GetAll 获取所有用户
	GetAll() ([]entity.User, error)
}
