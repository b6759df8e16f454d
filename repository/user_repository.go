package repository

import (
	"errors"

	"github.com/kboussakridev/plateform-d-entrevue/domain/entity"
	domainRepo "github.com/kboussakridev/plateform-d-entrevue/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository GORM 实现 UserRepository 接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 构造函数
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// CreateIfAbsent 条件插入用户（Clerk Webhook 同步使用）
// 使用 PostgreSQL ON CONFLICT DO NOTHING 语法：clerk_id 已存在时不修改任何字段
// 单条原子语句，两个相同 clerk_id 的事件并发处理时也不会产生重复行
func (r *userRepository) CreateIfAbsent(user *entity.User) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clerk_id"}}, // 冲突字段
		DoNothing: true,
	}).Create(user)
	if result.Error != nil {
		return false, result.Error
	}
	// RowsAffected == 0 说明用户已存在，本次未插入
	return result.RowsAffected > 0, nil
}

// GetByClerkID 根据 Clerk user_id 查询用户
func (r *userRepository) GetByClerkID(clerkID string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("clerk_id = ?", clerkID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // 返回 nil 表示不存在，调用方需处理
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll 查询所有用户
func (r *userRepository) GetAll() ([]entity.User, error) {
	var users []entity.User
	err := r.db.Find(&users).Error
	return users, err
}
