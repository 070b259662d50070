package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层（依赖倒置），具体实现在infrastructure/persistence/mysql层，
// 便于单元测试时Mock此接口。
type Repository interface {
	// Create 创建用户
	// 邮箱已存在时返回errors.ErrEmailDuplicate（唯一索引保证）
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户，不存在返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户，不存在返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
}
