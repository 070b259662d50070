package wishlist

import (
	"context"
)

// Repository 心愿单仓储接口
// Create依赖unique(user_id, book_id)判重，重复返回ErrDuplicateItem。
type Repository interface {
	// Create 添加心愿单条目，重复返回ErrDuplicateItem
	Create(ctx context.Context, item *Item) error

	// FindByID 根据ID查找条目
	FindByID(ctx context.Context, id uint) (*Item, error)

	// Delete 删除条目
	Delete(ctx context.Context, id uint) error

	// ListByUserID 查询用户心愿单（分页，按添加时间倒序）
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Item, int64, error)
}
