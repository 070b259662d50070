package cart

import (
	"context"
)

// Repository 购物车仓储接口
// 设计说明：
// 1. Upsert支持"已有则加量"语义（加购同一本书不产生重复行）
// 2. 所有写操作支持通过context参与外部事务（结算时与订单同事务清空）
type Repository interface {
	// FindByUserAndBook 查找用户购物车中的某本书，不存在返回ErrItemNotFound
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Item, error)

	// FindByID 根据ID查找购物车行
	FindByID(ctx context.Context, id uint) (*Item, error)

	// Create 新增购物车行
	Create(ctx context.Context, item *Item) error

	// Update 更新购物车行（数量）
	Update(ctx context.Context, item *Item) error

	// Delete 删除购物车行
	Delete(ctx context.Context, id uint) error

	// ListByUserID 查询用户购物车（分页）
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Item, int64, error)

	// FindAllByUserID 查询用户购物车全部行（结算用，不分页）
	FindAllByUserID(ctx context.Context, userID uint) ([]*Item, error)

	// ClearByUserID 清空用户购物车（结算成功后在同一事务内调用）
	ClearByUserID(ctx context.Context, userID uint) error
}
