package order

import (
	"context"
)

// Repository 订单仓储接口（依赖倒置原则）
// 订单和明细必须在同一事务中创建（通过context传递事务）。
type Repository interface {
	// Create 创建订单（包含订单明细）
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单（包含订单明细）
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 更新订单（主要用于状态更新）
	Update(ctx context.Context, order *Order) error

	// ListByUserID 查询用户的订单列表（分页，含明细）
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
