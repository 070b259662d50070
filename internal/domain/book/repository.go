package book

import (
	"context"
)

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
// 3. 评论统计的三个Apply方法要求实现为单条引擎内求值的UPDATE，
//    不允许读-改-写（并发下会丢失更新）
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书（软删除）
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// FindByIDs 批量查询图书（购物车、订单列表展示用）
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error)

	// LockByID 悲观锁查询图书（SELECT ... FOR UPDATE）
	// 下单/取消订单时锁定行，防止并发超卖
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 原子更新库存
	// delta为正数表示增加，负数表示减少
	// 库存不足时返回ErrInsufficientStock（不会把库存改为负数）
	UpdateStock(ctx context.Context, id uint, delta int) error

	// ApplyReviewCreated 新增评论后增量更新(review_count, average_rating)
	ApplyReviewCreated(ctx context.Context, id uint, rating int) error

	// ApplyReviewRatingChanged 评论改分后增量更新average_rating
	ApplyReviewRatingChanged(ctx context.Context, id uint, oldRating, newRating int) error

	// ApplyReviewRemoved 删除评论后增量更新统计（最后一条归零）
	ApplyReviewRemoved(ctx context.Context, id uint, rating int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码（从1开始）
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词（标题、作者、出版社）
	SortBy   string // 排序字段（price_asc, price_desc, rating_desc, created_at_desc）
}
