package review

import (
	"context"
)

// Repository 评论仓储接口
// 设计说明：
// 1. Create依赖unique(user_id, book_id)索引，重复插入转换为ErrDuplicateReview
// 2. IncrLikes必须实现为引擎内原子自增（likes = likes + delta），
//    减量时以0为下限，不允许读-改-写
type Repository interface {
	// Create 创建评论，重复评论返回ErrDuplicateReview
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找评论（含已删除，调用方检查状态）
	FindByID(ctx context.Context, id uint) (*Review, error)

	// Update 更新评论（内容、评分、状态）
	Update(ctx context.Context, review *Review) error

	// ListTopByLikes 按点赞数倒序分页查询有效评论（热门评论榜）
	ListTopByLikes(ctx context.Context, page, pageSize int) ([]*Review, int64, error)

	// ListByBookID 查询某本书的有效评论（分页，按时间倒序）
	ListByBookID(ctx context.Context, bookID uint, page, pageSize int) ([]*Review, int64, error)

	// ListByUserID 查询用户的有效评论（分页，按时间倒序）
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Review, int64, error)

	// IncrLikes 原子更新点赞数（delta为±1），减量下限为0
	IncrLikes(ctx context.Context, id uint, delta int) error
}
