package comment

import (
	"context"
)

// Repository 回复仓储接口
type Repository interface {
	// Create 创建回复
	Create(ctx context.Context, comment *Comment) error

	// FindByID 根据ID查找回复
	FindByID(ctx context.Context, id uint) (*Comment, error)

	// Update 更新回复内容
	Update(ctx context.Context, comment *Comment) error

	// Delete 删除回复
	Delete(ctx context.Context, id uint) error

	// ListByReviewID 查询某条评论下的回复（分页，按时间正序）
	ListByReviewID(ctx context.Context, reviewID uint, page, pageSize int) ([]*Comment, int64, error)

	// IncrLikes 原子更新点赞数（delta为±1），减量下限为0
	IncrLikes(ctx context.Context, id uint, delta int) error
}
