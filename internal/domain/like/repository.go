package like

import (
	"context"
)

// Repository 点赞仓储接口
// 设计说明：
// 1. Create必须依赖唯一索引判重：重复插入返回ErrAlreadyLiked，
//    并发下恰好一个请求成功
// 2. Delete影响0行时返回ErrNotLikedYet
// 3. 目标的likes计数由调用方在同一事务内用原子自增维护
type Repository interface {
	// Create 插入点赞记录，重复返回ErrAlreadyLiked
	Create(ctx context.Context, like *Like) error

	// Delete 删除点赞记录，不存在返回ErrNotLikedYet
	Delete(ctx context.Context, userID, targetID uint, target TargetType) error

	// Exists 查询是否已点赞（展示用，不作为写入前置检查）
	Exists(ctx context.Context, userID, targetID uint, target TargetType) (bool, error)

	// ListLikedReviewIDs 查询用户点赞过的评论ID（分页，按点赞时间倒序）
	ListLikedReviewIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error)
}
