package like

import (
	"context"
	"log"

	"github.com/xiebiao/booklibrary/internal/domain/like"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// TxManager 事务管理接口
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheInvalidator 热门评论榜缓存失效接口
// 点赞数影响热门榜排序，点赞/取消后需要让缓存失效。
type CacheInvalidator interface {
	BumpVersion(ctx context.Context) error
}

// LikeReviewUseCase 评论点赞/取消点赞用例
// 设计说明：
// 1. 不做"先查是否点过赞再插入"：并发下两个请求都会通过检查。
//    唯一索引(user_id, review_id)是唯一真相来源，
//    并发点赞时恰好一个INSERT成功，其余转换为"已点过赞"业务错误
// 2. 点赞记录与likes计数在同一事务内，计数用原子自增
type LikeReviewUseCase struct {
	likeRepo   like.Repository
	reviewRepo review.Repository
	txManager  TxManager
	cache      CacheInvalidator
}

// NewLikeReviewUseCase 创建评论点赞用例
func NewLikeReviewUseCase(
	likeRepo like.Repository,
	reviewRepo review.Repository,
	txManager TxManager,
	cache CacheInvalidator,
) *LikeReviewUseCase {
	return &LikeReviewUseCase{
		likeRepo:   likeRepo,
		reviewRepo: reviewRepo,
		txManager:  txManager,
		cache:      cache,
	}
}

// Like 点赞评论
func (uc *LikeReviewUseCase) Like(ctx context.Context, userID, reviewID uint) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 评论必须存在且有效
		rv, err := uc.reviewRepo.FindByID(txCtx, reviewID)
		if err != nil {
			return err
		}
		if !rv.IsActive() {
			return review.ErrReviewNotFound
		}

		// 2. 条件插入（唯一索引判重）
		if err := uc.likeRepo.Create(txCtx, like.NewLike(userID, reviewID, like.TargetReview)); err != nil {
			return err
		}

		// 3. 原子自增计数
		return uc.reviewRepo.IncrLikes(txCtx, reviewID, 1)
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

// Unlike 取消点赞
// 删除影响0行 → 尚未点赞；删除成功后原子减一（下限0）。
func (uc *LikeReviewUseCase) Unlike(ctx context.Context, userID, reviewID uint) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.likeRepo.Delete(txCtx, userID, reviewID, like.TargetReview); err != nil {
			return err
		}
		return uc.reviewRepo.IncrLikes(txCtx, reviewID, -1)
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

// invalidate 热门榜缓存失效（失败只记日志）
func (uc *LikeReviewUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.BumpVersion(ctx); err != nil {
		log.Printf("递增评论缓存版本失败: %v", err)
	}
}
