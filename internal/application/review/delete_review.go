package review

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// DeleteReviewUseCase 删除评论用例（软删除）
// 同一事务内增量修正图书统计：
// n>1时avg' = (avg*n - rating)/(n-1)；删除最后一条时统计归零。
type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
	txManager  TxManager
	cache      TopCache
}

// NewDeleteReviewUseCase 创建删除评论用例
func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	cache TopCache,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
		cache:      cache,
	}
}

// Execute 执行删除评论（只有本人可以删除）
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, userID, reviewID uint) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		rv, err := uc.reviewRepo.FindByID(txCtx, reviewID)
		if err != nil {
			return err
		}
		if !rv.IsActive() {
			return review.ErrReviewNotFound
		}
		if !rv.IsOwnedBy(userID) {
			return review.ErrUnauthorized
		}

		rv.MarkDeleted()
		if err := uc.reviewRepo.Update(txCtx, rv); err != nil {
			return err
		}

		return uc.bookRepo.ApplyReviewRemoved(txCtx, rv.BookID, rv.Rating)
	})
	if err != nil {
		return err
	}

	bumpCacheVersion(ctx, uc.cache)
	return nil
}
