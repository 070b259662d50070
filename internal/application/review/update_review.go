package review

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// UpdateReviewUseCase 修改评论用例
// 评分变化时在同一事务内增量修正图书平均分：avg' = avg + (new-old)/n。
type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
	txManager  TxManager
	cache      TopCache
}

// NewUpdateReviewUseCase 创建修改评论用例
func NewUpdateReviewUseCase(
	reviewRepo review.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	cache TopCache,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
		cache:      cache,
	}
}

// UpdateReviewRequest 修改评论请求DTO
type UpdateReviewRequest struct {
	UserID   uint
	ReviewID uint
	Rating   int
	Title    string
	Content  string
}

// Execute 执行修改评论
func (uc *UpdateReviewUseCase) Execute(ctx context.Context, req UpdateReviewRequest) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		rv, err := uc.reviewRepo.FindByID(txCtx, req.ReviewID)
		if err != nil {
			return err
		}
		if !rv.IsActive() {
			return review.ErrReviewNotFound
		}
		if !rv.IsOwnedBy(req.UserID) {
			return review.ErrUnauthorized
		}

		oldRating, err := rv.UpdateContent(req.Rating, req.Title, req.Content)
		if err != nil {
			return err
		}

		if err := uc.reviewRepo.Update(txCtx, rv); err != nil {
			return err
		}

		// 评分没变时跳过统计更新（Repository内部也有同样的短路）
		return uc.bookRepo.ApplyReviewRatingChanged(txCtx, rv.BookID, oldRating, rv.Rating)
	})
	if err != nil {
		return err
	}

	bumpCacheVersion(ctx, uc.cache)
	return nil
}
