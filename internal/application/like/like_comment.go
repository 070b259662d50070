package like

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/comment"
	"github.com/xiebiao/booklibrary/internal/domain/like"
)

// LikeCommentUseCase 留言点赞/取消点赞用例
// 判重机制与评论点赞一致：唯一索引(user_id, comment_id)兜底并发。
// 留言不参与热门榜，无需缓存失效。
type LikeCommentUseCase struct {
	likeRepo    like.Repository
	commentRepo comment.Repository
	txManager   TxManager
}

// NewLikeCommentUseCase 创建留言点赞用例
func NewLikeCommentUseCase(
	likeRepo like.Repository,
	commentRepo comment.Repository,
	txManager TxManager,
) *LikeCommentUseCase {
	return &LikeCommentUseCase{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
	}
}

// Like 点赞留言
func (uc *LikeCommentUseCase) Like(ctx context.Context, userID, commentID uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.commentRepo.FindByID(txCtx, commentID); err != nil {
			return err
		}

		if err := uc.likeRepo.Create(txCtx, like.NewLike(userID, commentID, like.TargetComment)); err != nil {
			return err
		}

		return uc.commentRepo.IncrLikes(txCtx, commentID, 1)
	})
}

// Unlike 取消点赞留言
func (uc *LikeCommentUseCase) Unlike(ctx context.Context, userID, commentID uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.likeRepo.Delete(txCtx, userID, commentID, like.TargetComment); err != nil {
			return err
		}
		return uc.commentRepo.IncrLikes(txCtx, commentID, -1)
	})
}
