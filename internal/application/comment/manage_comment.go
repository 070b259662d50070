package comment

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/comment"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// CommentUseCase 回复管理用例（发表、修改、删除）
type CommentUseCase struct {
	commentRepo comment.Repository
	reviewRepo  review.Repository
}

// NewCommentUseCase 创建回复管理用例
func NewCommentUseCase(commentRepo comment.Repository, reviewRepo review.Repository) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

// CreateCommentRequest 发表回复请求DTO
type CreateCommentRequest struct {
	UserID   uint
	ReviewID uint
	Content  string
}

// CreateCommentResponse 发表回复响应DTO
type CreateCommentResponse struct {
	CommentID uint `json:"comment_id"`
}

// Create 在某条评论下发表回复
func (uc *CommentUseCase) Create(ctx context.Context, req CreateCommentRequest) (*CreateCommentResponse, error) {
	// 目标评论必须存在且未删除
	rv, err := uc.reviewRepo.FindByID(ctx, req.ReviewID)
	if err != nil {
		return nil, err
	}
	if !rv.IsActive() {
		return nil, review.ErrReviewNotFound
	}

	c, err := comment.NewComment(req.ReviewID, req.UserID, req.Content)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &CreateCommentResponse{CommentID: c.ID}, nil
}

// Update 修改自己的回复
func (uc *CommentUseCase) Update(ctx context.Context, userID, commentID uint, content string) error {
	c, err := uc.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !c.IsOwnedBy(userID) {
		return comment.ErrUnauthorized
	}

	if err := c.UpdateContent(content); err != nil {
		return err
	}

	return uc.commentRepo.Update(ctx, c)
}

// Delete 删除自己的回复
func (uc *CommentUseCase) Delete(ctx context.Context, userID, commentID uint) error {
	c, err := uc.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !c.IsOwnedBy(userID) {
		return comment.ErrUnauthorized
	}

	return uc.commentRepo.Delete(ctx, commentID)
}
