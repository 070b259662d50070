package comment

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/comment"
)

// ListCommentsUseCase 回复列表查询用例
type ListCommentsUseCase struct {
	commentRepo comment.Repository
}

// NewListCommentsUseCase 创建回复列表用例
func NewListCommentsUseCase(commentRepo comment.Repository) *ListCommentsUseCase {
	return &ListCommentsUseCase{commentRepo: commentRepo}
}

// CommentView 回复DTO
type CommentView struct {
	CommentID uint   `json:"comment_id"`
	ReviewID  uint   `json:"review_id"`
	UserID    uint   `json:"user_id"`
	Content   string `json:"content"`
	Likes     int64  `json:"likes"`
	CreatedAt string `json:"created_at"`
}

// ListCommentsResponse 回复列表响应DTO
type ListCommentsResponse struct {
	List     []CommentView `json:"list"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Execute 查询某条评论下的回复（按时间正序）
func (uc *ListCommentsUseCase) Execute(ctx context.Context, reviewID uint, page, pageSize int) (*ListCommentsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	comments, total, err := uc.commentRepo.ListByReviewID(ctx, reviewID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]CommentView, len(comments))
	for i, c := range comments {
		list[i] = CommentView{
			CommentID: c.ID,
			ReviewID:  c.ReviewID,
			UserID:    c.UserID,
			Content:   c.Content,
			Likes:     c.Likes,
			CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &ListCommentsResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
