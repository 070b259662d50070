package like

import (
	"context"
	"errors"

	"github.com/xiebiao/booklibrary/internal/domain/like"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// ListLikedReviewsUseCase 我点赞过的评论列表用例
type ListLikedReviewsUseCase struct {
	likeRepo   like.Repository
	reviewRepo review.Repository
}

// NewListLikedReviewsUseCase 创建点赞列表用例
func NewListLikedReviewsUseCase(likeRepo like.Repository, reviewRepo review.Repository) *ListLikedReviewsUseCase {
	return &ListLikedReviewsUseCase{
		likeRepo:   likeRepo,
		reviewRepo: reviewRepo,
	}
}

// LikedReviewView 点赞过的评论DTO
type LikedReviewView struct {
	ReviewID  uint   `json:"review_id"`
	BookID    uint   `json:"book_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Likes     int64  `json:"likes"`
	CreatedAt string `json:"created_at"`
}

// ListLikedReviewsResponse 点赞列表响应DTO
type ListLikedReviewsResponse struct {
	List     []LikedReviewView `json:"list"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Execute 查询用户点赞过的评论（分页，按点赞时间倒序）
// 点赞后评论可能已被作者删除，这类记录直接跳过。
func (uc *ListLikedReviewsUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*ListLikedReviewsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	ids, total, err := uc.likeRepo.ListLikedReviewIDs(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]LikedReviewView, 0, len(ids))
	for _, id := range ids {
		rv, err := uc.reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, review.ErrReviewNotFound) {
				continue
			}
			return nil, err
		}
		if !rv.IsActive() {
			continue
		}

		list = append(list, LikedReviewView{
			ReviewID:  rv.ID,
			BookID:    rv.BookID,
			Rating:    rv.Rating,
			Title:     rv.Title,
			Content:   rv.Content,
			Likes:     rv.Likes,
			CreatedAt: rv.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &ListLikedReviewsResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
