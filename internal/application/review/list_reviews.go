package review

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// ListReviewsUseCase 评论列表查询用例（按图书、按用户）
// 常规分页读，不走热门榜缓存。
type ListReviewsUseCase struct {
	reviewRepo review.Repository
}

// NewListReviewsUseCase 创建评论列表用例
func NewListReviewsUseCase(reviewRepo review.Repository) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewRepo: reviewRepo}
}

// ListReviewsResponse 评论列表响应DTO
type ListReviewsResponse struct {
	List     []ReviewView `json:"list"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// ByBook 查询某本书的有效评论
func (uc *ListReviewsUseCase) ByBook(ctx context.Context, bookID uint, page, pageSize int) (*ListReviewsResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	reviews, total, err := uc.reviewRepo.ListByBookID(ctx, bookID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return buildListResponse(reviews, total, page, pageSize), nil
}

// ByUser 查询某用户的有效评论
func (uc *ListReviewsUseCase) ByUser(ctx context.Context, userID uint, page, pageSize int) (*ListReviewsResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	reviews, total, err := uc.reviewRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return buildListResponse(reviews, total, page, pageSize), nil
}

// normalizePage 分页参数默认值与范围限制
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// buildListResponse 领域实体 → 列表响应
func buildListResponse(reviews []*review.Review, total int64, page, pageSize int) *ListReviewsResponse {
	list := make([]ReviewView, len(reviews))
	for i, rv := range reviews {
		list[i] = ReviewView{
			ReviewID:  rv.ID,
			UserID:    rv.UserID,
			BookID:    rv.BookID,
			Rating:    rv.Rating,
			Title:     rv.Title,
			Content:   rv.Content,
			Likes:     rv.Likes,
			CreatedAt: rv.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &ListReviewsResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
