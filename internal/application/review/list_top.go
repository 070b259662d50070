package review

import (
	"context"
	"log"

	"github.com/xiebiao/booklibrary/internal/domain/review"
	rediscache "github.com/xiebiao/booklibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/booklibrary/pkg/metrics"
)

// ListTopUseCase 热门评论榜查询用例
// 读路径：
// 1. 按(版本号, page, limit)读缓存，命中直接返回
// 2. 未命中回源MySQL（likes DESC），回填缓存（带TTL）
// 3. 缓存服务异常时静默回源，只记日志——缓存永远不挡读
type ListTopUseCase struct {
	reviewRepo review.Repository
	cache      TopCache
}

// NewListTopUseCase 创建热门评论榜用例
func NewListTopUseCase(reviewRepo review.Repository, cache TopCache) *ListTopUseCase {
	return &ListTopUseCase{
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

// ListTopRequest 热门评论榜请求DTO
type ListTopRequest struct {
	Page     int
	PageSize int
}

// ReviewView 评论DTO
type ReviewView struct {
	ReviewID  uint   `json:"review_id"`
	UserID    uint   `json:"user_id"`
	BookID    uint   `json:"book_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Likes     int64  `json:"likes"`
	CreatedAt string `json:"created_at"`
}

// ListTopResponse 热门评论榜响应DTO
type ListTopResponse struct {
	List     []ReviewView `json:"list"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// Execute 执行热门评论榜查询
func (uc *ListTopUseCase) Execute(ctx context.Context, req ListTopRequest) (*ListTopResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	// 1. 读缓存
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, req.Page, req.PageSize)
		switch {
		case err != nil:
			// 缓存异常：记日志，静默回源
			metrics.ObserveReviewCache("error")
			log.Printf("读取评论缓存失败，回源数据库: %v", err)
		case cached != nil:
			metrics.ObserveReviewCache("hit")
			return uc.fromCache(cached, req), nil
		default:
			metrics.ObserveReviewCache("miss")
		}
	}

	// 2. 回源MySQL
	reviews, total, err := uc.reviewRepo.ListTopByLikes(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存（失败只记日志）
	if uc.cache != nil {
		page := toCachedPage(reviews, total)
		if err := uc.cache.Set(ctx, req.Page, req.PageSize, page); err != nil {
			log.Printf("回填评论缓存失败: %v", err)
		}
	}

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

	return &ListTopResponse{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// fromCache 缓存条目 → 响应DTO
func (uc *ListTopUseCase) fromCache(cached *rediscache.CachedPage, req ListTopRequest) *ListTopResponse {
	list := make([]ReviewView, len(cached.List))
	for i, c := range cached.List {
		list[i] = ReviewView{
			ReviewID:  c.ID,
			UserID:    c.UserID,
			BookID:    c.BookID,
			Rating:    c.Rating,
			Title:     c.Title,
			Content:   c.Content,
			Likes:     c.Likes,
			CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &ListTopResponse{
		List:     list,
		Total:    cached.Total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}

// toCachedPage 领域实体 → 缓存条目
func toCachedPage(reviews []*review.Review, total int64) *rediscache.CachedPage {
	list := make([]rediscache.CachedReview, len(reviews))
	for i, rv := range reviews {
		list[i] = rediscache.CachedReview{
			ID:        rv.ID,
			UserID:    rv.UserID,
			BookID:    rv.BookID,
			Rating:    rv.Rating,
			Title:     rv.Title,
			Content:   rv.Content,
			Likes:     rv.Likes,
			CreatedAt: rv.CreatedAt,
		}
	}

	return &rediscache.CachedPage{List: list, Total: total}
}
