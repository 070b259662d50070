package review

import (
	"context"
	"log"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/review"
	rediscache "github.com/xiebiao/booklibrary/internal/infrastructure/persistence/redis"
)

// TxManager 事务管理接口
// 由persistence/mysql.TxManager实现；用例测试时可用直通实现替代。
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TopCache 热门评论榜缓存接口
// 由persistence/redis.ReviewCache实现。
type TopCache interface {
	Get(ctx context.Context, page, limit int) (*rediscache.CachedPage, error)
	Set(ctx context.Context, page, limit int, cached *rediscache.CachedPage) error
	BumpVersion(ctx context.Context) error
}

// CreateReviewUseCase 创建评论用例
// 设计说明：
// 1. 评论插入与图书统计(review_count, average_rating)的增量更新
//    在同一事务内，回滚时统计保持原样
// 2. 重复评论由unique(user_id, book_id)拦截，转换为业务错误
// 3. 提交成功后递增缓存版本号；递增失败记日志后吞掉（缓存有TTL兜底）
type CreateReviewUseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
	txManager  TxManager
	cache      TopCache
}

// NewCreateReviewUseCase 创建评论用例
func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	cache TopCache,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
		cache:      cache,
	}
}

// CreateReviewRequest 创建评论请求DTO
type CreateReviewRequest struct {
	UserID  uint
	BookID  uint
	Rating  int // 1-5
	Title   string
	Content string
}

// CreateReviewResponse 创建评论响应DTO
type CreateReviewResponse struct {
	ReviewID  uint   `json:"review_id"`
	BookID    uint   `json:"book_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行创建评论
func (uc *CreateReviewUseCase) Execute(ctx context.Context, req CreateReviewRequest) (*CreateReviewResponse, error) {
	rv, err := review.NewReview(req.UserID, req.BookID, req.Rating, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 图书必须存在
		if _, err := uc.bookRepo.FindByID(txCtx, req.BookID); err != nil {
			return err
		}

		// 2. 插入评论（唯一索引判重）
		if err := uc.reviewRepo.Create(txCtx, rv); err != nil {
			return err
		}

		// 3. 增量更新图书统计：avg' = (avg*n + rating) / (n+1)
		return uc.bookRepo.ApplyReviewCreated(txCtx, req.BookID, req.Rating)
	})
	if err != nil {
		return nil, err
	}

	bumpCacheVersion(ctx, uc.cache)

	return &CreateReviewResponse{
		ReviewID:  rv.ID,
		BookID:    rv.BookID,
		Rating:    rv.Rating,
		Title:     rv.Title,
		Content:   rv.Content,
		CreatedAt: rv.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// bumpCacheVersion 递增缓存版本号
// 评论读缓存是加速层：失效失败不能影响已提交的写事务，
// 记日志后吞掉，旧缓存最多存活一个TTL周期。
func bumpCacheVersion(ctx context.Context, cache TopCache) {
	if cache == nil {
		return
	}
	if err := cache.BumpVersion(ctx); err != nil {
		log.Printf("递增评论缓存版本失败: %v", err)
	}
}
