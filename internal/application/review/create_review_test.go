package review

import (
	"context"
	"testing"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// TestCreateReview 创建评论：入库、图书统计增量更新、缓存版本递增
func TestCreateReview(t *testing.T) {
	bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Go程序设计语言"})
	reviewRepo := newFakeReviewRepo()
	cache := newFakeTopCache()
	tx := &fakeTxManager{reviews: reviewRepo, books: bookRepo}
	uc := NewCreateReviewUseCase(reviewRepo, bookRepo, tx, cache)

	resp, err := uc.Execute(context.Background(), CreateReviewRequest{
		UserID: 42, BookID: 1, Rating: 4, Title: "不错", Content: "值得一读",
	})
	if err != nil {
		t.Fatalf("创建期望成功，实际失败: %v", err)
	}
	if resp.ReviewID == 0 {
		t.Error("期望分配评论ID")
	}

	// 图书统计已更新
	b, _ := bookRepo.FindByID(context.Background(), 1)
	if b.ReviewCount != 1 || b.AverageRating != 4.0 {
		t.Errorf("期望统计(1, 4.0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}

	// 缓存版本递增一次
	if cache.bumpCount() != 1 {
		t.Errorf("期望缓存版本递增1次，实际%d次", cache.bumpCount())
	}
}

// TestCreateReview_Duplicate 重复评论被唯一索引拦截，统计与缓存都不动
func TestCreateReview_Duplicate(t *testing.T) {
	bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Go程序设计语言"})
	reviewRepo := newFakeReviewRepo()
	cache := newFakeTopCache()
	tx := &fakeTxManager{reviews: reviewRepo, books: bookRepo}
	uc := NewCreateReviewUseCase(reviewRepo, bookRepo, tx, cache)

	req := CreateReviewRequest{UserID: 42, BookID: 1, Rating: 4, Content: "值得一读"}
	if _, err := uc.Execute(context.Background(), req); err != nil {
		t.Fatalf("第一次创建期望成功: %v", err)
	}

	req.Rating = 2
	if _, err := uc.Execute(context.Background(), req); err != review.ErrDuplicateReview {
		t.Fatalf("第二次创建期望ErrDuplicateReview，实际%v", err)
	}

	// 统计仍然只反映第一条评论
	b, _ := bookRepo.FindByID(context.Background(), 1)
	if b.ReviewCount != 1 || b.AverageRating != 4.0 {
		t.Errorf("重复创建后期望统计(1, 4.0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}
	if cache.bumpCount() != 1 {
		t.Errorf("失败的创建不应递增缓存版本，实际%d次", cache.bumpCount())
	}
}

// TestCreateReview_BookNotFound 图书不存在
func TestCreateReview_BookNotFound(t *testing.T) {
	bookRepo := newFakeBookRepo()
	reviewRepo := newFakeReviewRepo()
	tx := &fakeTxManager{reviews: reviewRepo, books: bookRepo}
	uc := NewCreateReviewUseCase(reviewRepo, bookRepo, tx, newFakeTopCache())

	_, err := uc.Execute(context.Background(), CreateReviewRequest{
		UserID: 42, BookID: 99, Rating: 4, Content: "值得一读",
	})
	if err != book.ErrBookNotFound {
		t.Fatalf("期望ErrBookNotFound，实际%v", err)
	}
}

// TestCreateReview_InvalidRating 评分越界在进事务前就拒绝
func TestCreateReview_InvalidRating(t *testing.T) {
	bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Go程序设计语言"})
	reviewRepo := newFakeReviewRepo()
	tx := &fakeTxManager{reviews: reviewRepo, books: bookRepo}
	uc := NewCreateReviewUseCase(reviewRepo, bookRepo, tx, newFakeTopCache())

	_, err := uc.Execute(context.Background(), CreateReviewRequest{
		UserID: 42, BookID: 1, Rating: 6, Content: "内容",
	})
	if err != review.ErrInvalidRating {
		t.Fatalf("期望ErrInvalidRating，实际%v", err)
	}
}

// TestCreateReview_BumpFailureSwallowed 缓存版本递增失败不影响写入结果
func TestCreateReview_BumpFailureSwallowed(t *testing.T) {
	bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Go程序设计语言"})
	reviewRepo := newFakeReviewRepo()
	cache := newFakeTopCache()
	cache.bumpErr = errCacheDown
	tx := &fakeTxManager{reviews: reviewRepo, books: bookRepo}
	uc := NewCreateReviewUseCase(reviewRepo, bookRepo, tx, cache)

	resp, err := uc.Execute(context.Background(), CreateReviewRequest{
		UserID: 42, BookID: 1, Rating: 4, Content: "值得一读",
	})
	if err != nil {
		t.Fatalf("缓存失效失败不应影响创建: %v", err)
	}

	// 评论已落库
	if _, err := reviewRepo.FindByID(context.Background(), resp.ReviewID); err != nil {
		t.Errorf("评论未落库: %v", err)
	}
}
