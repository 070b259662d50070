package like

import (
	"context"
	"testing"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/like"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// TestListLikedReviews 点赞列表：按点赞时间倒序
func TestListLikedReviews(t *testing.T) {
	likeRepo := newFakeLikeRepo()
	reviewRepo := newFakeReviewRepo(
		&review.Review{ID: 1, UserID: 7, BookID: 1, Rating: 4, Content: "很好", Likes: 10, Status: review.StatusActive},
		&review.Review{ID: 2, UserID: 8, BookID: 2, Rating: 5, Content: "必读", Likes: 30, Status: review.StatusActive},
	)

	// 先赞1，后赞2
	now := time.Now()
	likeRepo.likes[likeKey{42, 1, like.TargetReview}] = now.Add(-time.Hour)
	likeRepo.likes[likeKey{42, 2, like.TargetReview}] = now

	uc := NewListLikedReviewsUseCase(likeRepo, reviewRepo)
	resp, err := uc.Execute(context.Background(), 42, 1, 20)
	if err != nil {
		t.Fatalf("查询期望成功，实际失败: %v", err)
	}

	if resp.Total != 2 || len(resp.List) != 2 {
		t.Fatalf("期望2条，实际%d条/总数%d", len(resp.List), resp.Total)
	}
	if resp.List[0].ReviewID != 2 || resp.List[1].ReviewID != 1 {
		t.Errorf("期望按点赞时间倒序(2, 1)，实际(%d, %d)", resp.List[0].ReviewID, resp.List[1].ReviewID)
	}
}

// TestListLikedReviews_SkipDeleted 点赞后被删除的评论直接跳过
func TestListLikedReviews_SkipDeleted(t *testing.T) {
	likeRepo := newFakeLikeRepo()
	reviewRepo := newFakeReviewRepo(
		&review.Review{ID: 1, UserID: 7, BookID: 1, Rating: 4, Content: "很好", Status: review.StatusActive},
		&review.Review{ID: 2, UserID: 8, BookID: 2, Rating: 5, Content: "必读", Status: review.StatusDeleted},
	)

	now := time.Now()
	likeRepo.likes[likeKey{42, 1, like.TargetReview}] = now
	likeRepo.likes[likeKey{42, 2, like.TargetReview}] = now.Add(time.Minute)
	likeRepo.likes[likeKey{42, 3, like.TargetReview}] = now.Add(2 * time.Minute) // 评论行已不存在

	uc := NewListLikedReviewsUseCase(likeRepo, reviewRepo)
	resp, err := uc.Execute(context.Background(), 42, 1, 20)
	if err != nil {
		t.Fatalf("查询期望成功，实际失败: %v", err)
	}

	if len(resp.List) != 1 || resp.List[0].ReviewID != 1 {
		t.Fatalf("期望只剩评论1，实际%d条", len(resp.List))
	}
}

// TestListLikedReviews_Empty 没有点赞记录
func TestListLikedReviews_Empty(t *testing.T) {
	uc := NewListLikedReviewsUseCase(newFakeLikeRepo(), newFakeReviewRepo())

	resp, err := uc.Execute(context.Background(), 42, 1, 20)
	if err != nil {
		t.Fatalf("查询期望成功，实际失败: %v", err)
	}
	if resp.Total != 0 || len(resp.List) != 0 {
		t.Errorf("期望空列表，实际%d条/总数%d", len(resp.List), resp.Total)
	}
}
