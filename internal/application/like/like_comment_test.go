package like

import (
	"context"
	"testing"

	"github.com/xiebiao/booklibrary/internal/domain/comment"
	"github.com/xiebiao/booklibrary/internal/domain/like"
)

func newLikeCommentFixture(comments ...*comment.Comment) (*LikeCommentUseCase, *fakeCommentRepo) {
	likeRepo := newFakeLikeRepo()
	commentRepo := newFakeCommentRepo(comments...)
	tx := &fakeTxManager{likes: likeRepo, comments: commentRepo}
	return NewLikeCommentUseCase(likeRepo, commentRepo, tx), commentRepo
}

// TestLikeComment 留言点赞：计数加一
func TestLikeComment(t *testing.T) {
	uc, commentRepo := newLikeCommentFixture(
		&comment.Comment{ID: 1, ReviewID: 1, UserID: 7, Content: "同感", Likes: 3},
	)

	if err := uc.Like(context.Background(), 42, 1); err != nil {
		t.Fatalf("点赞期望成功，实际失败: %v", err)
	}

	c, _ := commentRepo.FindByID(context.Background(), 1)
	if c.Likes != 4 {
		t.Errorf("期望点赞数4，实际%d", c.Likes)
	}
}

// TestLikeComment_Duplicate 重复点赞
func TestLikeComment_Duplicate(t *testing.T) {
	uc, commentRepo := newLikeCommentFixture(
		&comment.Comment{ID: 1, ReviewID: 1, UserID: 7, Content: "同感", Likes: 3},
	)

	if err := uc.Like(context.Background(), 42, 1); err != nil {
		t.Fatalf("第一次点赞期望成功: %v", err)
	}
	if err := uc.Like(context.Background(), 42, 1); err != like.ErrAlreadyLiked {
		t.Fatalf("第二次点赞期望ErrAlreadyLiked，实际%v", err)
	}

	c, _ := commentRepo.FindByID(context.Background(), 1)
	if c.Likes != 4 {
		t.Errorf("重复点赞后期望计数仍为4，实际%d", c.Likes)
	}
}

// TestLikeComment_NotFound 留言不存在
func TestLikeComment_NotFound(t *testing.T) {
	uc, _ := newLikeCommentFixture()

	if err := uc.Like(context.Background(), 42, 99); err != comment.ErrCommentNotFound {
		t.Fatalf("期望ErrCommentNotFound，实际%v", err)
	}
}

// TestUnlikeComment 评论点赞与留言点赞互不串扰
// 同一用户、同一ID，分别点赞评论和留言，各自独立判重
func TestUnlikeComment(t *testing.T) {
	uc, commentRepo := newLikeCommentFixture(
		&comment.Comment{ID: 1, ReviewID: 1, UserID: 7, Content: "同感", Likes: 3},
	)

	if err := uc.Like(context.Background(), 42, 1); err != nil {
		t.Fatalf("点赞期望成功: %v", err)
	}
	if err := uc.Unlike(context.Background(), 42, 1); err != nil {
		t.Fatalf("取消点赞期望成功，实际失败: %v", err)
	}

	c, _ := commentRepo.FindByID(context.Background(), 1)
	if c.Likes != 3 {
		t.Errorf("取消后期望点赞数3，实际%d", c.Likes)
	}

	// 再取消一次
	if err := uc.Unlike(context.Background(), 42, 1); err != like.ErrNotLikedYet {
		t.Fatalf("期望ErrNotLikedYet，实际%v", err)
	}
}
