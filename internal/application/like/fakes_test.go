package like

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/comment"
	"github.com/xiebiao/booklibrary/internal/domain/like"
	"github.com/xiebiao/booklibrary/internal/domain/review"
)

// 内存仓储实现（测试用）

type likeKey struct {
	userID   uint
	targetID uint
	target   like.TargetType
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]time.Time
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[likeKey]time.Time)}
}

func (r *fakeLikeRepo) snapshot() map[likeKey]time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[likeKey]time.Time, len(r.likes))
	for k, v := range r.likes {
		snap[k] = v
	}
	return snap
}

func (r *fakeLikeRepo) restore(snap map[likeKey]time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes = snap
}

func (r *fakeLikeRepo) Create(ctx context.Context, l *like.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{l.UserID, l.TargetID, l.Target}
	// 唯一索引(user_id, target_id)语义
	if _, exists := r.likes[key]; exists {
		return like.ErrAlreadyLiked
	}
	r.likes[key] = l.CreatedAt
	return nil
}

func (r *fakeLikeRepo) Delete(ctx context.Context, userID, targetID uint, target like.TargetType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{userID, targetID, target}
	if _, exists := r.likes[key]; !exists {
		return like.ErrNotLikedYet
	}
	delete(r.likes, key)
	return nil
}

func (r *fakeLikeRepo) Exists(ctx context.Context, userID, targetID uint, target like.TargetType) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.likes[likeKey{userID, targetID, target}]
	return exists, nil
}

func (r *fakeLikeRepo) ListLikedReviewIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type likedAt struct {
		id uint
		at time.Time
	}
	var all []likedAt
	for k, at := range r.likes {
		if k.userID == userID && k.target == like.TargetReview {
			all = append(all, likedAt{k.targetID, at})
		}
	}
	// 按点赞时间倒序
	sort.Slice(all, func(i, j int) bool { return all[i].at.After(all[j].at) })

	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	ids := make([]uint, 0, end-start)
	for _, e := range all[start:end] {
		ids = append(ids, e.id)
	}
	return ids, total, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[uint]*review.Review
}

func newFakeReviewRepo(reviews ...*review.Review) *fakeReviewRepo {
	r := &fakeReviewRepo{reviews: make(map[uint]*review.Review)}
	for _, rv := range reviews {
		copied := *rv
		r.reviews[copied.ID] = &copied
	}
	return r
}

func (r *fakeReviewRepo) snapshot() map[uint]*review.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*review.Review, len(r.reviews))
	for id, rv := range r.reviews {
		copied := *rv
		snap[id] = &copied
	}
	return snap
}

func (r *fakeReviewRepo) restore(snap map[uint]*review.Review) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = snap
}

func (r *fakeReviewRepo) Create(ctx context.Context, rv *review.Review) error { panic("不应调用Create") }

func (r *fakeReviewRepo) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	copied := *rv
	return &copied, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, rv *review.Review) error { panic("不应调用Update") }

func (r *fakeReviewRepo) ListTopByLikes(ctx context.Context, page, pageSize int) ([]*review.Review, int64, error) {
	panic("不应调用ListTopByLikes")
}

func (r *fakeReviewRepo) ListByBookID(ctx context.Context, bookID uint, page, pageSize int) ([]*review.Review, int64, error) {
	panic("不应调用ListByBookID")
}

func (r *fakeReviewRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*review.Review, int64, error) {
	panic("不应调用ListByUserID")
}

func (r *fakeReviewRepo) IncrLikes(ctx context.Context, id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[id]
	if !ok {
		return review.ErrReviewNotFound
	}
	rv.Likes += int64(delta)
	if rv.Likes < 0 {
		rv.Likes = 0
	}
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uint]*comment.Comment
}

func newFakeCommentRepo(comments ...*comment.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: make(map[uint]*comment.Comment)}
	for _, c := range comments {
		copied := *c
		r.comments[copied.ID] = &copied
	}
	return r
}

func (r *fakeCommentRepo) snapshot() map[uint]*comment.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*comment.Comment, len(r.comments))
	for id, c := range r.comments {
		copied := *c
		snap[id] = &copied
	}
	return snap
}

func (r *fakeCommentRepo) restore(snap map[uint]*comment.Comment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = snap
}

func (r *fakeCommentRepo) Create(ctx context.Context, c *comment.Comment) error {
	panic("不应调用Create")
}

func (r *fakeCommentRepo) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, c *comment.Comment) error {
	panic("不应调用Update")
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id uint) error { panic("不应调用Delete") }

func (r *fakeCommentRepo) ListByReviewID(ctx context.Context, reviewID uint, page, pageSize int) ([]*comment.Comment, int64, error) {
	panic("不应调用ListByReviewID")
}

func (r *fakeCommentRepo) IncrLikes(ctx context.Context, id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return comment.ErrCommentNotFound
	}
	c.Likes += int64(delta)
	if c.Likes < 0 {
		c.Likes = 0
	}
	return nil
}

// fakeTxManager 失败即回滚的事务管理器
type fakeTxManager struct {
	likes    *fakeLikeRepo
	reviews  *fakeReviewRepo
	comments *fakeCommentRepo
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	likeSnap := m.likes.snapshot()
	var reviewSnap map[uint]*review.Review
	var commentSnap map[uint]*comment.Comment
	if m.reviews != nil {
		reviewSnap = m.reviews.snapshot()
	}
	if m.comments != nil {
		commentSnap = m.comments.snapshot()
	}

	if err := fn(ctx); err != nil {
		m.likes.restore(likeSnap)
		if m.reviews != nil {
			m.reviews.restore(reviewSnap)
		}
		if m.comments != nil {
			m.comments.restore(commentSnap)
		}
		return err
	}
	return nil
}

// fakeCache 记录版本递增次数
type fakeCache struct {
	mu    sync.Mutex
	bumps int
}

func (c *fakeCache) BumpVersion(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bumps++
	return nil
}

func (c *fakeCache) bumpCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bumps
}
