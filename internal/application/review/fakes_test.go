package review

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/review"
	rediscache "github.com/xiebiao/booklibrary/internal/infrastructure/persistence/redis"
)

// 内存仓储实现（测试用）

type fakeReviewRepo struct {
	mu           sync.Mutex
	reviews      map[uint]*review.Review
	nextID       uint
	listTopCalls int
}

func newFakeReviewRepo(reviews ...*review.Review) *fakeReviewRepo {
	r := &fakeReviewRepo{reviews: make(map[uint]*review.Review), nextID: 1}
	for _, rv := range reviews {
		copied := *rv
		if copied.ID == 0 {
			copied.ID = r.nextID
		}
		r.reviews[copied.ID] = &copied
		r.nextID = copied.ID + 1
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

func (r *fakeReviewRepo) Create(ctx context.Context, rv *review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// unique(user_id, book_id)：只对有效评论生效
	for _, existing := range r.reviews {
		if existing.UserID == rv.UserID && existing.BookID == rv.BookID && existing.IsActive() {
			return review.ErrDuplicateReview
		}
	}
	rv.ID = r.nextID
	r.nextID++
	copied := *rv
	r.reviews[rv.ID] = &copied
	return nil
}

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

func (r *fakeReviewRepo) Update(ctx context.Context, rv *review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[rv.ID]; !ok {
		return review.ErrReviewNotFound
	}
	copied := *rv
	r.reviews[rv.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) ListTopByLikes(ctx context.Context, page, pageSize int) ([]*review.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listTopCalls++

	var active []*review.Review
	for _, rv := range r.reviews {
		if rv.IsActive() {
			copied := *rv
			active = append(active, &copied)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Likes > active[j].Likes })

	total := int64(len(active))
	start := (page - 1) * pageSize
	if start >= len(active) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(active) {
		end = len(active)
	}
	return active[start:end], total, nil
}

func (r *fakeReviewRepo) ListByBookID(ctx context.Context, bookID uint, page, pageSize int) ([]*review.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*review.Review
	for _, rv := range r.reviews {
		if rv.BookID == bookID && rv.IsActive() {
			copied := *rv
			list = append(list, &copied)
		}
	}
	return list, int64(len(list)), nil
}

func (r *fakeReviewRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*review.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*review.Review
	for _, rv := range r.reviews {
		if rv.UserID == userID && rv.IsActive() {
			copied := *rv
			list = append(list, &copied)
		}
	}
	return list, int64(len(list)), nil
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

// fakeBookRepo 只实现评论用例会触达的方法，其余直接panic暴露误用
type fakeBookRepo struct {
	mu    sync.Mutex
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		copied := *b
		r.books[b.ID] = &copied
	}
	return r
}

func (r *fakeBookRepo) snapshot() map[uint]*book.Book {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*book.Book, len(r.books))
	for id, b := range r.books {
		copied := *b
		snap[id] = &copied
	}
	return snap
}

func (r *fakeBookRepo) restore(snap map[uint]*book.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books = snap
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookRepo) ApplyReviewCreated(ctx context.Context, id uint, rating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.ApplyReviewCreated(rating)
	return nil
}

func (r *fakeBookRepo) ApplyReviewRatingChanged(ctx context.Context, id uint, oldRating, newRating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.ApplyReviewRatingChanged(oldRating, newRating)
	return nil
}

func (r *fakeBookRepo) ApplyReviewRemoved(ctx context.Context, id uint, rating int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.ApplyReviewRemoved(rating)
	return nil
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { panic("不应调用Create") }
func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	panic("不应调用FindByISBN")
}
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { panic("不应调用Update") }
func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error      { panic("不应调用Delete") }
func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	panic("不应调用List")
}
func (r *fakeBookRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	panic("不应调用FindByIDs")
}
func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	panic("不应调用LockByID")
}
func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	panic("不应调用UpdateStock")
}

// fakeTxManager 失败即回滚的事务管理器
type fakeTxManager struct {
	reviews *fakeReviewRepo
	books   *fakeBookRepo
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	reviewSnap := m.reviews.snapshot()
	var bookSnap map[uint]*book.Book
	if m.books != nil {
		bookSnap = m.books.snapshot()
	}

	if err := fn(ctx); err != nil {
		m.reviews.restore(reviewSnap)
		if m.books != nil {
			m.books.restore(bookSnap)
		}
		return err
	}
	return nil
}

// fakeTopCache 记录访问的缓存替身
type fakeTopCache struct {
	mu       sync.Mutex
	pages    map[string]*rediscache.CachedPage
	bumps    int
	setCalls int
	getErr   error
	bumpErr  error
}

func newFakeTopCache() *fakeTopCache {
	return &fakeTopCache{pages: make(map[string]*rediscache.CachedPage)}
}

func cacheKey(page, limit int) string {
	return fmt.Sprintf("%d:%d", page, limit)
}

func (c *fakeTopCache) Get(ctx context.Context, page, limit int) (*rediscache.CachedPage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.pages[cacheKey(page, limit)], nil
}

func (c *fakeTopCache) Set(ctx context.Context, page, limit int, cached *rediscache.CachedPage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	c.pages[cacheKey(page, limit)] = cached
	return nil
}

func (c *fakeTopCache) BumpVersion(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bumpErr != nil {
		return c.bumpErr
	}
	c.bumps++
	return nil
}

func (c *fakeTopCache) bumpCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bumps
}

var errCacheDown = errors.New("redis: connection refused")
