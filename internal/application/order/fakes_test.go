package order

import (
	"context"
	"sync"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/cart"
	"github.com/xiebiao/booklibrary/internal/domain/order"
)

// 内存仓储实现（测试用）
// fakeTxManager在失败时恢复快照，模拟数据库回滚语义，
// 用于验证"事务失败后所有状态保持原样"。

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

func (r *fakeBookRepo) get(id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *b
	r.books[b.ID] = &copied
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			copied := *b
			return &copied, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *b
	r.books[b.ID] = &copied
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*book.Book
	for _, b := range r.books {
		copied := *b
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (r *fakeBookRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[uint]*book.Book)
	for _, id := range ids {
		if b, ok := r.books[id]; ok {
			copied := *b
			result[id] = &copied
		}
	}
	return result, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
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

type fakeCartRepo struct {
	mu     sync.Mutex
	items  map[uint]*cart.Item
	nextID uint
}

func newFakeCartRepo(items ...*cart.Item) *fakeCartRepo {
	r := &fakeCartRepo{items: make(map[uint]*cart.Item), nextID: 1}
	for _, item := range items {
		copied := *item
		if copied.ID == 0 {
			copied.ID = r.nextID
		}
		r.items[copied.ID] = &copied
		r.nextID = copied.ID + 1
	}
	return r
}

func (r *fakeCartRepo) snapshot() map[uint]*cart.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*cart.Item, len(r.items))
	for id, item := range r.items {
		copied := *item
		snap[id] = &copied
	}
	return snap
}

func (r *fakeCartRepo) restore(snap map[uint]*cart.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = snap
}

func (r *fakeCartRepo) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.BookID == bookID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, cart.ErrItemNotFound
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uint) (*cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, cart.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeCartRepo) Create(ctx context.Context, item *cart.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeCartRepo) Update(ctx context.Context, item *cart.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*cart.Item, int64, error) {
	items, err := r.FindAllByUserID(ctx, userID)
	return items, int64(len(items)), err
}

func (r *fakeCartRepo) FindAllByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*cart.Item
	for _, item := range r.items {
		if item.UserID == userID {
			copied := *item
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (r *fakeCartRepo) ClearByUserID(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uint]*order.Order
	nextID uint
}

func newFakeOrderRepo(orders ...*order.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[uint]*order.Order), nextID: 1}
	for _, o := range orders {
		copied := *o
		if copied.ID == 0 {
			copied.ID = r.nextID
		}
		r.orders[copied.ID] = &copied
		r.nextID = copied.ID + 1
	}
	return r
}

func (r *fakeOrderRepo) snapshot() map[uint]*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*order.Order, len(r.orders))
	for id, o := range r.orders {
		copied := *o
		snap[id] = &copied
	}
	return snap
}

func (r *fakeOrderRepo) restore(snap map[uint]*order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = snap
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	r.nextID++
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderNo == orderNo {
			copied := *o
			return &copied, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			copied := *o
			list = append(list, &copied)
		}
	}
	return list, int64(len(list)), nil
}

// fakeTxManager 失败即回滚的事务管理器
type fakeTxManager struct {
	books  *fakeBookRepo
	carts  *fakeCartRepo
	orders *fakeOrderRepo
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	var bookSnap map[uint]*book.Book
	var cartSnap map[uint]*cart.Item
	var orderSnap map[uint]*order.Order

	if m.books != nil {
		bookSnap = m.books.snapshot()
	}
	if m.carts != nil {
		cartSnap = m.carts.snapshot()
	}
	if m.orders != nil {
		orderSnap = m.orders.snapshot()
	}

	if err := fn(ctx); err != nil {
		if m.books != nil {
			m.books.restore(bookSnap)
		}
		if m.carts != nil {
			m.carts.restore(cartSnap)
		}
		if m.orders != nil {
			m.orders.restore(orderSnap)
		}
		return err
	}
	return nil
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	mu     sync.Mutex
	events []string // routing keys
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, routingKey)
	return nil
}

func (p *fakePublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}
