package cart

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/cart"
)

// ListCartUseCase 购物车查询用例
// 列表带图书信息与小计金额，金额使用图书当前价格
// （价格快照在下单时才固定）。
type ListCartUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewListCartUseCase 创建购物车查询用例
func NewListCartUseCase(cartRepo cart.Repository, bookRepo book.Repository) *ListCartUseCase {
	return &ListCartUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// ListCartRequest 购物车查询请求DTO
type ListCartRequest struct {
	UserID   uint
	Page     int
	PageSize int
}

// CartItemView 购物车行DTO
type CartItemView struct {
	ItemID    uint   `json:"item_id"`
	BookID    uint   `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	CoverURL  string `json:"cover_url"`
	Price     int64  `json:"price"` // 当前单价(分)
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"` // 小计(分)
	Stock     int    `json:"stock"`    // 当前库存（前端提示用）
	CreatedAt string `json:"created_at"`
}

// ListCartResponse 购物车查询响应DTO
type ListCartResponse struct {
	List        []CartItemView `json:"list"`
	Total       int64          `json:"total"`        // 行数
	TotalAmount int64          `json:"total_amount"` // 当前页合计金额(分)
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
}

// Execute 执行购物车查询
func (uc *ListCartUseCase) Execute(ctx context.Context, req ListCartRequest) (*ListCartResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	items, total, err := uc.cartRepo.ListByUserID(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	// 批量取图书信息，避免N+1
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.BookID
	}
	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	list := make([]CartItemView, 0, len(items))
	var totalAmount int64
	for _, item := range items {
		b, ok := books[item.BookID]
		if !ok {
			// 图书已下架，购物车行跳过展示
			continue
		}
		subtotal := b.Price * int64(item.Quantity)
		totalAmount += subtotal
		list = append(list, CartItemView{
			ItemID:    item.ID,
			BookID:    b.ID,
			Title:     b.Title,
			Author:    b.Author,
			CoverURL:  b.CoverURL,
			Price:     b.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
			Stock:     b.Stock,
			CreatedAt: item.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &ListCartResponse{
		List:        list,
		Total:       total,
		TotalAmount: totalAmount,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}, nil
}
