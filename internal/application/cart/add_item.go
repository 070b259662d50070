package cart

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/cart"
)

// AddItemUseCase 加入购物车用例
// 设计说明：
// 1. 同一本书重复加购走加量（unique(user_id, book_id)最多一行）
// 2. 加购时校验"累计数量不超过当前库存"，给用户及时反馈；
//    最终的防超卖校验在结算事务内（悲观锁）完成
type AddItemUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewAddItemUseCase 创建加购用例
func NewAddItemUseCase(cartRepo cart.Repository, bookRepo book.Repository) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// AddItemRequest 加购请求DTO
type AddItemRequest struct {
	UserID   uint
	BookID   uint
	Quantity int
}

// AddItemResponse 加购响应DTO
type AddItemResponse struct {
	ItemID   uint `json:"item_id"`
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"` // 加购后的累计数量
}

// Execute 执行加购
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*AddItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	// 1. 图书必须存在
	b, err := uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	// 2. 已有购物车行则加量，否则新建
	existing, err := uc.cartRepo.FindByUserAndBook(ctx, req.UserID, req.BookID)
	if err != nil && err != cart.ErrItemNotFound {
		return nil, err
	}

	if existing != nil {
		newQuantity := existing.Quantity + req.Quantity
		if newQuantity > b.Stock {
			return nil, book.ErrInsufficientStock
		}
		if err := existing.ChangeQuantity(newQuantity); err != nil {
			return nil, err
		}
		if err := uc.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &AddItemResponse{ItemID: existing.ID, BookID: req.BookID, Quantity: existing.Quantity}, nil
	}

	if req.Quantity > b.Stock {
		return nil, book.ErrInsufficientStock
	}

	item, err := cart.NewItem(req.UserID, req.BookID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := uc.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return &AddItemResponse{ItemID: item.ID, BookID: req.BookID, Quantity: item.Quantity}, nil
}
