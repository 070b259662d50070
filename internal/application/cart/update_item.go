package cart

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/cart"
)

// UpdateItemUseCase 修改购物车数量用例
type UpdateItemUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewUpdateItemUseCase 创建修改数量用例
func NewUpdateItemUseCase(cartRepo cart.Repository, bookRepo book.Repository) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// UpdateItemRequest 修改数量请求DTO
type UpdateItemRequest struct {
	UserID   uint
	ItemID   uint
	Quantity int
}

// Execute 执行数量修改
// 只有本人可以修改；新数量不能超过当前库存。
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) error {
	item, err := uc.cartRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		return err
	}

	if !item.IsOwnedBy(req.UserID) {
		return cart.ErrUnauthorized
	}

	b, err := uc.bookRepo.FindByID(ctx, item.BookID)
	if err != nil {
		return err
	}
	if req.Quantity > b.Stock {
		return book.ErrInsufficientStock
	}

	if err := item.ChangeQuantity(req.Quantity); err != nil {
		return err
	}

	return uc.cartRepo.Update(ctx, item)
}
