package cart

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/cart"
)

// RemoveItemUseCase 移除购物车行用例
type RemoveItemUseCase struct {
	cartRepo cart.Repository
}

// NewRemoveItemUseCase 创建移除用例
func NewRemoveItemUseCase(cartRepo cart.Repository) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo}
}

// Execute 执行移除（只有本人可以操作）
func (uc *RemoveItemUseCase) Execute(ctx context.Context, userID, itemID uint) error {
	item, err := uc.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}

	if !item.IsOwnedBy(userID) {
		return cart.ErrUnauthorized
	}

	return uc.cartRepo.Delete(ctx, itemID)
}

// ClearCartUseCase 清空购物车用例
type ClearCartUseCase struct {
	cartRepo cart.Repository
}

// NewClearCartUseCase 创建清空用例
func NewClearCartUseCase(cartRepo cart.Repository) *ClearCartUseCase {
	return &ClearCartUseCase{cartRepo: cartRepo}
}

// Execute 清空当前用户的购物车
func (uc *ClearCartUseCase) Execute(ctx context.Context, userID uint) error {
	return uc.cartRepo.ClearByUserID(ctx, userID)
}
