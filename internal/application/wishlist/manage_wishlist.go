package wishlist

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/wishlist"
)

// WishlistUseCase 心愿单管理用例（添加、移除）
type WishlistUseCase struct {
	wishlistRepo wishlist.Repository
	bookRepo     book.Repository
}

// NewWishlistUseCase 创建心愿单管理用例
func NewWishlistUseCase(wishlistRepo wishlist.Repository, bookRepo book.Repository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		bookRepo:     bookRepo,
	}
}

// AddResponse 添加心愿单响应DTO
type AddResponse struct {
	ItemID uint `json:"item_id"`
}

// Add 把图书加入心愿单
// 重复添加由unique(user_id, book_id)兜底，转换为业务错误。
func (uc *WishlistUseCase) Add(ctx context.Context, userID, bookID uint) (*AddResponse, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	item := wishlist.NewItem(userID, bookID)
	if err := uc.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return &AddResponse{ItemID: item.ID}, nil
}

// Remove 从心愿单移除条目（只有本人可以移除）
func (uc *WishlistUseCase) Remove(ctx context.Context, userID, itemID uint) error {
	item, err := uc.wishlistRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.IsOwnedBy(userID) {
		return wishlist.ErrUnauthorized
	}

	return uc.wishlistRepo.Delete(ctx, itemID)
}
