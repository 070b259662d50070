package wishlist

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/wishlist"
)

// ListWishlistUseCase 心愿单列表查询用例
type ListWishlistUseCase struct {
	wishlistRepo wishlist.Repository
	bookRepo     book.Repository
}

// NewListWishlistUseCase 创建心愿单列表用例
func NewListWishlistUseCase(wishlistRepo wishlist.Repository, bookRepo book.Repository) *ListWishlistUseCase {
	return &ListWishlistUseCase{
		wishlistRepo: wishlistRepo,
		bookRepo:     bookRepo,
	}
}

// WishlistItemView 心愿单条目DTO（带图书信息）
type WishlistItemView struct {
	ItemID        uint    `json:"item_id"`
	BookID        uint    `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         int64   `json:"price"`
	Stock         int     `json:"stock"`
	AverageRating float64 `json:"average_rating"`
	CoverURL      string  `json:"cover_url"`
	AddedAt       string  `json:"added_at"`
}

// ListWishlistResponse 心愿单列表响应DTO
type ListWishlistResponse struct {
	List     []WishlistItemView `json:"list"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Execute 查询用户心愿单（按添加时间倒序，带图书信息）
// 图书被下架（软删除）后对应条目只能跳过展示。
func (uc *ListWishlistUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*ListWishlistResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := uc.wishlistRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	bookIDs := make([]uint, len(items))
	for i, item := range items {
		bookIDs[i] = item.BookID
	}
	books, err := uc.bookRepo.FindByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	list := make([]WishlistItemView, 0, len(items))
	for _, item := range items {
		b, ok := books[item.BookID]
		if !ok {
			continue
		}
		list = append(list, WishlistItemView{
			ItemID:        item.ID,
			BookID:        b.ID,
			Title:         b.Title,
			Author:        b.Author,
			Price:         b.Price,
			Stock:         b.Stock,
			AverageRating: b.AverageRating,
			CoverURL:      b.CoverURL,
			AddedAt:       item.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &ListWishlistResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
