package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// BookDetail 图书详情DTO
type BookDetail struct {
	ID            uint    `json:"id"`
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Publisher     string  `json:"publisher"`
	Price         int64   `json:"price"` // 价格(分)
	Stock         int     `json:"stock"`
	ReviewCount   int64   `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
	CoverURL      string  `json:"cover_url"`
	Description   string  `json:"description"`
	PublisherID   uint    `json:"publisher_id"`
	CreatedAt     string  `json:"created_at"`
}

// Execute 根据ID查询图书详情
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toBookDetail(b), nil
}

// ExecuteByISBN 根据ISBN查询图书详情
func (uc *GetBookUseCase) ExecuteByISBN(ctx context.Context, isbn string) (*BookDetail, error) {
	b, err := uc.bookService.GetBookByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	return toBookDetail(b), nil
}

func toBookDetail(b *book.Book) *BookDetail {
	return &BookDetail{
		ID:            b.ID,
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Publisher:     b.Publisher,
		Price:         b.Price,
		Stock:         b.Stock,
		ReviewCount:   b.ReviewCount,
		AverageRating: b.AverageRating,
		CoverURL:      b.CoverURL,
		Description:   b.Description,
		PublisherID:   b.PublisherID,
		CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
