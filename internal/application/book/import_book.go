package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/infrastructure/search"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// Searcher 外部图书检索接口
// 由infrastructure/search.Client实现，测试时可Mock。
type Searcher interface {
	Search(ctx context.Context, query string, page, size int) ([]search.Result, error)
}

// ImportBookUseCase 外部书库检索与导入用例
// 设计说明：
// 1. 检索结果来自外部API（熔断器保护），不落库
// 2. 导入时按ISBN幂等：已存在直接返回现有图书，不重复创建
type ImportBookUseCase struct {
	searcher Searcher
	bookRepo book.Repository
}

// NewImportBookUseCase 创建导入用例
func NewImportBookUseCase(searcher Searcher, bookRepo book.Repository) *ImportBookUseCase {
	return &ImportBookUseCase{
		searcher: searcher,
		bookRepo: bookRepo,
	}
}

// SearchRequest 外部检索请求DTO
type SearchRequest struct {
	Query    string // 关键词或ISBN
	Page     int
	PageSize int
}

// SearchResultItem 外部检索结果项DTO
type SearchResultItem struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Price       int64  `json:"price"` // 价格(分)
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
}

// Search 检索外部书库
func (uc *ImportBookUseCase) Search(ctx context.Context, req SearchRequest) ([]SearchResultItem, error) {
	if req.Query == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "检索关键词不能为空")
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 50 {
		req.PageSize = 10
	}

	results, err := uc.searcher.Search(ctx, req.Query, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]SearchResultItem, len(results))
	for i, r := range results {
		items[i] = SearchResultItem{
			ISBN:        r.ISBN,
			Title:       r.Title,
			Author:      r.Author(),
			Publisher:   r.Publisher,
			Price:       r.Price,
			CoverURL:    r.CoverURL,
			Description: r.Description,
		}
	}

	return items, nil
}

// ImportRequest 导入请求DTO
type ImportRequest struct {
	ISBN        string // 要导入的图书ISBN
	PublisherID uint   // 操作用户ID（作为图书发布者）
}

// ImportResponse 导入响应DTO
type ImportResponse struct {
	Book    *BookDetail `json:"book"`
	Created bool        `json:"created"` // false表示ISBN已存在，返回现有图书
}

// Import 按ISBN从外部书库导入图书
func (uc *ImportBookUseCase) Import(ctx context.Context, req ImportRequest) (*ImportResponse, error) {
	if !book.IsValidISBN(req.ISBN) {
		return nil, book.ErrInvalidISBN
	}

	// 1. 已存在则幂等返回
	existing, err := uc.bookRepo.FindByISBN(ctx, req.ISBN)
	if err == nil {
		return &ImportResponse{Book: toBookDetail(existing), Created: false}, nil
	}
	if err != book.ErrBookNotFound {
		return nil, err
	}

	// 2. 检索外部书库
	results, err := uc.searcher.Search(ctx, req.ISBN, 1, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, book.ErrBookNotFound
	}

	// 3. 入库（初始库存0，价格缺失时给1分占位，上架后由发布者修正）
	r := results[0]
	price := r.Price
	if price <= 0 {
		price = 1
	}
	b := book.NewBook(req.ISBN, r.Title, r.Author(), r.Publisher, price, 0, r.CoverURL, r.Description, req.PublisherID)
	if err := uc.bookRepo.Create(ctx, b); err != nil {
		// 并发导入同一ISBN：另一个请求先插入成功，读回现有图书
		if err == book.ErrISBNDuplicate {
			if existing, ferr := uc.bookRepo.FindByISBN(ctx, req.ISBN); ferr == nil {
				return &ImportResponse{Book: toBookDetail(existing), Created: false}, nil
			}
		}
		return nil, err
	}

	return &ImportResponse{Book: toBookDetail(b), Created: true}, nil
}
