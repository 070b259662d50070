package category

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/category"
)

// BrowseCategoryUseCase 分类浏览用例（分类树、分类下的图书）
type BrowseCategoryUseCase struct {
	categoryRepo category.Repository
	bookRepo     book.Repository
}

// NewBrowseCategoryUseCase 创建分类浏览用例
func NewBrowseCategoryUseCase(categoryRepo category.Repository, bookRepo book.Repository) *BrowseCategoryUseCase {
	return &BrowseCategoryUseCase{
		categoryRepo: categoryRepo,
		bookRepo:     bookRepo,
	}
}

// CategoryNode 分类树节点DTO
type CategoryNode struct {
	CategoryID uint           `json:"category_id"`
	Name       string         `json:"name"`
	ParentID   uint           `json:"parent_id"`
	Children   []CategoryNode `json:"children,omitempty"`
}

// Tree 查询完整分类树
func (uc *BrowseCategoryUseCase) Tree(ctx context.Context) ([]CategoryNode, error) {
	flat, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	roots := category.BuildTree(flat)
	return toNodes(roots), nil
}

// toNodes 领域树 → DTO树（递归）
func toNodes(categories []*category.Category) []CategoryNode {
	if len(categories) == 0 {
		return nil
	}
	nodes := make([]CategoryNode, len(categories))
	for i, c := range categories {
		nodes[i] = CategoryNode{
			CategoryID: c.ID,
			Name:       c.Name,
			ParentID:   c.ParentID,
			Children:   toNodes(c.Children),
		}
	}
	return nodes
}

// CategoryBookView 分类下的图书DTO
type CategoryBookView struct {
	BookID        uint    `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         int64   `json:"price"`
	AverageRating float64 `json:"average_rating"`
	CoverURL      string  `json:"cover_url"`
}

// CategoryBooksResponse 分类图书列表响应DTO
type CategoryBooksResponse struct {
	List     []CategoryBookView `json:"list"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Books 查询某个分类下的图书（分页）
func (uc *BrowseCategoryUseCase) Books(ctx context.Context, categoryID uint, page, pageSize int) (*CategoryBooksResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	ids, total, err := uc.categoryRepo.ListBookIDs(ctx, categoryID, page, pageSize)
	if err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryBookView, 0, len(ids))
	for _, id := range ids {
		b, ok := books[id]
		if !ok {
			continue
		}
		list = append(list, CategoryBookView{
			BookID:        b.ID,
			Title:         b.Title,
			Author:        b.Author,
			Price:         b.Price,
			AverageRating: b.AverageRating,
			CoverURL:      b.CoverURL,
		})
	}

	return &CategoryBooksResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
