package category

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/category"
)

// CategoryUseCase 分类管理用例（创建、删除、打标）
type CategoryUseCase struct {
	categoryRepo category.Repository
	bookRepo     book.Repository
}

// NewCategoryUseCase 创建分类管理用例
func NewCategoryUseCase(categoryRepo category.Repository, bookRepo book.Repository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		bookRepo:     bookRepo,
	}
}

// CreateCategoryRequest 创建分类请求DTO
type CreateCategoryRequest struct {
	Name     string
	ParentID uint
}

// CreateCategoryResponse 创建分类响应DTO
type CreateCategoryResponse struct {
	CategoryID uint `json:"category_id"`
}

// Create 创建分类（ParentID为0时创建根分类）
func (uc *CategoryUseCase) Create(ctx context.Context, req CreateCategoryRequest) (*CreateCategoryResponse, error) {
	if req.ParentID > 0 {
		if _, err := uc.categoryRepo.FindByID(ctx, req.ParentID); err != nil {
			return nil, category.ErrParentNotFound
		}
	}

	c, err := category.NewCategory(req.Name, req.ParentID)
	if err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &CreateCategoryResponse{CategoryID: c.ID}, nil
}

// Delete 删除分类
func (uc *CategoryUseCase) Delete(ctx context.Context, categoryID uint) error {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, categoryID)
}

// AttachBook 给图书打分类标签（重复打标无副作用）
func (uc *CategoryUseCase) AttachBook(ctx context.Context, categoryID, bookID uint) error {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	}
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return err
	}
	return uc.categoryRepo.AttachBook(ctx, categoryID, bookID)
}

// DetachBook 移除图书的分类标签
func (uc *CategoryUseCase) DetachBook(ctx context.Context, categoryID, bookID uint) error {
	return uc.categoryRepo.DetachBook(ctx, categoryID, bookID)
}
