package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类，名称重复返回ErrDuplicateName
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindAll 查询全部分类（扁平列表，树由领域层BuildTree组装）
	FindAll(ctx context.Context) ([]*Category, error)

	// Delete 删除分类（仅限无子分类、无关联图书）
	Delete(ctx context.Context, id uint) error

	// AttachBook 给图书打分类标签，重复打标无副作用
	AttachBook(ctx context.Context, categoryID, bookID uint) error

	// DetachBook 移除图书的分类标签
	DetachBook(ctx context.Context, categoryID, bookID uint) error

	// ListBookIDs 查询分类下的图书ID（分页）
	ListBookIDs(ctx context.Context, categoryID uint, page, pageSize int) ([]uint, int64, error)
}
