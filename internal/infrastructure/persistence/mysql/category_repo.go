package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/booklibrary/internal/domain/category"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// categoryRepository 分类仓储实现（MySQL）
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类（名称唯一索引判重）
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{
		Name:     c.Name,
		ParentID: c.ParentID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrDuplicateName
		}
		return apperrors.Wrap(err, "创建分类失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// FindAll 查询全部分类（扁平列表）
func (r *categoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}

	return categories, nil
}

// Delete 删除分类
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CategoryModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// AttachBook 给图书打分类标签
// ON CONFLICT DO NOTHING：重复打标无副作用。
func (r *categoryRepository) AttachBook(ctx context.Context, categoryID, bookID uint) error {
	model := &BookCategoryModel{
		BookID:     bookID,
		CategoryID: categoryID,
	}

	err := getDB(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "设置图书分类失败")
	}

	return nil
}

// DetachBook 移除图书的分类标签
func (r *categoryRepository) DetachBook(ctx context.Context, categoryID, bookID uint) error {
	err := getDB(ctx, r.db).
		Where("category_id = ? AND book_id = ?", categoryID, bookID).
		Delete(&BookCategoryModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "移除图书分类失败")
	}

	return nil
}

// ListBookIDs 查询分类下的图书ID（分页）
func (r *categoryRepository) ListBookIDs(ctx context.Context, categoryID uint, page, pageSize int) ([]uint, int64, error) {
	var total int64
	query := getDB(ctx, r.db).Model(&BookCategoryModel{}).Where("category_id = ?", categoryID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类图书总数失败")
	}

	var ids []uint
	offset := (page - 1) * pageSize
	err := query.Order("id ASC").
		Limit(pageSize).
		Offset(offset).
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类图书失败")
	}

	return ids, total, nil
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:        model.ID,
		Name:      model.Name,
		ParentID:  model.ParentID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
