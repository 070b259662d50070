package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/cart"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// cartRepository 购物车仓储实现（MySQL）
// 写操作都经过getDB(ctx)，结算时与订单创建、库存扣减同事务。
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindByUserAndBook 查找用户购物车中的某本书
func (r *cartRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartItemEntity(&model), nil
}

// FindByID 根据ID查找购物车行
func (r *cartRepository) FindByID(ctx context.Context, id uint) (*cart.Item, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return toCartItemEntity(&model), nil
}

// Create 新增购物车行
func (r *cartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := &CartItemModel{
		UserID:   item.UserID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加购物车失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt

	return nil
}

// Update 更新购物车行数量
func (r *cartRepository) Update(ctx context.Context, item *cart.Item) error {
	result := getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity":   item.Quantity,
			"updated_at": item.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// Delete 删除购物车行
func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CartItemModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车行失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// ListByUserID 分页查询用户购物车
func (r *cartRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*cart.Item, int64, error) {
	var models []CartItemModel
	var total int64

	query := getDB(ctx, r.db).Model(&CartItemModel{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询购物车总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.Item, len(models))
	for i := range models {
		items[i] = toCartItemEntity(&models[i])
	}

	return items, total, nil
}

// FindAllByUserID 查询用户购物车全部行（结算用）
func (r *cartRepository) FindAllByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
	var models []CartItemModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.Item, len(models))
	for i := range models {
		items[i] = toCartItemEntity(&models[i])
	}

	return items, nil
}

// ClearByUserID 清空用户购物车
// 结算成功后在订单事务内调用，回滚时购物车保持原样。
func (r *cartRepository) ClearByUserID(ctx context.Context, userID uint) error {
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// toCartItemEntity GORM模型 → 领域实体
func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
