package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/wishlist"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// wishlistRepository 心愿单仓储实现（MySQL）
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository(db *gorm.DB) wishlist.Repository {
	return &wishlistRepository{db: db}
}

// Create 添加心愿单条目（unique(user_id, book_id)判重）
func (r *wishlistRepository) Create(ctx context.Context, item *wishlist.Item) error {
	model := &WishlistModel{
		UserID: item.UserID,
		BookID: item.BookID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return wishlist.ErrDuplicateItem
		}
		return apperrors.Wrap(err, "添加心愿单失败")
	}

	item.ID = model.ID
	item.CreatedAt = model.CreatedAt

	return nil
}

// FindByID 根据ID查找条目
func (r *wishlistRepository) FindByID(ctx context.Context, id uint) (*wishlist.Item, error) {
	var model WishlistModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wishlist.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询心愿单失败")
	}

	return toWishlistEntity(&model), nil
}

// Delete 删除条目
func (r *wishlistRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&WishlistModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除心愿单条目失败")
	}
	if result.RowsAffected == 0 {
		return wishlist.ErrItemNotFound
	}

	return nil
}

// ListByUserID 查询用户心愿单（分页，按添加时间倒序）
func (r *wishlistRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*wishlist.Item, int64, error) {
	var models []WishlistModel
	var total int64

	query := getDB(ctx, r.db).Model(&WishlistModel{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询心愿单总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询心愿单失败")
	}

	items := make([]*wishlist.Item, len(models))
	for i := range models {
		items[i] = toWishlistEntity(&models[i])
	}

	return items, total, nil
}

// toWishlistEntity GORM模型 → 领域实体
func toWishlistEntity(model *WishlistModel) *wishlist.Item {
	return &wishlist.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		CreatedAt: model.CreatedAt,
	}
}
