package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/review"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// reviewRepository 评论仓储实现（MySQL）
// 设计说明：
// 1. unique(user_id, book_id)判重，重复插入转换为ErrDuplicateReview
// 2. IncrLikes是引擎内原子自增，减量以0为下限
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评论
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		UserID:  rv.UserID,
		BookID:  rv.BookID,
		Rating:  rv.Rating,
		Title:   rv.Title,
		Content: rv.Content,
		Status:  string(rv.Status),
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return review.ErrDuplicateReview
		}
		return apperrors.Wrap(err, "创建评论失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找评论（含已删除行，状态由调用方判断）
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toReviewEntity(&model), nil
}

// Update 更新评论（内容、评分、状态）
// 点赞数不在此更新，IncrLikes专用。
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	result := getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"rating":     rv.Rating,
			"title":      rv.Title,
			"content":    rv.Content,
			"status":     string(rv.Status),
			"updated_at": rv.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评论失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// ListTopByLikes 按点赞数倒序分页查询有效评论（热门评论榜）
// likes相同按创建时间倒序，保证分页顺序稳定。
func (r *reviewRepository) ListTopByLikes(ctx context.Context, page, pageSize int) ([]*review.Review, int64, error) {
	return r.list(ctx, getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("status = ?", string(review.StatusActive)),
		"likes DESC, created_at DESC", page, pageSize)
}

// ListByBookID 查询某本书的有效评论
func (r *reviewRepository) ListByBookID(ctx context.Context, bookID uint, page, pageSize int) ([]*review.Review, int64, error) {
	return r.list(ctx, getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("book_id = ? AND status = ?", bookID, string(review.StatusActive)),
		"created_at DESC", page, pageSize)
}

// ListByUserID 查询用户的有效评论
func (r *reviewRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*review.Review, int64, error) {
	return r.list(ctx, getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("user_id = ? AND status = ?", userID, string(review.StatusActive)),
		"created_at DESC", page, pageSize)
}

// list 公共分页查询
func (r *reviewRepository) list(ctx context.Context, query *gorm.DB, orderBy string, page, pageSize int) ([]*review.Review, int64, error) {
	var models []ReviewModel
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order(orderBy).
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}

	return reviews, total, nil
}

// IncrLikes 原子更新点赞数
// 减量时WHERE likes > 0兜底，不会减到负数。
func (r *reviewRepository) IncrLikes(ctx context.Context, id uint, delta int) error {
	query := getDB(ctx, r.db).Model(&ReviewModel{}).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("likes > 0")
	}

	result := query.Update("likes", gorm.Expr("likes + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新点赞数失败")
	}

	return nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		UserID:    model.UserID,
		BookID:    model.BookID,
		Rating:    model.Rating,
		Title:     model.Title,
		Content:   model.Content,
		Likes:     model.Likes,
		Status:    review.Status(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
