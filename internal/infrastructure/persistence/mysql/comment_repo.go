package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/comment"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// commentRepository 回复仓储实现（MySQL）
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建回复仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

// Create 创建回复
func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := &CommentModel{
		ReviewID: c.ReviewID,
		UserID:   c.UserID,
		Content:  c.Content,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建回复失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找回复
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var model CommentModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询回复失败")
	}

	return toCommentEntity(&model), nil
}

// Update 更新回复内容
func (r *commentRepository) Update(ctx context.Context, c *comment.Comment) error {
	result := getDB(ctx, r.db).Model(&CommentModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"content":    c.Content,
			"updated_at": c.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新回复失败")
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

// Delete 删除回复
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&CommentModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除回复失败")
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

// ListByReviewID 查询某条评论下的回复（分页，按时间正序）
func (r *commentRepository) ListByReviewID(ctx context.Context, reviewID uint, page, pageSize int) ([]*comment.Comment, int64, error) {
	var models []CommentModel
	var total int64

	query := getDB(ctx, r.db).Model(&CommentModel{}).Where("review_id = ?", reviewID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询回复总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询回复列表失败")
	}

	comments := make([]*comment.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}

	return comments, total, nil
}

// IncrLikes 原子更新点赞数（减量下限为0）
func (r *commentRepository) IncrLikes(ctx context.Context, id uint, delta int) error {
	query := getDB(ctx, r.db).Model(&CommentModel{}).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("likes > 0")
	}

	result := query.Update("likes", gorm.Expr("likes + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新点赞数失败")
	}

	return nil
}

// toCommentEntity GORM模型 → 领域实体
func toCommentEntity(model *CommentModel) *comment.Comment {
	return &comment.Comment{
		ID:        model.ID,
		ReviewID:  model.ReviewID,
		UserID:    model.UserID,
		Content:   model.Content,
		Likes:     model.Likes,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
