package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/booklibrary/internal/domain/like"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// likeRepository 点赞仓储实现（MySQL）
// 设计说明：
// 1. 评论点赞与回复点赞分表（review_likes / comment_likes），
//    各自的unique(user_id, target_id)是判重的唯一真相来源
// 2. 不做先查后插：并发点赞时恰好一个INSERT成功，其余命中1062
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository 创建点赞仓储
func NewLikeRepository(db *gorm.DB) like.Repository {
	return &likeRepository{db: db}
}

// Create 插入点赞记录
func (r *likeRepository) Create(ctx context.Context, l *like.Like) error {
	var err error
	switch l.Target {
	case like.TargetComment:
		model := &CommentLikeModel{UserID: l.UserID, CommentID: l.TargetID}
		err = getDB(ctx, r.db).Create(model).Error
		if err == nil {
			l.ID = model.ID
			l.CreatedAt = model.CreatedAt
		}
	default:
		model := &ReviewLikeModel{UserID: l.UserID, ReviewID: l.TargetID}
		err = getDB(ctx, r.db).Create(model).Error
		if err == nil {
			l.ID = model.ID
			l.CreatedAt = model.CreatedAt
		}
	}

	if err != nil {
		if isDuplicateError(err) {
			return like.ErrAlreadyLiked
		}
		return apperrors.Wrap(err, "点赞失败")
	}

	return nil
}

// Delete 删除点赞记录
// 影响0行说明没有点赞记录，返回ErrNotLikedYet。
func (r *likeRepository) Delete(ctx context.Context, userID, targetID uint, target like.TargetType) error {
	var result *gorm.DB
	switch target {
	case like.TargetComment:
		result = getDB(ctx, r.db).
			Where("user_id = ? AND comment_id = ?", userID, targetID).
			Delete(&CommentLikeModel{})
	default:
		result = getDB(ctx, r.db).
			Where("user_id = ? AND review_id = ?", userID, targetID).
			Delete(&ReviewLikeModel{})
	}

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "取消点赞失败")
	}
	if result.RowsAffected == 0 {
		return like.ErrNotLikedYet
	}

	return nil
}

// Exists 查询是否已点赞（展示用）
func (r *likeRepository) Exists(ctx context.Context, userID, targetID uint, target like.TargetType) (bool, error) {
	var count int64
	var err error

	switch target {
	case like.TargetComment:
		err = getDB(ctx, r.db).Model(&CommentLikeModel{}).
			Where("user_id = ? AND comment_id = ?", userID, targetID).
			Count(&count).Error
	default:
		err = getDB(ctx, r.db).Model(&ReviewLikeModel{}).
			Where("user_id = ? AND review_id = ?", userID, targetID).
			Count(&count).Error
	}

	if err != nil {
		return false, apperrors.Wrap(err, "查询点赞状态失败")
	}

	return count > 0, nil
}

// ListLikedReviewIDs 查询用户点赞过的评论ID（分页，按点赞时间倒序）
func (r *likeRepository) ListLikedReviewIDs(ctx context.Context, userID uint, page, pageSize int) ([]uint, int64, error) {
	var total int64
	query := getDB(ctx, r.db).Model(&ReviewLikeModel{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询点赞总数失败")
	}

	var ids []uint
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Pluck("review_id", &ids).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询点赞列表失败")
	}

	return ids, total, nil
}
