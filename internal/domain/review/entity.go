package review

import (
	"time"
)

// Status 评论状态
// 软删除：删除的评论保留行（status=deleted），不参与列表与统计
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// Review 图书评论实体（聚合根）
// 设计说明：
// 1. 每个用户对每本书最多一条有效评论（unique(user_id, book_id)保证）
// 2. Likes是点赞数冗余计数，配合review_likes表的唯一索引增量维护
// 3. 评分变动会触发图书聚合统计(review_count, average_rating)的增量更新，
//    该更新由应用层在同一事务内编排
type Review struct {
	ID        uint
	UserID    uint   // 评论者用户ID
	BookID    uint   // 图书ID
	Rating    int    // 评分（1-5）
	Title     string // 评论标题
	Content   string // 评论内容
	Likes     int64  // 点赞数（冗余计数）
	Status    Status // 状态（active/deleted）
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReview 创建评论（工厂方法）
func NewReview(userID, bookID uint, rating int, title, content string) (*Review, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	now := time.Now()
	return &Review{
		UserID:    userID,
		BookID:    bookID,
		Rating:    rating,
		Title:     title,
		Content:   content,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateRating 校验评分范围
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// UpdateContent 修改评论（领域行为）
// 返回oldRating供调用方决定是否需要更新图书统计
func (r *Review) UpdateContent(rating int, title, content string) (oldRating int, err error) {
	if err := ValidateRating(rating); err != nil {
		return 0, err
	}
	if content == "" {
		return 0, ErrEmptyContent
	}
	oldRating = r.Rating
	r.Rating = rating
	r.Title = title
	r.Content = content
	r.UpdatedAt = time.Now()
	return oldRating, nil
}

// MarkDeleted 软删除（领域行为）
func (r *Review) MarkDeleted() {
	r.Status = StatusDeleted
	r.UpdatedAt = time.Now()
}

// IsActive 是否为有效评论
func (r *Review) IsActive() bool {
	return r.Status == StatusActive
}

// IsOwnedBy 检查评论是否属于指定用户
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.UserID == userID
}
