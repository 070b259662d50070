package comment

import (
	"time"
)

// Comment 评论的回复（实体）
// 挂在某条图书评论下的楼中楼回复，带独立的点赞计数。
type Comment struct {
	ID        uint
	ReviewID  uint   // 所属评论ID
	UserID    uint   // 回复者用户ID
	Content   string // 回复内容
	Likes     int64  // 点赞数（冗余计数）
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment 创建回复（工厂方法）
func NewComment(reviewID, userID uint, content string) (*Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	now := time.Now()
	return &Comment{
		ReviewID:  reviewID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateContent 修改回复内容（领域行为）
func (c *Comment) UpdateContent(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	c.Content = content
	c.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查回复是否属于指定用户
func (c *Comment) IsOwnedBy(userID uint) bool {
	return c.UserID == userID
}
