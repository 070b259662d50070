package wishlist

import (
	"time"
)

// Item 心愿单条目（实体）
// 每个用户对每本书最多一条（unique(user_id, book_id)）。
type Item struct {
	ID        uint
	UserID    uint // 所属用户ID
	BookID    uint // 图书ID
	CreatedAt time.Time
}

// NewItem 创建心愿单条目（工厂方法）
func NewItem(userID, bookID uint) *Item {
	return &Item{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now(),
	}
}

// IsOwnedBy 检查条目是否属于指定用户
func (i *Item) IsOwnedBy(userID uint) bool {
	return i.UserID == userID
}
