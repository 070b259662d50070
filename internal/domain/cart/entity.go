package cart

import (
	"time"
)

// Item 购物车行（实体）
// 设计说明：
// 1. 每个用户对每本书最多一行（数据库unique(user_id, book_id)保证）
// 2. 不保存价格快照：购物车展示与结算都使用图书当前价格，
//    价格快照在下单时才落到order_items
type Item struct {
	ID        uint
	UserID    uint // 所属用户ID
	BookID    uint // 图书ID
	Quantity  int  // 数量（>0）
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem 创建购物车行（工厂方法）
func NewItem(userID, bookID uint, quantity int) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	now := time.Now()
	return &Item{
		UserID:    userID,
		BookID:    bookID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeQuantity 修改数量（领域行为）
func (i *Item) ChangeQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查购物车行是否属于指定用户
func (i *Item) IsOwnedBy(userID uint) bool {
	return i.UserID == userID
}
