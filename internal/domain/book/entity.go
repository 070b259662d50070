package book

import (
	"time"
)

// Book 图书实体（聚合根）
// DDD设计说明：
// 1. Book是图书聚合的根实体，包含图书的核心属性
// 2. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 3. ISBN作为业务唯一标识（数据库层保证唯一性）
// 4. ReviewCount/AverageRating是评论聚合的冗余统计字段，
//    随评论的创建/修改/删除增量维护，避免每次读取都COUNT+AVG全表
type Book struct {
	ID            uint
	ISBN          string  // ISBN号（国际标准书号）
	Title         string  // 书名
	Author        string  // 作者
	Publisher     string  // 出版社
	Price         int64   // 价格（单位：分，1元=100分）
	Stock         int     // 库存数量
	ReviewCount   int64   // 有效评论数
	AverageRating float64 // 平均评分（0-5，无评论时为0）
	CoverURL      string  // 封面图片URL
	Description   string  // 图书描述
	PublisherID   uint    // 发布者用户ID（关联User表）
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书（工厂方法）
// price单位为分，必须>0；stock为初始库存
func NewBook(isbn, title, author, publisher string, price int64, stock int, coverURL, description string, publisherID uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Publisher:   publisher,
		Price:       price,
		Stock:       stock,
		CoverURL:    coverURL,
		Description: description,
		PublisherID: publisherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格（领域行为）
// 业务规则：价格必须>0
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// DecrStock 扣减库存（用于下单）
// 业务规则：扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存（用于订单取消、补货）
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息
func (b *Book) UpdateInfo(title, author, publisher, description string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if publisher != "" {
		b.Publisher = publisher
	}
	if description != "" {
		b.Description = description
	}
	b.UpdatedAt = time.Now()
}

// IsOwnedBy 检查图书是否由指定用户发布
func (b *Book) IsOwnedBy(userID uint) bool {
	return b.PublisherID == userID
}

// =========================================
// 评论统计的增量维护（领域行为）
// =========================================
// 设计说明：
// 1. 避免重算：新增/修改/删除评论时用增量公式更新，不重新聚合全表
// 2. MySQL仓储实现会把同样的公式下推为单条UPDATE语句（引擎内原子求值），
//    实体方法供领域测试与内存实现使用，两者语义必须一致
// 3. 删除最后一条评论时统计归零，公式永不除零

// ApplyReviewCreated 新增一条评分为rating的评论后的统计
// avg' = (avg*n + rating) / (n+1)
func (b *Book) ApplyReviewCreated(rating int) {
	n := float64(b.ReviewCount)
	b.AverageRating = (b.AverageRating*n + float64(rating)) / (n + 1)
	b.ReviewCount++
	b.UpdatedAt = time.Now()
}

// ApplyReviewRatingChanged 某条评论评分从oldRating改为newRating后的统计
// avg' = avg + (new - old) / n （n不变）
func (b *Book) ApplyReviewRatingChanged(oldRating, newRating int) {
	if b.ReviewCount == 0 {
		return
	}
	b.AverageRating += float64(newRating-oldRating) / float64(b.ReviewCount)
	b.UpdatedAt = time.Now()
}

// ApplyReviewRemoved 删除一条评分为rating的评论后的统计
// n>1时：avg' = (avg*n - rating) / (n-1)
// n==1时：归零（最后一条评论被删除）
func (b *Book) ApplyReviewRemoved(rating int) {
	if b.ReviewCount <= 1 {
		b.ReviewCount = 0
		b.AverageRating = 0
		b.UpdatedAt = time.Now()
		return
	}
	n := float64(b.ReviewCount)
	b.AverageRating = (b.AverageRating*n - float64(rating)) / (n - 1)
	b.ReviewCount--
	b.UpdatedAt = time.Now()
}
