package book

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// PublishBookUseCase 图书上架用例
// 应用层负责用例编排；业务规则校验（ISBN格式、价格范围、重复检查）
// 由领域服务负责。
type PublishBookUseCase struct {
	bookService book.Service
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	ISBN        string // ISBN号
	Title       string // 书名
	Author      string // 作者
	Publisher   string // 出版社
	Price       int64  // 价格(分)
	Stock       int    // 初始库存
	CoverURL    string // 封面图URL
	Description string // 图书描述
	PublisherID uint   // 发布者用户ID(从认证中间件获取)
}

// PublishBookResponse 上架响应DTO
type PublishBookResponse struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Price       int64  `json:"price"` // 价格(分)
	Stock       int    `json:"stock"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	PublisherID uint   `json:"publisher_id"`
	CreatedAt   string `json:"created_at"`
}

// Execute 执行上架用例
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*PublishBookResponse, error) {
	b, err := uc.bookService.PublishBook(
		ctx,
		req.ISBN,
		req.Title,
		req.Author,
		req.Publisher,
		req.Price,
		req.Stock,
		req.CoverURL,
		req.Description,
		req.PublisherID,
	)
	if err != nil {
		return nil, err
	}

	return &PublishBookResponse{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		PublisherID: b.PublisherID,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
