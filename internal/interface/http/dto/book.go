package dto

// PublishBookRequest HTTP层图书上架请求
type PublishBookRequest struct {
	ISBN        string `json:"isbn" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Author      string `json:"author" binding:"required,max=200"`
	Publisher   string `json:"publisher" binding:"required,max=200"`
	Price       int64  `json:"price" binding:"required,gt=0"` // 单位：分
	Stock       int    `json:"stock" binding:"gte=0"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url"`
	Description string `json:"description" binding:"max=2000"`
}

// ListBooksQuery 图书列表查询参数
type ListBooksQuery struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
	Keyword  string `form:"keyword"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc rating_desc created_at_desc"`
}

// SearchBooksQuery 外部书库检索参数
type SearchBooksQuery struct {
	Query    string `form:"q" binding:"required"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
}

// ImportBookRequest 按ISBN导入图书请求
type ImportBookRequest struct {
	ISBN string `json:"isbn" binding:"required"`
}
