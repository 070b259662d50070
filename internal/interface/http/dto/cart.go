package dto

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest 修改购物车数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// PageQuery 通用分页查询参数
type PageQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20"`
}
