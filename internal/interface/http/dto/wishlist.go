package dto

// AddWishlistRequest 添加心愿单请求
type AddWishlistRequest struct {
	BookID uint `json:"book_id" binding:"required"`
}
