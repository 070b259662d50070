package dto

// CreateReviewRequest 发表评论请求
type CreateReviewRequest struct {
	BookID  uint   `json:"book_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"max=200"`
	Content string `json:"content" binding:"required,max=5000"`
}

// UpdateReviewRequest 修改评论请求
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"max=200"`
	Content string `json:"content" binding:"required,max=5000"`
}
