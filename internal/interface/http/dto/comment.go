package dto

// CreateCommentRequest 发表回复请求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// UpdateCommentRequest 修改回复请求
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
