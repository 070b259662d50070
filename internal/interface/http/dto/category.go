package dto

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	ParentID uint   `json:"parent_id"` // 0表示根分类
}

// AttachBookRequest 图书打标请求
type AttachBookRequest struct {
	BookID uint `json:"book_id" binding:"required"`
}
