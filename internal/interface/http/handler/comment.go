package handler

import (
	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/booklibrary/internal/application/comment"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// CommentHandler 回复HTTP处理器
type CommentHandler struct {
	commentUseCase *appcomment.CommentUseCase
	listUseCase    *appcomment.ListCommentsUseCase
}

// NewCommentHandler 创建回复处理器
func NewCommentHandler(
	commentUseCase *appcomment.CommentUseCase,
	listUseCase *appcomment.ListCommentsUseCase,
) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		listUseCase:    listUseCase,
	}
}

// Create 发表回复
// @Summary      发表回复
// @Description  在某条评论下发表回复
// @Tags         回复
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Param        request body dto.CreateCommentRequest true "回复内容"
// @Success      200 {object} response.Response "发表成功"
// @Router       /api/v1/reviews/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	reviewID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.commentUseCase.Create(c.Request.Context(), appcomment.CreateCommentRequest{
		UserID:   middleware.MustGetUserID(c),
		ReviewID: reviewID,
		Content:  req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 修改回复
// @Summary      修改回复
// @Tags         回复
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "回复ID"
// @Param        request body dto.UpdateCommentRequest true "新内容"
// @Success      200 {object} response.Response "修改成功"
// @Router       /api/v1/comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "回复ID格式错误")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	if err := h.commentUseCase.Update(c.Request.Context(), middleware.MustGetUserID(c), commentID, req.Content); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Delete 删除回复
// @Summary      删除回复
// @Tags         回复
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "回复ID"
// @Success      200 {object} response.Response "删除成功"
// @Router       /api/v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "回复ID格式错误")
		return
	}

	if err := h.commentUseCase.Delete(c.Request.Context(), middleware.MustGetUserID(c), commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListByReview 某条评论下的回复
// @Summary      回复列表
// @Tags         回复
// @Produce      json
// @Param        id path int true "评论ID"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/reviews/{id}/comments [get]
func (h *CommentHandler) ListByReview(c *gin.Context) {
	reviewID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), reviewID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
