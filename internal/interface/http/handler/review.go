package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/booklibrary/internal/application/review"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	createUseCase  *appreview.CreateReviewUseCase
	updateUseCase  *appreview.UpdateReviewUseCase
	deleteUseCase  *appreview.DeleteReviewUseCase
	listTopUseCase *appreview.ListTopUseCase
	listUseCase    *appreview.ListReviewsUseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(
	createUseCase *appreview.CreateReviewUseCase,
	updateUseCase *appreview.UpdateReviewUseCase,
	deleteUseCase *appreview.DeleteReviewUseCase,
	listTopUseCase *appreview.ListTopUseCase,
	listUseCase *appreview.ListReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		listTopUseCase: listTopUseCase,
		listUseCase:    listUseCase,
	}
}

// Create 发表评论
// @Summary      发表评论
// @Description  对一本书发表评论（每人每书一条），同步更新图书评分统计
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReviewRequest true "评论内容"
// @Success      200 {object} response.Response "发表成功"
// @Failure      200 {object} response.Response "重复评论(code=40010)"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appreview.CreateReviewRequest{
		UserID:  middleware.MustGetUserID(c),
		BookID:  req.BookID,
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 修改评论
// @Summary      修改评论
// @Description  修改自己的评论，评分变化时增量修正图书平均分
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Param        request body dto.UpdateReviewRequest true "新内容"
// @Success      200 {object} response.Response "修改成功"
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err = h.updateUseCase.Execute(c.Request.Context(), appreview.UpdateReviewRequest{
		UserID:   middleware.MustGetUserID(c),
		ReviewID: reviewID,
		Rating:   req.Rating,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Delete 删除评论
// @Summary      删除评论
// @Description  软删除自己的评论，同步回退图书评分统计
// @Tags         评论
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response "删除成功"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), reviewID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListTop 热门评论榜
// @Summary      热门评论榜
// @Description  按点赞数倒序分页（带版本化Redis缓存，缓存异常静默回源）
// @Tags         评论
// @Produce      json
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/reviews/top [get]
func (h *ReviewHandler) ListTop(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listTopUseCase.Execute(c.Request.Context(), appreview.ListTopRequest{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByBook 某本书的评论
// @Summary      图书评论列表
// @Tags         评论
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/books/{id}/reviews [get]
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "图书ID格式错误")
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.ByBook(c.Request.Context(), bookID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListMine 我的评论
// @Summary      我的评论列表
// @Tags         评论
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/users/reviews [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.ByUser(c.Request.Context(), middleware.MustGetUserID(c), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
