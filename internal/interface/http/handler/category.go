package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/booklibrary/internal/application/category"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	categoryUseCase *appcategory.CategoryUseCase
	browseUseCase   *appcategory.BrowseCategoryUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	categoryUseCase *appcategory.CategoryUseCase,
	browseUseCase *appcategory.BrowseCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		browseUseCase:   browseUseCase,
	}
}

// Create 创建分类
// @Summary      创建分类
// @Description  parent_id为0时创建根分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.categoryUseCase.Create(c.Request.Context(), appcategory.CreateCategoryRequest{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除分类
// @Summary      删除分类
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response "删除成功"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "分类ID格式错误")
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), categoryID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Tree 分类树
// @Summary      分类树
// @Description  返回完整的层级分类树
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/categories/tree [get]
func (h *CategoryHandler) Tree(c *gin.Context) {
	result, err := h.browseUseCase.Tree(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Books 分类下的图书
// @Summary      分类图书列表
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/categories/{id}/books [get]
func (h *CategoryHandler) Books(c *gin.Context) {
	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "分类ID格式错误")
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.browseUseCase.Books(c.Request.Context(), categoryID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AttachBook 图书打标
// @Summary      给图书打分类标签
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.AttachBookRequest true "图书信息"
// @Success      200 {object} response.Response "打标成功"
// @Router       /api/v1/categories/{id}/books [post]
func (h *CategoryHandler) AttachBook(c *gin.Context) {
	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "分类ID格式错误")
		return
	}

	var req dto.AttachBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	if err := h.categoryUseCase.AttachBook(c.Request.Context(), categoryID, req.BookID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// DetachBook 移除图书标签
// @Summary      移除图书的分类标签
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        book_id path int true "图书ID"
// @Success      200 {object} response.Response "移除成功"
// @Router       /api/v1/categories/{id}/books/{book_id} [delete]
func (h *CategoryHandler) DetachBook(c *gin.Context) {
	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "分类ID格式错误")
		return
	}

	bookID, err := parseUintParam(c, "book_id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "图书ID格式错误")
		return
	}

	if err := h.categoryUseCase.DetachBook(c.Request.Context(), categoryID, bookID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
