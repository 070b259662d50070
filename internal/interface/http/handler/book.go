package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	publishUseCase *appbook.PublishBookUseCase
	listUseCase    *appbook.ListBooksUseCase
	getUseCase     *appbook.GetBookUseCase
	importUseCase  *appbook.ImportBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishUseCase *appbook.PublishBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
	getUseCase *appbook.GetBookUseCase,
	importUseCase *appbook.ImportBookUseCase,
) *BookHandler {
	return &BookHandler{
		publishUseCase: publishUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		importUseCase:  importUseCase,
	}
}

// Publish 图书上架
// @Summary      图书上架
// @Description  发布一本新图书（需要登录）
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublishBookRequest true "图书信息"
// @Success      200 {object} response.Response "上架成功"
// @Router       /api/v1/books [post]
func (h *BookHandler) Publish(c *gin.Context) {
	var req dto.PublishBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.publishUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Publisher:   req.Publisher,
		Price:       req.Price,
		Stock:       req.Stock,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		PublisherID: middleware.MustGetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 图书列表
// @Summary      图书列表
// @Description  分页查询图书，支持关键词搜索与排序
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Param        keyword query string false "搜索关键词"
// @Param        sort_by query string false "排序方式" Enums(price_asc, price_desc, rating_desc, created_at_desc)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     query.Page,
		PageSize: query.PageSize,
		Keyword:  query.Keyword,
		SortBy:   query.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 图书详情
// @Summary      图书详情
// @Description  根据ID查询图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "查询成功"
// @Failure      200 {object} response.Response "图书不存在(code=40404)"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "图书ID格式错误")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Search 外部书库检索
// @Summary      外部书库检索
// @Description  调用外部图书API检索（熔断器保护），结果不落库
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "关键词或ISBN"
// @Success      200 {object} response.Response "检索成功"
// @Router       /api/v1/books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	var query dto.SearchBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	items, err := h.importUseCase.Search(c.Request.Context(), appbook.SearchRequest{
		Query:    query.Query,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}

// Import 按ISBN导入图书
// @Summary      导入图书
// @Description  按ISBN从外部书库导入，已存在时幂等返回现有图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ImportBookRequest true "导入信息"
// @Success      200 {object} response.Response "导入成功"
// @Router       /api/v1/books/import [post]
func (h *BookHandler) Import(c *gin.Context) {
	var req dto.ImportBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.importUseCase.Import(c.Request.Context(), appbook.ImportRequest{
		ISBN:        req.ISBN,
		PublisherID: middleware.MustGetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseUintParam 解析路径参数为uint
func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
