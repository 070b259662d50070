package handler

import (
	"github.com/gin-gonic/gin"

	appwishlist "github.com/xiebiao/booklibrary/internal/application/wishlist"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// WishlistHandler 心愿单HTTP处理器
type WishlistHandler struct {
	wishlistUseCase *appwishlist.WishlistUseCase
	listUseCase     *appwishlist.ListWishlistUseCase
}

// NewWishlistHandler 创建心愿单处理器
func NewWishlistHandler(
	wishlistUseCase *appwishlist.WishlistUseCase,
	listUseCase *appwishlist.ListWishlistUseCase,
) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
		listUseCase:     listUseCase,
	}
}

// Add 添加心愿单
// @Summary      添加心愿单
// @Description  重复添加返回"已在心愿单中"
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddWishlistRequest true "图书信息"
// @Success      200 {object} response.Response "添加成功"
// @Router       /api/v1/wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.wishlistUseCase.Add(c.Request.Context(), middleware.MustGetUserID(c), req.BookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 心愿单列表
// @Summary      心愿单列表
// @Tags         心愿单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Remove 移除心愿单条目
// @Summary      移除心愿单条目
// @Tags         心愿单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "心愿单条目ID"
// @Success      200 {object} response.Response "移除成功"
// @Router       /api/v1/wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	itemID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "心愿单条目ID格式错误")
		return
	}

	if err := h.wishlistUseCase.Remove(c.Request.Context(), middleware.MustGetUserID(c), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
