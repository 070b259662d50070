package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/booklibrary/internal/application/cart"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	addUseCase    *appcart.AddItemUseCase
	listUseCase   *appcart.ListCartUseCase
	updateUseCase *appcart.UpdateItemUseCase
	removeUseCase *appcart.RemoveItemUseCase
	clearUseCase  *appcart.ClearCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addUseCase *appcart.AddItemUseCase,
	listUseCase *appcart.ListCartUseCase,
	updateUseCase *appcart.UpdateItemUseCase,
	removeUseCase *appcart.RemoveItemUseCase,
	clearUseCase *appcart.ClearCartUseCase,
) *CartHandler {
	return &CartHandler{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		removeUseCase: removeUseCase,
		clearUseCase:  clearUseCase,
	}
}

// Add 加入购物车
// @Summary      加入购物车
// @Description  已在购物车中的图书累加数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "加购信息"
// @Success      200 {object} response.Response "加购成功"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		UserID:   middleware.MustGetUserID(c),
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 购物车列表
// @Summary      购物车列表
// @Description  分页查询购物车（带图书信息与合计金额）
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/cart/items [get]
func (h *CartHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appcart.ListCartRequest{
		UserID:   middleware.MustGetUserID(c),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 修改购物车数量
// @Summary      修改数量
// @Description  修改购物车某一行的数量（不能超过当前库存）
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "购物车行ID"
// @Param        request body dto.UpdateCartItemRequest true "新数量"
// @Success      200 {object} response.Response "修改成功"
// @Router       /api/v1/cart/items/{id} [put]
func (h *CartHandler) Update(c *gin.Context) {
	itemID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "购物车行ID格式错误")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	err = h.updateUseCase.Execute(c.Request.Context(), appcart.UpdateItemRequest{
		UserID:   middleware.MustGetUserID(c),
		ItemID:   itemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Remove 删除购物车行
// @Summary      删除购物车行
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "购物车行ID"
// @Success      200 {object} response.Response "删除成功"
// @Router       /api/v1/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	itemID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "购物车行ID格式错误")
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Clear 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "清空成功"
// @Router       /api/v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.clearUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
