package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/booklibrary/internal/application/order"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkoutUseCase     *apporder.CheckoutUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
	listUseCase         *apporder.ListOrdersUseCase
	getUseCase          *apporder.GetOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	checkoutUseCase *apporder.CheckoutUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
	listUseCase *apporder.ListOrdersUseCase,
	getUseCase *apporder.GetOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase:     checkoutUseCase,
		updateStatusUseCase: updateStatusUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
	}
}

// Checkout 购物车结算
// @Summary      购物车结算
// @Description  把当前购物车结算为一笔订单（锁定库存、价格快照、清空购物车，单事务）
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CheckoutRequest true "结算信息"
// @Success      200 {object} response.Response "下单成功"
// @Failure      200 {object} response.Response "库存不足(code=40001)/购物车为空(code=40006)"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), apporder.CheckoutRequest{
		UserID:        middleware.MustGetUserID(c),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateStatus 订单状态变更
// @Summary      订单状态变更
// @Description  paid→canceled回补库存；canceled→paid重新校验并扣减；同态变更为幂等空操作
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response "变更成功"
// @Router       /api/v1/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), apporder.UpdateStatusRequest{
		UserID:  middleware.MustGetUserID(c),
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 订单列表
// @Summary      订单列表
// @Description  分页查询当前用户的订单（按创建时间倒序）
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
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

// Get 订单详情
// @Summary      订单详情
// @Description  查询单笔订单（只能查自己的）
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
