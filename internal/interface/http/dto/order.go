package dto

// CheckoutRequest 结算请求
// 支付方式只允许三种取值，绑定阶段就拦掉非法值。
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card mobile etc"`
}

// UpdateOrderStatusRequest 订单状态变更请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid canceled"`
}
