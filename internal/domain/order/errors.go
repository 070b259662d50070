package order

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单状态不允许此操作")

	// ErrInvalidPaymentMethod 非法的支付方式
	ErrInvalidPaymentMethod = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的支付方式")

	// ErrInvalidOrderItems 订单明细不合法
	ErrInvalidOrderItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrUnauthorized 无权操作此订单
	ErrUnauthorized = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此订单")
)
