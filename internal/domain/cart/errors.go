package cart

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrItemNotFound 购物车行不存在
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车中没有该图书")

	// ErrInvalidQuantity 数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrEmptyCart 购物车为空（结算时）
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "购物车为空")

	// ErrUnauthorized 无权操作此购物车行
	ErrUnauthorized = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此购物车")
)
