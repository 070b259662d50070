package wishlist

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 心愿单领域错误定义
var (
	// ErrItemNotFound 心愿单条目不存在
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeWishlistNotFound, "心愿单中没有该图书")

	// ErrDuplicateItem 重复添加
	ErrDuplicateItem = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该图书已在心愿单中")

	// ErrUnauthorized 无权操作此心愿单条目
	ErrUnauthorized = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此心愿单")
)
