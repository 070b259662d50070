package category

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrDuplicateName 分类名已存在
	ErrDuplicateName = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类名已存在")

	// ErrEmptyName 分类名为空
	ErrEmptyName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名不能为空")

	// ErrParentNotFound 父分类不存在
	ErrParentNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "父分类不存在")
)
