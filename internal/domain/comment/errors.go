package comment

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 回复领域错误定义
var (
	// ErrCommentNotFound 回复不存在
	ErrCommentNotFound = apperrors.New(apperrors.ErrCodeCommentNotFound, "回复不存在")

	// ErrEmptyContent 回复内容为空
	ErrEmptyContent = apperrors.New(apperrors.ErrCodeInvalidParams, "回复内容不能为空")

	// ErrUnauthorized 无权操作此回复
	ErrUnauthorized = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此回复")
)
