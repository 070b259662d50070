package review

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrReviewNotFound 评论不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "评论不存在")

	// ErrDuplicateReview 同一用户对同一本书重复评论
	ErrDuplicateReview = apperrors.New(apperrors.ErrCodeReviewDuplicate, "您已评论过这本书")

	// ErrInvalidRating 评分超出范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须在1-5之间")

	// ErrEmptyContent 评论内容为空
	ErrEmptyContent = apperrors.New(apperrors.ErrCodeInvalidParams, "评论内容不能为空")

	// ErrUnauthorized 无权操作此评论
	ErrUnauthorized = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此评论")
)
