package like

import (
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// 点赞领域错误定义
var (
	// ErrAlreadyLiked 重复点赞（唯一索引冲突转换而来）
	ErrAlreadyLiked = apperrors.New(apperrors.ErrCodeAlreadyLiked, "已经点过赞了")

	// ErrNotLikedYet 取消点赞时发现没有点赞记录
	ErrNotLikedYet = apperrors.New(apperrors.ErrCodeNotLikedYet, "还没有点过赞")
)
