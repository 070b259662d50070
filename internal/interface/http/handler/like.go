package handler

import (
	"github.com/gin-gonic/gin"

	applike "github.com/xiebiao/booklibrary/internal/application/like"
	"github.com/xiebiao/booklibrary/internal/interface/http/dto"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// LikeHandler 点赞HTTP处理器
type LikeHandler struct {
	likeReviewUseCase  *applike.LikeReviewUseCase
	likeCommentUseCase *applike.LikeCommentUseCase
	listLikedUseCase   *applike.ListLikedReviewsUseCase
}

// NewLikeHandler 创建点赞处理器
func NewLikeHandler(
	likeReviewUseCase *applike.LikeReviewUseCase,
	likeCommentUseCase *applike.LikeCommentUseCase,
	listLikedUseCase *applike.ListLikedReviewsUseCase,
) *LikeHandler {
	return &LikeHandler{
		likeReviewUseCase:  likeReviewUseCase,
		likeCommentUseCase: likeCommentUseCase,
		listLikedUseCase:   listLikedUseCase,
	}
}

// LikeReview 点赞评论
// @Summary      点赞评论
// @Description  重复点赞返回"已点过赞"（并发下恰好一个请求成功）
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response "点赞成功"
// @Failure      200 {object} response.Response "已点过赞(code=40007)"
// @Router       /api/v1/reviews/{id}/like [post]
func (h *LikeHandler) LikeReview(c *gin.Context) {
	reviewID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	if err := h.likeReviewUseCase.Like(c.Request.Context(), middleware.MustGetUserID(c), reviewID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// UnlikeReview 取消点赞评论
// @Summary      取消点赞评论
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response "取消成功"
// @Failure      200 {object} response.Response "尚未点赞(code=40008)"
// @Router       /api/v1/reviews/{id}/like [delete]
func (h *LikeHandler) UnlikeReview(c *gin.Context) {
	reviewID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	if err := h.likeReviewUseCase.Unlike(c.Request.Context(), middleware.MustGetUserID(c), reviewID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// LikeComment 点赞回复
// @Summary      点赞回复
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "回复ID"
// @Success      200 {object} response.Response "点赞成功"
// @Router       /api/v1/comments/{id}/like [post]
func (h *LikeHandler) LikeComment(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "回复ID格式错误")
		return
	}

	if err := h.likeCommentUseCase.Like(c.Request.Context(), middleware.MustGetUserID(c), commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// UnlikeComment 取消点赞回复
// @Summary      取消点赞回复
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "回复ID"
// @Success      200 {object} response.Response "取消成功"
// @Router       /api/v1/comments/{id}/like [delete]
func (h *LikeHandler) UnlikeComment(c *gin.Context) {
	commentID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "回复ID格式错误")
		return
	}

	if err := h.likeCommentUseCase.Unlike(c.Request.Context(), middleware.MustGetUserID(c), commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListLiked 我点赞过的评论
// @Summary      我点赞过的评论
// @Tags         点赞
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/users/likes [get]
func (h *LikeHandler) ListLiked(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listLikedUseCase.Execute(c.Request.Context(), middleware.MustGetUserID(c), query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
