package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/booklibrary/internal/interface/http/handler"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// handlers 全部HTTP处理器（路由注册用）
type handlers struct {
	user     *handler.UserHandler
	book     *handler.BookHandler
	cart     *handler.CartHandler
	order    *handler.OrderHandler
	review   *handler.ReviewHandler
	like     *handler.LikeHandler
	comment  *handler.CommentHandler
	wishlist *handler.WishlistHandler
	category *handler.CategoryHandler
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, h *handlers, auth *middleware.AuthMiddleware) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标采集
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档（访问 /swagger/index.html）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", h.user.Register)
			users.POST("/login", h.user.Login)
			users.POST("/logout", auth.RequireAuth(), h.user.Logout)
			users.GET("/reviews", auth.RequireAuth(), h.review.ListMine)
			users.GET("/likes", auth.RequireAuth(), h.like.ListLiked)
		}

		// 图书模块（列表/详情/评论公开，其余需要登录）
		books := v1.Group("/books")
		{
			books.GET("", h.book.List)
			books.GET("/search", auth.RequireAuth(), h.book.Search)
			books.GET("/:id", h.book.Get)
			books.GET("/:id/reviews", h.review.ListByBook)
			books.POST("", auth.RequireAuth(), h.book.Publish)
			books.POST("/import", auth.RequireAuth(), h.book.Import)
		}

		// 购物车模块（全部需要登录）
		cart := v1.Group("/cart")
		cart.Use(auth.RequireAuth())
		{
			cart.POST("/items", h.cart.Add)
			cart.GET("/items", h.cart.List)
			cart.PUT("/items/:id", h.cart.Update)
			cart.DELETE("/items/:id", h.cart.Remove)
			cart.DELETE("", h.cart.Clear)
		}

		// 订单模块（全部需要登录）
		orders := v1.Group("/orders")
		orders.Use(auth.RequireAuth())
		{
			orders.POST("", h.order.Checkout)
			orders.GET("", h.order.List)
			orders.GET("/:id", h.order.Get)
			orders.PUT("/:id/status", h.order.UpdateStatus)
		}

		// 评论模块
		reviews := v1.Group("/reviews")
		{
			reviews.GET("/top", h.review.ListTop)
			reviews.GET("/:id/comments", h.comment.ListByReview)
			reviews.POST("", auth.RequireAuth(), h.review.Create)
			reviews.PUT("/:id", auth.RequireAuth(), h.review.Update)
			reviews.DELETE("/:id", auth.RequireAuth(), h.review.Delete)
			reviews.POST("/:id/like", auth.RequireAuth(), h.like.LikeReview)
			reviews.DELETE("/:id/like", auth.RequireAuth(), h.like.UnlikeReview)
			reviews.POST("/:id/comments", auth.RequireAuth(), h.comment.Create)
		}

		// 回复模块
		comments := v1.Group("/comments")
		comments.Use(auth.RequireAuth())
		{
			comments.PUT("/:id", h.comment.Update)
			comments.DELETE("/:id", h.comment.Delete)
			comments.POST("/:id/like", h.like.LikeComment)
			comments.DELETE("/:id/like", h.like.UnlikeComment)
		}

		// 心愿单模块（全部需要登录）
		wishlist := v1.Group("/wishlist")
		wishlist.Use(auth.RequireAuth())
		{
			wishlist.POST("", h.wishlist.Add)
			wishlist.GET("", h.wishlist.List)
			wishlist.DELETE("/:id", h.wishlist.Remove)
		}

		// 分类模块（浏览公开，管理需要登录）
		categories := v1.Group("/categories")
		{
			categories.GET("/tree", h.category.Tree)
			categories.GET("/:id/books", h.category.Books)
			categories.POST("", auth.RequireAuth(), h.category.Create)
			categories.DELETE("/:id", auth.RequireAuth(), h.category.Delete)
			categories.POST("/:id/books", auth.RequireAuth(), h.category.AttachBook)
			categories.DELETE("/:id/books/:book_id", auth.RequireAuth(), h.category.DetachBook)
		}
	}
}
