package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	appcart "github.com/xiebiao/booklibrary/internal/application/cart"
	appcategory "github.com/xiebiao/booklibrary/internal/application/category"
	appcomment "github.com/xiebiao/booklibrary/internal/application/comment"
	applike "github.com/xiebiao/booklibrary/internal/application/like"
	apporder "github.com/xiebiao/booklibrary/internal/application/order"
	appreview "github.com/xiebiao/booklibrary/internal/application/review"
	appuser "github.com/xiebiao/booklibrary/internal/application/user"
	appwishlist "github.com/xiebiao/booklibrary/internal/application/wishlist"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/user"
	"github.com/xiebiao/booklibrary/internal/infrastructure/config"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/booklibrary/internal/infrastructure/search"
	"github.com/xiebiao/booklibrary/internal/interface/http/handler"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/jwt"
	"github.com/xiebiao/booklibrary/pkg/metrics"
	"github.com/xiebiao/booklibrary/pkg/mq"
)

// @title           图书馆后端API
// @version         1.0
// @description     图书、购物车、订单、评论、点赞、心愿单、分类
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 指标注册（必须在任何指标使用前）
	metrics.InitMetrics()

	// 3. 基础设施连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	likeRepo := mysql.NewLikeRepository(db)
	commentRepo := mysql.NewCommentRepository(db)
	wishlistRepo := mysql.NewWishlistRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	txManager := mysql.NewTxManager(db)

	sessionStore := redis.NewSessionStore(redisClient)
	reviewCache := redis.NewReviewCache(redisClient, cfg.Cache.ReviewListTTL)
	searchClient := search.NewClient(cfg.Search)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 订单事件发布器（MQ关闭时为nil，用例内做了空保护）
	var publisher apporder.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)

	publishBookUseCase := appbook.NewPublishBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	importBookUseCase := appbook.NewImportBookUseCase(searchClient, bookRepo)

	addCartUseCase := appcart.NewAddItemUseCase(cartRepo, bookRepo)
	listCartUseCase := appcart.NewListCartUseCase(cartRepo, bookRepo)
	updateCartUseCase := appcart.NewUpdateItemUseCase(cartRepo, bookRepo)
	removeCartUseCase := appcart.NewRemoveItemUseCase(cartRepo)
	clearCartUseCase := appcart.NewClearCartUseCase(cartRepo)

	checkoutUseCase := apporder.NewCheckoutUseCase(orderRepo, bookRepo, cartRepo, txManager, publisher)
	updateOrderStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo, bookRepo, txManager, publisher)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)

	createReviewUseCase := appreview.NewCreateReviewUseCase(reviewRepo, bookRepo, txManager, reviewCache)
	updateReviewUseCase := appreview.NewUpdateReviewUseCase(reviewRepo, bookRepo, txManager, reviewCache)
	deleteReviewUseCase := appreview.NewDeleteReviewUseCase(reviewRepo, bookRepo, txManager, reviewCache)
	listTopReviewsUseCase := appreview.NewListTopUseCase(reviewRepo, reviewCache)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewRepo)

	likeReviewUseCase := applike.NewLikeReviewUseCase(likeRepo, reviewRepo, txManager, reviewCache)
	likeCommentUseCase := applike.NewLikeCommentUseCase(likeRepo, commentRepo, txManager)
	listLikedUseCase := applike.NewListLikedReviewsUseCase(likeRepo, reviewRepo)

	commentUseCase := appcomment.NewCommentUseCase(commentRepo, reviewRepo)
	listCommentsUseCase := appcomment.NewListCommentsUseCase(commentRepo)

	wishlistUseCase := appwishlist.NewWishlistUseCase(wishlistRepo, bookRepo)
	listWishlistUseCase := appwishlist.NewListWishlistUseCase(wishlistRepo, bookRepo)

	categoryUseCase := appcategory.NewCategoryUseCase(categoryRepo, bookRepo)
	browseCategoryUseCase := appcategory.NewBrowseCategoryUseCase(categoryRepo, bookRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(publishBookUseCase, listBooksUseCase, getBookUseCase, importBookUseCase)
	cartHandler := handler.NewCartHandler(addCartUseCase, listCartUseCase, updateCartUseCase, removeCartUseCase, clearCartUseCase)
	orderHandler := handler.NewOrderHandler(checkoutUseCase, updateOrderStatusUseCase, listOrdersUseCase, getOrderUseCase)
	reviewHandler := handler.NewReviewHandler(createReviewUseCase, updateReviewUseCase, deleteReviewUseCase, listTopReviewsUseCase, listReviewsUseCase)
	likeHandler := handler.NewLikeHandler(likeReviewUseCase, likeCommentUseCase, listLikedUseCase)
	commentHandler := handler.NewCommentHandler(commentUseCase, listCommentsUseCase)
	wishlistHandler := handler.NewWishlistHandler(wishlistUseCase, listWishlistUseCase)
	categoryHandler := handler.NewCategoryHandler(categoryUseCase, browseCategoryUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 6. 注册路由
	registerRoutes(r, &handlers{
		user:     userHandler,
		book:     bookHandler,
		cart:     cartHandler,
		order:    orderHandler,
		review:   reviewHandler,
		like:     likeHandler,
		comment:  commentHandler,
		wishlist: wishlistHandler,
		category: categoryHandler,
	}, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
