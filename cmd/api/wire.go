//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销
// 2. 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 3. 在生成代码启用前，main.go维持手动组装（两者依赖链一致）

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
	"github.com/xiebiao/booklibrary/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewReviewRepository,
	mysql.NewLikeRepository,
	mysql.NewCommentRepository,
	mysql.NewWishlistRepository,
	mysql.NewCategoryRepository,
	mysql.NewTxManager,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewImportBookUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewListCartUseCase,
	appcart.NewUpdateItemUseCase,
	appcart.NewRemoveItemUseCase,
	appcart.NewClearCartUseCase,
	apporder.NewCheckoutUseCase,
	apporder.NewUpdateStatusUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewGetOrderUseCase,
	appreview.NewCreateReviewUseCase,
	appreview.NewUpdateReviewUseCase,
	appreview.NewDeleteReviewUseCase,
	appreview.NewListTopUseCase,
	appreview.NewListReviewsUseCase,
	applike.NewLikeReviewUseCase,
	applike.NewLikeCommentUseCase,
	applike.NewListLikedReviewsUseCase,
	appcomment.NewCommentUseCase,
	appcomment.NewListCommentsUseCase,
	appwishlist.NewWishlistUseCase,
	appwishlist.NewListWishlistUseCase,
	appcategory.NewCategoryUseCase,
	appcategory.NewBrowseCategoryUseCase,
)

// middlewareSet 中间件与横切依赖
// 用例依赖的小接口（TxManager、TopCache等）通过wire.Bind
// 绑定到具体实现。
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	provideReviewCache,
	provideSearcher,
	provideEventPublisher,
	middleware.NewAuthMiddleware,
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appreview.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(applike.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appreview.TopCache), new(*redis.ReviewCache)),
	wire.Bind(new(applike.CacheInvalidator), new(*redis.ReviewCache)),
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewReviewHandler,
	handler.NewLikeHandler,
	handler.NewCommentHandler,
	handler.NewWishlistHandler,
	handler.NewCategoryHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideReviewCache 从Redis客户端创建评论缓存
func provideReviewCache(cfg *config.Config, client *goredis.Client) *redis.ReviewCache {
	return redis.NewReviewCache(client, cfg.Cache.ReviewListTTL)
}

// provideSearcher 创建外部书库检索客户端
func provideSearcher(cfg *config.Config) appbook.Searcher {
	return search.NewClient(cfg.Search)
}

// provideEventPublisher 创建订单事件发布器（MQ关闭时为nil）
func provideEventPublisher(cfg *config.Config) (apporder.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
}

// provideGinEngine 创建并配置Gin引擎（注册全部路由）
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	reviewHandler *handler.ReviewHandler,
	likeHandler *handler.LikeHandler,
	commentHandler *handler.CommentHandler,
	wishlistHandler *handler.WishlistHandler,
	categoryHandler *handler.CategoryHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())

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

	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
