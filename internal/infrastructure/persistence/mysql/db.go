package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/booklibrary/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段。
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ReviewModel{},
		&ReviewLikeModel{},
		&CommentModel{},
		&CommentLikeModel{},
		&WishlistModel{},
		&CategoryModel{},
		&BookCategoryModel{},
	)
}

// UserModel GORM用户模型
// infrastructure层的数据模型，包含GORM tag；
// domain层的实体不依赖GORM，Repository负责两者之间的转换。
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明：
// 1. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 2. ISBN有唯一索引，防止重复
// 3. ReviewCount/AverageRating是评论统计冗余字段，只由增量UPDATE维护
type BookModel struct {
	ID            uint           `gorm:"primaryKey"`
	ISBN          string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title         string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author        string         `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Publisher     string         `gorm:"size:100;not null;comment:出版社"`
	Price         int64          `gorm:"index:idx_list;not null;comment:价格(分)"`
	Stock         int            `gorm:"default:0;comment:库存数量"`
	ReviewCount   int64          `gorm:"default:0;comment:有效评论数"`
	AverageRating float64        `gorm:"default:0;comment:平均评分(0-5)"`
	CoverURL      string         `gorm:"size:500;comment:封面图片URL"`
	Description   string         `gorm:"type:text;comment:图书描述"`
	PublisherID   uint           `gorm:"index;not null;comment:发布者用户ID"`
	CreatedAt     time.Time      `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt     time.Time      `gorm:"comment:更新时间"`
	DeletedAt     gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (BookModel) TableName() string {
	return "books"
}

// CartItemModel GORM购物车模型
// unique(user_id, book_id)：同一用户同一本书最多一行，加购走加量。
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book;index;not null;comment:图书ID"`
	Quantity  int       `gorm:"not null;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CartItemModel) TableName() string {
	return "carts"
}

// OrderModel GORM订单模型
// Status使用enum存储（paid/canceled），PaymentMethod记录支付方式。
type OrderModel struct {
	ID            uint             `gorm:"primaryKey"`
	OrderNo       string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID        uint             `gorm:"index;not null;comment:买家用户ID"`
	Total         int64            `gorm:"not null;comment:订单总金额(分)"`
	Status        string           `gorm:"index;type:enum('paid','canceled');default:'paid';comment:订单状态"`
	PaymentMethod string           `gorm:"type:enum('card','mobile','etc');not null;comment:支付方式"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
	CreatedAt     time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price记录下单时的价格快照。
type OrderItemModel struct {
	ID       uint  `gorm:"primaryKey"`
	OrderID  uint  `gorm:"index;not null;comment:订单ID"`
	BookID   uint  `gorm:"index;not null;comment:图书ID"`
	Quantity int   `gorm:"not null;comment:购买数量"`
	Price    int64 `gorm:"not null;comment:下单时单价(分)"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// ReviewModel GORM评论模型
// unique(user_id, book_id)：每个用户对每本书最多一条评论（含软删除行）。
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book_review;not null;comment:评论者用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book_review;index;not null;comment:图书ID"`
	Rating    int       `gorm:"type:tinyint;not null;comment:评分(1-5)"`
	Title     string    `gorm:"size:200;comment:评论标题"`
	Content   string    `gorm:"type:text;not null;comment:评论内容"`
	Likes     int64     `gorm:"index;default:0;comment:点赞数"`
	Status    string    `gorm:"index;type:enum('active','deleted');default:'active';comment:状态"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewLikeModel GORM评论点赞模型
// 唯一索引(user_id, review_id)是判重的唯一真相来源。
type ReviewLikeModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_review;not null;comment:用户ID"`
	ReviewID  uint      `gorm:"uniqueIndex:idx_user_review;index;not null;comment:评论ID"`
	CreatedAt time.Time `gorm:"comment:点赞时间"`
}

func (ReviewLikeModel) TableName() string {
	return "review_likes"
}

// CommentModel GORM回复模型（评论的楼中楼）
type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	ReviewID  uint      `gorm:"index;not null;comment:所属评论ID"`
	UserID    uint      `gorm:"index;not null;comment:回复者用户ID"`
	Content   string    `gorm:"type:text;not null;comment:回复内容"`
	Likes     int64     `gorm:"default:0;comment:点赞数"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CommentModel) TableName() string {
	return "comments"
}

// CommentLikeModel GORM回复点赞模型
type CommentLikeModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_comment;not null;comment:用户ID"`
	CommentID uint      `gorm:"uniqueIndex:idx_user_comment;index;not null;comment:回复ID"`
	CreatedAt time.Time `gorm:"comment:点赞时间"`
}

func (CommentLikeModel) TableName() string {
	return "comment_likes"
}

// WishlistModel GORM心愿单模型
type WishlistModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book_wish;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book_wish;index;not null;comment:图书ID"`
	CreatedAt time.Time `gorm:"index;comment:添加时间"`
}

func (WishlistModel) TableName() string {
	return "wishlists"
}

// CategoryModel GORM分类模型
// ParentID自引用构成分类树，0表示根分类。
type CategoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	ParentID  uint      `gorm:"index;default:0;comment:父分类ID(0为根)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookCategoryModel 图书-分类关联表
type BookCategoryModel struct {
	ID         uint `gorm:"primaryKey"`
	BookID     uint `gorm:"uniqueIndex:idx_book_category;not null;comment:图书ID"`
	CategoryID uint `gorm:"uniqueIndex:idx_book_category;index;not null;comment:分类ID"`
}

func (BookCategoryModel) TableName() string {
	return "book_categories"
}
