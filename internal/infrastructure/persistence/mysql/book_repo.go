package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// bookRepository 图书仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如ISBN重复），转换为业务错误
// 4. 库存与评论统计的更新都是引擎内原子求值的UPDATE，不走读-改-写
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Publisher:   b.Publisher,
		Price:       b.Price,
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Description: b.Description,
		PublisherID: b.PublisherID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
// 只更新基本信息与价格；库存和评论统计有专用的原子方法，
// 这里不碰这些字段，防止覆盖并发更新。
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":       b.Title,
			"author":      b.Author,
			"publisher":   b.Publisher,
			"price":       b.Price,
			"cover_url":   b.CoverURL,
			"description": b.Description,
			"updated_at":  b.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}

	return nil
}

// Delete 删除图书（软删除）
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	// 关键词搜索（标题、作者、出版社）
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ? OR publisher LIKE ?", keyword, keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	switch params.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating_desc":
		query = query.Order("average_rating DESC")
	default:
		query = query.Order("created_at DESC")
	}

	offset := (params.Page - 1) * params.PageSize
	if err := query.Limit(params.PageSize).Offset(offset).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// FindByIDs 批量查询图书
// 购物车、订单列表展示时一次取齐，避免N+1查询。
func (r *bookRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	if len(ids) == 0 {
		return map[uint]*book.Book{}, nil
	}

	var models []BookModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询图书失败")
	}

	result := make(map[uint]*book.Book, len(models))
	for i := range models {
		result[models[i].ID] = toBookEntity(&models[i])
	}

	return result, nil
}

// LockByID 悲观锁查询图书
// SELECT ... FOR UPDATE锁定行，必须在事务内调用（getDB取事务DB）。
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 原子更新库存
// UPDATE books SET stock = stock + delta WHERE id = ? AND stock + delta >= 0
// 影响0行时再查一次区分"图书不存在"和"库存不足"。
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta). // 防止库存为负
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		// 图书存在，说明是库存不足
		return book.ErrInsufficientStock
	}

	return nil
}

// =========================================
// 评论统计的增量更新
// =========================================
// 设计说明：
// 1. 使用原生SQL而非Updates(map)：MySQL按SET子句从左到右求值，
//    公式依赖"先用旧review_count算平均分，再改计数"的顺序，
//    map遍历顺序随机会破坏这一约束
// 2. 单条UPDATE在引擎内原子求值，并发评论不会丢失更新

// ApplyReviewCreated 新增评论后的统计更新
// avg' = (avg*n + rating) / (n+1)，再n+1
func (r *bookRepository) ApplyReviewCreated(ctx context.Context, id uint, rating int) error {
	err := getDB(ctx, r.db).Exec(
		`UPDATE books
		 SET average_rating = (average_rating * review_count + ?) / (review_count + 1),
		     review_count = review_count + 1
		 WHERE id = ? AND deleted_at IS NULL`,
		rating, id,
	).Error

	if err != nil {
		return apperrors.Wrap(err, "更新评论统计失败")
	}
	return nil
}

// ApplyReviewRatingChanged 评论改分后的统计更新
// avg' = avg + (new - old) / n，n不变
func (r *bookRepository) ApplyReviewRatingChanged(ctx context.Context, id uint, oldRating, newRating int) error {
	if oldRating == newRating {
		return nil
	}

	err := getDB(ctx, r.db).Exec(
		`UPDATE books
		 SET average_rating = average_rating + (? - ?) / review_count
		 WHERE id = ? AND review_count > 0 AND deleted_at IS NULL`,
		newRating, oldRating, id,
	).Error

	if err != nil {
		return apperrors.Wrap(err, "更新评论统计失败")
	}
	return nil
}

// ApplyReviewRemoved 删除评论后的统计更新
// n>1：avg' = (avg*n - rating) / (n-1)；n<=1：统计归零（公式永不除零）
func (r *bookRepository) ApplyReviewRemoved(ctx context.Context, id uint, rating int) error {
	err := getDB(ctx, r.db).Exec(
		`UPDATE books
		 SET average_rating = IF(review_count <= 1, 0,
		         (average_rating * review_count - ?) / (review_count - 1)),
		     review_count = IF(review_count <= 1, 0, review_count - 1)
		 WHERE id = ? AND deleted_at IS NULL`,
		rating, id,
	).Error

	if err != nil {
		return apperrors.Wrap(err, "更新评论统计失败")
	}
	return nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		ISBN:          model.ISBN,
		Title:         model.Title,
		Author:        model.Author,
		Publisher:     model.Publisher,
		Price:         model.Price,
		Stock:         model.Stock,
		ReviewCount:   model.ReviewCount,
		AverageRating: model.AverageRating,
		CoverURL:      model.CoverURL,
		Description:   model.Description,
		PublisherID:   model.PublisherID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
