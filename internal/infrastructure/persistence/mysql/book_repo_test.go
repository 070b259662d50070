package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/booklibrary/internal/domain/book"
)

// newMockDB 构造基于sqlmock的GORM连接
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// TestUpdateStock 原子扣减：UPDATE带stock + delta >= 0守卫
func TestUpdateStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `books` SET").
		WithArgs(-3, sqlmock.AnyArg(), 1, -3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStock(context.Background(), 1, -3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpdateStock_Insufficient 影响0行且图书存在 → 库存不足
func TestUpdateStock_Insufficient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `books` SET").
		WithArgs(-5, sqlmock.AnyArg(), 1, -5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	// 复查：图书存在，判定为库存不足
	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "stock"}).AddRow(1, "Go程序设计语言", 2))

	err := repo.UpdateStock(context.Background(), 1, -5)
	assert.ErrorIs(t, err, book.ErrInsufficientStock)
}

// TestUpdateStock_NotFound 影响0行且图书不存在
func TestUpdateStock_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `books` SET").
		WithArgs(-1, sqlmock.AnyArg(), 99, -1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.UpdateStock(context.Background(), 99, -1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// TestApplyReviewCreated 统计更新使用原生SQL保证SET子句求值顺序
func TestApplyReviewCreated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(`UPDATE books\s+SET average_rating = \(average_rating \* review_count \+ \?\) / \(review_count \+ 1\)`).
		WithArgs(4, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplyReviewCreated(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestApplyReviewRatingChanged 改分的增量修正
func TestApplyReviewRatingChanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(`UPDATE books\s+SET average_rating = average_rating \+ \(\? - \?\) / review_count`).
		WithArgs(4, 2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplyReviewRatingChanged(context.Background(), 1, 2, 4)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestApplyReviewRatingChanged_SameRating 评分未变时不发SQL
func TestApplyReviewRatingChanged_SameRating(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	err := repo.ApplyReviewRatingChanged(context.Background(), 1, 4, 4)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestApplyReviewRemoved IF守卫保证删除最后一条评论时统计归零且不除零
func TestApplyReviewRemoved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(`UPDATE books\s+SET average_rating = IF\(review_count <= 1, 0,`).
		WithArgs(4, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ApplyReviewRemoved(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestFindByID_NotFound 记录不存在转换为领域错误
func TestFindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// TestFindByID 字段映射
func TestFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `books`").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "isbn", "title", "author", "publisher", "price", "stock",
			"review_count", "average_rating", "publisher_id", "created_at", "updated_at",
		}).AddRow(1, "9787111544937", "Go程序设计语言", "Donovan", "机械工业出版社", 13900, 10, 2, 4.5, 7, now, now))

	b, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Go程序设计语言", b.Title)
	assert.Equal(t, int64(13900), b.Price)
	assert.Equal(t, int64(2), b.ReviewCount)
	assert.Equal(t, 4.5, b.AverageRating)
}
