package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务在context中的key
// 使用私有类型避免与其他包的context key冲突
type txKey struct{}

// TxManager 事务管理器
// 设计说明：
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB（避免全局变量）
// 3. 支持嵌套事务（GORM自动使用Savepoint）
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内的所有Repository操作都在同一事务中执行；
// fn返回error时自动ROLLBACK，返回nil时自动COMMIT。
//
// 使用示例（结算）：
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    book, err := bookRepo.LockByID(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    if err := orderRepo.Create(ctx, order); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.UpdateStock(ctx, bookID, -quantity)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入context，Repository的getDB会提取
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// getDB 从context获取事务DB，没有事务时使用默认DB
// 所有Repository的写路径都必须经过此函数，才能参与外部事务。
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
