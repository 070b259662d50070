package order

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/order"
)

// UpdateStatusUseCase 订单状态变更用例
// 状态机只有paid/canceled两个状态：
//   - paid → canceled：取消订单，逐项回补库存
//   - canceled → paid：恢复订单，重新校验并扣减库存（库存不足则失败）
//   - 同态 → 同态：幂等空操作，不产生任何副作用
//
// 状态更新与库存调整在同一事务内，失败整体回滚。
type UpdateStatusUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager TxManager
	publisher EventPublisher
}

// NewUpdateStatusUseCase 创建状态变更用例
func NewUpdateStatusUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	publisher EventPublisher,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// UpdateStatusRequest 状态变更请求DTO
type UpdateStatusRequest struct {
	UserID  uint   // 操作用户ID(从JWT中提取)
	OrderID uint   // 订单ID
	Status  string // 目标状态(paid/canceled)
}

// UpdateStatusResponse 状态变更响应DTO
type UpdateStatusResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Status    string `json:"status"`
	Changed   bool   `json:"changed"` // false表示目标状态与当前相同
	UpdatedAt string `json:"updated_at"`
}

// Execute 执行状态变更
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*UpdateStatusResponse, error) {
	target := order.Status(req.Status)
	if !target.IsValid() {
		return nil, order.ErrInvalidStatusTransition
	}

	var result *order.Order
	var changed bool

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 查订单并校验归属
		o, err := uc.orderRepo.FindByID(txCtx, req.OrderID)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(req.UserID) {
			return order.ErrUnauthorized
		}

		// 2. 状态转换（同态返回changed=false，直接提交空事务）
		changed, err = o.TransitionTo(target)
		if err != nil {
			return err
		}
		result = o
		if !changed {
			return nil
		}

		// 3. 库存调整
		// 取消：回补每一项；恢复：锁行校验后扣减
		for _, item := range o.Items {
			switch target {
			case order.StatusCanceled:
				if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, item.Quantity); err != nil {
					return err
				}
			case order.StatusPaid:
				// 悲观锁防止并发恢复导致超卖
				if _, err := uc.bookRepo.LockByID(txCtx, item.BookID); err != nil {
					return err
				}
				if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, -item.Quantity); err != nil {
					return err
				}
			}
		}

		// 4. 持久化新状态
		return uc.orderRepo.Update(txCtx, o)
	})

	if err != nil {
		return nil, err
	}

	// 提交后尽力发布事件
	if changed {
		routingKey := "order.canceled"
		if target == order.StatusPaid {
			routingKey = "order.repaid"
		}
		uc.publishOrderEvent(ctx, routingKey, result)
	}

	return &UpdateStatusResponse{
		OrderID:   result.ID,
		OrderNo:   result.OrderNo,
		Status:    string(result.Status),
		Changed:   changed,
		UpdatedAt: result.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// publishOrderEvent 尽力投递订单事件
func (uc *UpdateStatusUseCase) publishOrderEvent(ctx context.Context, routingKey string, o *order.Order) {
	if uc.publisher == nil {
		return
	}
	event := OrderEvent{
		OrderID:   o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    string(o.Status),
		Timestamp: time.Now().Unix(),
	}
	if err := uc.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Printf("发布订单事件失败: key=%s order_no=%s err=%v", routingKey, o.OrderNo, err)
	}
}
