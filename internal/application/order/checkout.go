package order

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/domain/cart"
	"github.com/xiebiao/booklibrary/internal/domain/order"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
	"github.com/xiebiao/booklibrary/pkg/metrics"
)

// TxManager 事务管理接口
// 由persistence/mysql.TxManager实现；用例测试时可用直通实现替代。
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 订单事件发布接口
// 由pkg/mq.Publisher实现；MQ关闭时注入nil，发布被跳过。
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// OrderEvent 订单生命周期事件（发布到MQ）
type OrderEvent struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Total     int64  `json:"total"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// CheckoutUseCase 购物车结算用例（本项目最核心的用例）
// 涉及：事务处理、悲观锁并发控制、价格快照、购物车清空
type CheckoutUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	cartRepo  cart.Repository
	txManager TxManager
	publisher EventPublisher
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	cartRepo cart.Repository,
	txManager TxManager,
	publisher EventPublisher,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		cartRepo:  cartRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// CheckoutRequest 结算请求DTO
type CheckoutRequest struct {
	UserID        uint   // 买家用户ID(从JWT中提取)
	PaymentMethod string // 支付方式(card/mobile/etc)
}

// CheckoutResponse 结算响应DTO
type CheckoutResponse struct {
	OrderID       uint   `json:"order_id"`
	OrderNo       string `json:"order_no"`
	Total         int64  `json:"total"`
	TotalYuan     string `json:"total_yuan"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	ItemCount     int    `json:"item_count"`
	CreatedAt     string `json:"created_at"`
}

// Execute 执行结算
//
// 核心问题：库存超卖
// 场景：库存10个，100人同时结算
// 错误实现：先SELECT库存再判断再UPDATE——100个请求都会通过判断
// 正确实现：整个流程跑在一个事务里：
//  1. 读购物车（空则直接失败）
//  2. 逐本SELECT FOR UPDATE锁定图书行，锁内校验库存
//  3. 以锁定时的当前价格生成价格快照，计算总额（防改价攻击）
//  4. 创建订单（状态paid）+ 明细
//  5. 原子扣减库存
//  6. 清空购物车
//  7. COMMIT释放锁；任何一步失败整体ROLLBACK，所有状态保持原样
//
// 不做自动重试：冲突直接把业务错误返回给调用方。
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	start := time.Now()

	method := order.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, order.ErrInvalidPaymentMethod
	}

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 读购物车
		lines, err := uc.cartRepo.FindAllByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return cart.ErrEmptyCart
		}

		// 2. 锁定每本书并校验库存
		// SELECT FOR UPDATE在books行上加排他锁，
		// 其他结算事务必须等待本事务COMMIT/ROLLBACK
		bookMap := make(map[uint]*book.Book, len(lines))
		for _, line := range lines {
			b, err := uc.bookRepo.LockByID(txCtx, line.BookID)
			if err != nil {
				return err
			}

			// 必须在锁内检查，否则并发扣减导致超卖
			if b.Stock < line.Quantity {
				return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
					"图书《%s》库存不足，当前库存:%d，需要:%d", b.Title, b.Stock, line.Quantity)
			}

			bookMap[line.BookID] = b
		}

		// 3. 价格快照与总额（使用锁定时的数据库价格，不信任前端）
		var total int64
		orderItems := make([]order.OrderItem, len(lines))
		for i, line := range lines {
			b := bookMap[line.BookID]
			orderItems[i] = order.OrderItem{
				BookID:   line.BookID,
				Quantity: line.Quantity,
				Price:    b.Price,
			}
			total += b.Price * int64(line.Quantity)
		}

		// 4. 创建订单（结算即支付，初始状态paid）
		newOrder := order.NewOrder(order.GenerateOrderNo(), req.UserID, method, orderItems, total)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 5. 扣减库存（原子UPDATE，失败整体回滚）
		for _, line := range lines {
			if err := uc.bookRepo.UpdateStock(txCtx, line.BookID, -line.Quantity); err != nil {
				return err
			}
		}

		// 6. 清空购物车（同事务，回滚时购物车保持原样）
		if err := uc.cartRepo.ClearByUserID(txCtx, req.UserID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	metrics.ObserveCheckout(err == nil, time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	// 提交后尽力发布事件，失败只记日志
	uc.publishEvent(ctx, "order.created", result)

	return &CheckoutResponse{
		OrderID:       result.ID,
		OrderNo:       result.OrderNo,
		Total:         result.Total,
		TotalYuan:     formatPrice(result.Total),
		Status:        string(result.Status),
		PaymentMethod: string(result.PaymentMethod),
		ItemCount:     len(result.Items),
		CreatedAt:     result.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// publishEvent 尽力投递订单事件
func (uc *CheckoutUseCase) publishEvent(ctx context.Context, routingKey string, o *order.Order) {
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

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
