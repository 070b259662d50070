package order

import (
	"time"
)

// Status 订单状态
// 设计说明：
// 1. 下单即支付（结算成功的订单直接是paid），所以状态只有两个
// 2. 使用string类型直接对应数据库enum，日志与API中可读
type Status string

const (
	StatusPaid     Status = "paid"     // 已支付
	StatusCanceled Status = "canceled" // 已取消
)

// IsValid 检查是否为合法状态值
func (s Status) IsValid() bool {
	return s == StatusPaid || s == StatusCanceled
}

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"   // 银行卡
	PaymentMobile PaymentMethod = "mobile" // 移动支付
	PaymentEtc    PaymentMethod = "etc"    // 其他
)

// IsValid 检查是否为合法支付方式
func (p PaymentMethod) IsValid() bool {
	return p == PaymentCard || p == PaymentMobile || p == PaymentEtc
}

// Order 订单实体（聚合根）
// 设计说明：
// 1. Order是聚合根，OrderItem是子实体
// 2. Total冗余存储下单时的总金额（防止商家改价后历史订单金额变化）
type Order struct {
	ID            uint
	OrderNo       string        // 订单号（业务主键，全局唯一）
	UserID        uint          // 买家用户ID
	Total         int64         // 订单总金额（分），下单时快照
	Status        Status        // 订单状态
	PaymentMethod PaymentMethod // 支付方式
	Items         []OrderItem   // 订单明细（聚合内的子实体）
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem 订单明细项
// 不是独立聚合根，必须通过Order访问。
// Price记录下单时的单价（历史价格快照）。
type OrderItem struct {
	ID       uint
	OrderID  uint  // 所属订单ID
	BookID   uint  // 图书ID
	Quantity int   // 购买数量
	Price    int64 // 下单时的单价（分）
}

// NewOrder 创建新订单（工厂方法）
// 结算即支付，初始状态为paid。
func NewOrder(orderNo string, userID uint, paymentMethod PaymentMethod, items []OrderItem, total int64) *Order {
	now := time.Now()
	return &Order{
		OrderNo:       orderNo,
		UserID:        userID,
		Total:         total,
		Status:        StatusPaid,
		PaymentMethod: paymentMethod,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机：paid ↔ canceled 双向可达；转到当前状态视为合法的幂等空操作
func (o *Order) CanTransitionTo(target Status) bool {
	if !target.IsValid() {
		return false
	}
	// 两状态互相可达，同态转换是no-op
	return true
}

// TransitionTo 状态转换
// 返回changed=false表示目标状态与当前相同（幂等，无副作用）
func (o *Order) TransitionTo(target Status) (changed bool, err error) {
	if !o.CanTransitionTo(target) {
		return false, ErrInvalidStatusTransition
	}
	if o.Status == target {
		return false, nil
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return true, nil
}

// Cancel 取消订单（领域行为），调用方负责回补库存
func (o *Order) Cancel() (bool, error) {
	return o.TransitionTo(StatusCanceled)
}

// Repay 恢复为已支付（领域行为），调用方负责重新校验并扣减库存
func (o *Order) Repay() (bool, error) {
	return o.TransitionTo(StatusPaid)
}

// CalculateTotal 根据明细实时计算订单总金额
// 用于创建订单时核对Total快照
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户（防止访问他人订单）
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
