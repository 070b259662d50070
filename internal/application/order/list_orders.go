package order

import (
	"context"

	"github.com/xiebiao/booklibrary/internal/domain/order"
)

// ListOrdersUseCase 订单列表查询用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 订单列表请求DTO
type ListOrdersRequest struct {
	UserID   uint
	Page     int
	PageSize int
}

// OrderItemView 订单明细DTO
type OrderItemView struct {
	BookID   uint  `json:"book_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // 下单时单价(分)
}

// OrderView 订单DTO
type OrderView struct {
	OrderID       uint            `json:"order_id"`
	OrderNo       string          `json:"order_no"`
	Total         int64           `json:"total"`
	TotalYuan     string          `json:"total_yuan"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     string          `json:"created_at"`
}

// ListOrdersResponse 订单列表响应DTO
type ListOrdersResponse struct {
	List     []OrderView `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Execute 查询当前用户的订单列表
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]OrderView, len(orders))
	for i, o := range orders {
		list[i] = toOrderView(o)
	}

	return &ListOrdersResponse{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// GetOrderUseCase 订单详情查询用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 查询订单详情（只有本人可以查看）
func (uc *GetOrderUseCase) Execute(ctx context.Context, userID, orderID uint) (*OrderView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(userID) {
		return nil, order.ErrUnauthorized
	}

	view := toOrderView(o)
	return &view, nil
}

// toOrderView 领域实体 → DTO
func toOrderView(o *order.Order) OrderView {
	items := make([]OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemView{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return OrderView{
		OrderID:       o.ID,
		OrderNo:       o.OrderNo,
		Total:         o.Total,
		TotalYuan:     formatPrice(o.Total),
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Items:         items,
		CreatedAt:     o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
