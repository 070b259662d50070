package order

import (
	"strings"
	"testing"
)

func newTestOrder() *Order {
	items := []OrderItem{
		{BookID: 1, Quantity: 3, Price: 1000},
		{BookID: 2, Quantity: 1, Price: 2500},
	}
	return NewOrder(GenerateOrderNo(), 42, PaymentCard, items, 5500)
}

// TestNewOrder 结算即支付，初始状态为paid
func TestNewOrder(t *testing.T) {
	o := newTestOrder()

	if o.Status != StatusPaid {
		t.Errorf("期望初始状态paid，实际%s", o.Status)
	}
	if o.PaymentMethod != PaymentCard {
		t.Errorf("期望支付方式card，实际%s", o.PaymentMethod)
	}
	if !o.IsOwnedBy(42) {
		t.Error("期望订单属于用户42")
	}
	if o.IsOwnedBy(43) {
		t.Error("订单不应属于用户43")
	}
}

// TestCalculateTotal 明细合计（3×1000 + 1×2500 = 5500）
func TestCalculateTotal(t *testing.T) {
	o := newTestOrder()
	if total := o.CalculateTotal(); total != 5500 {
		t.Errorf("期望总额5500，实际%d", total)
	}
}

// TestTransitionTo 状态机双向转换
func TestTransitionTo(t *testing.T) {
	o := newTestOrder()

	// paid → canceled
	changed, err := o.TransitionTo(StatusCanceled)
	if err != nil || !changed {
		t.Fatalf("paid→canceled期望(true, nil)，实际(%v, %v)", changed, err)
	}
	if o.Status != StatusCanceled {
		t.Errorf("期望状态canceled，实际%s", o.Status)
	}

	// canceled → paid
	changed, err = o.TransitionTo(StatusPaid)
	if err != nil || !changed {
		t.Fatalf("canceled→paid期望(true, nil)，实际(%v, %v)", changed, err)
	}
}

// TestTransitionTo_SameState 同态转换是幂等空操作
func TestTransitionTo_SameState(t *testing.T) {
	o := newTestOrder()

	changed, err := o.TransitionTo(StatusPaid)
	if err != nil {
		t.Fatalf("同态转换不应报错: %v", err)
	}
	if changed {
		t.Error("同态转换期望changed=false")
	}
	if o.Status != StatusPaid {
		t.Errorf("状态不应改变，实际%s", o.Status)
	}
}

// TestTransitionTo_InvalidStatus 非法目标状态
func TestTransitionTo_InvalidStatus(t *testing.T) {
	o := newTestOrder()

	if _, err := o.TransitionTo(Status("shipped")); err != ErrInvalidStatusTransition {
		t.Errorf("期望ErrInvalidStatusTransition，实际%v", err)
	}
}

// TestPaymentMethodIsValid 支付方式取值
func TestPaymentMethodIsValid(t *testing.T) {
	for _, p := range []PaymentMethod{PaymentCard, PaymentMobile, PaymentEtc} {
		if !p.IsValid() {
			t.Errorf("期望%s合法", p)
		}
	}
	if PaymentMethod("cash").IsValid() {
		t.Error("期望cash非法")
	}
}

// TestGenerateOrderNo 订单号格式
func TestGenerateOrderNo(t *testing.T) {
	no := GenerateOrderNo()
	if !strings.HasPrefix(no, "ORD") {
		t.Errorf("期望ORD前缀，实际%q", no)
	}
	// ORD + 秒级时间戳(10位) + 6位随机数
	if len(no) != 19 {
		t.Errorf("期望长度19，实际%d (%q)", len(no), no)
	}
}
