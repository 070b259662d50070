package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 订单模块集成测试
//
// 覆盖场景：
// 1. 购物车结算：价格快照、库存扣减、购物车清空
// 2. 库存不足时结算失败且状态回滚
// 3. 订单取消/恢复的库存联动
// 4. 同态状态变更的幂等性

// TestCheckoutFlow 完整结算流程
func TestCheckoutFlow(t *testing.T) {
	RequireServer(t)

	_, token := RegisterTestUser(t, "checkout_user")

	// 上架两本书：10.00元×库存10、25.00元×库存5
	book1 := PublishTestBook(t, token, "《Go程序设计语言》", 1000, 10)
	book2 := PublishTestBook(t, token, "《数据库系统概念》", 2500, 5)

	AddToCart(t, token, book1, 3)
	AddToCart(t, token, book2, 1)

	order := Checkout(t, token)

	// 总额 = 3×1000 + 1×2500
	assert.Equal(t, int64(5500), order.Total, "总额应按快照价计算")
	assert.Equal(t, "55.00", order.TotalYuan)
	assert.Equal(t, "paid", order.Status, "结算即支付")
	assert.NotEmpty(t, order.OrderNo)

	// 库存已扣减
	assert.Equal(t, 7, GetBook(t, book1).Stock, "图书1库存应扣到7")
	assert.Equal(t, 4, GetBook(t, book2).Stock, "图书2库存应扣到4")

	// 购物车已清空
	cartResp := GetJSON(t, BaseURL+"/cart/items", token)
	require.Equal(t, 0, cartResp.Code)
	var cartData struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(cartResp.Data, &cartData))
	assert.Equal(t, int64(0), cartData.Total, "结算后购物车应清空")
}

// TestCheckout_EmptyCart 空购物车结算
func TestCheckout_EmptyCart(t *testing.T) {
	RequireServer(t)

	_, token := RegisterTestUser(t, "empty_cart_user")

	resp := PostJSON(t, BaseURL+"/orders", map[string]string{
		"payment_method": "card",
	}, token)

	assert.NotEqual(t, 0, resp.Code, "空购物车结算应失败")
	t.Logf("空购物车正确被拒绝: %s", resp.Message)
}

// TestCheckout_InsufficientStock 库存不足时整体回滚
func TestCheckout_InsufficientStock(t *testing.T) {
	RequireServer(t)

	_, token := RegisterTestUser(t, "oversell_user")

	book1 := PublishTestBook(t, token, "《库存充足的书》", 1000, 10)
	book2 := PublishTestBook(t, token, "《库存紧张的书》", 2500, 2)

	AddToCart(t, token, book1, 3)
	AddToCart(t, token, book2, 5) // 库存只有2

	resp := PostJSON(t, BaseURL+"/orders", map[string]string{
		"payment_method": "card",
	}, token)
	assert.NotEqual(t, 0, resp.Code, "库存不足应失败")
	assert.Contains(t, resp.Message, "库存不足", "错误信息应说明库存不足")

	// 回滚后两本书的库存都保持原样
	assert.Equal(t, 10, GetBook(t, book1).Stock, "失败结算不应扣减任何库存")
	assert.Equal(t, 2, GetBook(t, book2).Stock)

	// 购物车保持原样
	cartResp := GetJSON(t, BaseURL+"/cart/items", token)
	require.Equal(t, 0, cartResp.Code)
	var cartData struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(cartResp.Data, &cartData))
	assert.Equal(t, int64(2), cartData.Total, "失败结算不应清空购物车")
}

// TestOrderStatusFlow 订单取消与恢复的库存联动
func TestOrderStatusFlow(t *testing.T) {
	RequireServer(t)

	_, token := RegisterTestUser(t, "status_user")

	bookID := PublishTestBook(t, token, "《状态机测试》", 1000, 10)
	AddToCart(t, token, bookID, 3)
	order := Checkout(t, token)
	require.Equal(t, 7, GetBook(t, bookID).Stock)

	statusURL := fmt.Sprintf("%s/orders/%d/status", BaseURL, order.OrderID)

	// 取消：库存回补
	cancelResp := PutJSON(t, statusURL, map[string]string{"status": "canceled"}, token)
	require.Equal(t, 0, cancelResp.Code, "取消失败: %s", cancelResp.Message)

	var cancelData OrderData
	require.NoError(t, json.Unmarshal(cancelResp.Data, &cancelData))
	assert.Equal(t, "canceled", cancelData.Status)
	assert.True(t, cancelData.Changed)
	assert.Equal(t, 10, GetBook(t, bookID).Stock, "取消后库存应回补到10")

	// 再次取消：幂等空操作
	againResp := PutJSON(t, statusURL, map[string]string{"status": "canceled"}, token)
	require.Equal(t, 0, againResp.Code)

	var againData OrderData
	require.NoError(t, json.Unmarshal(againResp.Data, &againData))
	assert.False(t, againData.Changed, "同态转换应返回changed=false")
	assert.Equal(t, 10, GetBook(t, bookID).Stock, "幂等取消不应再动库存")

	// 恢复：重新扣减
	repayResp := PutJSON(t, statusURL, map[string]string{"status": "paid"}, token)
	require.Equal(t, 0, repayResp.Code, "恢复失败: %s", repayResp.Message)
	assert.Equal(t, 7, GetBook(t, bookID).Stock, "恢复后库存应重新扣到7")
}

// TestOrderStatus_NotOwner 非本人订单不能操作
func TestOrderStatus_NotOwner(t *testing.T) {
	RequireServer(t)

	_, ownerToken := RegisterTestUser(t, "order_owner")
	_, otherToken := RegisterTestUser(t, "order_other")

	bookID := PublishTestBook(t, ownerToken, "《归属测试》", 1000, 10)
	AddToCart(t, ownerToken, bookID, 1)
	order := Checkout(t, ownerToken)

	resp := PutJSON(t, fmt.Sprintf("%s/orders/%d/status", BaseURL, order.OrderID),
		map[string]string{"status": "canceled"}, otherToken)

	assert.NotEqual(t, 0, resp.Code, "非本人操作应失败")
	assert.Equal(t, 10-1, GetBook(t, bookID).Stock, "越权操作不应动库存")
}
