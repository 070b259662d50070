package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 针对本地跑起来的完整服务（MySQL + Redis + API）发真实HTTP请求。
// 服务未启动时测试自动跳过，不阻塞单元测试流水线。

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// RequireServer 检查服务是否可达，不可达则跳过测试
func RequireServer(t *testing.T) {
	t.Helper()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("API服务不可达，跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ID            uint    `json:"id"`
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Price         int64   `json:"price"`
	Stock         int     `json:"stock"`
	ReviewCount   int64   `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// OrderData 订单响应数据
type OrderData struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
	Changed   bool   `json:"changed"`
}

// ReviewData 评论响应数据
type ReviewData struct {
	ReviewID uint `json:"review_id"`
	BookID   uint `json:"book_id"`
	Rating   int  `json:"rating"`
}

// doJSON 发送请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestISBN 生成唯一的测试ISBN（978 + 10位数字）
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// RegisterTestUser 注册测试用户并返回Token
func RegisterTestUser(t *testing.T, nickname string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(nickname)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"nickname": nickname,
	}

	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// PublishTestBook 上架测试图书并返回图书ID
func PublishTestBook(t *testing.T, token string, title string, price int64, stock int) uint {
	t.Helper()

	bookReq := map[string]interface{}{
		"title":       title,
		"author":      "测试作者",
		"isbn":        GenerateTestISBN(),
		"publisher":   "测试出版社",
		"price":       price,
		"stock":       stock,
		"description": "集成测试用图书",
	}

	bookResp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, bookResp.Code, "图书上架失败: %s", bookResp.Message)

	var bookData BookData
	err := json.Unmarshal(bookResp.Data, &bookData)
	require.NoError(t, err, "解析图书响应失败")

	return bookData.ID
}

// GetBook 查询图书详情
func GetBook(t *testing.T, bookID uint) *BookData {
	t.Helper()

	resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
	require.Equal(t, 0, resp.Code, "查询图书失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书详情失败")

	return &data
}

// AddToCart 加购物车
func AddToCart(t *testing.T, token string, bookID uint, quantity int) {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/cart/items", map[string]interface{}{
		"book_id":  bookID,
		"quantity": quantity,
	}, token)
	require.Equal(t, 0, resp.Code, "加购物车失败: %s", resp.Message)
}

// Checkout 购物车结算
func Checkout(t *testing.T, token string) *OrderData {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/orders", map[string]string{
		"payment_method": "card",
	}, token)
	require.Equal(t, 0, resp.Code, "结算失败: %s", resp.Message)

	var data OrderData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析订单响应失败")

	return &data
}
