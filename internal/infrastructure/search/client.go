// Package search 封装外部图书检索API客户端
//
// 按ISBN或关键词检索外部书库，用于"从外部书库导入图书"功能。
// 外部依赖不可控，调用全部经过熔断器保护：下游持续失败时快速失败，
// 不让慢请求拖垮本服务的工作线程。
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xiebiao/booklibrary/internal/infrastructure/config"
	"github.com/xiebiao/booklibrary/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
	"github.com/xiebiao/booklibrary/pkg/metrics"
)

// Result 外部书库的检索结果
type Result struct {
	ISBN        string // 优先ISBN-13
	Title       string
	Authors     []string
	Publisher   string
	Price       int64 // 定价（分）
	CoverURL    string
	Description string
}

// Author 返回逗号拼接的作者串（入库用）
func (r Result) Author() string {
	return strings.Join(r.Authors, ", ")
}

// Client 图书检索API客户端
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient 创建检索客户端
// 熔断策略：连续5次失败打开，30秒后半开放行3个探测请求。
func NewClient(cfg config.SearchConfig) *Client {
	cb := circuitbreaker.NewCircuitBreaker("book-search-api", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		breaker:    cb,
	}
}

// searchResponse 外部API的响应结构
type searchResponse struct {
	Documents []struct {
		Title     string   `json:"title"`
		Authors   []string `json:"authors"`
		Publisher string   `json:"publisher"`
		ISBN      string   `json:"isbn"` // 可能是"ISBN10 ISBN13"空格分隔
		Price     int64    `json:"price"`
		Thumbnail string   `json:"thumbnail"`
		Contents  string   `json:"contents"`
	} `json:"documents"`
	Meta struct {
		TotalCount int `json:"total_count"`
		IsEnd      bool `json:"is_end"`
	} `json:"meta"`
}

// Search 按关键词或ISBN检索外部书库
func (c *Client) Search(ctx context.Context, query string, page, size int) ([]Result, error) {
	var results []Result

	err := c.breaker.Execute(func() error {
		var execErr error
		results, execErr = c.doSearch(ctx, query, page, size)
		return execErr
	})

	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpenState) {
			return nil, apperrors.New(apperrors.ErrCodeExternalAPI, "图书检索服务暂时不可用")
		}
		return nil, err
	}

	return results, nil
}

// doSearch 实际的HTTP调用
func (c *Client) doSearch(ctx context.Context, query string, page, size int) ([]Result, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("size", fmt.Sprintf("%d", size))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v3/search/book?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "构建检索请求失败")
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, "调用图书检索API失败")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Newf(apperrors.ErrCodeExternalAPI, "图书检索API返回异常状态: %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.Wrap(err, "解析检索响应失败")
	}

	results := make([]Result, 0, len(body.Documents))
	for _, doc := range body.Documents {
		results = append(results, Result{
			ISBN:        pickISBN(doc.ISBN),
			Title:       doc.Title,
			Authors:     doc.Authors,
			Publisher:   doc.Publisher,
			Price:       doc.Price * 100, // 外部API以元为单位
			CoverURL:    doc.Thumbnail,
			Description: doc.Contents,
		})
	}

	return results, nil
}

// pickISBN 外部API的isbn字段可能是"ISBN10 ISBN13"，优先取13位
func pickISBN(raw string) string {
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return ""
	}
	for _, p := range parts {
		if len(p) == 13 {
			return p
		}
	}
	return parts[len(parts)-1]
}
