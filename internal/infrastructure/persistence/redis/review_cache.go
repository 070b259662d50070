package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// ReviewCache 热门评论榜的版本化读缓存
// 设计说明：
// 1. 缓存Key带版本号：reviews:top:v:{version}:page:{page}:limit:{limit}
//    评论有任何增删改时INCR版本号，所有旧Key瞬间"失效"（不再被读到），
//    不需要逐个删除分页Key
// 2. 版本号Key（reviews:top:version）不存在时按0处理，INCR会自动创建
// 3. 旧版本条目靠TTL（约60秒）自然过期回收
// 4. 缓存是纯加速层：读失败返回错误由调用方静默回源MySQL，
//    版本号递增失败由调用方记日志后吞掉，都不影响主流程
type ReviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReviewCache 创建评论缓存
func NewReviewCache(client *redis.Client, ttl time.Duration) *ReviewCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ReviewCache{client: client, ttl: ttl}
}

// versionKey 版本号Key
const versionKey = "reviews:top:version"

// CachedReview 缓存中的评论条目
type CachedReview struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	BookID    uint      `json:"book_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// CachedPage 缓存中的一页评论
type CachedPage struct {
	List  []CachedReview `json:"list"`
	Total int64          `json:"total"`
}

// Get 读取某一页的缓存
// 返回(nil, nil)表示未命中；返回error表示缓存服务异常（调用方回源）。
func (c *ReviewCache) Get(ctx context.Context, page, limit int) (*CachedPage, error) {
	version, err := c.currentVersion(ctx)
	if err != nil {
		return nil, err
	}

	data, err := c.client.Get(ctx, c.pageKey(version, page, limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 未命中
		}
		return nil, apperrors.Wrap(err, "读取评论缓存失败")
	}

	var cached CachedPage
	if err := json.Unmarshal(data, &cached); err != nil {
		// 脏数据当作未命中处理，回源后会被覆盖
		return nil, nil
	}

	return &cached, nil
}

// Set 写入某一页的缓存（带TTL）
func (c *ReviewCache) Set(ctx context.Context, page, limit int, cached *CachedPage) error {
	version, err := c.currentVersion(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return apperrors.Wrap(err, "序列化评论缓存失败")
	}

	if err := c.client.Set(ctx, c.pageKey(version, page, limit), data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入评论缓存失败")
	}

	return nil
}

// BumpVersion 递增版本号，使所有已缓存分页立即失效
// 评论的创建/修改/删除/点赞成功后调用。
func (c *ReviewCache) BumpVersion(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return apperrors.Wrap(err, "递增评论缓存版本失败")
	}
	return nil
}

// currentVersion 读取当前版本号，Key不存在按0处理
func (c *ReviewCache) currentVersion(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperrors.Wrap(err, "读取评论缓存版本失败")
	}
	return version, nil
}

// pageKey 分页缓存Key
func (c *ReviewCache) pageKey(version int64, page, limit int) string {
	return fmt.Sprintf("reviews:top:v:%d:page:%d:limit:%d", version, page, limit)
}
