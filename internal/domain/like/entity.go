package like

import (
	"time"
)

// TargetType 点赞目标类型
// 评论点赞与回复点赞分表存储（各自unique(user_id, target_id)），
// 领域层用同一套实体与接口表达。
type TargetType string

const (
	TargetReview  TargetType = "review"  // 图书评论
	TargetComment TargetType = "comment" // 评论的回复
)

// Like 点赞记录（实体）
// 设计说明：
// 1. 唯一索引(user_id, target_id)是"是否点过赞"的唯一真相来源，
//    应用层不做先查后插（并发下两个请求都会通过检查）
// 2. 插入命中唯一索引冲突 → 已点过赞；删除影响0行 → 尚未点赞
type Like struct {
	ID        uint
	UserID    uint       // 点赞用户ID
	TargetID  uint       // 目标ID（评论或回复）
	Target    TargetType // 目标类型
	CreatedAt time.Time
}

// NewLike 创建点赞记录（工厂方法）
func NewLike(userID, targetID uint, target TargetType) *Like {
	return &Like{
		UserID:    userID,
		TargetID:  targetID,
		Target:    target,
		CreatedAt: time.Now(),
	}
}
