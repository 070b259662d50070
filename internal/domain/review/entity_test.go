package review

import (
	"testing"
)

// TestNewReview 创建评论的校验
func TestNewReview(t *testing.T) {
	rv, err := NewReview(1, 2, 4, "不错", "值得一读")
	if err != nil {
		t.Fatalf("创建评论期望成功: %v", err)
	}
	if !rv.IsActive() {
		t.Error("新评论应为active状态")
	}
	if rv.Rating != 4 {
		t.Errorf("期望评分4，实际%d", rv.Rating)
	}
}

// TestNewReview_InvalidRating 评分越界
func TestNewReview_InvalidRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		if _, err := NewReview(1, 2, rating, "", "内容"); err != ErrInvalidRating {
			t.Errorf("评分%d期望ErrInvalidRating，实际%v", rating, err)
		}
	}
}

// TestNewReview_EmptyContent 内容为空
func TestNewReview_EmptyContent(t *testing.T) {
	if _, err := NewReview(1, 2, 3, "标题", ""); err != ErrEmptyContent {
		t.Errorf("期望ErrEmptyContent，实际%v", err)
	}
}

// TestUpdateContent 修改评论返回旧评分
func TestUpdateContent(t *testing.T) {
	rv, _ := NewReview(1, 2, 4, "旧标题", "旧内容")

	oldRating, err := rv.UpdateContent(2, "新标题", "新内容")
	if err != nil {
		t.Fatalf("修改期望成功: %v", err)
	}
	if oldRating != 4 {
		t.Errorf("期望旧评分4，实际%d", oldRating)
	}
	if rv.Rating != 2 || rv.Content != "新内容" {
		t.Errorf("修改未生效: rating=%d content=%q", rv.Rating, rv.Content)
	}
}

// TestMarkDeleted 软删除
func TestMarkDeleted(t *testing.T) {
	rv, _ := NewReview(1, 2, 4, "", "内容")

	rv.MarkDeleted()
	if rv.IsActive() {
		t.Error("删除后不应为active")
	}
	if rv.Status != StatusDeleted {
		t.Errorf("期望status=deleted，实际%s", rv.Status)
	}
}

// TestIsOwnedBy 归属检查
func TestIsOwnedBy(t *testing.T) {
	rv, _ := NewReview(7, 2, 4, "", "内容")
	if !rv.IsOwnedBy(7) {
		t.Error("期望评论属于用户7")
	}
	if rv.IsOwnedBy(8) {
		t.Error("评论不应属于用户8")
	}
}
