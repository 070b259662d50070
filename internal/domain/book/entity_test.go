package book

import (
	"testing"
)

// TestApplyReviewCreated 新增评论后的统计
// 场景：空书收到评分4和评分2的两条评论，平均分应为3.0
func TestApplyReviewCreated(t *testing.T) {
	b := &Book{}

	b.ApplyReviewCreated(4)
	if b.ReviewCount != 1 || b.AverageRating != 4.0 {
		t.Errorf("第一条评论后期望(1, 4.0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}

	b.ApplyReviewCreated(2)
	if b.ReviewCount != 2 || b.AverageRating != 3.0 {
		t.Errorf("第二条评论后期望(2, 3.0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}
}

// TestApplyReviewRatingChanged 改分后的统计
func TestApplyReviewRatingChanged(t *testing.T) {
	b := &Book{ReviewCount: 2, AverageRating: 3.0}

	// 2条评论(4,2)，把2改成4：avg = 3 + (4-2)/2 = 4
	b.ApplyReviewRatingChanged(2, 4)
	if b.ReviewCount != 2 || b.AverageRating != 4.0 {
		t.Errorf("改分后期望(2, 4.0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}
}

// TestApplyReviewRatingChanged_NoReviews 无评论时改分不应除零
func TestApplyReviewRatingChanged_NoReviews(t *testing.T) {
	b := &Book{}
	b.ApplyReviewRatingChanged(2, 4)
	if b.ReviewCount != 0 || b.AverageRating != 0 {
		t.Errorf("期望统计保持(0, 0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}
}

// TestApplyReviewRemoved 删除评论后的统计
// 场景：评分(4,2)平均3.0，删除评分4的那条后平均应为2.0
func TestApplyReviewRemoved(t *testing.T) {
	b := &Book{ReviewCount: 2, AverageRating: 3.0}

	b.ApplyReviewRemoved(4)
	if b.ReviewCount != 1 || b.AverageRating != 2.0 {
		t.Errorf("删除后期望(1, 2.0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}
}

// TestApplyReviewRemoved_LastReview 删除最后一条评论统计归零
func TestApplyReviewRemoved_LastReview(t *testing.T) {
	b := &Book{ReviewCount: 1, AverageRating: 2.0}

	b.ApplyReviewRemoved(2)
	if b.ReviewCount != 0 || b.AverageRating != 0 {
		t.Errorf("删除最后一条后期望(0, 0)，实际(%d, %v)", b.ReviewCount, b.AverageRating)
	}
}

// TestDecrStock 扣减库存
func TestDecrStock(t *testing.T) {
	b := &Book{Stock: 5}

	if err := b.DecrStock(3); err != nil {
		t.Fatalf("扣减3个期望成功，实际失败: %v", err)
	}
	if b.Stock != 2 {
		t.Errorf("期望库存2，实际%d", b.Stock)
	}

	// 库存不足
	if err := b.DecrStock(3); err != ErrInsufficientStock {
		t.Errorf("期望ErrInsufficientStock，实际%v", err)
	}
	if b.Stock != 2 {
		t.Errorf("失败的扣减不应改变库存，实际%d", b.Stock)
	}

	// 非法数量
	if err := b.DecrStock(0); err != ErrInvalidQuantity {
		t.Errorf("期望ErrInvalidQuantity，实际%v", err)
	}
}

// TestIncrStock 回补库存
func TestIncrStock(t *testing.T) {
	b := &Book{Stock: 2}

	if err := b.IncrStock(3); err != nil {
		t.Fatalf("回补期望成功，实际失败: %v", err)
	}
	if b.Stock != 5 {
		t.Errorf("期望库存5，实际%d", b.Stock)
	}

	if err := b.IncrStock(-1); err != ErrInvalidQuantity {
		t.Errorf("期望ErrInvalidQuantity，实际%v", err)
	}
}

// TestIsValidISBN ISBN格式校验
func TestIsValidISBN(t *testing.T) {
	valid := []string{
		"9787111544937",
		"978-7-111-54493-7",
		"7111544935",
		"711154493X",
	}
	for _, isbn := range valid {
		if !IsValidISBN(isbn) {
			t.Errorf("期望%q合法", isbn)
		}
	}

	invalid := []string{
		"",
		"abc",
		"12345",
		"97871115449371", // 14位
	}
	for _, isbn := range invalid {
		if IsValidISBN(isbn) {
			t.Errorf("期望%q非法", isbn)
		}
	}
}
