package category

import (
	"testing"
)

// TestBuildTree 扁平列表组装为树
func TestBuildTree(t *testing.T) {
	flat := []*Category{
		{ID: 1, Name: "文学", ParentID: 0},
		{ID: 2, Name: "小说", ParentID: 1},
		{ID: 3, Name: "科幻小说", ParentID: 2},
		{ID: 4, Name: "技术", ParentID: 0},
	}

	roots := BuildTree(flat)
	if len(roots) != 2 {
		t.Fatalf("期望2个根分类，实际%d", len(roots))
	}

	wenxue := roots[0]
	if wenxue.Name != "文学" || len(wenxue.Children) != 1 {
		t.Fatalf("文学分类组装错误: children=%d", len(wenxue.Children))
	}
	if wenxue.Children[0].Name != "小说" || len(wenxue.Children[0].Children) != 1 {
		t.Error("小说子树组装错误")
	}
	if roots[1].Name != "技术" || len(roots[1].Children) != 0 {
		t.Error("技术分类应为无子节点的根")
	}
}

// TestBuildTree_DanglingParent 悬挂的父引用当作根处理
func TestBuildTree_DanglingParent(t *testing.T) {
	flat := []*Category{
		{ID: 2, Name: "孤儿分类", ParentID: 99}, // 父分类不在列表中
	}

	roots := BuildTree(flat)
	if len(roots) != 1 || roots[0].ID != 2 {
		t.Fatalf("悬挂引用应按根处理，实际roots=%d", len(roots))
	}
}

// TestNewCategory 创建分类校验
func TestNewCategory(t *testing.T) {
	c, err := NewCategory("文学", 0)
	if err != nil {
		t.Fatalf("创建期望成功: %v", err)
	}
	if !c.IsRoot() {
		t.Error("ParentID=0应为根分类")
	}

	if _, err := NewCategory("", 0); err != ErrEmptyName {
		t.Errorf("空名称期望ErrEmptyName，实际%v", err)
	}
}
