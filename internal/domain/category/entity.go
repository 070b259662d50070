package category

import (
	"time"
)

// Category 图书分类（实体）
// 通过ParentID自引用构成分类树，根分类的ParentID为0。
type Category struct {
	ID        uint
	Name      string // 分类名（全局唯一）
	ParentID  uint   // 父分类ID（0表示根分类）
	Children  []*Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory 创建分类（工厂方法）
func NewCategory(name string, parentID uint) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	return &Category{
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsRoot 是否为根分类
func (c *Category) IsRoot() bool {
	return c.ParentID == 0
}

// BuildTree 把扁平分类列表组装为树
// 不在库中的父节点（悬挂引用）会被当作根节点处理。
func BuildTree(flat []*Category) []*Category {
	byID := make(map[uint]*Category, len(flat))
	for _, c := range flat {
		c.Children = nil
		byID[c.ID] = c
	}

	var roots []*Category
	for _, c := range flat {
		if c.IsRoot() {
			roots = append(roots, c)
			continue
		}
		parent, ok := byID[c.ParentID]
		if !ok {
			roots = append(roots, c)
			continue
		}
		parent.Children = append(parent.Children, c)
	}
	return roots
}
