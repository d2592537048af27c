package service

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ExpenseFilter 消费记录筛选条件，零值字段表示不筛选。
// 所有条件之间为与（AND）关系。
type ExpenseFilter struct {
	Category      string
	PaymentMethod string
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
	MinAmount     *float64
	MaxAmount     *float64
	Tags          []string
}

// Apply 将筛选条件转换为查询的 WHERE 子句
func (f ExpenseFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", f.PaymentMethod)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	if f.Search != "" {
		// 描述字段不区分大小写的子串匹配
		q = q.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if len(f.Tags) > 0 {
		// 记录标签集合与给定列表有交集即命中
		conds := make([]string, 0, len(f.Tags))
		args := make([]interface{}, 0, len(f.Tags))
		for _, tag := range f.Tags {
			conds = append(conds, "FIND_IN_SET(?, tags) > 0")
			args = append(args, tag)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return q
}

// IncomeFilter 收入记录筛选条件
type IncomeFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// Apply 将筛选条件转换为查询的 WHERE 子句
func (f IncomeFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	return q
}

// SortOrder 将 API 的排序参数映射为 ORDER BY 子句，未知值按日期倒序
func SortOrder(sort string) string {
	switch sort {
	case "amount-asc":
		return "amount ASC"
	case "amount-desc":
		return "amount DESC"
	case "date-asc":
		return "date ASC"
	case "date-desc":
		return "date DESC"
	}
	return "date DESC"
}
