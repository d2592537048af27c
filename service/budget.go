package service

import (
	"time"

	"expensetrack/models"

	"gorm.io/gorm"
)

// 预算状态分类
const (
	StatusGood    = "good"    // 使用率 <= 80%
	StatusWarning = "warning" // 80% < 使用率 <= 100%
	StatusOver    = "over"    // 使用率 > 100%
)

// CategoryBudget 类别及其当月消费和预算使用情况
type CategoryBudget struct {
	models.Category
	CurrentMonthSpending float64 `json:"currentMonthSpending"`
	BudgetRemaining      float64 `json:"budgetRemaining"`
	BudgetPercentage     float64 `json:"budgetPercentage"`
	IsOverBudget         bool    `json:"isOverBudget"`
	Status               string  `json:"status"`
}

// BudgetStatus 按预算使用率分类
func BudgetStatus(percentage float64) string {
	switch {
	case percentage > 100:
		return StatusOver
	case percentage > 80:
		return StatusWarning
	}
	return StatusGood
}

// BudgetReport 计算每个类别在 now 所在自然月的消费及预算使用情况。
// 任一查询失败则整体失败，不返回部分结果。
// now 由调用方传入，便于测试使用固定时刻。
func BudgetReport(db *gorm.DB, now time.Time) ([]CategoryBudget, error) {
	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	// 一次分组查询取出当月各类别的消费总额
	start, end := MonthRange(now)
	type spendRow struct {
		Category string  `gorm:"column:category"`
		Total    float64 `gorm:"column:total"`
	}
	var rows []spendRow
	if err := db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date <= ?", start, end).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	spent := make(map[string]float64, len(rows))
	for _, r := range rows {
		spent[r.Category] = r.Total
	}

	report := make([]CategoryBudget, 0, len(categories))
	for _, cat := range categories {
		spending := spent[cat.Name]
		remaining := cat.Budget - spending
		percentage := 0.0
		if cat.Budget > 0 {
			percentage = spending / cat.Budget * 100
		}
		report = append(report, CategoryBudget{
			Category:             cat,
			CurrentMonthSpending: spending,
			BudgetRemaining:      remaining,
			BudgetPercentage:     percentage,
			IsOverBudget:         remaining < 0,
			Status:               BudgetStatus(percentage),
		})
	}
	return report, nil
}

// BudgetStatuses 过滤出设置了预算的类别，用于预算视图
func BudgetStatuses(report []CategoryBudget) []CategoryBudget {
	filtered := make([]CategoryBudget, 0, len(report))
	for _, cb := range report {
		if cb.Budget > 0 {
			filtered = append(filtered, cb)
		}
	}
	return filtered
}
