package service

import (
	"time"

	"expensetrack/models"

	"gorm.io/gorm"
)

// GroupStat 单个分组的统计结果
type GroupStat struct {
	Key     string  `json:"key" gorm:"column:group_key"`
	Total   float64 `json:"total" gorm:"column:total"`
	Count   int64   `json:"count" gorm:"column:count"`
	Average float64 `json:"avg" gorm:"column:avg"`
	Max     float64 `json:"max" gorm:"column:max"`
	Min     float64 `json:"min" gorm:"column:min"`
}

// Summary 不分组的整体统计
type Summary struct {
	TotalAmount float64 `gorm:"column:total"`
	TotalCount  int64   `gorm:"column:count"`
	Average     float64 `gorm:"column:avg"`
	Max         float64 `gorm:"column:max"`
	Min         float64 `gorm:"column:min"`
}

// DayStat 单日统计
type DayStat struct {
	Day   string  `json:"date" gorm:"column:day"`
	Total float64 `json:"total" gorm:"column:total"`
	Count int64   `json:"count" gorm:"column:count"`
}

// GroupBy 对已筛选的记录集按 keyColumn 分组统计金额。
// 分组按总金额倒序排列，总金额相同时按分组键升序，保证结果确定。
// keyColumn 必须是可信的列名，不能来自用户输入。
func GroupBy(q *gorm.DB, keyColumn string) ([]GroupStat, error) {
	stats := make([]GroupStat, 0)
	err := q.
		Select(keyColumn + " AS group_key, " +
			"COUNT(*) AS count, " +
			"COALESCE(SUM(amount), 0) AS total, " +
			"COALESCE(AVG(amount), 0) AS avg, " +
			"COALESCE(MAX(amount), 0) AS max, " +
			"COALESCE(MIN(amount), 0) AS min").
		Group(keyColumn).
		Order("total DESC, group_key ASC").
		Scan(&stats).Error
	return stats, err
}

// Overall 对已筛选的记录集计算整体统计，空集返回全零而不是错误
func Overall(q *gorm.DB) (Summary, error) {
	var s Summary
	err := q.
		Select("COUNT(*) AS count, " +
			"COALESCE(SUM(amount), 0) AS total, " +
			"COALESCE(AVG(amount), 0) AS avg, " +
			"COALESCE(MAX(amount), 0) AS max, " +
			"COALESCE(MIN(amount), 0) AS min").
		Scan(&s).Error
	return s, err
}

// DailyTrend 最近 30 天的每日消费统计，按日期升序。
// 时间窗口固定为 now 往前 30 天，不受统计接口自身的筛选条件影响。
func DailyTrend(db *gorm.DB, now time.Time) ([]DayStat, error) {
	since := now.AddDate(0, 0, -30)
	days := make([]DayStat, 0)
	err := db.Model(&models.Expense{}).
		Select("DATE_FORMAT(date, '%Y-%m-%d') AS day, " +
			"COALESCE(SUM(amount), 0) AS total, " +
			"COUNT(*) AS count").
		Where("date >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&days).Error
	return days, err
}

// MonthRange 返回 ref 所在自然月的第一个和最后一个时刻（ref 所在时区）
func MonthRange(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
