package api

import (
	"net/http"

	"expensetrack/database"
	"expensetrack/models"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 收支汇总处理器
type SummaryHandler struct{}

func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// SummaryResponse 收支汇总返回
type SummaryResponse struct {
	TotalExpense float64 `json:"totalExpense" example:"1234.56"`
	TotalIncome  float64 `json:"totalIncome" example:"5000.00"`
	Balance      float64 `json:"balance" example:"3765.44"`
}

// GetSummary 获取收支汇总
// @Summary 获取收支汇总
// @Description 按时间范围统计支出总和、收入总和与结余。不传 startDate/endDate 则统计全部时间。
// @Tags 统计
// @Produce json
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)，包含当天"
// @Success 200 {object} SummaryResponse "获取成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	startDate, err := queryDate(c, "startDate", false)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	endDate, err := queryDate(c, "endDate", true)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expenseQ := database.DB.Model(&models.Expense{})
	incomeQ := database.DB.Model(&models.Income{})
	if startDate != nil {
		expenseQ = expenseQ.Where("date >= ?", *startDate)
		incomeQ = incomeQ.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		expenseQ = expenseQ.Where("date <= ?", *endDate)
		incomeQ = incomeQ.Where("date <= ?", *endDate)
	}

	var totalExpense float64
	if err := expenseQ.Select("COALESCE(SUM(amount), 0)").Scan(&totalExpense).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}
	var totalIncome float64
	if err := incomeQ.Select("COALESCE(SUM(amount), 0)").Scan(&totalIncome).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		TotalExpense: totalExpense,
		TotalIncome:  totalIncome,
		Balance:      totalIncome - totalExpense,
	})
}
