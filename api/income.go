package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"expensetrack/database"
	"expensetrack/models"
	"expensetrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IncomeHandler 收入记录处理器
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// CreateIncomeRequest 创建收入记录请求
type CreateIncomeRequest struct {
	Amount             float64 `json:"amount" binding:"required,gt=0" example:"5000.00"`
	Source             string  `json:"source" binding:"required,max=100" example:"Acme Corp"`
	Description        string  `json:"description" binding:"omitempty,max=200"`
	Date               string  `json:"date" example:"2024-03-01"`
	Category           string  `json:"category" example:"Salary"`
	IsRecurring        bool    `json:"isRecurring"`
	RecurringFrequency string  `json:"recurringFrequency" example:"monthly"`
}

// UpdateIncomeRequest 更新收入记录请求
type UpdateIncomeRequest struct {
	Amount             float64 `json:"amount" binding:"omitempty,gt=0"`
	Source             string  `json:"source" binding:"omitempty,max=100"`
	Description        *string `json:"description" binding:"omitempty,max=200"`
	Date               string  `json:"date"`
	Category           string  `json:"category"`
	IsRecurring        *bool   `json:"isRecurring"`
	RecurringFrequency *string `json:"recurringFrequency"`
}

// List 获取收入记录列表
// @Summary 获取收入记录列表
// @Tags 收入记录
// @Produce json
// @Param category query string false "收入类别（精确匹配）"
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)，包含当天"
// @Param sort query string false "排序" Enums(amount-asc,amount-desc,date-asc,date-desc) default(date-desc)
// @Success 200 {array} models.Income "获取成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	filter := service.IncomeFilter{
		Category: c.Query("category"),
	}

	var err error
	if filter.StartDate, err = queryDate(c, "startDate", false); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if filter.EndDate, err = queryDate(c, "endDate", true); err != nil {
		BadRequest(c, err.Error())
		return
	}

	incomes := make([]models.Income, 0)
	q := filter.Apply(database.DB.Model(&models.Income{}))
	if err := q.Order(service.SortOrder(c.Query("sort"))).Find(&incomes).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 金额必须大于 0，来源必填，类别缺省为 Other
// @Tags 收入记录
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入记录信息"
// @Success 201 {object} models.Income "创建成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Please provide amount and source")
		return
	}

	req.Source = strings.TrimSpace(req.Source)
	if req.Source == "" {
		BadRequest(c, "Please provide amount and source")
		return
	}

	category := req.Category
	if category == "" {
		category = models.IncomeOther
	}
	if !models.ValidIncomeCategory(category) {
		BadRequest(c, "Invalid income category: "+category)
		return
	}

	frequency := req.RecurringFrequency
	if frequency == "" {
		frequency = models.FrequencyNone
	}
	if !models.ValidFrequency(frequency) {
		BadRequest(c, "Invalid recurring frequency: "+frequency)
		return
	}

	date := time.Now()
	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	income := models.Income{
		Amount:             req.Amount,
		Source:             req.Source,
		Description:        req.Description,
		Date:               date,
		Category:           category,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: frequency,
	}

	if err := database.DB.Create(&income).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusCreated, income)
}

// Get 获取单条收入记录
// @Summary 获取单条收入记录
// @Tags 收入记录
// @Produce json
// @Param id path int true "收入记录ID"
// @Success 200 {object} models.Income "获取成功"
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/income/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Income record not found")
		return
	}

	var income models.Income
	if err := database.DB.First(&income, id).Error; err != nil {
		NotFound(c, "Income record not found")
		return
	}

	c.JSON(http.StatusOK, income)
}

// Update 更新收入记录
// @Summary 更新收入记录
// @Tags 收入记录
// @Accept json
// @Produce json
// @Param id path int true "收入记录ID"
// @Param request body UpdateIncomeRequest true "需要更新的字段"
// @Success 200 {object} models.Income "更新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/income/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Income record not found")
		return
	}

	var income models.Income
	if err := database.DB.First(&income, id).Error; err != nil {
		NotFound(c, "Income record not found")
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Amount must be greater than 0")
		return
	}

	updates := make(map[string]interface{})
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.Source != "" {
		updates["source"] = strings.TrimSpace(req.Source)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		updates["date"] = date
	}
	if req.Category != "" {
		if !models.ValidIncomeCategory(req.Category) {
			BadRequest(c, "Invalid income category: "+req.Category)
			return
		}
		updates["category"] = req.Category
	}
	if req.IsRecurring != nil {
		updates["is_recurring"] = *req.IsRecurring
	}
	if req.RecurringFrequency != nil {
		frequency := *req.RecurringFrequency
		if frequency == "" {
			frequency = models.FrequencyNone
		}
		if !models.ValidFrequency(frequency) {
			BadRequest(c, "Invalid recurring frequency: "+frequency)
			return
		}
		updates["recurring_frequency"] = frequency
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&income).Updates(updates).Error; err != nil {
			InternalError(c, err, "Server Error")
			return
		}
		database.DB.First(&income, income.ID)
	}

	c.JSON(http.StatusOK, income)
}

// Delete 删除收入记录
// @Summary 删除收入记录
// @Tags 收入记录
// @Produce json
// @Param id path int true "收入记录ID"
// @Success 200 {object} map[string]string "删除成功"
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/income/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Income record not found")
		return
	}

	var income models.Income
	if err := database.DB.First(&income, id).Error; err != nil {
		NotFound(c, "Income record not found")
		return
	}

	if err := database.DB.Delete(&income).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	Message(c, http.StatusOK, "Income record removed")
}

// GetStats 获取收入统计
// @Summary 获取收入统计
// @Description 按收入类别分组统计，可用 month+year 指定自然月
// @Tags 收入记录
// @Produce json
// @Param month query int false "月份 (1-12)，与 year 搭配使用"
// @Param year query int false "年份 (2024)"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/income/stats [get]
func (h *IncomeHandler) GetStats(c *gin.Context) {
	var filter service.IncomeFilter

	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr != "" && yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			BadRequest(c, "invalid month: "+monthStr)
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 2000 || year > 2100 {
			BadRequest(c, "invalid year: "+yearStr)
			return
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	incomeQuery := func() *gorm.DB {
		return filter.Apply(database.DB.Model(&models.Income{}))
	}

	categoryStats, err := service.GroupBy(incomeQuery(), "category")
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	summary, err := service.Overall(incomeQuery())
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryStats": categoryStats,
		"totalAmount":   summary.TotalAmount,
		"totalCount":    summary.TotalCount,
		"avgIncome":     summary.Average,
	})
}
