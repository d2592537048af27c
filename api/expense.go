package api

import (
	"errors"
	"fmt"
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

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Amount             float64  `json:"amount" binding:"required,gt=0" example:"150.50"`
	Category           string   `json:"category" binding:"required" example:"Food & Dining"`
	Description        string   `json:"description" binding:"required,max=200" example:"Lunch"`
	Date               string   `json:"date" example:"2024-03-15"`
	PaymentMethod      string   `json:"paymentMethod" example:"Cash"`
	Tags               []string `json:"tags"`
	Notes              string   `json:"notes"`
	IsRecurring        bool     `json:"isRecurring"`
	RecurringFrequency string   `json:"recurringFrequency" example:"monthly"`
}

// UpdateExpenseRequest 更新消费记录请求，指针字段区分"未传"和"清空"
type UpdateExpenseRequest struct {
	Amount             float64   `json:"amount" binding:"omitempty,gt=0"`
	Category           string    `json:"category"`
	Description        string    `json:"description" binding:"omitempty,max=200"`
	Date               string    `json:"date"`
	PaymentMethod      string    `json:"paymentMethod"`
	Tags               *[]string `json:"tags"`
	Notes              *string   `json:"notes"`
	IsRecurring        *bool     `json:"isRecurring"`
	RecurringFrequency *string   `json:"recurringFrequency"`
}

// BulkDeleteRequest 批量删除请求
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// expenseCategoryExists 校验类别是否存在（来源于数据库）
func expenseCategoryExists(name string) (bool, error) {
	var cat models.Category
	err := database.DB.Where("name = ?", name).First(&cat).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 按类别、支付方式、日期区间、金额区间、标签和描述关键字筛选消费记录，所有条件为与关系
// @Tags 消费记录
// @Produce json
// @Param category query string false "类别（精确匹配）"
// @Param paymentMethod query string false "支付方式（精确匹配）"
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)，包含当天"
// @Param search query string false "描述关键字（不区分大小写）"
// @Param minAmount query number false "最小金额（含）"
// @Param maxAmount query number false "最大金额（含）"
// @Param tags query string false "标签，多个用逗号分隔，任一命中即可"
// @Param sort query string false "排序" Enums(amount-asc,amount-desc,date-asc,date-desc) default(date-desc)
// @Success 200 {array} models.Expense "获取成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	filter := service.ExpenseFilter{
		Category:      c.Query("category"),
		PaymentMethod: c.Query("paymentMethod"),
		Search:        c.Query("search"),
		Tags:          splitTags(c.Query("tags")),
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
	if filter.MinAmount, err = queryFloat(c, "minAmount"); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if filter.MaxAmount, err = queryFloat(c, "maxAmount"); err != nil {
		BadRequest(c, err.Error())
		return
	}

	expenses := make([]models.Expense, 0)
	q := filter.Apply(database.DB.Model(&models.Expense{}))
	if err := q.Order(service.SortOrder(c.Query("sort"))).Find(&expenses).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 金额必须大于 0，类别必须已存在，日期缺省为当前时间
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 201 {object} models.Expense "创建成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Please provide amount, category, and description")
		return
	}

	// 写入时校验类别，避免写入悬空的类别名
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "Please provide amount, category, and description")
		return
	}
	exists, err := expenseCategoryExists(req.Category)
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}
	if !exists {
		BadRequest(c, "Invalid category: "+req.Category)
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		BadRequest(c, "Invalid payment method: "+paymentMethod)
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
		if date, err = parseDate(req.Date); err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	expense := models.Expense{
		Amount:             req.Amount,
		Category:           req.Category,
		Description:        req.Description,
		Date:               date,
		PaymentMethod:      paymentMethod,
		Tags:               models.TagList(req.Tags),
		Notes:              req.Notes,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: frequency,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} models.Expense "获取成功"
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body UpdateExpenseRequest true "需要更新的字段"
// @Success 200 {object} models.Expense "更新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "Expense not found")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Amount must be greater than 0")
		return
	}

	updates := make(map[string]interface{})
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.Category != "" {
		category := strings.TrimSpace(req.Category)
		exists, err := expenseCategoryExists(category)
		if err != nil {
			InternalError(c, err, "Server Error")
			return
		}
		if !exists {
			BadRequest(c, "Invalid category: "+category)
			return
		}
		updates["category"] = category
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		updates["date"] = date
	}
	if req.PaymentMethod != "" {
		if !models.ValidPaymentMethod(req.PaymentMethod) {
			BadRequest(c, "Invalid payment method: "+req.PaymentMethod)
			return
		}
		updates["payment_method"] = req.PaymentMethod
	}
	if req.Tags != nil {
		updates["tags"] = models.TagList(*req.Tags)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
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
		if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, err, "Server Error")
			return
		}
		// 重新获取更新后的记录
		database.DB.First(&expense, expense.ID)
	}

	c.JSON(http.StatusOK, expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} map[string]string "删除成功"
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "Expense not found")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense removed", "id": strconv.FormatUint(uint64(id), 10)})
}

// BulkDelete 批量删除消费记录
// @Summary 批量删除消费记录
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "要删除的ID列表"
// @Success 200 {object} map[string]string "删除成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/expenses [delete]
func (h *ExpenseHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Please provide expense IDs to delete")
		return
	}

	result := database.DB.Delete(&models.Expense{}, req.IDs)
	if result.Error != nil {
		InternalError(c, result.Error, "Server Error")
		return
	}

	Message(c, http.StatusOK, fmt.Sprintf("%d expense(s) removed", result.RowsAffected))
}

// GetStats 获取消费统计
// @Summary 获取消费统计
// @Description 返回按类别和支付方式分组的统计、整体统计以及最近 30 天的每日趋势。
// @Description 时间范围可用 month+year（自然月）或 startDate/endDate 指定；
// @Description 每日趋势固定为最近 30 天，不受时间范围参数影响。
// @Tags 消费记录
// @Produce json
// @Param month query int false "月份 (1-12)，与 year 搭配使用"
// @Param year query int false "年份 (2024)"
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/expenses/stats [get]
func (h *ExpenseHandler) GetStats(c *gin.Context) {
	var filter service.ExpenseFilter

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
	} else {
		var err error
		if filter.StartDate, err = queryDate(c, "startDate", false); err != nil {
			BadRequest(c, err.Error())
			return
		}
		if filter.EndDate, err = queryDate(c, "endDate", true); err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	expenseQuery := func() *gorm.DB {
		return filter.Apply(database.DB.Model(&models.Expense{}))
	}

	categoryStats, err := service.GroupBy(expenseQuery(), "category")
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	paymentMethodStats, err := service.GroupBy(expenseQuery(), "payment_method")
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	summary, err := service.Overall(expenseQuery())
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	// 每日趋势固定取最近 30 天，与上面的筛选无关
	dailyTrend, err := service.DailyTrend(database.DB, time.Now())
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryStats":      categoryStats,
		"paymentMethodStats": paymentMethodStats,
		"dailyTrend":         dailyTrend,
		"totalAmount":        summary.TotalAmount,
		"totalCount":         summary.TotalCount,
		"avgExpense":         summary.Average,
		"maxExpense":         summary.Max,
		"minExpense":         summary.Min,
	})
}
