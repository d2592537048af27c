package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"expensetrack/database"
	"expensetrack/models"
	"expensetrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CreateCategoryRequest 创建类别请求
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=50" example:"Food & Dining"`
	Icon        string  `json:"icon" binding:"required,max=20" example:"🍔"`
	Color       string  `json:"color" binding:"required,max=20" example:"#ef4444"`
	Budget      float64 `json:"budget" binding:"omitempty,gte=0" example:"500"`
	Description string  `json:"description" binding:"omitempty,max=200"`
}

// UpdateCategoryRequest 更新类别请求
type UpdateCategoryRequest struct {
	Name        string   `json:"name" binding:"omitempty,min=1,max=50"`
	Icon        string   `json:"icon" binding:"omitempty,max=20"`
	Color       string   `json:"color" binding:"omitempty,max=20"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	Description *string  `json:"description" binding:"omitempty,max=200"`
}

// errCategoryInUse 类别仍被消费记录引用
var errCategoryInUse = errors.New("category in use")

// List 获取所有类别及其当月消费和预算使用情况
// @Summary 获取消费类别列表
// @Description 返回所有类别，附带当月消费总额、剩余预算、预算使用率和超支标记。
// @Description 类别集合短暂不可用时整体失败，不返回部分结果。
// @Tags 类别
// @Produce json
// @Success 200 {array} service.CategoryBudget "获取成功"
// @Failure 500 {object} map[string]string "查询失败"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	report, err := service.BudgetReport(database.DB, time.Now())
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}
	c.JSON(http.StatusOK, report)
}

// BudgetStatusList 获取预算视图（仅含设置了预算的类别）
// @Summary 获取预算使用情况
// @Description 只返回 budget > 0 的类别，含 good/warning/over 状态分类
// @Tags 类别
// @Produce json
// @Success 200 {array} service.CategoryBudget "获取成功"
// @Failure 500 {object} map[string]string "查询失败"
// @Router /api/categories/budget-status [get]
func (h *CategoryHandler) BudgetStatusList(c *gin.Context) {
	report, err := service.BudgetReport(database.DB, time.Now())
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}
	c.JSON(http.StatusOK, service.BudgetStatuses(report))
}

// Get 获取单个类别
// @Summary 获取单个类别
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} models.Category "获取成功"
// @Failure 404 {object} map[string]string "类别不存在"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Category not found")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, id).Error; err != nil {
		NotFound(c, "Category not found")
		return
	}

	c.JSON(http.StatusOK, cat)
}

// Create 创建类别
// @Summary 创建消费类别
// @Description 名称必须唯一，icon 和 color 必填，budget 缺省为 0（不设预算）
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "类别信息"
// @Success 201 {object} models.Category "创建成功"
// @Failure 400 {object} map[string]string "参数错误或名称已存在"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Please provide name, icon, and color")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "Please provide name, icon, and color")
		return
	}

	// 唯一性
	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "Category already exists")
		return
	}

	cat := models.Category{
		Name:        req.Name,
		Icon:        req.Icon,
		Color:       req.Color,
		Budget:      req.Budget,
		Description: req.Description,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// Update 更新类别
// @Summary 更新消费类别
// @Description 支持修改名称、图标、颜色、预算和描述。注意：改名不会级联更新已有消费记录中的类别名。
// @Tags 类别
// @Accept json
// @Produce json
// @Param id path int true "类别ID"
// @Param request body UpdateCategoryRequest true "需要更新的字段"
// @Success 200 {object} models.Category "更新成功"
// @Failure 400 {object} map[string]string "参数错误或名称已存在"
// @Failure 404 {object} map[string]string "类别不存在"
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Category not found")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, id).Error; err != nil {
		NotFound(c, "Category not found")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			BadRequest(c, "Category name cannot be empty")
			return
		}
		var existing models.Category
		if err := database.DB.Where("name = ? AND id != ?", name, cat.ID).First(&existing).Error; err == nil {
			BadRequest(c, "Category already exists")
			return
		}
		updates["name"] = name
	}
	if req.Icon != "" {
		updates["icon"] = req.Icon
	}
	if req.Color != "" {
		updates["color"] = req.Color
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
			InternalError(c, err, "Server Error")
			return
		}
		database.DB.First(&cat, cat.ID)
	}

	c.JSON(http.StatusOK, cat)
}

// Delete 删除类别
// @Summary 删除消费类别
// @Description 类别仍被消费记录引用时拒绝删除，错误消息中包含引用数量。
// @Description 计数和删除在同一事务中执行。
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} map[string]string "删除成功"
// @Failure 400 {object} map[string]string "类别仍被引用"
// @Failure 404 {object} map[string]string "类别不存在"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		NotFound(c, "Category not found")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, id).Error; err != nil {
		NotFound(c, "Category not found")
		return
	}

	// 计数和删除放在同一事务中，缩小并发创建消费记录时的竞争窗口
	var refCount int64
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Expense{}).Where("category = ?", cat.Name).Count(&refCount).Error; err != nil {
			return err
		}
		if refCount > 0 {
			return errCategoryInUse
		}
		return tx.Delete(&cat).Error
	})
	if errors.Is(err, errCategoryInUse) {
		BadRequest(c, fmt.Sprintf("Cannot delete category. %d expense(s) are using this category.", refCount))
		return
	}
	if err != nil {
		InternalError(c, err, "Server Error")
		return
	}

	Message(c, http.StatusOK, "Category removed")
}
