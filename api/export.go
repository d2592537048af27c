package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"expensetrack/database"
	"expensetrack/models"
	"expensetrack/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// 导出文件的固定列
var exportHeaders = []string{"date", "description", "category", "amount", "paymentMethod", "notes"}

// exportExpenses 按可选的日期范围查询待导出的消费记录
func exportExpenses(c *gin.Context) ([]models.Expense, bool) {
	var filter service.ExpenseFilter
	var err error
	if filter.StartDate, err = queryDate(c, "startDate", false); err != nil {
		BadRequest(c, err.Error())
		return nil, false
	}
	if filter.EndDate, err = queryDate(c, "endDate", true); err != nil {
		BadRequest(c, err.Error())
		return nil, false
	}

	var expenses []models.Expense
	q := filter.Apply(database.DB.Model(&models.Expense{}))
	if err := q.Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, err, "Server Error")
		return nil, false
	}
	return expenses, true
}

func exportRow(expense models.Expense) []string {
	return []string{
		expense.Date.Format("2006-01-02"),
		expense.Description,
		expense.Category,
		fmt.Sprintf("%.2f", expense.Amount),
		expense.PaymentMethod,
		expense.Notes,
	}
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Description 按日期范围导出消费记录，列固定为 date, description, category, amount, paymentMethod, notes
// @Tags 导出
// @Produce text/csv
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/expenses/export [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, ok := exportExpenses(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 正确识别编码
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, err, "Error generating CSV")
		return
	}
	for _, expense := range expenses {
		if err := writer.Write(exportRow(expense)); err != nil {
			InternalError(c, err, "Error generating CSV")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, err, "Error generating CSV")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=expenses.csv")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Description 按日期范围导出消费记录为 xlsx 文件，列与 CSV 导出一致
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/expenses/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, ok := exportExpenses(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}
	endCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCol, headerStyle)

	for rowIdx, expense := range expenses {
		row := exportRow(expense)
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			// 金额列写入数字，便于在表格中求和
			if exportHeaders[colIdx] == "amount" {
				f.SetCellValue(sheetName, cell, expense.Amount)
			} else {
				f.SetCellValue(sheetName, cell, value)
			}
		}
	}

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "C", 24)
	f.SetColWidth(sheetName, "D", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, err, "Error generating Excel file")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=expenses.xlsx")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
