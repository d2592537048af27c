package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"expensetrack/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 查询类别
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Food & Dining").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "color", "budget", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "Food & Dining", "🍔", "#ef4444", 500.0, time.Now(), time.Now(), nil))

	// INSERT expense
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":150.50,"category":"Food & Dining","description":"Lunch","date":"2024-03-15"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 150.50, resp["amount"])
	assert.Equal(t, "Food & Dining", resp["category"])
	assert.Equal(t, "Lunch", resp["description"])
	// 未传支付方式时缺省为 Cash
	assert.Equal(t, "Cash", resp["paymentMethod"])
	// 空标签序列化为 []，不是 null
	assert.Equal(t, []interface{}{}, resp["tags"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_InvalidCategory(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Nonexistent").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":99,"category":"Nonexistent","description":"test"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid category: Nonexistent")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_MissingFields(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	// 缺少 description
	body := `{"amount":99,"category":"Food & Dining"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide amount, category, and description")
}

func TestExpenseHandler_Create_InvalidDate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Food & Dining").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Food & Dining"))

	router := gin.New()
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"amount":99,"category":"Food & Dining","description":"test","date":"not-a-date"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "category", "description", "date", "payment_method", "tags", "notes", "is_recurring", "recurring_frequency", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, 200.0, "Shopping", "Shoes", time.Now(), "Card", "gift,sale", "", false, "none", time.Now(), time.Now(), nil).
			AddRow(1, 99.99, "Food & Dining", "Lunch", time.Now(), "Cash", "", "", false, "none", time.Now(), time.Now(), nil))

	router := gin.New()
	router.GET("/expenses", NewExpenseHandler().List)

	req := httptest.NewRequest("GET", "/expenses?category=Shopping&minAmount=50", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Shoes", resp[0]["description"])
	assert.Equal(t, []interface{}{"gift", "sale"}, resp[0]["tags"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.GET("/expenses", NewExpenseHandler().List)

	req := httptest.NewRequest("GET", "/expenses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// 空结果返回 []，不是 null
	assert.Equal(t, "[]", w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_InvalidParams(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/expenses", NewExpenseHandler().List)

	cases := []struct {
		query string
		want  string
	}{
		{"?minAmount=abc", "invalid minAmount: abc"},
		{"?maxAmount=12x", "invalid maxAmount: 12x"},
		{"?startDate=2024-13-45", "invalid startDate: 2024-13-45"},
		{"?endDate=oops", "invalid endDate: oops"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/expenses"+tc.query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code, tc.query)
		assert.Contains(t, w.Body.String(), tc.want)
	}
}

func TestExpenseHandler_Get_MalformedID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/expenses/:id", NewExpenseHandler().Get)

	// 非数字 ID 与不存在的记录一样返回 404
	req := httptest.NewRequest("GET", "/expenses/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Expense not found")
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.GET("/expenses/:id", NewExpenseHandler().Get)

	req := httptest.NewRequest("GET", "/expenses/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Expense not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// 先查询记录
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "category", "description", "date", "payment_method", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 99.99, "Food & Dining", "Lunch", now, "Cash", now, now, nil))

	// UPDATE
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 重新读取
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "category", "description", "date", "payment_method", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 120.00, "Food & Dining", "Dinner", now, "Cash", now, now, nil))

	router := gin.New()
	router.PUT("/expenses/:id", NewExpenseHandler().Update)

	body := `{"amount":120,"description":"Dinner"}`
	req := httptest.NewRequest("PUT", "/expenses/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 120.0, resp["amount"])
	assert.Equal(t, "Dinner", resp["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "category", "description", "date", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 99.99, "Food & Dining", "Lunch", now, now, now, nil))

	// 软删除走 UPDATE
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/expenses/:id", NewExpenseHandler().Delete)

	req := httptest.NewRequest("DELETE", "/expenses/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Expense removed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_BulkDelete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/expenses", NewExpenseHandler().BulkDelete)

	body := `{"ids":[1,2,3]}`
	req := httptest.NewRequest("DELETE", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "3 expense(s) removed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_BulkDelete_EmptyIDs(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.DELETE("/expenses", NewExpenseHandler().BulkDelete)

	body := `{"ids":[]}`
	req := httptest.NewRequest("DELETE", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide expense IDs to delete")
}

func TestExpenseHandler_GetStats(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	statCols := []string{"group_key", "count", "total", "avg", "max", "min"}
	// 按类别分组
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(statCols).
			AddRow("Food & Dining", 3, 600.0, 200.0, 300.0, 100.0).
			AddRow("Shopping", 1, 150.0, 150.0, 150.0, 150.0))
	// 按支付方式分组
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(statCols).
			AddRow("Cash", 4, 750.0, 187.5, 300.0, 100.0))
	// 整体统计
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"count", "total", "avg", "max", "min"}).
			AddRow(4, 750.0, 187.5, 300.0, 100.0))
	// 最近 30 天趋势
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"day", "total", "count"}).
			AddRow("2024-03-14", 450.0, 2).
			AddRow("2024-03-15", 300.0, 2))

	router := gin.New()
	router.GET("/expenses/stats", NewExpenseHandler().GetStats)

	req := httptest.NewRequest("GET", "/expenses/stats?month=3&year=2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	categoryStats, ok := resp["categoryStats"].([]interface{})
	require.True(t, ok)
	require.Len(t, categoryStats, 2)
	first := categoryStats[0].(map[string]interface{})
	assert.Equal(t, "Food & Dining", first["key"])
	assert.Equal(t, 600.0, first["total"])

	assert.Equal(t, 750.0, resp["totalAmount"])
	assert.Equal(t, 4.0, resp["totalCount"])
	assert.Equal(t, 187.5, resp["avgExpense"])
	assert.Equal(t, 300.0, resp["maxExpense"])
	assert.Equal(t, 100.0, resp["minExpense"])

	dailyTrend, ok := resp["dailyTrend"].([]interface{})
	require.True(t, ok)
	require.Len(t, dailyTrend, 2)
	assert.Equal(t, "2024-03-14", dailyTrend[0].(map[string]interface{})["date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_GetStats_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/expenses/stats", NewExpenseHandler().GetStats)

	req := httptest.NewRequest("GET", "/expenses/stats?month=13&year=2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "invalid month: 13")
}
