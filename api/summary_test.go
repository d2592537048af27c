package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryHandler_GetSummary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 支出总和
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1234.56))
	// 收入总和
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(5000.0))

	router := gin.New()
	router.GET("/summary", NewSummaryHandler().GetSummary)

	req := httptest.NewRequest("GET", "/summary?startDate=2024-03-01&endDate=2024-03-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1234.56, resp["totalExpense"])
	assert.Equal(t, 5000.0, resp["totalIncome"])
	assert.Equal(t, 5000.0-1234.56, resp["balance"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_GetSummary_InvalidDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/summary", NewSummaryHandler().GetSummary)

	req := httptest.NewRequest("GET", "/summary?endDate=2024-99-99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "invalid endDate: 2024-99-99")
}
