package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// 客户端实际会发送的日期格式：纯日期、日期时间、RFC 3339
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseDate 解析日期参数，格式错误直接拒绝而不是静默忽略
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected format YYYY-MM-DD", value)
}

// endOfDay 返回当天最后一刻，使结束日期的筛选包含当天
func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Second)
}

// parseID 解析路径中的数字 ID
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// queryDate 解析可选的日期查询参数，endOfRange 为 true 时取当天末尾
func queryDate(c *gin.Context, name string, endOfRange bool) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	if endOfRange {
		t = endOfDay(t)
	}
	return &t, nil
}

// queryFloat 解析可选的数字查询参数
func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return &v, nil
}

// splitTags 拆分逗号分隔的标签参数，去掉空白项
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
