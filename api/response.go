package api

import (
	"log"
	"net/http"

	"expensetrack/config"

	"github.com/gin-gonic/gin"
)

// 成功响应直接返回实体或数组，失败响应统一为 {message} 结构。

// Message 返回指定状态码的 {message} 响应
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应，详情记录到服务端日志，
// release 模式下只向客户端返回 fallback
func InternalError(c *gin.Context, err error, fallback string) {
	if err != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	Message(c, http.StatusInternalServerError, config.SafeErrorMessage(err, fallback))
}
