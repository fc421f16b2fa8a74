// Package app provides the unified HTTP response envelope and request helpers
// Package app 提供统一的 HTTP 响应结构和请求辅助方法
package app

import (
	"net/http"
	"strings"

	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Ctx *gin.Context
}

type Pager struct {
	Page      int `json:"page"`      // Page number // 页码
	PageSize  int `json:"pageSize"`  // Page size // 每页数量
	TotalRows int `json:"totalRows"` // Total rows // 总行数
}

type ListRes struct {
	List  interface{} `json:"list"`  // Data list // 数据清单
	Pager Pager       `json:"pager"` // Pagination info // 翻页信息
}

// Res is the unified response structure: Code/Status/Msg/Data
// Optional field Details uses omitempty (will not be serialized if nil)
// Res 是统一的响应结构：Code/Status/Msg/Data
// 可选字段 Details 使用 omitempty（nil 则不会被序列化）
type Res struct {
	Code    int         `json:"code"`
	Status  bool        `json:"status"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToResponse output to browser: unified use of Res, HTTP status from the code object
// ToResponse 输出到浏览器：统一使用 Res，HTTP 状态码来自 code 对象
func (r *Response) ToResponse(codeObj *code.Code) {
	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.Lang.GetMessage(),
		Data:    codeObj.Data(),
	}

	if codeObj.HaveDetails() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.send(codeObj.StatusCode(), content)
}

// ToResponseListWithConfig outputs list response using ListRes as Data,
// building the pager with the pagination config the handler applied
// ToResponseListWithConfig 输出列表响应，使用 ListRes 作为 Data，
// 分页信息按处理器实际应用的分页配置构建
func (r *Response) ToResponseListWithConfig(codeObj *code.Code, list interface{}, totalRows int, cfg PaginationConfig) {
	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.Lang.GetMessage(),
		Data: ListRes{
			List:  list,
			Pager: *NewPagerWithConfig(r.Ctx, cfg, totalRows),
		},
	}

	r.send(codeObj.StatusCode(), content)
}

// ToResponseList outputs list response using the default pagination config
// ToResponseList 输出列表响应，使用默认分页配置
func (r *Response) ToResponseList(codeObj *code.Code, list interface{}, totalRows int) {
	r.ToResponseListWithConfig(codeObj, list, totalRows, DefaultPaginationConfig)
}

// ToResponseNoContent responds 204 without a body
// ToResponseNoContent 返回无响应体的 204
func (r *Response) ToResponseNoContent() {
	r.Ctx.Status(http.StatusNoContent)
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
