// Package code defines the business error code registry
// Package code 定义业务错误码注册表
package code

import (
	"fmt"
)

type Code struct {
	// 业务状态码
	code int
	// HTTP 状态码
	httpStatus int
	// 是否成功
	status bool
	// 错误消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code bound to an HTTP status
// NewError 注册一个绑定 HTTP 状态码的错误码
func NewError(code int, httpStatus int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, httpStatus: httpStatus, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code bound to an HTTP status
// NewSuss 注册一个绑定 HTTP 状态码的成功码
func NewSuss(code int, httpStatus int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, httpStatus: httpStatus, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
// 注册的 Code 是全局共享的，链式附加数据前必须先复制
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		httpStatus: e.httpStatus,
		status:     e.status,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

// StatusCode returns the HTTP status this code translates to
// StatusCode 返回该错误码对应的 HTTP 状态码
func (e *Code) StatusCode() int {
	return e.httpStatus
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

// WithData returns a copy carrying response data
// WithData 返回携带响应数据的副本
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails returns a copy carrying detail messages
// WithDetails 返回携带详情信息的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

// Is supports errors.Is comparison by business code
// Is 支持按业务码进行 errors.Is 比较
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return t.code == e.code
}
