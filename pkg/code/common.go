package code

import "net/http"

// 通用状态码
var (
	Success        = NewSuss(0, http.StatusOK, lang{en: "Success", zh_cn: "成功"})
	SuccessCreated = NewSuss(1, http.StatusCreated, lang{en: "Created", zh_cn: "创建成功"})
	Failed         = NewError(1000, http.StatusInternalServerError, lang{en: "Failed", zh_cn: "失败"})

	ErrorInvalidParams   = NewError(10000422, http.StatusUnprocessableEntity, lang{en: "Invalid request parameters", zh_cn: "请求参数错误"})
	ErrorNotFoundAPI     = NewError(10000404, http.StatusNotFound, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorTooManyRequests = NewError(10000429, http.StatusTooManyRequests, lang{en: "Too many requests", zh_cn: "请求过于频繁"})
	ErrorServerInternal  = NewError(10000500, http.StatusInternalServerError, lang{en: "Internal server error", zh_cn: "服务器内部错误"})
	ErrorDBQuery         = NewError(10000501, http.StatusInternalServerError, lang{en: "Database query error", zh_cn: "数据库查询错误"})
	ErrorRequestTimeout  = NewError(10000504, http.StatusGatewayTimeout, lang{en: "Request timed out", zh_cn: "请求超时"})
)

// 用户与认证状态码
var (
	// ErrorNotUserAuthToken 请求未携带 Token
	ErrorNotUserAuthToken = NewError(20000401, http.StatusUnauthorized, lang{en: "Authorization token required", zh_cn: "请求未携带认证 Token"})
	// ErrorUserAuthTokenExpired Token 已过期
	ErrorUserAuthTokenExpired = NewError(20000402, http.StatusUnauthorized, lang{en: "Authorization token expired", zh_cn: "认证 Token 已过期"})
	// ErrorUserAuthTokenSignature Token 签名不匹配
	ErrorUserAuthTokenSignature = NewError(20000403, http.StatusUnauthorized, lang{en: "Authorization token signature invalid", zh_cn: "认证 Token 签名无效"})
	// ErrorUserAuthTokenMalformed Token 无法解析
	ErrorUserAuthTokenMalformed = NewError(20000404, http.StatusUnauthorized, lang{en: "Authorization token malformed", zh_cn: "认证 Token 格式错误"})
	// ErrorUserAuthUserNotFound Token 主体用户不存在（例如签发后被删除）
	ErrorUserAuthUserNotFound = NewError(20000405, http.StatusUnauthorized, lang{en: "User for this token no longer exists", zh_cn: "Token 对应的用户不存在"})

	ErrorUserEmailAlreadyExists = NewError(20000410, http.StatusBadRequest, lang{en: "Email already registered", zh_cn: "邮箱已被注册"})
	// ErrorUserLoginFailed 登录失败，邮箱不存在与密码错误返回同一消息，防止用户枚举
	ErrorUserLoginFailed = NewError(20000411, http.StatusUnauthorized, lang{en: "Invalid email or password", zh_cn: "邮箱或密码错误"})
	ErrorUserNotFound    = NewError(20000412, http.StatusNotFound, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorUserRegister    = NewError(20000413, http.StatusInternalServerError, lang{en: "User registration failed", zh_cn: "用户注册失败"})
	ErrorUserUpdate      = NewError(20000414, http.StatusInternalServerError, lang{en: "User update failed", zh_cn: "用户更新失败"})
	ErrorTokenGenerate   = NewError(20000415, http.StatusInternalServerError, lang{en: "Token generation failed", zh_cn: "Token 生成失败"})
	ErrorPasswordNotValid = NewError(20000416, http.StatusBadRequest, lang{en: "Password not valid", zh_cn: "密码不合法"})
)

// 笔记状态码
var (
	ErrorNoteNotFound        = NewError(30000404, http.StatusNotFound, lang{en: "Note not found", zh_cn: "笔记不存在"})
	ErrorNoteAccessForbidden = NewError(30000403, http.StatusForbidden, lang{en: "No permission to access this note", zh_cn: "无权访问该笔记"})
	ErrorNoteCreateFailed    = NewError(30000500, http.StatusInternalServerError, lang{en: "Note creation failed", zh_cn: "笔记创建失败"})
	ErrorNoteUpdateFailed    = NewError(30000501, http.StatusInternalServerError, lang{en: "Note update failed", zh_cn: "笔记更新失败"})
	ErrorNoteDeleteFailed    = NewError(30000502, http.StatusInternalServerError, lang{en: "Note deletion failed", zh_cn: "笔记删除失败"})
)
