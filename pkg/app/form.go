package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError a single field validation failure
// ValidError 单个字段的校验失败
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// Maps returns key -> message for field detail responses
// Maps 返回字段到错误消息的映射，用于详情响应
func (v ValidErrors) Maps() map[string]string {
	m := map[string]string{}
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindAndValid binds request parameters and translates validation failures
// BindAndValid 绑定请求参数并翻译校验失败信息
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			// 非校验类绑定错误（如 JSON 语法错误）
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		trans, _ := c.Get("trans")
		translator, ok := trans.(ut.Translator)
		if !ok {
			for _, verr := range verrs {
				errs = append(errs, &ValidError{
					Key:     verr.Field(),
					Message: verr.Error(),
				})
			}
			return false, errs
		}

		for key, value := range verrs.Translate(translator) {
			errs = append(errs, &ValidError{
				Key:     key,
				Message: value,
			})
		}
		return false, errs
	}

	return true, nil
}
