package code

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// lang type, used to store English and Chinese text
// lang 类型，用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

// Default language is English, guarded by lngMu for concurrent requests
// 默认语言为英文，并发请求下由 lngMu 保护
var (
	lngMu sync.RWMutex
	lng   = "en"
)

const FALLBACK_LNG = "en"

// GetMessage method returns the corresponding message according to the current language
// GetMessage 方法根据当前语言返回相应的消息
func (l lang) GetMessage() string {
	lngMu.RLock()
	current := lng
	lngMu.RUnlock()

	if current == "" {
		current = FALLBACK_LNG
	}
	val := reflect.ValueOf(l)
	field := val.FieldByName(current)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	// If the specified language is invalid, return the message of the fallback language
	// 如果指定语言无效，返回回退语言的消息
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", current)
}

// GetSupportedLanguages function returns all languages supported by the lang type
// GetSupportedLanguages 函数返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang sets the global default language
// SetGlobalDefaultLang 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	for _, supported := range GetSupportedLanguages() {
		if language == supported {
			lngMu.Lock()
			lng = language
			lngMu.Unlock()
			return nil
		}
	}
	lngMu.Lock()
	lng = FALLBACK_LNG
	lngMu.Unlock()
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// GetGlobalDefaultLang 获取全局默认语言
func GetGlobalDefaultLang() string {
	lngMu.RLock()
	defer lngMu.RUnlock()
	return lng
}
