// Package convert provides string conversion helpers
// Package convert 提供字符串类型转换辅助方法
package convert

import "strconv"

type StrTo string

func (s StrTo) String() string {
	return string(s)
}

func (s StrTo) Int() (int, error) {
	v, err := strconv.Atoi(s.String())
	return v, err
}

// MustInt converts to int, returns 0 on failure
// MustInt 转换为 int，失败时返回 0
func (s StrTo) MustInt() int {
	v, _ := s.Int()
	return v
}

func (s StrTo) Int64() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	return v, err
}

// MustInt64 converts to int64, returns 0 on failure
// MustInt64 转换为 int64，失败时返回 0
func (s StrTo) MustInt64() int64 {
	v, _ := s.Int64()
	return v
}
