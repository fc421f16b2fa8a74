// Package timex provides a time.Time wrapper with a fixed layout for
// JSON and database round trips.
// Package timex 提供固定格式的 time.Time 包装，用于 JSON 与数据库的序列化
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout 统一的时间格式
const Layout = "2006-01-02 15:04:05"

// Time 本地时区的时间类型，零值序列化为 null
type Time time.Time

// Now 获取当前时间
func Now() Time {
	return Time(time.Now())
}

// Time 转换为标准 time.Time
func (t Time) Time() time.Time {
	return time.Time(t)
}

// IsZero 判断是否为零值时间
func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// Unix 返回 Unix 时间戳（秒）
func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

// UnixMilli 返回 Unix 时间戳（毫秒）
func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

// UnixMicro 返回 Unix 时间戳（微秒）
func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

// UnixNano 返回 Unix 时间戳（纳秒）
func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

// String 按统一格式输出
func (t Time) String() string {
	return time.Time(t).Format(Layout)
}

// MarshalJSON 实现 json.Marshaler，零值输出 null
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON 实现 json.Unmarshaler
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(`"`+Layout+`"`, s, time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value 实现 driver.Valuer，供数据库驱动写入
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.String(), nil
}

// Scan 实现 sql.Scanner，支持字符串和 time.Time 两种驱动返回
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case []byte:
		return t.scanString(string(value))
	case string:
		return t.scanString(value)
	case nil:
		*t = Time{}
		return nil
	}
	return fmt.Errorf("can not convert %v to timex.Time", v)
}

func (t *Time) scanString(s string) error {
	if s == "" {
		*t = Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}
