package global

import (
	"fmt"
	"runtime"

	dumpx "github.com/gookit/goutil/dump"
	"go.uber.org/zap"
)

var Logger *zap.Logger

func Log() *zap.Logger {
	return Logger
}

// Dump prints values with the caller position, debugging helper
// Dump 打印变量及调用位置，调试辅助
func Dump(a ...any) {
	_, file, line, ok := runtime.Caller(1)
	if ok {
		fmt.Printf("\033[32m%s:%d:\033[0m\n", file, line)
	}
	dumpx.P(a...)
}
