package code

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLang_SwitchAndFallback(t *testing.T) {
	t.Cleanup(func() { SetGlobalDefaultLang("en") })

	require.NoError(t, SetGlobalDefaultLang("zh_cn"))
	assert.Equal(t, "zh_cn", GetGlobalDefaultLang())
	assert.Equal(t, "笔记不存在", ErrorNoteNotFound.Msg())

	// 不支持的语言回退到英文
	err := SetGlobalDefaultLang("fr")
	assert.Error(t, err)
	assert.Equal(t, "en", GetGlobalDefaultLang())
	assert.Equal(t, "Note not found", ErrorNoteNotFound.Msg())
}

// 并发请求同时切换语言和读取消息，go test -race 下不得报数据竞争
func TestLang_ConcurrentSwitch(t *testing.T) {
	t.Cleanup(func() { SetGlobalDefaultLang("en") })

	langs := []string{"en", "zh_cn"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				SetGlobalDefaultLang(langs[(n+j)%len(langs)])
				if ErrorNoteNotFound.Msg() == "" {
					t.Error("empty message during concurrent language switch")
				}
				_ = GetGlobalDefaultLang()
			}
		}(i)
	}
	wg.Wait()
}
