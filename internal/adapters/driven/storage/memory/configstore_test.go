package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

func TestNewConfigStoreFrom_CopiesInput(t *testing.T) {
	seed := map[string]any{"llm.provider": "ollama"}
	store := NewConfigStoreFrom(seed)

	seed["llm.provider"] = "openai"

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("llm.model", "qwen-turbo"))
	require.NoError(t, store.Set("llm.model", "qwen-plus"))

	val, ok := store.Get("llm.model")
	assert.True(t, ok)
	assert.Equal(t, "qwen-plus", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStoreFrom(map[string]any{"s": "x", "n": 3})

	assert.Equal(t, "x", store.GetString("s"))
	assert.Equal(t, "", store.GetString("n"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 42, 42},
		{"int64 from toml", int64(60), 60},
		{"float64 from json", float64(7), 7},
		{"string", "12", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStoreFrom(map[string]any{"k": tt.value})
			assert.Equal(t, tt.want, store.GetInt("k"))
		})
	}
	assert.Equal(t, 0, NewConfigStore().GetInt("missing"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set(fmt.Sprintf("key.%d", n), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			_ = store.GetInt(fmt.Sprintf("key.%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.Equal(t, i, store.GetInt(fmt.Sprintf("key.%d", i)))
	}
}
