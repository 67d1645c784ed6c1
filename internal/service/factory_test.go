package service

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewId(t *testing.T) {
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewId()
		require.Regexp(t, hex32, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewFactory(t *testing.T) {
	assert.Equal(t, "Anonymous", NewFactory("").DefaultAuthor)
	assert.Equal(t, "Anonymous", NewFactory("   ").DefaultAuthor)
	assert.Equal(t, "Guest", NewFactory("Guest").DefaultAuthor)
}

func TestFactoryNewThread(t *testing.T) {
	f := testFactory()

	t.Run("trims fields", func(t *testing.T) {
		thread := f.NewThread("  T  ", "  B  ", "  A  ")
		assert.Equal(t, "T", thread.Title)
		assert.Equal(t, "B", thread.Body)
		assert.Equal(t, "A", thread.Author)
	})

	t.Run("default author", func(t *testing.T) {
		assert.Equal(t, "Anonymous", f.NewThread("T", "B", "").Author)
		assert.Equal(t, "Anonymous", f.NewThread("T", "B", " \t\n").Author)
	})

	t.Run("identity and timestamp", func(t *testing.T) {
		a := f.NewThread("T", "B", "A")
		b := f.NewThread("T", "B", "A")
		assert.NotEqual(t, a.Id, b.Id)

		assert.Equal(t, time.UTC, a.CreatedAt.Location())
		assert.True(t, a.CreatedAt.Equal(fixedNow.Truncate(time.Microsecond)))
		assert.Equal(t, 0, a.CreatedAt.Nanosecond()%1000, "microsecond precision")
	})

	t.Run("replies start empty, not nil", func(t *testing.T) {
		thread := f.NewThread("T", "B", "A")
		require.NotNil(t, thread.Replies)
		assert.Empty(t, thread.Replies)

		data, err := json.Marshal(thread)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"replies":[]`)
	})

	t.Run("created_at serializes with Z suffix", func(t *testing.T) {
		data, err := json.Marshal(f.NewThread("T", "B", "A"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"created_at":"2024-05-01T09:30:45.123456Z"`)
	})
}

func TestFactoryNewReply(t *testing.T) {
	f := testFactory()

	reply := f.NewReply("  answer  ", "")
	assert.Equal(t, "answer", reply.Body)
	assert.Equal(t, "Anonymous", reply.Author)
	assert.NotEmpty(t, reply.Id)
	assert.True(t, strings.HasSuffix(reply.CreatedAt.Format(time.RFC3339Nano), "Z"))

	custom := &Factory{Now: f.Now, NewId: f.NewId, DefaultAuthor: "Guest"}
	assert.Equal(t, "Guest", custom.NewReply("x", "  ").Author)
}
