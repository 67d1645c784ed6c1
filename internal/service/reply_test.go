package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/itchan-dev/qaboard/internal/domain"
	internal_errors "github.com/itchan-dev/qaboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedThread creates a thread through the thread service and returns it.
func seedThread(t *testing.T, storage *MockBoardStorage, factory *Factory, title string) domain.Thread {
	t.Helper()
	thread, err := NewThread(storage, &MockValidator{}, factory).Create(domain.ThreadCreationData{Title: title, Body: "body"})
	require.NoError(t, err)
	return thread
}

func TestReplyAdd(t *testing.T) {
	t.Run("Replies are appended oldest first", func(t *testing.T) {
		// Arrange
		storage := &MockBoardStorage{}
		factory := testFactory()
		thread := seedThread(t, storage, factory, "question")
		service := NewReply(storage, &MockValidator{}, factory)

		// Act
		r1, err := service.Add(domain.ReplyCreationData{ThreadId: thread.Id, Body: " first ", Author: "bob"})
		require.NoError(t, err)
		r2, err := service.Add(domain.ReplyCreationData{ThreadId: thread.Id, Body: "second"})
		require.NoError(t, err)

		// Assert
		board := storage.Load()
		require.Len(t, board.Threads, 1)
		replies := board.Threads[0].Replies
		require.Len(t, replies, 2)
		assert.Equal(t, r1, replies[0])
		assert.Equal(t, r2, replies[1])
		assert.Equal(t, "first", replies[0].Body)
		assert.Equal(t, "bob", replies[0].Author)
		assert.Equal(t, "Anonymous", replies[1].Author)
	})

	t.Run("Only the matching thread changes", func(t *testing.T) {
		storage := &MockBoardStorage{}
		factory := testFactory()
		older := seedThread(t, storage, factory, "older")
		newer := seedThread(t, storage, factory, "newer")
		service := NewReply(storage, &MockValidator{}, factory)

		_, err := service.Add(domain.ReplyCreationData{ThreadId: older.Id, Body: "hi"})
		require.NoError(t, err)

		board := storage.Load()
		assert.Equal(t, newer.Id, board.Threads[0].Id)
		assert.Empty(t, board.Threads[0].Replies)
		assert.Len(t, board.Threads[1].Replies, 1)
	})

	t.Run("Missing target reports not found and writes nothing", func(t *testing.T) {
		storage := &MockBoardStorage{}
		factory := testFactory()
		seedThread(t, storage, factory, "question")
		savesBefore := storage.SaveCalls()
		before := storage.Load()
		service := NewReply(storage, &MockValidator{}, factory)

		_, err := service.Add(domain.ReplyCreationData{ThreadId: "nonexistent-id", Body: "x", Author: "A"})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))
		assert.Equal(t, savesBefore, storage.SaveCalls())
		assert.Equal(t, before, storage.Load())
	})

	t.Run("Validation error stops before storage", func(t *testing.T) {
		storage := &MockBoardStorage{}
		validationErr := internal_errors.Validation("Body is required")
		validator := &MockValidator{bodyFunc: func(string) error { return validationErr }}
		service := NewReply(storage, validator, testFactory())

		_, err := service.Add(domain.ReplyCreationData{ThreadId: "any", Body: "  "})

		assert.Equal(t, validationErr, err)
		assert.Equal(t, 0, storage.SaveCalls())
	})

	t.Run("Storage error propagates", func(t *testing.T) {
		storage := &MockBoardStorage{}
		factory := testFactory()
		thread := seedThread(t, storage, factory, "question")
		storage.saveErr = errDiskFull
		service := NewReply(storage, &MockValidator{}, factory)

		_, err := service.Add(domain.ReplyCreationData{ThreadId: thread.Id, Body: "x"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errDiskFull))
		assert.Empty(t, storage.Load().Threads[0].Replies)
	})
}
