package service

import (
	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/errors"
	"github.com/itchan-dev/qaboard/internal/logger"
)

type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	List() domain.Board
}

type Thread struct {
	storage   BoardStorage
	validator ThreadValidator
	factory   *Factory
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
	Body(body domain.Body) error
	Author(author domain.Author) error
}

func NewThread(storage BoardStorage, validator ThreadValidator, factory *Factory) ThreadService {
	return &Thread{storage, validator, factory}
}

// Create validates the input and inserts the new thread at the head of the
// board, which is what keeps the board newest first.
func (b *Thread) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	if err := b.validator.Title(creationData.Title); err != nil {
		return domain.Thread{}, err
	}
	if err := b.validator.Body(creationData.Body); err != nil {
		return domain.Thread{}, err
	}
	if err := b.validator.Author(creationData.Author); err != nil {
		return domain.Thread{}, err
	}

	thread := b.factory.NewThread(creationData.Title, creationData.Body, creationData.Author)

	err := b.storage.Update(func(board *domain.Board) error {
		board.Threads = append([]domain.Thread{thread}, board.Threads...)
		return nil
	})
	if err != nil {
		logger.Log.Error("failed to save new thread", "id", thread.Id, "error", err)
		return domain.Thread{}, err
	}

	logger.Log.Info("thread created", "id", thread.Id, "author", thread.Author)
	return thread, nil
}

func (b *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	board := b.storage.Load()
	i := board.FindThread(id)
	if i < 0 {
		return domain.Thread{}, errors.NotFound("Thread not found")
	}
	return board.Threads[i], nil
}

func (b *Thread) List() domain.Board {
	return b.storage.Load()
}
