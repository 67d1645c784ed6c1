package service

import (
	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/errors"
	"github.com/itchan-dev/qaboard/internal/logger"
)

type ReplyService interface {
	Add(creationData domain.ReplyCreationData) (domain.Reply, error)
}

type Reply struct {
	storage   BoardStorage
	validator ReplyValidator
	factory   *Factory
}

type ReplyValidator interface {
	Body(body domain.Body) error
	Author(author domain.Author) error
}

func NewReply(storage BoardStorage, validator ReplyValidator, factory *Factory) ReplyService {
	return &Reply{storage, validator, factory}
}

// Add appends a reply to the first thread whose id matches. An unknown
// thread is reported as not found and leaves the file untouched.
func (b *Reply) Add(creationData domain.ReplyCreationData) (domain.Reply, error) {
	if err := b.validator.Body(creationData.Body); err != nil {
		return domain.Reply{}, err
	}
	if err := b.validator.Author(creationData.Author); err != nil {
		return domain.Reply{}, err
	}

	reply := b.factory.NewReply(creationData.Body, creationData.Author)

	err := b.storage.Update(func(board *domain.Board) error {
		i := board.FindThread(creationData.ThreadId)
		if i < 0 {
			return errors.NotFound("Thread not found")
		}
		board.Threads[i].Replies = append(board.Threads[i].Replies, reply)
		return nil
	})
	if err != nil {
		if errors.IsNotFound(err) {
			logger.Log.Info("reply target not found", "thread_id", creationData.ThreadId)
		} else {
			logger.Log.Error("failed to save reply", "thread_id", creationData.ThreadId, "error", err)
		}
		return domain.Reply{}, err
	}

	logger.Log.Info("reply added", "thread_id", creationData.ThreadId, "id", reply.Id)
	return reply, nil
}
