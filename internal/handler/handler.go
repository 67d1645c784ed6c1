package handler

import (
	"github.com/itchan-dev/qaboard/internal/service"
)

// DefaultMaxBodyBytes caps JSON request bodies unless setup overrides it.
const DefaultMaxBodyBytes = 1 << 20

type Handler struct {
	thread service.ThreadService
	reply  service.ReplyService

	MaxBodyBytes int64
}

func New(thread service.ThreadService, reply service.ReplyService) *Handler {
	return &Handler{thread: thread, reply: reply, MaxBodyBytes: DefaultMaxBodyBytes}
}
