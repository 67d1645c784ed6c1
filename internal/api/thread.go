package api

import (
	"github.com/itchan-dev/qaboard/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title  string `json:"title" validate:"required,max=1000"`
	Body   string `json:"body" validate:"required,max=100000"`
	Author string `json:"author,omitempty" validate:"max=1000"`
}

// Response DTOs

// BoardResponse wraps the whole board
type BoardResponse struct {
	domain.Board
}

// ThreadResponse wraps a full thread with replies
type ThreadResponse struct {
	domain.Thread
}

// CreatedResponse returns the id of a created thread or reply
type CreatedResponse struct {
	Id string `json:"id"`
}
