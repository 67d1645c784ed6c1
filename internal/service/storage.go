package service

import "github.com/itchan-dev/qaboard/internal/domain"

type BoardStorage interface {
	// Load returns the persisted board, or an empty one if there is none.
	Load() domain.Board

	// Update loads the board, applies fn and saves the result as one
	// serialized step. Nothing is saved if fn returns an error.
	Update(fn func(board *domain.Board) error) error
}
