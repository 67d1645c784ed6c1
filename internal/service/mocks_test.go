package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/itchan-dev/qaboard/internal/domain"
)

// --- Mocks ---

// MockBoardStorage keeps the board in memory. Board values are deep-copied
// through load/save so tests observe the same isolation a file gives.
type MockBoardStorage struct {
	mu      sync.Mutex
	board   domain.Board
	saveErr error

	saveCalls int
}

func (m *MockBoardStorage) Load() domain.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyBoard(m.board)
}

func (m *MockBoardStorage) Update(fn func(board *domain.Board) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	board := copyBoard(m.board)
	if err := fn(&board); err != nil {
		return err
	}
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.board = board
	return nil
}

func (m *MockBoardStorage) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

func copyBoard(b domain.Board) domain.Board {
	out := domain.Board{Threads: make([]domain.Thread, len(b.Threads))}
	for i, t := range b.Threads {
		t.Replies = append([]domain.Reply{}, t.Replies...)
		out.Threads[i] = t
	}
	return out
}

// MockValidator mocks both ThreadValidator and ReplyValidator.
type MockValidator struct {
	titleFunc  func(title string) error
	bodyFunc   func(body string) error
	authorFunc func(author string) error
}

func (m *MockValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockValidator) Body(body string) error {
	if m.bodyFunc != nil {
		return m.bodyFunc(body)
	}
	return nil
}

func (m *MockValidator) Author(author string) error {
	if m.authorFunc != nil {
		return m.authorFunc(author)
	}
	return nil
}

// --- Helpers ---

var errDiskFull = errors.New("disk full")

var fixedNow = time.Date(2024, 5, 1, 12, 30, 45, 123456789, time.FixedZone("UTC+3", 3*60*60))

// testFactory returns a Factory with sequential ids and a fixed clock.
func testFactory() *Factory {
	var mu sync.Mutex
	n := 0
	return &Factory{
		Now: func() time.Time { return fixedNow },
		NewId: func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id%d", n)
		},
		DefaultAuthor: DefaultAuthor,
	}
}
