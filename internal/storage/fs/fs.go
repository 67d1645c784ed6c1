// Package fs persists the whole board as a single JSON file.
package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/logger"
	"github.com/itchan-dev/qaboard/internal/service"
)

type Storage struct {
	path string
	mu   sync.Mutex // serializes Update
}

// Ensure Storage struct implements the interface at compile time.
var _ service.BoardStorage = (*Storage)(nil)

func New(path string) (*Storage, error) {
	p := filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory for %s: %w", p, err)
	}

	return &Storage{path: p}, nil
}

func (s *Storage) Path() string {
	return s.path
}

// Load reads the board from disk. It never fails: a missing file is an empty
// board, and an unreadable or unparsable file is an empty board plus a
// warning and a copy of the bad bytes at <path>.corrupt.
func (s *Storage) Load() domain.Board {
	board := domain.Board{Threads: []domain.Thread{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.Debug("board file absent, starting empty", "path", s.path)
			return board
		}
		corruptLoads.Inc()
		logger.Log.Warn("can't read board file, starting empty", "path", s.path, "error", err)
		return board
	}

	if err := json.Unmarshal(data, &board); err != nil {
		corruptLoads.Inc()
		logger.Log.Warn("board file is corrupt, starting empty", "path", s.path, "error", err)
		s.preserveCorrupt(data)
		return domain.Board{Threads: []domain.Thread{}}
	}

	board.Normalize()
	return board
}

// preserveCorrupt keeps the unparsable content so the next Save does not
// destroy the only copy. Best effort.
func (s *Storage) preserveCorrupt(data []byte) {
	corruptPath := s.path + ".corrupt"
	if err := os.WriteFile(corruptPath, data, 0644); err != nil {
		logger.Log.Error("failed to preserve corrupt board file", "path", corruptPath, "error", err)
	}
}

// Save writes the board to a sibling temp file and renames it over the
// target, so readers see either the old or the new file, never a partial one.
func (s *Storage) Save(board domain.Board) error {
	board.Normalize()

	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		saves.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to encode board: %w", err)
	}
	data = append(data, '\n')

	if err := writeAtomic(s.path, data); err != nil {
		saves.WithLabelValues("error").Inc()
		return err
	}

	saves.WithLabelValues("ok").Inc()
	logger.Log.Debug("board saved", "path", s.path, "threads", len(board.Threads))
	return nil
}

// Update runs load -> fn -> save while holding the store lock, so concurrent
// mutations in this process can't overwrite each other. If fn returns an
// error nothing is written.
func (s *Storage) Update(fn func(board *domain.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.Load()
	if err := fn(&board); err != nil {
		return err
	}
	return s.Save(board)
}

func writeAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	// CreateTemp uses 0600
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace board file: %w", err)
	}
	return nil
}
