package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/qaboard/internal/domain"
)

const DefaultAuthor = "Anonymous"

// Factory builds new threads and replies with fresh ids and timestamps.
type Factory struct {
	Now           func() time.Time
	NewId         func() string
	DefaultAuthor string
}

func NewFactory(defaultAuthor string) *Factory {
	if strings.TrimSpace(defaultAuthor) == "" {
		defaultAuthor = DefaultAuthor
	}
	return &Factory{
		Now:           time.Now,
		NewId:         NewId,
		DefaultAuthor: defaultAuthor,
	}
}

// NewId returns 128 random bits as 32 lowercase hex chars.
func NewId() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")
}

func (f *Factory) NewThread(title, body, author string) domain.Thread {
	return domain.Thread{
		Id:        f.NewId(),
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		Author:    f.author(author),
		CreatedAt: f.timestamp(),
		Replies:   []domain.Reply{},
	}
}

func (f *Factory) NewReply(body, author string) domain.Reply {
	return domain.Reply{
		Id:        f.NewId(),
		Body:      strings.TrimSpace(body),
		Author:    f.author(author),
		CreatedAt: f.timestamp(),
	}
}

func (f *Factory) author(author string) string {
	if a := strings.TrimSpace(author); a != "" {
		return a
	}
	return f.DefaultAuthor
}

// microsecond precision, always UTC so the JSON form ends in "Z"
func (f *Factory) timestamp() time.Time {
	return f.Now().UTC().Truncate(time.Microsecond)
}
