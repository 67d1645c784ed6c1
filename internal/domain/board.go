package domain

import "time"

// Board is the root persisted object. Threads are kept newest first by
// insertion position.
type Board struct {
	Threads []Thread `json:"threads"`
}

type Thread struct {
	Id        ThreadId    `json:"id"`
	Title     ThreadTitle `json:"title"`
	Body      Body        `json:"body"`
	Author    Author      `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	Replies   []Reply     `json:"replies"` // oldest first, append-only
}

type Reply struct {
	Id        ReplyId   `json:"id"`
	Body      Body      `json:"body"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title  ThreadTitle
	Body   Body
	Author Author
}

type ReplyCreationData struct {
	ThreadId ThreadId
	Body     Body
	Author   Author
}

// Normalize replaces nil slices with empty ones and moves every timestamp to
// UTC, so the persisted file never carries null for threads or replies and
// every created_at ends in "Z".
func (b *Board) Normalize() {
	if b.Threads == nil {
		b.Threads = []Thread{}
	}
	for i := range b.Threads {
		t := &b.Threads[i]
		t.CreatedAt = t.CreatedAt.UTC()
		if t.Replies == nil {
			t.Replies = []Reply{}
		}
		for j := range t.Replies {
			t.Replies[j].CreatedAt = t.Replies[j].CreatedAt.UTC()
		}
	}
}

// FindThread returns the index of the first thread with the given id, or -1.
func (b *Board) FindThread(id ThreadId) int {
	for i := range b.Threads {
		if b.Threads[i].Id == id {
			return i
		}
	}
	return -1
}
