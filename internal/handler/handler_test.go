package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockThreadService struct {
	MockCreate func(creationData domain.ThreadCreationData) (domain.Thread, error)
	MockGet    func(id domain.ThreadId) (domain.Thread, error)
	MockList   func() domain.Board
}

func (m *MockThreadService) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creationData)
	}
	return domain.Thread{Id: "new"}, nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.Thread, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Thread{Id: id}, nil
}

func (m *MockThreadService) List() domain.Board {
	if m.MockList != nil {
		return m.MockList()
	}
	return domain.Board{Threads: []domain.Thread{}}
}

type MockReplyService struct {
	MockAdd func(creationData domain.ReplyCreationData) (domain.Reply, error)
}

func (m *MockReplyService) Add(creationData domain.ReplyCreationData) (domain.Reply, error) {
	if m.MockAdd != nil {
		return m.MockAdd(creationData)
	}
	return domain.Reply{Id: "new"}, nil
}

// --- Helpers ---

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/v1/threads", h.GetBoard)
	r.Post("/v1/threads", h.CreateThread)
	r.Get("/v1/threads/{thread}", h.GetThread)
	r.Post("/v1/threads/{thread}/replies", h.CreateReply)
	return r
}

func serve(router http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
