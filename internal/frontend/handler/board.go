package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/errors"
	"github.com/itchan-dev/qaboard/internal/logger"
)

func (h *Handler) BoardGetHandler(w http.ResponseWriter, r *http.Request) {
	board := h.thread.List()

	var page BoardPage
	page.Open = r.URL.Query().Get("open")
	page.Validation.TitleMaxLen = h.Public.TitleMaxLen
	page.Validation.BodyMaxLen = h.Public.BodyMaxLen
	page.Validation.AuthorMaxLen = h.Public.AuthorMaxLen
	page.Threads = make([]*Thread, 0, len(board.Threads))
	for _, thread := range board.Threads {
		page.Threads = append(page.Threads, h.renderThread(thread))
	}

	h.renderTemplate(w, r, "board.html", page)
}

func (h *Handler) ThreadPostHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Public.MaxRequestBytes())
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "error", "Invalid form", "")
		return
	}

	thread, err := h.thread.Create(domain.ThreadCreationData{
		Title:  r.PostFormValue("title"),
		Body:   r.PostFormValue("body"),
		Author: r.PostFormValue("author"),
	})
	if err != nil {
		h.handleMutationError(w, r, err, "")
		return
	}

	redirectWithFlash(w, r, "success", "Question posted!", thread.Id)
}

func (h *Handler) ReplyPostHandler(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "thread")
	r.Body = http.MaxBytesReader(w, r.Body, h.Public.MaxRequestBytes())
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "error", "Invalid form", threadId)
		return
	}

	_, err := h.reply.Add(domain.ReplyCreationData{
		ThreadId: threadId,
		Body:     r.PostFormValue("body"),
		Author:   r.PostFormValue("author"),
	})
	if err != nil {
		h.handleMutationError(w, r, err, threadId)
		return
	}

	redirectWithFlash(w, r, "success", "Reply posted!", threadId)
}

// handleMutationError shows client errors as a flash on the board and
// anything else as a 500.
func (h *Handler) handleMutationError(w http.ResponseWriter, r *http.Request, err error, threadId string) {
	status := errors.StatusCode(err)
	if status >= 400 && status < 500 {
		if status == http.StatusNotFound {
			threadId = ""
		}
		redirectWithFlash(w, r, "error", err.Error(), threadId)
		return
	}
	logger.Log.Error("failed to save post", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
