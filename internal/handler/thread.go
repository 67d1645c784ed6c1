package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/qaboard/internal/api"
	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/utils"
)

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.BoardResponse{Board: h.thread.List()})
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(w, r, h.MaxBodyBytes, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(domain.ThreadCreationData{
		Title:  body.Title,
		Body:   body.Body,
		Author: body.Author,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: thread.Id})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "thread")

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
