package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/qaboard/internal/api"
	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "thread")

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(w, r, h.MaxBodyBytes, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Add(domain.ReplyCreationData{
		ThreadId: threadId,
		Body:     body.Body,
		Author:   body.Author,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreatedResponse{Id: reply.Id})
}
