package handler

import (
	"net/http"

	"github.com/itchan-dev/qaboard/internal/utils"
)

// Health reports the service as up. The board file is not touched: a missing
// or corrupt file still serves an empty board.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
