package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/itchan-dev/qaboard/internal/domain"
	"github.com/itchan-dev/qaboard/internal/logger"
	mw "github.com/itchan-dev/qaboard/internal/middleware"
)

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: initCommonTemplateData(r),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func initCommonTemplateData(r *http.Request) CommonTemplateData {
	query := r.URL.Query()
	return CommonTemplateData{
		CSRFToken: mw.GetCSRFToken(r),
		Success:   query.Get("success"),
		Error:     query.Get("error"),
	}
}

// redirectWithFlash sends the browser back to the board with a one-shot
// message, optionally expanding a thread.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, kind, msg, threadId string) {
	q := url.Values{}
	q.Set(kind, msg)
	target := "/?" + q.Encode()
	if threadId != "" {
		q.Set("open", threadId)
		target = "/?" + q.Encode() + "#thread-" + url.PathEscape(threadId)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) renderThread(thread domain.Thread) *Thread {
	rendered := &Thread{
		Thread:        thread,
		BodyHTML:      h.TextProcessor.Render(thread.Body),
		CreatedAtText: formatTime(thread.CreatedAt),
		Replies:       make([]*Reply, 0, len(thread.Replies)),
	}
	for _, reply := range thread.Replies {
		rendered.Replies = append(rendered.Replies, &Reply{
			Reply:         reply,
			BodyHTML:      h.TextProcessor.Render(reply.Body),
			CreatedAtText: formatTime(reply.CreatedAt),
		})
	}
	return rendered
}
