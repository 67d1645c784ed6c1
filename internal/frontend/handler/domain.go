package handler

import (
	"html/template"
	"time"

	"github.com/itchan-dev/qaboard/internal/domain"
)

// legacy display format: ISO-8601 UTC with trailing Z
const timeLayout = "2006-01-02T15:04:05.000000Z"

type Reply struct {
	domain.Reply
	BodyHTML      template.HTML
	CreatedAtText string
}

type Thread struct {
	domain.Thread
	BodyHTML      template.HTML
	CreatedAtText string
	Replies       []*Reply
}

type CommonTemplateData struct {
	CSRFToken string
	Success   string
	Error     string
}

type BoardPage struct {
	Threads    []*Thread
	Open       string // thread to show expanded
	Validation struct {
		TitleMaxLen  int
		BodyMaxLen   int
		AuthorMaxLen int
	}
}

// TemplateData wraps page-specific data with common template data.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
