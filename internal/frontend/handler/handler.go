package handler

import (
	"fmt"
	"html/template"
	"io/fs"

	"github.com/itchan-dev/qaboard/internal/config"
	"github.com/itchan-dev/qaboard/internal/frontend/markdown"
	"github.com/itchan-dev/qaboard/internal/service"
)

const baseTemplate = "base.html"

type Handler struct {
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	thread        service.ThreadService
	reply         service.ReplyService
}

func New(templates map[string]*template.Template, publicCfg config.Public, textProcessor *markdown.TextProcessor, thread service.ThreadService, reply service.ReplyService) *Handler {
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		thread:        thread,
		reply:         reply,
	}
}

// LoadTemplates parses every page template together with the base layout.
func LoadTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		if page == baseTemplate {
			continue
		}
		tmpl, err := template.ParseFS(fsys, baseTemplate, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}
