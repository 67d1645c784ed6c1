package setup

import (
	"fmt"

	"github.com/itchan-dev/qaboard/internal/config"
	frontend "github.com/itchan-dev/qaboard/internal/frontend/handler"
	"github.com/itchan-dev/qaboard/internal/frontend/markdown"
	"github.com/itchan-dev/qaboard/internal/frontend/templates"
	"github.com/itchan-dev/qaboard/internal/handler"
	"github.com/itchan-dev/qaboard/internal/service"
	"github.com/itchan-dev/qaboard/internal/storage/fs"
	"github.com/itchan-dev/qaboard/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage  *fs.Storage
	Handler  *handler.Handler
	Frontend *frontend.Handler
	Config   *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := fs.New(cfg.Public.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	validator := &utils.PostValidator{
		TitleMaxLen:  cfg.Public.TitleMaxLen,
		BodyMaxLen:   cfg.Public.BodyMaxLen,
		AuthorMaxLen: cfg.Public.AuthorMaxLen,
	}
	factory := service.NewFactory(cfg.Public.DefaultAuthor)

	thread := service.NewThread(storage, validator, factory)
	reply := service.NewReply(storage, validator, factory)

	tmpls, err := frontend.LoadTemplates(templates.FS)
	if err != nil {
		return nil, err
	}

	h := handler.New(thread, reply)
	h.MaxBodyBytes = cfg.Public.MaxRequestBytes()

	return &Dependencies{
		Storage:  storage,
		Handler:  h,
		Frontend: frontend.New(tmpls, cfg.Public, markdown.New(), thread, reply),
		Config:   cfg,
	}, nil
}
