package app

import (
	"github.com/timeleft/timeleft/internal/config"
	"github.com/timeleft/timeleft/internal/metrics"
	"github.com/timeleft/timeleft/internal/utils"
	"github.com/timeleft/timeleft/pkg/mcpserver"
	"github.com/timeleft/timeleft/pkg/progress"
	"github.com/timeleft/timeleft/pkg/widget"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock utils.Clock

	ProgressService progress.Service

	WidgetStore   *widget.Store
	WidgetHandler *widget.Handler

	Metrics *metrics.Provider

	MCPServer *mcpserver.Server
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.ProgressService = progress.NewService(deps.Clock)

	deps.WidgetStore = widget.NewStore(cfg.Widget.Path)
	deps.WidgetHandler = widget.NewHandler(deps.WidgetStore)

	if cfg.Metrics.Enabled {
		provider, err := metrics.Setup()
		if err != nil {
			return nil, err
		}
		deps.Metrics = provider
	}

	deps.MCPServer = mcpserver.New(deps.ProgressService, deps.WidgetStore, deps.Metrics, cfg.Widget.Domain)

	return deps, nil
}
