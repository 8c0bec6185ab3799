package app

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/config"
	"github.com/wayplan/wayplan/internal/storage"
)

// Application wires configuration, the JSON store, and the domain services.
// A GUI embeds it and calls services from Deps; Run only reports what the
// data directory currently holds.
type Application struct {
	Cfg   config.Application
	Store *storage.Store
	Deps  *Dependencies
}

// NewApplication constructs the full application, ready for a presentation
// layer to drive.
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	store := storage.NewStore(cfg.Storage.Dir)
	deps := BuildDependencies(store, cfg)

	return &Application{Cfg: cfg, Store: store, Deps: deps}, nil
}

// Run loads each collection once and logs the record counts. It doubles as a
// startup health check: unreadable data files surface here instead of on the
// first button click.
func (a *Application) Run() error {
	ctx := context.Background()

	budgets, err := a.Deps.BudgetService.GetTrips(ctx)
	if err != nil {
		return err
	}
	itineraries, err := a.Deps.ItineraryService.GetAll(ctx)
	if err != nil {
		return err
	}
	lists, err := a.Deps.PackingService.LoadAll(ctx)
	if err != nil {
		return err
	}

	log.Infof("data directory %s ready: %d budgets, %d itineraries, %d packing lists",
		a.Cfg.Storage.Dir, len(budgets), len(itineraries), len(lists))
	return nil
}
