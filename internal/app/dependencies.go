package app

import (
	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/config"
	"github.com/wayplan/wayplan/internal/event_bus"
	"github.com/wayplan/wayplan/internal/storage"
	"github.com/wayplan/wayplan/internal/utils"
	"github.com/wayplan/wayplan/pkg/budget"
	"github.com/wayplan/wayplan/pkg/export"
	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/packing"
)

// Dependencies holds all repositories and services a presentation layer
// drives. Every screen action maps to one synchronous service call.
type Dependencies struct {
	EventBus *event_bus.EventBus

	BudgetRepo    budget.BudgetRepo
	BudgetService budget.Service

	ItineraryRepo    itinerary.Repository
	ItineraryService itinerary.Service

	PackingRepo    packing.Repository
	PackingService packing.Service

	CsvRenderer   *export.CsvOverviewRenderer
	ExcelExporter *export.ExcelExporter

	Clock utils.Clock
}

// BuildDependencies initializes and wires all services over the given store.
func BuildDependencies(store *storage.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.BudgetRepo = budget.NewFileBudgetRepo(store, cfg.Storage.BudgetsFile)
	deps.BudgetService = budget.NewService(deps.BudgetRepo, deps.EventBus, cfg.Currency)

	deps.ItineraryRepo = itinerary.NewFileRepository(store, cfg.Storage.ItinerariesFile)
	deps.ItineraryService = itinerary.NewService(deps.ItineraryRepo, deps.EventBus, deps.Clock)

	deps.PackingRepo = packing.NewFileRepository(store, cfg.Storage.PackingListsFile)
	deps.PackingService = packing.NewService(deps.PackingRepo, deps.EventBus)

	deps.CsvRenderer = export.NewCsvOverviewRenderer()
	deps.ExcelExporter = export.NewExcelExporter()

	subscribeRefreshLogging(deps.EventBus)

	return deps
}

// subscribeRefreshLogging traces record changes on the bus. A GUI shell
// registers its own handlers next to these to know when to re-render.
func subscribeRefreshLogging(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.BudgetSaved](bus, event_bus.EventBudgetSaved,
		func(e event_bus.EventT[event_bus.BudgetSaved]) error {
			log.Debugf("budget saved for trip %q (total %.2f %s)", e.Data.TripName, e.Data.Total, e.Data.Currency)
			return nil
		})
	event_bus.SubscribeTyped[event_bus.ItinerarySaved](bus, event_bus.EventItinerarySaved,
		func(e event_bus.EventT[event_bus.ItinerarySaved]) error {
			log.Debugf("itinerary saved for trip %q (%d activities)", e.Data.TripName, e.Data.Activities)
			return nil
		})
	event_bus.SubscribeTyped[event_bus.PackingListSaved](bus, event_bus.EventPackingListSaved,
		func(e event_bus.EventT[event_bus.PackingListSaved]) error {
			log.Debugf("packing list saved for trip %q (%d items)", e.Data.TripName, e.Data.TotalItems)
			return nil
		})
	event_bus.SubscribeTyped[event_bus.TripDeleted](bus, event_bus.EventTripDeleted,
		func(e event_bus.EventT[event_bus.TripDeleted]) error {
			log.Debugf("%s record deleted for trip %q", e.Data.Domain, e.Data.TripName)
			return nil
		})
}
