package event_bus

// Record-change notifications published by the domain services after a
// successful write. A presentation layer subscribes to these to re-render
// whichever screen shows the affected collection.

const (
	EventBudgetSaved      EventType = "budget.saved"
	EventItinerarySaved   EventType = "itinerary.saved"
	EventPackingListSaved EventType = "packing_list.saved"
	EventTripDeleted      EventType = "trip.deleted"
)

type BudgetSaved struct {
	TripName string
	Total    float64
	Currency string
}

type ItinerarySaved struct {
	TripName   string
	Location   string
	Activities int
}

type PackingListSaved struct {
	TripName   string
	TotalItems int
}

// TripDeleted is shared by all domains; Domain tells which collection the
// record was removed from ("budget", "itinerary", or "packing_list").
type TripDeleted struct {
	Domain   string
	TripName string
}
