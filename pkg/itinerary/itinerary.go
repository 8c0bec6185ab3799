package itinerary

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the nominal format for all itinerary and activity dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must use the YYYY-MM-DD format")
var ErrInvalidTimeRange = errors.New("start time must not be after end time")
var ErrActivityOutsideTrip = errors.New("activity date is outside the trip dates")

// Status of an itinerary relative to a point in time.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
	// StatusUnknown is reported when the stored dates cannot be parsed.
	StatusUnknown Status = "unknown"
)

// Activity is a single scheduled entry owned by exactly one itinerary.
type Activity struct {
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Description string
	Notes       string
	Completed   bool
}

// Validate checks the activity's own time ordering and, when the trip bounds
// are set, that the activity date falls inside them. Dates and times are in
// fixed-width ISO shapes, so plain string comparison orders them correctly.
func (a Activity) Validate(tripStart, tripEnd string) error {
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("activity %q: %w", a.Description, ErrInvalidDate)
	}
	if a.StartTime != "" && a.EndTime != "" && a.StartTime > a.EndTime {
		return fmt.Errorf("activity %q: %w", a.Description, ErrInvalidTimeRange)
	}
	if tripStart != "" && a.Date < tripStart {
		return fmt.Errorf("activity %q on %s: %w", a.Description, a.Date, ErrActivityOutsideTrip)
	}
	if tripEnd != "" && a.Date > tripEnd {
		return fmt.Errorf("activity %q on %s: %w", a.Description, a.Date, ErrActivityOutsideTrip)
	}
	return nil
}

// Itinerary is the day-by-day plan for a trip. Activities are kept ordered
// by date and start time.
type Itinerary struct {
	TripName   string
	Location   string
	StartDate  string
	EndDate    string
	TripType   string
	Activities []Activity
}

func New(tripName, location, startDate, endDate, tripType string) Itinerary {
	return Itinerary{
		TripName:  tripName,
		Location:  location,
		StartDate: startDate,
		EndDate:   endDate,
		TripType:  tripType,
	}
}

// ParseDates returns the trip bounds as time values. Presentation layers use
// it to check start <= end before handing the itinerary over.
func (i Itinerary) ParseDates() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, i.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date %q: %w", i.StartDate, ErrInvalidDate)
	}
	end, err := time.Parse(DateLayout, i.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %q: %w", i.EndDate, ErrInvalidDate)
	}
	return start, end, nil
}

// AddActivity inserts the activity keeping the (date, start time) order.
func (i *Itinerary) AddActivity(a Activity) {
	i.Activities = append(i.Activities, a)
	sort.SliceStable(i.Activities, func(x, y int) bool {
		if i.Activities[x].Date != i.Activities[y].Date {
			return i.Activities[x].Date < i.Activities[y].Date
		}
		return i.Activities[x].StartTime < i.Activities[y].StartTime
	})
}

// RemoveActivity deletes the first activity with the given description and
// reports whether one was found.
func (i *Itinerary) RemoveActivity(description string) bool {
	for idx, a := range i.Activities {
		if a.Description == description {
			i.Activities = append(i.Activities[:idx], i.Activities[idx+1:]...)
			return true
		}
	}
	return false
}

// ToggleActivityCompleted flips the completed flag on the first activity
// with the given description and reports whether one was found.
func (i *Itinerary) ToggleActivityCompleted(description string) bool {
	for idx := range i.Activities {
		if i.Activities[idx].Description == description {
			i.Activities[idx].Completed = !i.Activities[idx].Completed
			return true
		}
	}
	return false
}

// StatusAt reports whether the trip is upcoming, ongoing, or past as of the
// given moment. The end date is inclusive.
func (i Itinerary) StatusAt(now time.Time) Status {
	start, end, err := i.ParseDates()
	if err != nil {
		return StatusUnknown
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(start):
		return StatusUpcoming
	case day.After(end):
		return StatusPast
	default:
		return StatusOngoing
	}
}
