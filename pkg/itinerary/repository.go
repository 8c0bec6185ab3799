package itinerary

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/storage"
)

type Repository interface {
	// LoadAll reads every stored itinerary, keyed by trip name.
	LoadAll(ctx context.Context) (map[string]Itinerary, error)
	// SaveAll writes the whole collection, replacing the file.
	SaveAll(ctx context.Context, itineraries map[string]Itinerary) error
}

// itineraryDoc is the persisted shape. The enclosing object key is the trip
// name; trip_title mirrors it so the file stays readable on its own.
type itineraryDoc struct {
	TripTitle  string        `json:"trip_title"`
	Location   string        `json:"location"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	TripType   string        `json:"trip_type"`
	Activities []activityDoc `json:"activities"`
}

type activityDoc struct {
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	IsCompleted bool   `json:"is_completed"`
}

type FileRepository struct {
	store    *storage.Store
	filename string
}

func NewFileRepository(store *storage.Store, filename string) *FileRepository {
	return &FileRepository{store: store, filename: filename}
}

func (r *FileRepository) LoadAll(ctx context.Context) (map[string]Itinerary, error) {
	docs, err := r.store.Load(r.filename)
	if err != nil {
		return nil, err
	}

	itineraries := make(map[string]Itinerary, len(docs))
	for tripName, raw := range docs {
		var doc itineraryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			err := fmt.Errorf("could not parse itinerary for trip %q: %w", tripName, err)
			log.Error(err)
			return nil, err
		}
		itineraries[tripName] = fromDoc(tripName, doc)
	}
	return itineraries, nil
}

func (r *FileRepository) SaveAll(ctx context.Context, itineraries map[string]Itinerary) error {
	docs := make(map[string]json.RawMessage, len(itineraries))
	for tripName, it := range itineraries {
		raw, err := json.Marshal(toDoc(it))
		if err != nil {
			err := fmt.Errorf("could not serialize itinerary for trip %q: %w", tripName, err)
			log.Error(err)
			return err
		}
		docs[tripName] = raw
	}
	return r.store.Save(r.filename, docs)
}

func toDoc(it Itinerary) itineraryDoc {
	activities := make([]activityDoc, 0, len(it.Activities))
	for _, a := range it.Activities {
		activities = append(activities, activityDoc{
			Date:        a.Date,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Location:    a.Location,
			Description: a.Description,
			Notes:       a.Notes,
			IsCompleted: a.Completed,
		})
	}
	return itineraryDoc{
		TripTitle:  it.TripName,
		Location:   it.Location,
		StartDate:  it.StartDate,
		EndDate:    it.EndDate,
		TripType:   it.TripType,
		Activities: activities,
	}
}

func fromDoc(tripName string, doc itineraryDoc) Itinerary {
	it := New(tripName, doc.Location, doc.StartDate, doc.EndDate, doc.TripType)
	for _, a := range doc.Activities {
		it.Activities = append(it.Activities, Activity{
			Date:        a.Date,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Location:    a.Location,
			Description: a.Description,
			Notes:       a.Notes,
			Completed:   a.IsCompleted,
		})
	}
	return it
}
