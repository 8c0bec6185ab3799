package packing

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wayplan/wayplan/internal/storage"
)

type Repository interface {
	// LoadAll reads every stored packing list, keyed by trip name.
	LoadAll(ctx context.Context) (map[string]PackingList, error)
	// SaveAll writes the whole collection, replacing the file.
	SaveAll(ctx context.Context, lists map[string]PackingList) error
}

// listDoc is the persisted shape of one packing list; the trip name is the
// key of the enclosing JSON object.
type listDoc struct {
	DestinationType string    `json:"destination_type"`
	Duration        int       `json:"duration"`
	Weather         string    `json:"weather"`
	Travelers       int       `json:"travelers"`
	Items           []itemDoc `json:"items"`
}

type itemDoc struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	IsPacked bool   `json:"is_packed"`
	Quantity int    `json:"quantity"`
}

type FileRepository struct {
	store    *storage.Store
	filename string
}

func NewFileRepository(store *storage.Store, filename string) *FileRepository {
	return &FileRepository{store: store, filename: filename}
}

func (r *FileRepository) LoadAll(ctx context.Context) (map[string]PackingList, error) {
	docs, err := r.store.Load(r.filename)
	if err != nil {
		return nil, err
	}

	lists := make(map[string]PackingList, len(docs))
	for tripName, raw := range docs {
		var doc listDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			err := fmt.Errorf("could not parse packing list for trip %q: %w", tripName, err)
			log.Error(err)
			return nil, err
		}
		lists[tripName] = listFromDoc(tripName, doc)
	}
	return lists, nil
}

func (r *FileRepository) SaveAll(ctx context.Context, lists map[string]PackingList) error {
	docs := make(map[string]json.RawMessage, len(lists))
	for tripName, list := range lists {
		raw, err := json.Marshal(listToDoc(list))
		if err != nil {
			err := fmt.Errorf("could not serialize packing list for trip %q: %w", tripName, err)
			log.Error(err)
			return err
		}
		docs[tripName] = raw
	}
	return r.store.Save(r.filename, docs)
}

func listToDoc(list PackingList) listDoc {
	items := make([]itemDoc, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, itemDoc{
			Name:     item.Name,
			Category: item.Category,
			IsPacked: item.Packed,
			Quantity: item.Quantity,
		})
	}
	return listDoc{
		DestinationType: list.DestinationType,
		Duration:        list.Duration,
		Weather:         list.Weather,
		Travelers:       list.Travelers,
		Items:           items,
	}
}

func listFromDoc(tripName string, doc listDoc) PackingList {
	list := NewList(tripName, doc.DestinationType, doc.Duration, doc.Weather, doc.Travelers)
	for _, item := range doc.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		list.Items = append(list.Items, PackingItem{
			Name:     item.Name,
			Category: item.Category,
			Packed:   item.IsPacked,
			Quantity: quantity,
		})
	}
	return list
}
