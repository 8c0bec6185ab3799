package packing

// PackingItem is one row of a packing list. Items are identified by the
// (name, category) pair within their list.
type PackingItem struct {
	Name     string
	Category string
	Packed   bool
	Quantity int
}

// ItemGroup is a category together with its items, used for grouped display.
// A slice of groups keeps the first-seen category order a map would lose.
type ItemGroup struct {
	Category string
	Items    []PackingItem
}

// PackingList holds everything to pack for one trip, plus the parameters it
// was generated from.
type PackingList struct {
	TripName        string
	DestinationType string
	Duration        int
	Weather         string
	Travelers       int
	Items           []PackingItem
}

func NewList(tripName, destinationType string, duration int, weather string, travelers int) PackingList {
	return PackingList{
		TripName:        tripName,
		DestinationType: destinationType,
		Duration:        duration,
		Weather:         weather,
		Travelers:       travelers,
	}
}

// TotalItems is the sum of all item quantities.
func (l PackingList) TotalItems() int {
	total := 0
	for _, item := range l.Items {
		total += item.Quantity
	}
	return total
}

// PackedItems is the sum of quantities already marked packed.
func (l PackingList) PackedItems() int {
	packed := 0
	for _, item := range l.Items {
		if item.Packed {
			packed += item.Quantity
		}
	}
	return packed
}

// PackingProgress is the packed share in percent, 0 for an empty list.
func (l PackingList) PackingProgress() float64 {
	total := l.TotalItems()
	if total == 0 {
		return 0.0
	}
	return float64(l.PackedItems()) / float64(total) * 100
}

// AddItem adds quantity of an item. If an item with the same name and
// category already exists its quantity grows instead of adding a second row.
func (l *PackingList) AddItem(name, category string, quantity int) {
	for idx := range l.Items {
		if l.Items[idx].Name == name && l.Items[idx].Category == category {
			l.Items[idx].Quantity += quantity
			return
		}
	}
	l.Items = append(l.Items, PackingItem{Name: name, Category: category, Quantity: quantity})
}

// RemoveItem deletes the item with the given name and category and reports
// whether it existed. Removal uses the same key AddItem deduplicates on, so
// same-named items in different categories stay independent.
func (l *PackingList) RemoveItem(name, category string) bool {
	for idx, item := range l.Items {
		if item.Name == name && item.Category == category {
			l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
			return true
		}
	}
	return false
}

// TogglePacked flips the packed flag on the identified item and reports
// whether it existed.
func (l *PackingList) TogglePacked(name, category string) bool {
	for idx := range l.Items {
		if l.Items[idx].Name == name && l.Items[idx].Category == category {
			l.Items[idx].Packed = !l.Items[idx].Packed
			return true
		}
	}
	return false
}

// ItemsByCategory groups items by category, categories in first-seen order
// and items in list order within each group.
func (l PackingList) ItemsByCategory() []ItemGroup {
	groups := make([]ItemGroup, 0)
	index := map[string]int{}
	for _, item := range l.Items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(groups)
			index[item.Category] = pos
			groups = append(groups, ItemGroup{Category: item.Category})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups
}
