package packing

import "fmt"

// Rule tables for list generation. Slices, not maps, so generated lists come
// out in a stable order.

type categoryItems struct {
	category string
	items    []string
}

var baseItems = []categoryItems{
	{"Clothing", []string{"Underwear", "Socks", "Pajamas", "Change of clothes"}},
	{"Toiletries", []string{"Toothbrush", "Toothpaste", "Shampoo", "Body Wash", "Towel", "Skincare Products"}},
	{"Electronics", []string{"Phone Charger", "Power Bank", "Camera", "Earphones"}},
	{"Documents", []string{"ID Card", "Passport", "Flight Ticket", "Hotel Confirmation", "Insurance Policy"}},
	{"Medicines", []string{"Regular Medicine", "Band-aids", "Painkillers"}},
	{"Others", []string{"Wallet", "Cash", "Credit Card", "Keys"}},
}

var destinationItems = map[string][]categoryItems{
	"beach": {
		{"Clothing", []string{"Swimsuit", "Beach Shorts", "Sandals", "Sun Hat", "Sunglasses"}},
		{"Supplies", []string{"Sunscreen", "Beach Towel", "Picnic Mat", "Snorkeling Gear", "Waterproof Bag", "Beach Umbrella"}},
	},
	"mountain": {
		{"Clothing", []string{"Hiking Boots", "Windbreaker", "Long Pants", "Warm Clothes", "Hat"}},
		{"Supplies", []string{"Trekking Poles", "Headlamp", "Thermos", "First Aid Kit", "Hiking Backpack", "Map"}},
	},
	"city": {
		{"Clothing", []string{"Formal Wear", "Casual Shoes", "Jacket", "Scarf"}},
		{"Supplies", []string{"Umbrella", "Shopping Bag", "City Map", "Metro Card"}},
	},
	"countryside": {
		{"Clothing", []string{"Comfortable Shoes", "Long-Sleeve Clothes", "Insect-Proof Clothing", "Hat"}},
		{"Supplies", []string{"Insect Repellent", "Flashlight", "Picnic Utensils", "Camera Tripod"}},
	},
}

var weatherItems = map[string][]categoryItems{
	"sunny": {
		{"Sun Protection", []string{"Sunscreen", "Sunglasses", "Sun Hat", "Sun-Protective Clothing"}},
	},
	"rainy": {
		{"Rain Gear", []string{"Raincoat", "Umbrella", "Waterproof Bag", "Waterproof Shoe Covers"}},
	},
	"cold": {
		{"Warm Gear", []string{"Thick Jacket", "Thermal Underwear", "Gloves", "Scarf", "Beanie", "Hand Warmers"}},
	},
	"mild": {
		{"Moderate Weather Gear", []string{"Light Jacket", "Long-Sleeve Clothes", "Lightweight Shoes"}},
	},
}

// clothingConsumables are packed per day per traveler, capped at a week's
// worth; everything in perTravelerItems is packed once per traveler.
var clothingConsumables = map[string]bool{
	"Underwear": true, "Socks": true, "Pajamas": true, "Change of clothes": true,
}

var perTravelerItems = map[string]bool{
	"Toothbrush": true, "Towel": true, "Phone Charger": true, "Power Bank": true,
	"Camera": true, "Earphones": true, "ID Card": true, "Passport": true,
	"Flight Ticket": true, "Hotel Confirmation": true, "Insurance Policy": true,
	"Wallet": true, "Credit Card": true, "Keys": true, "Cash": true,
}

// Generate derives a starting packing list from the trip parameters. It is a
// pure function: the same inputs always produce the same items and
// quantities. Unknown destination or weather keys simply contribute nothing.
func Generate(destination string, duration int, weather string, travelers int, tripName string) PackingList {
	if tripName == "" {
		tripName = fmt.Sprintf("%s Trip", destination)
	}

	list := NewList(tripName, destination, duration, weather, travelers)
	addBaseItems(&list, duration, travelers)
	addRuleItems(&list, destinationItems[destination])
	addRuleItems(&list, weatherItems[weather])
	addDurationExtras(&list, duration)
	return list
}

func addBaseItems(list *PackingList, duration, travelers int) {
	for _, group := range baseItems {
		for _, name := range group.items {
			quantity := 1
			switch {
			case clothingConsumables[name]:
				quantity = min(duration, 7) * travelers
			case perTravelerItems[name]:
				quantity = travelers
			}
			list.AddItem(name, group.category, quantity)
		}
	}
}

func addRuleItems(list *PackingList, groups []categoryItems) {
	for _, group := range groups {
		for _, name := range group.items {
			list.AddItem(name, group.category, 1)
		}
	}
}

func addDurationExtras(list *PackingList, duration int) {
	if duration >= 7 {
		list.AddItem("Laundry Detergent", "Skincare Products", 1)
		list.AddItem("Clothes Hangers", "Others", 3)
	}
	if duration >= 14 {
		list.AddItem("Cold Medicine", "Medicine", 1)
		list.AddItem("Stomach Medicine", "Medicine", 1)
	}
}
