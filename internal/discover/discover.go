// Package discover holds the read-only supplement and coaching listings.
package discover

import (
	"alcyxob/workout-tracker/internal/domain"
	"strings"
)

var supplements = []domain.Supplement{
	{Name: "Whey Protein", Shop: "Fit Gym", Category: "Protein", Price: 35, ImageURL: "https://images.pexels.com/photos/416451/pexels-photo-416451.jpeg"},
	{Name: "Creatine", Shop: "Muscle Shop", Category: "Creatine", Price: 20, ImageURL: "https://images.pexels.com/photos/416452/pexels-photo-416452.jpeg"},
	{Name: "BCAA", Shop: "Power Gym", Category: "Amino", Price: 25, ImageURL: "https://images.pexels.com/photos/416453/pexels-photo-416453.jpeg"},
}

var coaches = []domain.Coach{
	{Name: "John Doe", Location: "New York, NY", Price: 50, ImageURL: "https://randomuser.me/api/portraits/men/32.jpg"},
	{Name: "Jane Smith", Location: "Los Angeles, CA", Price: 65, ImageURL: "https://randomuser.me/api/portraits/women/44.jpg"},
	{Name: "Mike Johnson", Location: "Chicago, IL", Price: 40, ImageURL: "https://randomuser.me/api/portraits/men/45.jpg"},
}

func matches(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(strings.TrimSpace(query)))
}

// Supplements lists supplements whose name contains query, ignoring case.
// A non-empty category narrows the result to that category.
func Supplements(query, category string) []domain.Supplement {
	out := []domain.Supplement{}
	for _, s := range supplements {
		if category != "" && !strings.EqualFold(s.Category, strings.TrimSpace(category)) {
			continue
		}
		if matches(s.Name, query) {
			out = append(out, s)
		}
	}
	return out
}

// Coaches lists coaches whose name contains query, ignoring case.
func Coaches(query string) []domain.Coach {
	out := []domain.Coach{}
	for _, c := range coaches {
		if matches(c.Name, query) {
			out = append(out, c)
		}
	}
	return out
}
