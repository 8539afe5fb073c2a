package menu

import (
	"strconv"
	"strings"

	"thegriller/internal/remote"
)

// FromRow converts a remote menu row into the internal Item. The
// mapping is pure: the same row always yields an identical item, no
// matter which view triggers it.
func FromRow(row remote.MenuRow) Item {
	return Item{
		ID:           strconv.Itoa(row.ID),
		Name:         row.Name,
		Description:  stringOrEmpty(row.Description),
		Price:        float64(row.Price),
		Category:     row.Category,
		Image:        row.ImageURL,
		IsVegetarian: row.IsVegetarian != 0,
		IsVegan:      row.IsVegan != 0,
		IsSpicy:      row.IsSpicy != 0,
		Allergens:    splitAllergens(row.Allergens),
		NutritionalInfo: NutritionalInfo{
			Calories: intOrZero(row.Calories),
			Protein:  stringOrDefault(row.Protein, "0g"),
			Carbs:    stringOrDefault(row.Carbs, "0g"),
			Fat:      stringOrDefault(row.Fat, "0g"),
		},
		Reviews: []Review{},
	}
}

func FromRows(rows []remote.MenuRow) []Item {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, FromRow(row))
	}
	return items
}

// splitAllergens turns "Gluten, Dairy" into {"Gluten","Dairy"}. Empty
// tokens are dropped; a missing column yields an empty list, not nil.
func splitAllergens(raw *string) []string {
	out := []string{}
	if raw == nil {
		return out
	}
	for _, tok := range strings.Split(*raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringOrDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
