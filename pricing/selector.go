package pricing

import (
	"errors"
	"strings"

	"dealerdesk/models"
)

// ErrNoPriceEntry is returned when no catalog row matches a model+variant
// pair.
var ErrNoPriceEntry = errors.New("no price entry for model and variant")

// ColorScope controls which rows contribute to the color list.
type ColorScope int

const (
	// ColorScopeGlobal derives colors from the whole catalog regardless of
	// the selected model. This is the behaviour the dealership runs with:
	// every variant shares the same paint options.
	ColorScopeGlobal ColorScope = iota
	// ColorScopeModel restricts colors to rows of the selected model.
	ColorScopeModel
)

// ListModels returns the unique model names in first-seen catalog order.
func ListModels(catalog []models.CatalogEntry) []string {
	seen := make(map[string]bool, len(catalog))
	result := []string{}
	for _, entry := range catalog {
		if entry.Model == "" || seen[entry.Model] {
			continue
		}
		seen[entry.Model] = true
		result = append(result, entry.Model)
	}
	return result
}

// ListVariants returns the unique variants of a model in first-seen order.
// An unknown model yields an empty slice, not an error: the caller renders
// an empty picker.
func ListVariants(catalog []models.CatalogEntry, model string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, entry := range catalog {
		if entry.Model != model {
			continue
		}
		if entry.Variant == "" || seen[entry.Variant] {
			continue
		}
		seen[entry.Variant] = true
		result = append(result, entry.Variant)
	}
	return result
}

// ListColors returns the deduplicated color names in first-seen order.
// With ColorScopeModel only rows of the given model contribute; with
// ColorScopeGlobal the model argument is ignored.
func ListColors(catalog []models.CatalogEntry, scope ColorScope, model string) []string {
	seen := make(map[string]bool)
	result := []string{}
	for _, entry := range catalog {
		if scope == ColorScopeModel && entry.Model != model {
			continue
		}
		for _, color := range entry.Colors() {
			key := strings.ToLower(color)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, color)
		}
	}
	return result
}

// ResolvePrice finds the priced row for a model+variant pair. Matching is
// exact on both fields; when duplicate rows exist the first one in catalog
// order wins, which keeps resolution deterministic.
func ResolvePrice(catalog []models.CatalogEntry, model, variant string) (*models.CatalogEntry, error) {
	for i := range catalog {
		if catalog[i].Model == model && catalog[i].Variant == variant {
			return &catalog[i], nil
		}
	}
	return nil, ErrNoPriceEntry
}
