package pricing

import (
	"errors"

	"dealerdesk/models"
)

var (
	// ErrVariantNotForModel is returned when a variant does not belong to
	// the currently selected model.
	ErrVariantNotForModel = errors.New("variant does not belong to the selected model")
	// ErrColorNotAvailable is returned when a color is not in the color
	// list under the configured scope.
	ErrColorNotAvailable = errors.New("color is not available")
	// ErrNoModelSelected is returned when a dependent selection is made
	// before a model is chosen.
	ErrNoModelSelected = errors.New("no model selected")
)

// Selection is the explicit state object behind the quotation form: catalog
// snapshot plus the cascading model → variant → color choice. It replaces
// the original screen's ad-hoc flags with defined transitions, so the
// invariant "variant always belongs to the active model" holds by
// construction.
type Selection struct {
	catalog    []models.CatalogEntry
	generation uint64
	issued     uint64
	colorScope ColorScope

	Model   string
	Variant string
	Color   string
	Pricing *models.CatalogEntry
}

// NewSelection creates an empty selection with the given color scope
// policy.
func NewSelection(scope ColorScope) *Selection {
	return &Selection{colorScope: scope}
}

// Generation reserves the token to attach to the next catalog load. Each
// call hands out a strictly larger token, so loads issued back to back stay
// ordered even before any response has been applied; the one with the
// smaller token is stale and will be discarded.
func (s *Selection) Generation() uint64 {
	s.issued++
	return s.issued
}

// ApplyCatalog installs a freshly fetched catalog. It returns false and
// leaves the state untouched when the generation token is stale, which
// guards against a superseded fetch overwriting newer data.
func (s *Selection) ApplyCatalog(generation uint64, catalog []models.CatalogEntry) bool {
	if generation <= s.generation {
		return false
	}
	s.generation = generation
	s.catalog = catalog
	s.Reset()
	return true
}

// Catalog returns the installed catalog snapshot.
func (s *Selection) Catalog() []models.CatalogEntry {
	return s.catalog
}

// Models lists the model choices for the current catalog.
func (s *Selection) Models() []string {
	return ListModels(s.catalog)
}

// Variants lists the variant choices for the selected model.
func (s *Selection) Variants() []string {
	if s.Model == "" {
		return []string{}
	}
	return ListVariants(s.catalog, s.Model)
}

// Colors lists the color choices under the configured scope policy.
func (s *Selection) Colors() []string {
	return ListColors(s.catalog, s.colorScope, s.Model)
}

// SelectModel sets the model and clears the dependent variant, color, and
// resolved price entry. Selecting the same model again behaves exactly like
// a fresh selection.
func (s *Selection) SelectModel(model string) {
	s.Model = model
	s.Variant = ""
	s.Color = ""
	s.Pricing = nil
}

// SelectVariant validates that the variant belongs to the active model and
// resolves the price entry.
func (s *Selection) SelectVariant(variant string) error {
	if s.Model == "" {
		return ErrNoModelSelected
	}
	found := false
	for _, v := range s.Variants() {
		if v == variant {
			found = true
			break
		}
	}
	if !found {
		return ErrVariantNotForModel
	}
	entry, err := ResolvePrice(s.catalog, s.Model, variant)
	if err != nil {
		return err
	}
	s.Variant = variant
	s.Pricing = entry
	return nil
}

// SelectColor validates the color against the list under the configured
// scope.
func (s *Selection) SelectColor(color string) error {
	for _, c := range s.Colors() {
		if c == color {
			s.Color = color
			return nil
		}
	}
	return ErrColorNotAvailable
}

// Reset clears the whole selection, as happens after a quotation is shared.
func (s *Selection) Reset() {
	s.Model = ""
	s.Variant = ""
	s.Color = ""
	s.Pricing = nil
}
