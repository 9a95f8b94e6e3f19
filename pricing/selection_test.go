package pricing

import (
	"reflect"
	"testing"
)

func newTestSelection(t *testing.T) *Selection {
	t.Helper()
	s := NewSelection(ColorScopeGlobal)
	if !s.ApplyCatalog(s.Generation(), testCatalog()) {
		t.Fatal("ApplyCatalog rejected the initial load")
	}
	return s
}

func TestSelectionCascadingReset(t *testing.T) {
	s := newTestSelection(t)

	s.SelectModel("Nexon")
	if err := s.SelectVariant("Smart"); err != nil {
		t.Fatalf("SelectVariant: %v", err)
	}
	if err := s.SelectColor("Flame Red"); err != nil {
		t.Fatalf("SelectColor: %v", err)
	}
	if s.Pricing == nil {
		t.Fatal("Pricing not resolved after SelectVariant")
	}

	// Switching the model must clear everything that depended on it.
	s.SelectModel("Punch")
	if s.Variant != "" || s.Color != "" || s.Pricing != nil {
		t.Errorf("SelectModel did not cascade: variant=%q color=%q pricing=%v", s.Variant, s.Color, s.Pricing)
	}
}

func TestSelectionResetIdempotence(t *testing.T) {
	s := newTestSelection(t)

	s.SelectModel("Nexon")
	fresh := s.Variants()

	s.SelectModel("Punch")
	s.SelectModel("Nexon")
	again := s.Variants()

	if !reflect.DeepEqual(fresh, again) {
		t.Errorf("A→B→A variants %v differ from fresh selection %v", again, fresh)
	}
}

func TestSelectionVariantValidation(t *testing.T) {
	s := newTestSelection(t)

	if err := s.SelectVariant("Smart"); err != ErrNoModelSelected {
		t.Errorf("SelectVariant before model: err = %v, want ErrNoModelSelected", err)
	}

	s.SelectModel("Punch")
	if err := s.SelectVariant("Smart"); err != ErrVariantNotForModel {
		t.Errorf("foreign variant: err = %v, want ErrVariantNotForModel", err)
	}
	if s.Variant != "" || s.Pricing != nil {
		t.Error("failed variant selection mutated state")
	}
}

func TestSelectionColorValidation(t *testing.T) {
	s := newTestSelection(t)
	s.SelectModel("Nexon")

	if err := s.SelectColor("Neon Green"); err != ErrColorNotAvailable {
		t.Errorf("unknown color: err = %v, want ErrColorNotAvailable", err)
	}
	if err := s.SelectColor("Meteor Bronze"); err != nil {
		t.Errorf("global scope should accept any catalog color, got %v", err)
	}
}

func TestSelectionStaleCatalogDiscarded(t *testing.T) {
	s := NewSelection(ColorScopeGlobal)

	genA := s.Generation()
	genB := s.Generation()

	// The newer request's response lands first.
	if !s.ApplyCatalog(genB, testCatalog()) {
		t.Fatal("newer catalog rejected")
	}
	if s.ApplyCatalog(genA, nil) {
		t.Error("stale catalog response was applied over a newer one")
	}
	if len(s.Catalog()) == 0 {
		t.Error("stale apply wiped the installed catalog")
	}
}

func TestSelectionGenerationTokensAreReserved(t *testing.T) {
	s := NewSelection(ColorScopeGlobal)

	// Two loads issued back to back, before either response lands.
	genA := s.Generation()
	genB := s.Generation()
	if genB <= genA {
		t.Fatalf("tokens must be strictly increasing, got %d then %d", genA, genB)
	}

	// The older response arrives first; the newer one must still win.
	oldRows := testCatalog()[:1]
	if !s.ApplyCatalog(genA, oldRows) {
		t.Fatal("older catalog rejected")
	}
	if !s.ApplyCatalog(genB, testCatalog()) {
		t.Fatal("newer catalog discarded after the older one applied")
	}
	if len(s.Catalog()) != len(testCatalog()) {
		t.Errorf("installed catalog has %d rows, want %d", len(s.Catalog()), len(testCatalog()))
	}
}
