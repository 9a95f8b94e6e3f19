package pricing

import (
	"reflect"
	"testing"

	"dealerdesk/models"
)

func testCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Model: "Nexon", Variant: "Smart", ColorOptions: "Flame Red, Daytona Grey", ExShowroom: 800000, OnRoadTotal: 800000},
		{Model: "Nexon", Variant: "Pure", ColorOptions: "Flame Red, Pristine White", ExShowroom: 900000, OnRoadTotal: 900000},
		{Model: "Punch", Variant: "Adventure", ColorOptions: "Daytona Grey, Meteor Bronze", ExShowroom: 600000, OnRoadTotal: 600000},
		// Duplicate model+variant row: first one must win.
		{Model: "Nexon", Variant: "Smart", ColorOptions: "Flame Red", ExShowroom: 850000, OnRoadTotal: 850000},
	}
}

func TestListModels(t *testing.T) {
	got := ListModels(testCatalog())
	want := []string{"Nexon", "Punch"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListModels = %v, want %v", got, want)
	}
}

func TestListVariants(t *testing.T) {
	catalog := testCatalog()

	t.Run("scoped to model", func(t *testing.T) {
		got := ListVariants(catalog, "Nexon")
		want := []string{"Smart", "Pure"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ListVariants(Nexon) = %v, want %v", got, want)
		}
	})

	t.Run("never leaks other models' variants", func(t *testing.T) {
		got := ListVariants(catalog, "Punch")
		for _, v := range got {
			if v == "Smart" || v == "Pure" {
				t.Errorf("ListVariants(Punch) contains Nexon variant %q", v)
			}
		}
	})

	t.Run("unknown model yields empty slice", func(t *testing.T) {
		got := ListVariants(catalog, "Safari")
		if len(got) != 0 {
			t.Errorf("ListVariants(Safari) = %v, want empty", got)
		}
	})
}

func TestListColors(t *testing.T) {
	catalog := testCatalog()

	t.Run("global scope dedupes across catalog", func(t *testing.T) {
		got := ListColors(catalog, ColorScopeGlobal, "")
		want := []string{"Flame Red", "Daytona Grey", "Pristine White", "Meteor Bronze"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ListColors(global) = %v, want %v", got, want)
		}
	})

	t.Run("model scope filters rows", func(t *testing.T) {
		got := ListColors(catalog, ColorScopeModel, "Punch")
		want := []string{"Daytona Grey", "Meteor Bronze"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ListColors(Punch) = %v, want %v", got, want)
		}
	})
}

func TestResolvePrice(t *testing.T) {
	catalog := testCatalog()

	t.Run("exact match", func(t *testing.T) {
		entry, err := ResolvePrice(catalog, "Punch", "Adventure")
		if err != nil {
			t.Fatalf("ResolvePrice returned error: %v", err)
		}
		if entry.ExShowroom != 600000 {
			t.Errorf("ExShowroom = %v, want 600000", entry.ExShowroom)
		}
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		entry, err := ResolvePrice(catalog, "Nexon", "Smart")
		if err != nil {
			t.Fatalf("ResolvePrice returned error: %v", err)
		}
		if entry.ExShowroom != 800000 {
			t.Errorf("duplicate resolution picked ExShowroom=%v, want first row (800000)", entry.ExShowroom)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := ResolvePrice(catalog, "Nexon", "Creative"); err != ErrNoPriceEntry {
			t.Errorf("err = %v, want ErrNoPriceEntry", err)
		}
	})
}
