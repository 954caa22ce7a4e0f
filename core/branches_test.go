package core

import (
	"reflect"
	"testing"
)

func TestDefaultRegistry_KnownCities(t *testing.T) {
	reg := DefaultRegistry()

	tests := map[string]string{
		"London": "123 Business Street, London, UK",
		"Paris":  "456 Rue de Commerce, Paris, France",
		"Berlin": "789 Geschäftsstraße, Berlin, Germany",
	}

	for city, address := range tests {
		t.Run(city, func(t *testing.T) {
			b, err := reg.Lookup(city)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Address != address {
				t.Errorf("got %q, want %q", b.Address, address)
			}
			if b.City != city {
				t.Errorf("expected key %q, got %q", city, b.City)
			}
		})
	}
}

func TestRegistry_LookupIsCaseSensitive(t *testing.T) {
	_, err := DefaultRegistry().Lookup("london")
	if !IsNotFoundError(err) {
		t.Fatalf("expected not found for lower-case key, got %v", err)
	}
}

func TestRegistry_UnknownCity(t *testing.T) {
	b, err := DefaultRegistry().Lookup("Nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown city")
	}
	if !IsNotFoundError(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if b != (Branch{}) {
		t.Errorf("expected zero branch, got %+v", b)
	}
}

func TestRegistry_OrderAndCopies(t *testing.T) {
	reg := DefaultRegistry()

	if got := reg.Cities(); !reflect.DeepEqual(got, []string{"London", "Paris", "Berlin"}) {
		t.Errorf("unexpected order: %v", got)
	}

	all := reg.All()
	all[0].Manager = "Someone Else"

	b, _ := reg.Lookup("London")
	if b.Manager != "Джон Смит" {
		t.Errorf("registry was mutated through All(): %q", b.Manager)
	}

	cities := reg.Cities()
	cities[0] = "Madrid"
	if reg.Cities()[0] != "London" {
		t.Error("registry was mutated through Cities()")
	}
}

func TestNewRegistry_KeepsFirstDuplicate(t *testing.T) {
	reg := NewRegistry(
		Branch{City: "Oslo", Title: "first"},
		Branch{City: "Oslo", Title: "second"},
	)

	if reg.Len() != 1 {
		t.Fatalf("expected 1 branch, got %d", reg.Len())
	}
	b, _ := reg.Lookup("Oslo")
	if b.Title != "first" {
		t.Errorf("expected first entry to win, got %q", b.Title)
	}
}

func TestRegistry_Links(t *testing.T) {
	links := DefaultRegistry().Links()
	want := []Link{
		{Label: "Лондон", Path: "/branches/London"},
		{Label: "Париж", Path: "/branches/Paris"},
		{Label: "Берлин", Path: "/branches/Berlin"},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("got %+v, want %+v", links, want)
	}
}
