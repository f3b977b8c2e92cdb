package main

import "testing"

func TestCookingTierBreakpoints(t *testing.T) {
	tests := []struct {
		low  int
		want int
	}{
		{15, 0},
		{16, 1},
		{37, 1},
		{53, 1},
		{54, 2},
		{61, 2},
		{70, 2},
		{71, 3},
		{102, 3},
		{103, 4},
		{149, 4},
	}
	for _, tc := range tests {
		if got := cookingTier(tc.low); got != tc.want {
			t.Errorf("cookingTier(%d) = %d, want %d", tc.low, got, tc.want)
		}
	}
}

func TestCatalogShape(t *testing.T) {
	if len(cookingCatalog) != 20 {
		t.Fatalf("expected 20 cooking entries, got %d", len(cookingCatalog))
	}
	if len(runeCatalog) != 7 {
		t.Fatalf("expected 7 rune entries, got %d", len(runeCatalog))
	}
	for name, r := range cookingCatalog {
		if r.Low < 16 || r.High > 149 || r.Low >= r.High {
			t.Errorf("cooking entry %q has range out of bounds: %+v", name, r)
		}
		if cookingTier(r.Low) == 0 {
			t.Errorf("cooking entry %q fits no tier bucket (low=%d)", name, r.Low)
		}
	}
	for name, r := range runeCatalog {
		if r.Low < 206 || r.High > 2557 || r.Low >= r.High {
			t.Errorf("rune entry %q has range out of bounds: %+v", name, r)
		}
	}
}

func TestCatalogKnownEntries(t *testing.T) {
	if r := cookingCatalog["라면"]; r.High != 85 {
		t.Fatalf("unexpected 라면 range: %+v", r)
	}
	if r := runeCatalog["치유"]; r != (PriceRange{Low: 292, High: 341}) {
		t.Fatalf("unexpected 치유 range: %+v", r)
	}
}

func TestCatalogForSelectsByCategory(t *testing.T) {
	if _, ok := catalogFor(CategoryCooking)["라면"]; !ok {
		t.Fatal("cooking catalog missing 라면")
	}
	if _, ok := catalogFor(CategoryRune)["치유"]; !ok {
		t.Fatal("rune catalog missing 치유")
	}
	if _, ok := catalogFor(CategoryRune)["라면"]; ok {
		t.Fatal("rune catalog should not contain dishes")
	}
}
