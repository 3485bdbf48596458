package catalog

import "testing"

func TestExpansionIsSupersetOfBaseInOrder(t *testing.T) {
	if len(Expansion) <= len(Base) {
		t.Fatalf("expected expansion to be strictly larger than base: %d vs %d", len(Expansion), len(Base))
	}
	for i, s := range Base {
		if Expansion[i] != s {
			t.Fatalf("expansion[%d] = %+v, want base entry %+v", i, Expansion[i], s)
		}
	}
}

func TestFrameIndexSignalIsLastAndExcludedFromPixelPool(t *testing.T) {
	for _, cat := range []Catalog{Base, Expansion} {
		marker := cat.FrameIndexSignal()
		if marker != cat[len(cat)-1] {
			t.Fatalf("frame-index signal must be the last catalogue entry")
		}
		pixel := cat.Pixel()
		if len(pixel) != len(cat)-1 {
			t.Fatalf("pixel pool should exclude exactly one entry, got %d of %d", len(pixel), len(cat))
		}
		for _, s := range pixel {
			if s == marker {
				t.Fatalf("frame-index signal %+v leaked into pixel pool", marker)
			}
		}
	}
}

func TestSelect(t *testing.T) {
	if &Select(false)[0] != &Base[0] {
		t.Fatalf("Select(false) should return Base")
	}
	if len(Select(true)) != len(Expansion) {
		t.Fatalf("Select(true) should return Expansion")
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(Expansion))
	for _, s := range Expansion {
		if seen[s.Name] {
			t.Fatalf("duplicate signal name %q in Expansion catalogue", s.Name)
		}
		seen[s.Name] = true
	}
}
