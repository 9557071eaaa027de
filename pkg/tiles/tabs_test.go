package tiles

import "testing"

func TestTabs_FirstChildStartsActive(t *testing.T) {
	a, b := NewTileID(), NewTileID()
	tabs := NewTabs([]TileID{a, b})

	if tabs.Active != a {
		t.Errorf("Active = %v, want %v", tabs.Active, a)
	}
}

func TestTabs_InsertActivatesNewTab(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	tabs := NewTabs([]TileID{a, b})

	tabs.InsertChildAt(1, c)

	if tabs.Active != c {
		t.Errorf("Active = %v, want inserted %v", tabs.Active, c)
	}
	if got := tabs.ChildIDs(); got[1] != c {
		t.Errorf("ChildIDs()[1] = %v, want %v", got[1], c)
	}
}

func TestTabs_RemoveActivePrefersPreviousSibling(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	tabs := NewTabs([]TileID{a, b, c})
	tabs.SetActive(b)

	tabs.RemoveChild(b)

	if tabs.Active != a {
		t.Errorf("Active = %v, want previous sibling %v", tabs.Active, a)
	}
}

func TestTabs_RemoveFirstActiveFallsForward(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	tabs := NewTabs([]TileID{a, b, c})

	tabs.RemoveChild(a)

	if tabs.Active != b {
		t.Errorf("Active = %v, want %v", tabs.Active, b)
	}
}

func TestTabs_RemoveInactiveKeepsActive(t *testing.T) {
	a, b, c := NewTileID(), NewTileID(), NewTileID()
	tabs := NewTabs([]TileID{a, b, c})
	tabs.SetActive(c)

	tabs.RemoveChild(a)

	if tabs.Active != c {
		t.Errorf("Active = %v, want unchanged %v", tabs.Active, c)
	}
}

func TestTabs_RemoveLastChildClearsActive(t *testing.T) {
	a := NewTileID()
	tabs := NewTabs([]TileID{a})

	tabs.RemoveChild(a)

	if !tabs.Active.IsNil() {
		t.Errorf("Active = %v, want nil", tabs.Active)
	}
	if !tabs.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestTabs_SetActiveRefusesNonChild(t *testing.T) {
	a, b := NewTileID(), NewTileID()
	tabs := NewTabs([]TileID{a})

	if tabs.SetActive(b) {
		t.Error("SetActive(non-child) = true, want false")
	}
	if tabs.Active != a {
		t.Errorf("Active = %v, want %v", tabs.Active, a)
	}
}
