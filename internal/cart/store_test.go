package cart

import "testing"

func TestStoreCreatesCartPerSession(t *testing.T) {
	s := NewStore()
	a := s.Get("sess-a")
	b := s.Get("sess-b")

	if a == b {
		t.Fatalf("expected distinct carts per session")
	}
	if got := s.Get("sess-a"); got != a {
		t.Fatalf("expected same cart on repeat lookup")
	}
}

func TestStoreDrop(t *testing.T) {
	s := NewStore()
	a := s.Get("sess-a")
	a.AddItem(menuItem("m1", 100), nil, 1, restoPizza)

	s.Drop("sess-a")
	if got := s.Get("sess-a"); len(got.Items) != 0 {
		t.Fatalf("expected fresh cart after drop, got %d items", len(got.Items))
	}
}
