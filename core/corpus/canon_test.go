package corpus

import "testing"

func TestCanonHas66Books(t *testing.T) {
	ids := CanonIDs()
	if len(ids) != 66 {
		t.Fatalf("canon has %d books, want 66", len(ids))
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate canon ID %q", id)
		}
		seen[id] = true
	}
}

func TestEveryCanonIDHasEnglishName(t *testing.T) {
	for _, id := range CanonIDs() {
		if EnglishName(id) == "" {
			t.Errorf("canon ID %q has no English name", id)
		}
	}
}

func TestCanonOrderEndpoints(t *testing.T) {
	if got := CanonOrder("genesis"); got != 1 {
		t.Errorf("CanonOrder(genesis) = %d, want 1", got)
	}
	if got := CanonOrder("revelation"); got != 66 {
		t.Errorf("CanonOrder(revelation) = %d, want 66", got)
	}
	if got := CanonOrder("tobit"); got != 0 {
		t.Errorf("CanonOrder(tobit) = %d, want 0", got)
	}
}

func TestIsCanonical(t *testing.T) {
	if !IsCanonical("1corinthians") {
		t.Error("1corinthians should be canonical")
	}
	if IsCanonical("Genesis") {
		t.Error("canonical IDs are lowercase; Genesis should not match")
	}
}

func TestResolveAliasVariantsMapToSameBook(t *testing.T) {
	cases := [][2]string{
		{"列王纪上", "列王记上"},
		{"列王纪下", "列王记下"},
		{"历代志上", "历代记上"},
		{"约翰一书", "约翰壹书"},
		{"约翰三书", "约翰叁书"},
	}
	for _, pair := range cases {
		a, okA := ResolveAlias(pair[0])
		b, okB := ResolveAlias(pair[1])
		if !okA || !okB {
			t.Errorf("alias pair %v not fully resolvable", pair)
			continue
		}
		if a != b {
			t.Errorf("aliases %v resolve to different IDs: %q vs %q", pair, a, b)
		}
	}
}

func TestResolveAliasTargetsAreCanonical(t *testing.T) {
	for name, id := range bookAliases {
		if !IsCanonical(id) {
			t.Errorf("alias %q maps to non-canonical ID %q", name, id)
		}
	}
}

func TestResolveAliasUnknown(t *testing.T) {
	if id, ok := ResolveAlias("多比传"); ok {
		t.Errorf("unknown book resolved to %q", id)
	}
}
