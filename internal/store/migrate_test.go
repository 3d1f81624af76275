package store

import (
	"sort"
	"testing"
)

func TestMigrationsAreOrderedAndUnique(t *testing.T) {
	ids := make([]string, 0, len(migrations))
	seen := map[string]bool{}
	for _, m := range migrations {
		if m.ID == "" || m.Run == nil {
			t.Fatalf("migration %+v incomplete", m.ID)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate migration id %q", m.ID)
		}
		seen[m.ID] = true
		ids = append(ids, m.ID)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("migrations must be listed in order: %v", ids)
	}
}
