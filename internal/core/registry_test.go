package core

import "testing"

func TestRegistryJoinLeaveCount(t *testing.T) {
	r := NewRegistry()

	if r.Count() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Count())
	}

	r.Join("s1", "alice")
	r.Join("s2", "bob")
	if r.Count() != 2 {
		t.Fatalf("expected 2 sessions, got %d", r.Count())
	}

	name, ok := r.Leave("s1")
	if !ok || name != "alice" {
		t.Fatalf("Leave(s1) = (%q, %v), want (alice, true)", name, ok)
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 session after leave, got %d", r.Count())
	}

	// A connection that never joined leaves without side effects.
	if _, ok := r.Leave("s99"); ok {
		t.Error("Leave of unknown session reported a name")
	}
	if r.Count() != 1 {
		t.Fatalf("unknown leave changed count to %d", r.Count())
	}
}

func TestRegistryRejoinOverwrites(t *testing.T) {
	r := NewRegistry()

	r.Join("s1", "alice")
	r.Join("s1", "alicia")

	if r.Count() != 1 {
		t.Fatalf("rejoin duplicated the session, count = %d", r.Count())
	}
	name, ok := r.NameOf("s1")
	if !ok || name != "alicia" {
		t.Fatalf("NameOf(s1) = (%q, %v), want (alicia, true)", name, ok)
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.Join("s1", "alice")
	r.Join("s2", "bob")

	sid, ok := r.Resolve("bob")
	if !ok || sid != "s2" {
		t.Fatalf("Resolve(bob) = (%q, %v), want (s2, true)", sid, ok)
	}

	if _, ok := r.Resolve("carol"); ok {
		t.Error("Resolve found a session for an unknown name")
	}

	// Case-sensitive exact match.
	if _, ok := r.Resolve("Bob"); ok {
		t.Error("Resolve matched a name with different case")
	}
}

func TestRegistryResolveDuplicateNames(t *testing.T) {
	r := NewRegistry()
	r.Join("s1", "alice")
	r.Join("s2", "alice")

	// Duplicates are allowed; Resolve picks one of the holders.
	sid, ok := r.Resolve("alice")
	if !ok {
		t.Fatal("Resolve failed with duplicate names")
	}
	if sid != "s1" && sid != "s2" {
		t.Fatalf("Resolve returned unexpected session %q", sid)
	}
}

func TestRegistryListNames(t *testing.T) {
	r := NewRegistry()
	r.Join("s1", "alice")
	r.Join("s2", "bob")
	r.Join("s3", "alice")

	names := r.ListNames()
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %d", len(names))
	}

	counts := make(map[string]int)
	for _, n := range names {
		counts[n]++
	}
	if counts["alice"] != 2 || counts["bob"] != 1 {
		t.Fatalf("unexpected name multiset: %v", counts)
	}
}
