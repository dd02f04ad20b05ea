package app

import "testing"

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry()

	r.Register("alice", "conn-1")
	r.Register("alice", "conn-2")
	r.Register("alice", "conn-3")

	cid, ok := r.Lookup("alice")
	if !ok {
		t.Fatalf("lookup missed after register")
	}
	if cid != "conn-3" {
		t.Fatalf("lookup = %q, want conn-3", cid)
	}
}

func TestRegistry_UnregisterByConnID(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-a")
	r.Register("bob", "conn-b")

	removed := r.Unregister("conn-a")
	if len(removed) != 1 || removed[0] != "alice" {
		t.Fatalf("removed = %v, want [alice]", removed)
	}

	if _, ok := r.Lookup("alice"); ok {
		t.Fatalf("alice still registered after unregister")
	}
	if _, ok := r.Lookup("bob"); !ok {
		t.Fatalf("bob lost by alice's unregister")
	}
}

// A disconnect from a superseded connection must not tear down the newer
// mapping for the same user.
func TestRegistry_StaleDisconnectKeepsNewMapping(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-old")
	r.Register("alice", "conn-new")

	if removed := r.Unregister("conn-old"); len(removed) != 0 {
		t.Fatalf("stale unregister removed %v", removed)
	}

	cid, ok := r.Lookup("alice")
	if !ok || cid != "conn-new" {
		t.Fatalf("lookup = %q/%v, want conn-new/true", cid, ok)
	}
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-a")

	if removed := r.Unregister("never-seen"); len(removed) != 0 {
		t.Fatalf("removed = %v, want none", removed)
	}
	if _, ok := r.Lookup("alice"); !ok {
		t.Fatalf("alice lost by unknown unregister")
	}
}

func TestRegistry_UserIDsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-a")
	r.Register("bob", "conn-b")
	r.Unregister("conn-a")

	ids := r.UserIDs()
	if len(ids) != 1 || ids[0] != "bob" {
		t.Fatalf("UserIDs = %v, want [bob]", ids)
	}
}

func TestRegistry_UserOf(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-a")

	uid, ok := r.UserOf("conn-a")
	if !ok || uid != "alice" {
		t.Fatalf("UserOf = %q/%v, want alice/true", uid, ok)
	}
	if _, ok := r.UserOf("conn-b"); ok {
		t.Fatalf("UserOf hit for unknown conn")
	}
}

func TestRegistry_ReSetupSameConnRemovesBothOnDisconnect(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-a")
	r.Register("alice2", "conn-a")

	removed := r.Unregister("conn-a")
	if len(removed) != 2 {
		t.Fatalf("removed = %v, want both identities", removed)
	}
	if got := r.UserIDs(); len(got) != 0 {
		t.Fatalf("UserIDs = %v, want empty", got)
	}
}
