package chat

import (
	"reflect"
	"testing"
)

func TestDirectory_firstAnnounceWins(t *testing.T) {
	d := NewDirectory()
	h1 := &Client{Send: make(chan []byte, 1)}
	h2 := &Client{Send: make(chan []byte, 1)}

	if !d.Announce("alice", h1) {
		t.Fatal("first announce should insert")
	}
	if d.Announce("alice", h2) {
		t.Fatal("second announce under a live name should be ignored")
	}

	got, ok := d.Lookup("alice")
	if !ok || got != h1 {
		t.Error("alice should still be bound to the first connection")
	}
}

func TestDirectory_removeByHandle(t *testing.T) {
	d := NewDirectory()
	h1 := &Client{Send: make(chan []byte, 1)}
	h2 := &Client{Send: make(chan []byte, 1)}

	d.Announce("alice", h1)
	d.Announce("bob", h2)

	if !d.Remove(h1) {
		t.Fatal("remove should find the entry bound to the handle")
	}
	if _, ok := d.Lookup("alice"); ok {
		t.Error("alice should be gone after remove")
	}
	if _, ok := d.Lookup("bob"); !ok {
		t.Error("bob should be untouched")
	}

	// Removing an unbound handle is a no-op.
	if d.Remove(h1) {
		t.Error("second remove should report nothing removed")
	}

	// The name is free again after removal.
	if !d.Announce("alice", h2) {
		t.Error("a removed name should be announceable again")
	}
}

func TestDirectory_namesOrder(t *testing.T) {
	d := NewDirectory()
	h1 := &Client{Send: make(chan []byte, 1)}
	h2 := &Client{Send: make(chan []byte, 1)}
	h3 := &Client{Send: make(chan []byte, 1)}

	d.Announce("carol", h1)
	d.Announce("alice", h2)
	d.Announce("bob", h3)

	if got := d.Names(); !reflect.DeepEqual(got, []string{"carol", "alice", "bob"}) {
		t.Errorf("Names() = %v, want announce order", got)
	}

	d.Remove(h2)
	if got := d.Names(); !reflect.DeepEqual(got, []string{"carol", "bob"}) {
		t.Errorf("Names() after remove = %v", got)
	}
}
