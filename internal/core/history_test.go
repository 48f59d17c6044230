package core

import (
	"fmt"
	"testing"

	"github.com/telavir/huddle/internal/domain"
)

func TestHistoryAppendAndSnapshot(t *testing.T) {
	h := NewHistoryBuffer(100)

	for i := 0; i < 5; i++ {
		h.Append(domain.NewChatMessage("alice", fmt.Sprintf("msg %d", i)))
	}

	snap := h.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(snap))
	}
	for i, msg := range snap {
		if msg.Text != fmt.Sprintf("msg %d", i) {
			t.Fatalf("message %d out of arrival order: %q", i, msg.Text)
		}
	}
	if h.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", h.Len())
	}
}

func TestHistoryFIFOEviction(t *testing.T) {
	h := NewHistoryBuffer(100)

	for i := 0; i < 100; i++ {
		h.Append(domain.NewChatMessage("alice", fmt.Sprintf("msg %d", i)))
	}
	before := h.Snapshot()

	h.Append(domain.NewChatMessage("alice", "msg 100"))

	snap := h.Snapshot()
	if len(snap) != 100 {
		t.Fatalf("buffer exceeded cap: %d", len(snap))
	}
	if snap[0].ID != before[1].ID {
		t.Errorf("first element after eviction is %q, want previous second %q", snap[0].ID, before[1].ID)
	}
	if snap[99].Text != "msg 100" {
		t.Errorf("newest message missing, tail is %q", snap[99].Text)
	}
}

func TestHistorySnapshotIsCopy(t *testing.T) {
	h := NewHistoryBuffer(10)
	h.Append(domain.NewChatMessage("alice", "original"))

	snap := h.Snapshot()
	snap[0].Text = "mutated"

	if h.Snapshot()[0].Text != "original" {
		t.Error("mutating the snapshot changed the buffer")
	}
}

func TestHistoryZeroCapacityDefaults(t *testing.T) {
	h := NewHistoryBuffer(0)
	for i := 0; i < 150; i++ {
		h.Append(domain.NewChatMessage("alice", "x"))
	}
	if h.Len() != 100 {
		t.Fatalf("default cap not applied, Len() = %d", h.Len())
	}
}
