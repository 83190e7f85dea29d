package journal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/oklog/ulid/v2"

	"github.com/yndnr/uebridge-go/internal/engine"
)

// ============================================================
// Journal Tests
// ============================================================

func openTest(t *testing.T) *Journal {
	t.Helper()
	j, err := Open("", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func record(command string, at time.Time) engine.Result {
	return engine.Result{
		ID:       ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String(),
		Command:  command,
		Status:   "success",
		Attempts: 1,
		Elapsed:  50 * time.Millisecond,
		Bytes:    128,
		At:       at,
	}
}

func TestJournal_AppendAndGet(t *testing.T) {
	j := openTest(t)
	r := record("spawn_actor", time.Now())

	if err := j.Append(r); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := j.Get(r.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Command != "spawn_actor" || got.Attempts != 1 || got.Bytes != 128 {
		t.Errorf("got %+v", got)
	}
}

func TestJournal_GetMissing(t *testing.T) {
	j := openTest(t)
	if _, err := j.Get("01ARZ3NDEKTSV4RRFFQ69G5FAV"); !errors.Is(err, badger.ErrKeyNotFound) {
		t.Errorf("err = %v, want key not found", err)
	}
}

func TestJournal_RecentNewestFirst(t *testing.T) {
	j := openTest(t)
	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		r := record(fmt.Sprintf("command_%d", i), base.Add(time.Duration(i)*time.Second))
		if err := j.Append(r); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	got, err := j.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"command_4", "command_3", "command_2"} {
		if got[i].Command != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Command, want)
		}
	}
}

func TestJournal_RecentMoreThanStored(t *testing.T) {
	j := openTest(t)
	if err := j.Append(record("ping", time.Now())); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestJournal_ObserveNeverPanics(t *testing.T) {
	j := openTest(t)
	_ = j.Close()
	// Observing after close logs the failure but must not panic.
	j.Observe(record("ping", time.Now()))
}

func TestJournal_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	j, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	r := record("create_town", time.Now())
	if err := j.Append(r); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	j2, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()
	got, err := j2.Get(r.ID)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Command != "create_town" {
		t.Errorf("got %+v", got)
	}
}
