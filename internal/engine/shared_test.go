package engine

import (
	"context"
	"testing"
)

// ============================================================
// Shared Connection Tests
// ============================================================

func TestShared_SameInstance(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	a := Shared(testConfig(), testLogger(t))
	b := Shared(testConfig(), testLogger(t))
	if a != b {
		t.Error("Shared returned different instances")
	}
}

func TestShared_ResetCreatesFresh(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	a := Shared(testConfig(), testLogger(t))
	ResetShared()
	b := Shared(testConfig(), testLogger(t))
	if a == b {
		t.Error("ResetShared did not discard the old instance")
	}
}

func TestShared_FirstCallWins(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	srv := &fakeServer{handle: echoHandler(`{"status":"success"}`)}
	first := Shared(testConfig(), testLogger(t), WithDialer(srv.dialer()))

	// A later call's options are ignored; the first instance persists.
	other := &fakeServer{handle: echoHandler(`{"status":"error","error":"wrong server"}`)}
	second := Shared(testConfig(), testLogger(t), WithDialer(other.dialer()))
	if second != first {
		t.Fatal("second Shared call replaced the instance")
	}

	if resp := second.Send(context.Background(), "ping", nil); resp.IsError() {
		t.Errorf("send through shared connection failed: %v", resp)
	}
	if srv.dialCount() != 1 || other.dialCount() != 0 {
		t.Errorf("dials = %d/%d, want 1/0", srv.dialCount(), other.dialCount())
	}
}

func TestShared_NilConfigDefaults(t *testing.T) {
	ResetShared()
	t.Cleanup(ResetShared)

	c := Shared(nil, testLogger(t))
	if c == nil {
		t.Fatal("Shared returned nil")
	}
	if got := c.State(); got != StateDisconnected {
		t.Errorf("fresh shared connection state = %v, want disconnected", got)
	}
}
