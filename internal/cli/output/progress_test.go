package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewProgressBar(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Test")

	if bar == nil {
		t.Fatal("NewProgressBar returned nil")
	}
	if bar.title != "Test" {
		t.Errorf("title = %q, want %q", bar.title, "Test")
	}
	if bar.width != 40 {
		t.Errorf("width = %d, want %d", bar.width, 40)
	}
}

func TestProgressBar_Update(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Spawning")

	bar.Update(50, 100)

	output := buf.String()
	if !strings.Contains(output, "Spawning") {
		t.Error("output should contain title")
	}
	if !strings.Contains(output, "50%") {
		t.Error("output should contain percentage")
	}
	if !strings.Contains(output, "(50/100)") {
		t.Error("output should contain counts")
	}
}

func TestProgressBar_Increment(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Test")

	bar.Update(0, 100)
	bar.Increment(25)
	bar.Increment(25)

	if bar.current != 50 {
		t.Errorf("current = %d, want %d", bar.current, 50)
	}
}

func TestProgressBar_Finish(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Test")

	bar.Update(100, 100)
	bar.Finish()

	output := buf.String()
	if !strings.Contains(output, "100%") {
		t.Error("output should contain 100%")
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("Finish should end the line")
	}
}

func TestProgressBar_UnknownTotal(t *testing.T) {
	buf := &bytes.Buffer{}
	bar := NewProgressBar(buf, "Dispatch")

	// Total 0 means unknown, so only the running count shows
	bar.Update(12, 0)

	output := buf.String()
	if !strings.Contains(output, "Dispatch") {
		t.Error("output should contain title")
	}
	if !strings.Contains(output, "12") {
		t.Error("output should contain the running count")
	}
}
