package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestTableFormatter_Format_Table(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "CLASS"},
		Rows: [][]string{
			{"Cube1", "StaticMeshActor"},
			{"Light1", "PointLight"},
		},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, table)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Error("Format() missing header NAME")
	}
	if !strings.Contains(output, "Cube1") {
		t.Error("Format() missing row data Cube1")
	}
}

func TestTableFormatter_Format_TableValue(t *testing.T) {
	// Table passed by value rather than pointer
	table := Table{
		Headers: []string{"ACTOR"},
		Rows:    [][]string{{"Cube1"}},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	err := f.Format(&buf, table)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Cube1") {
		t.Error("Format() missing data from Table value")
	}
}

func TestTableFormatter_Format_TableNoHeaders(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "CLASS"},
		Rows: [][]string{
			{"Cube1", "StaticMeshActor"},
		},
	}

	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}

	err := f.Format(&buf, table)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "NAME") {
		t.Error("Format() printed headers with NoHeaders set")
	}
	if !strings.Contains(output, "Cube1") {
		t.Error("Format() missing row data")
	}
}

func TestTableFormatter_Format_Nil(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) wrote %q, want empty", buf.String())
	}
}

func TestTableFormatter_Format_StructSlice(t *testing.T) {
	type actorRow struct {
		Name     string `json:"name"`
		Class    string `json:"class"`
		Path     string `json:"path" table:"wide"`
		internal string
	}

	rows := []actorRow{
		{Name: "Cube1", Class: "StaticMeshActor", Path: "/Game/Maps/Demo.Cube1", internal: "x"},
		{Name: "Light1", Class: "PointLight", Path: "/Game/Maps/Demo.Light1"},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") || !strings.Contains(output, "CLASS") {
		t.Errorf("output missing headers: %q", output)
	}
	if !strings.Contains(output, "Cube1") || !strings.Contains(output, "PointLight") {
		t.Errorf("output missing rows: %q", output)
	}
	if strings.Contains(output, "PATH") {
		t.Error("wide-only column rendered without Wide")
	}
	if strings.Contains(output, "INTERNAL") {
		t.Error("unexported field rendered")
	}
}

func TestTableFormatter_Format_StructSliceWide(t *testing.T) {
	type actorRow struct {
		Name string `json:"name"`
		Path string `json:"path" table:"wide"`
	}

	rows := []actorRow{
		{Name: "Cube1", Path: "/Game/Maps/Demo.Cube1"},
	}

	var buf bytes.Buffer
	f := &TableFormatter{Wide: true}

	if err := f.Format(&buf, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "PATH") {
		t.Errorf("Wide output missing PATH column: %q", output)
	}
	if !strings.Contains(output, "/Game/Maps/Demo.Cube1") {
		t.Errorf("Wide output missing path value: %q", output)
	}
}

func TestTableFormatter_Format_StructSliceSkipTag(t *testing.T) {
	type row struct {
		Name   string `json:"name"`
		Hidden string `table:"-"`
	}

	var buf bytes.Buffer
	f := &TableFormatter{Wide: true}

	if err := f.Format(&buf, []row{{Name: "Cube1", Hidden: "secret"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if strings.Contains(buf.String(), "secret") {
		t.Error("table:\"-\" field rendered")
	}
}

func TestTableFormatter_Format_EmptySlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, []string{}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
}

func TestTableFormatter_Format_Map(t *testing.T) {
	resp := map[string]any{
		"status": "success",
		"name":   "Cube1",
		"class":  "StaticMeshActor",
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, resp); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "KEY") || !strings.Contains(output, "VALUE") {
		t.Errorf("output missing key-value headers: %q", output)
	}
	if !strings.Contains(output, "status") || !strings.Contains(output, "success") {
		t.Errorf("output missing response fields: %q", output)
	}
}

func TestTableFormatter_Format_MapSortedKeys(t *testing.T) {
	resp := map[string]any{
		"status":   "success",
		"actor":    "Cube1",
		"location": "[100, 0, 50]",
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, resp); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	actorIdx := strings.Index(output, "actor")
	locIdx := strings.Index(output, "location")
	statusIdx := strings.Index(output, "status")
	if actorIdx < 0 || locIdx < 0 || statusIdx < 0 {
		t.Fatalf("output missing keys: %q", output)
	}
	if !(actorIdx < locIdx && locIdx < statusIdx) {
		t.Errorf("keys not sorted: %q", output)
	}
}

func TestTableFormatter_Format_Struct(t *testing.T) {
	type status struct {
		Actor string `json:"actor"`
		State string `json:"state"`
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, status{Actor: "Cube1", State: "spawned"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "FIELD") {
		t.Errorf("struct output missing FIELD header: %q", output)
	}
	if !strings.Contains(output, "spawned") {
		t.Errorf("struct output missing value: %q", output)
	}
}

func TestTableFormatter_Format_FallbackJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	// Scalars have no table shape, so they fall back to JSON.
	if err := f.Format(&buf, 42); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(buf.String(), "42") {
		t.Errorf("fallback output = %q, want JSON 42", buf.String())
	}
}

// ============================================================
// formatValue
// ============================================================

func TestFormatValue(t *testing.T) {
	spawnedAt := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "Cube1", "Cube1"},
		{"empty string", "", "-"},
		{"int", 42, "42"},
		{"uint", uint(7), "7"},
		{"float", 100.5, "100.50"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"time", spawnedAt, "2026-08-31 14:30"},
		{"zero time", time.Time{}, "-"},
		{"location vector", []float64{100, 0, 50}, "[100, 0, 50]"},
		{"rotation vector", []float64{0, 90.5, 0}, "[0, 90.5, 0]"},
		{"int vector", []int{1, 2, 3}, "[1, 2, 3]"},
		{"any vector", []any{100.0, 0.0, 50.0}, "[100, 0, 50]"},
		{"long slice", []int{1, 2, 3, 4, 5}, "[5 items]"},
		{"string slice", []string{"a", "b"}, "[2 items]"},
		{"empty slice", []int{}, "-"},
		{"map", map[string]int{"a": 1}, "{1 keys}"},
		{"empty map", map[string]int{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatValue(reflect.ValueOf(tt.value))
			if got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValue_NilPointer(t *testing.T) {
	var p *string
	if got := formatValue(reflect.ValueOf(p)); got != "" {
		t.Errorf("formatValue(nil pointer) = %q, want empty", got)
	}
}

func TestFormatValue_Pointer(t *testing.T) {
	name := "Cube1"
	if got := formatValue(reflect.ValueOf(&name)); got != "Cube1" {
		t.Errorf("formatValue(pointer) = %q, want Cube1", got)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Name", "Name"},
		{"ActorClass", "Actor_Class"},
		{"SpawnedAt", "Spawned_At"},
		{"name", "name"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.input); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ============================================================
// Table
// ============================================================

func TestTable_Render(t *testing.T) {
	table := &Table{}
	table.SetHeaders("NAME", "CLASS", "LOCATION")
	table.AddRow("Cube1", "StaticMeshActor", "[100, 0, 50]")
	table.AddRow("Light1", "PointLight", "[0, 0, 300]")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Render() produced %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("first line = %q, want header row", lines[0])
	}
	if !strings.Contains(lines[2], "PointLight") {
		t.Errorf("last line = %q, want Light1 row", lines[2])
	}
}

func TestTable_RenderEmpty(t *testing.T) {
	table := &Table{}

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty table rendered %q", buf.String())
	}
}
