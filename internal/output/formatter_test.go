package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/modules/discovery"
)

func sampleRecords() []discovery.ServerRecord {
	return []discovery.ServerRecord{
		{
			IPStr:     "34.1.2.96",
			Port:      1000,
			Location:  discovery.Location{CountryName: "Singapore", CityName: "Unknown"},
			Org:       "Google LLC",
			Hostnames: []string{"96.x.googleusercontent.com"},
			Models:    []string{"smollm2:135m", "llama2:latest"},
		},
		{
			IPStr:     "1.2.3.4",
			Port:      11434,
			Location:  discovery.Location{CountryName: "Unknown", CityName: "Unknown"},
			Org:       "Unknown",
			Hostnames: []string{},
			Models:    []string{},
		},
	}
}

// Serializing then parsing must reproduce the in-memory sequence: same keys,
// same element order.
func TestFormatRecords_JSONRoundTrip(t *testing.T) {
	records := sampleRecords()
	formatted, err := FormatRecords(records, "json")
	if err != nil {
		t.Fatalf("FormatRecords returned an error: %v", err)
	}

	var parsed []discovery.ServerRecord
	if err := json.Unmarshal([]byte(formatted), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(parsed, records) {
		t.Errorf("Round trip mismatch.\nExpected: %+v\nGot:      %+v", records, parsed)
	}
}

func TestFormatRecords_EmptyJSONArray(t *testing.T) {
	formatted, err := FormatRecords([]discovery.ServerRecord{}, "json")
	if err != nil {
		t.Fatalf("FormatRecords returned an error: %v", err)
	}
	if formatted != "[]" {
		t.Errorf("Expected empty JSON array, got %q", formatted)
	}
}

func TestFormatRecords_CSV(t *testing.T) {
	formatted, err := FormatRecords(sampleRecords(), "csv")
	if err != nil {
		t.Fatalf("FormatRecords returned an error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(formatted), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ip,port,") {
		t.Errorf("Unexpected CSV header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "smollm2:135m;llama2:latest") {
		t.Errorf("Expected joined models in first row, got %q", lines[1])
	}
}

func TestFormatRecords_UnsupportedFormat(t *testing.T) {
	_, err := FormatRecords(sampleRecords(), "xml")
	if !errors.Is(err, core.ErrOutputFormat) {
		t.Errorf("Expected ErrOutputFormat, got %v", err)
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteOutput(path, "[]"); err != nil {
		t.Fatalf("WriteOutput returned an error: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(content) != "[]" {
		t.Errorf("Expected file content %q, got %q", "[]", content)
	}
}

func TestWriteOutput_UnwritableSink(t *testing.T) {
	err := WriteOutput(filepath.Join(t.TempDir(), "missing", "out.json"), "[]")
	if !errors.Is(err, core.ErrFileWrite) {
		t.Errorf("Expected ErrFileWrite, got %v", err)
	}
}
