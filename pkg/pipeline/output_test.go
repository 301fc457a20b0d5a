package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/polygrid/pkg/errors"
)

func seedPtr(v int64) *int64 { return &v }

func TestFileName(t *testing.T) {
	ts := time.Unix(1700000000, 1234000)

	tests := []struct {
		name       string
		nColors    int
		perPanel   int
		jitter     float64
		seed       *int64
		appendTime bool
		ext        string
		want       string
	}{
		{"defaults", 1, 10, 0, nil, false, "svg", "polygons_1_colors_10_perpanel_jitter_0.0_polygons_none.svg"},
		{"seeded", 3, 5, 0.03, seedPtr(42), false, "svg", "polygons_3_colors_5_perpanel_jitter_0.03_polygons_42.svg"},
		{"zero seed", 1, 10, 0, seedPtr(0), false, "pdf", "polygons_1_colors_10_perpanel_jitter_0.0_polygons_0.pdf"},
		{"negative seed", 2, 1, 1, seedPtr(-7), false, "json", "polygons_2_colors_1_perpanel_jitter_1.0_polygons_-7.json"},
		{"timestamp", 1, 10, 0.5, nil, true, "svg", "polygons_1_colors_10_perpanel_jitter_0.5_polygons_none_1700000000001234.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName("polygons", tt.nColors, tt.perPanel, tt.jitter, tt.seed, tt.appendTime, ts, tt.ext)
			if got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatJitter(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{0.03, "0.03"},
		{0.1, "0.1"},
		{2, "2.0"},
		{0.00001, "1e-05"},
		{0.0001, "0.0001"},
		{1000000, "1000000.0"},
	}
	for _, tt := range tests {
		if got := FormatJitter(tt.in); got != tt.want {
			t.Errorf("FormatJitter(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimestamp(t *testing.T) {
	if got := Timestamp(time.Unix(12, 5000)); got != "12000005" {
		t.Errorf("Timestamp() = %q, want %q", got, "12000005")
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	path, err := WriteAtomic(dir, "a.svg", []byte("<svg/>"))
	if err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	if path != filepath.Join(dir, "a.svg") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	// overwrite in place
	if _, err := WriteAtomic(dir, "a.svg", []byte("new")); err != nil {
		t.Fatalf("WriteAtomic() overwrite error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("overwrite content = %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp files left behind?)", len(entries))
	}
}

func TestWriteAtomicDirectoryIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := WriteAtomic(file, "a.svg", []byte("x"))
	if !errors.Is(err, errors.ErrCodeOutput) {
		t.Errorf("WriteAtomic() error = %v, want OUTPUT_ERROR", err)
	}
}

func TestWriteAtomicRenameFails(t *testing.T) {
	dir := t.TempDir()
	// a non-empty directory at the destination makes the rename fail
	if err := os.MkdirAll(filepath.Join(dir, "a.svg", "child"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := WriteAtomic(dir, "a.svg", []byte("x"))
	if !errors.Is(err, errors.ErrCodeOutput) {
		t.Fatalf("WriteAtomic() error = %v, want OUTPUT_ERROR", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp file not removed: %d entries", len(entries))
	}
}
