package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestLoadPaletteFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{"commas", "#fff,#000,#f00,#0f0\n", []string{"#fff", "#000", "#f00", "#0f0"}, false},
		{"lines and comments", "# dusk\n#112233\n#445566 #778899\n\n#aabbcc\n", []string{"#112233", "#445566", "#778899", "#aabbcc"}, false},
		{"empty", "# nothing here\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			got, err := loadPaletteFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadPaletteFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("loadPaletteFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := loadPaletteFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("loadPaletteFile() of a missing file should fail")
	}
}

func TestWatchPalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.txt")
	if err := os.WriteFile(path, []byte("#fff,#000,#f00,#0f0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan []string, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchPalette(ctx, path, func(p []string) error {
			select {
			case got <- p:
			default:
			}
			return nil
		})
	}()

	// Keep writing until the watcher is installed and reports a change.
	want := []string{"#123456", "#000", "#f00", "#0f0"}
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case p := <-got:
			// A reload may observe a half-written file.
			if !slices.Equal(p, want) {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("watchPalette() error = %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("#123456,#000,#f00,#0f0\n"), 0o600); err != nil {
				t.Fatal(err)
			}
		case <-ctx.Done():
			t.Fatal("no reload before timeout")
		}
	}
}
