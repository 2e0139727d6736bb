package ranker

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adpipe/internal/logger"
	"adpipe/internal/stage"
)

func newTestRanker(t *testing.T) *Ranker {
	t.Helper()

	log := logger.NewLoggerWithWriter("error", io.Discard)

	return NewRanker(t.TempDir(), log)
}

func writeEnrichedInput(t *testing.T, lines []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ads_enriched.jsonl")

	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	return rows
}

func TestRanker_Run(t *testing.T) {
	r := newTestRanker(t)

	input := writeEnrichedInput(t, []string{
		`{"ad_id":"a","ad_text":"image ad","active":null,"media":["image"],"country":"US","duration_hours":2.0,"media_type":"image-only","language":"en"}`,
		`{"ad_id":"b","ad_text":"video ad","active":null,"media":["video"],"country":"US","duration_hours":3.0,"media_type":"video-only","language":"en"}`,
		`{"ad_id":"c","ad_text":"rich ad","active":null,"media":["image","video"],"country":"US","duration_hours":1.0,"media_type":"both","language":"en"}`,
	})

	output := filepath.Join(t.TempDir(), "top10.csv")

	path, top, stats, err := r.Run(input, output)
	if err != nil {
		t.Fatalf("Run returned unexpected error: %v", err)
	}

	if path != output {
		t.Errorf("Run path = %s, want %s", path, output)
	}

	if stats.Processed != 3 || stats.Rejected != 0 {
		t.Errorf("stats = %+v, want 3 processed, 0 rejected", stats)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 ranked ads, got %d", len(top))
	}

	rows := readCSV(t, path)
	if len(rows) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d rows", len(rows))
	}

	if rows[0][0] != "ad_id" || rows[0][6] != "duration_hours" {
		t.Errorf("Unexpected header: %v", rows[0])
	}

	// video-only(3.3) > image-only(2.0) > both(1.2)
	wantOrder := []string{"b", "a", "c"}
	for i, want := range wantOrder {
		if rows[i+1][0] != want {
			t.Errorf("row %d ad_id = %q, want %q", i+1, rows[i+1][0], want)
		}
	}

	// Score is an ordering key only, never a column
	for _, col := range rows[0] {
		if col == "score" {
			t.Error("CSV must not persist the score column")
		}
	}
}

func TestRanker_Run_EmptyInputWritesHeaderOnly(t *testing.T) {
	r := newTestRanker(t)

	input := writeEnrichedInput(t, nil)
	output := filepath.Join(t.TempDir(), "top10.csv")

	path, top, stats, err := r.Run(input, output)
	if err != nil {
		t.Fatalf("Run returned unexpected error for empty input: %v", err)
	}

	if len(top) != 0 || stats.Processed != 0 {
		t.Errorf("Expected no ranked ads, got %d (stats %+v)", len(top), stats)
	}

	rows := readCSV(t, path)
	if len(rows) != 1 {
		t.Errorf("Expected header-only CSV, got %d rows", len(rows))
	}
}

func TestRanker_Run_RejectsInvalidRecords(t *testing.T) {
	r := newTestRanker(t)

	input := writeEnrichedInput(t, []string{
		`{"ad_id":"ok","ad_text":"x","country":"US","duration_hours":1.0,"media_type":"none"}`,
		`{"ad_id":"no-duration","ad_text":"x","country":"US","media_type":"none"}`,
		`{"ad_id":"negative","ad_text":"x","country":"US","duration_hours":-1.0,"media_type":"none"}`,
	})

	output := filepath.Join(t.TempDir(), "top10.csv")

	_, top, stats, err := r.Run(input, output)
	if err != nil {
		t.Fatalf("Run returned unexpected error: %v", err)
	}

	if stats.Processed != 1 || stats.Rejected != 2 {
		t.Errorf("stats = %+v, want 1 processed, 2 rejected", stats)
	}

	if len(top) != 1 || top[0].AdID != "ok" {
		t.Errorf("Expected only the valid ad ranked, got %v", top)
	}
}

func TestRanker_Run_MissingInputIsFatal(t *testing.T) {
	r := newTestRanker(t)

	_, _, _, err := r.Run(filepath.Join(t.TempDir(), "missing.jsonl"), "")
	if !errors.Is(err, stage.ErrInputNotFound) {
		t.Errorf("Run error = %v, want ErrInputNotFound", err)
	}
}
