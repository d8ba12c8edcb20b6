package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nao1215/readscore/internal/model"
)

// newTestDB opens a ScoreDB in a temp directory and closes it on cleanup.
func newTestDB(t *testing.T) *ScoreDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return db
}

// testReport builds a report for the given source with fixed statistics.
func testReport(source string, averageAge float64) *model.Report {
	return &model.Report{
		Source:       source,
		DateAnalyzed: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Statistics: model.Statistics{
			Words:         100,
			Sentences:     5,
			Characters:    500,
			Syllables:     150,
			Polysyllables: 10,
		},
		Results: []model.MetricResult{
			{Metric: model.MetricARI, Score: 12.12, Age: 18},
			{Metric: model.MetricFleschKincaid, Score: 10.51, Age: 16},
			{Metric: model.MetricSMOG, Score: 11.21, Age: 17},
			{Metric: model.MetricColemanLiau, Score: 12.12, Age: 18},
		},
		AllMetrics: true,
		AverageAge: averageAge,
	}
}

// TestOpen tests database creation behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dir, "readscore.db")); err != nil {
			t.Errorf("expected database file to exist: %v", err)
		}
	})

	t.Run("fails when database missing and creation disabled", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("opens existing database without creation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}

		db, err = Open(dir, Options{CreateIfNotExists: false})
		if err != nil {
			t.Fatalf("expected existing database to open: %v", err)
		}
		defer db.Close()
	})
}

// TestSaveAndGetLatestReport tests the basic save/load round trip.
func TestSaveAndGetLatestReport(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	report := testReport("essay.txt", 17.25)
	if err := db.SaveReport(ctx, report); err != nil {
		t.Fatalf("failed to save report: %v", err)
	}

	loaded, err := db.GetLatestReport(ctx, "essay.txt")
	if err != nil {
		t.Fatalf("failed to load report: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected report, got nil")
	}

	if loaded.Source != "essay.txt" {
		t.Errorf("source = %q, expected %q", loaded.Source, "essay.txt")
	}
	if loaded.Statistics.Words != 100 {
		t.Errorf("words = %d, expected 100", loaded.Statistics.Words)
	}
	if len(loaded.Results) != 4 {
		t.Errorf("got %d results, expected 4", len(loaded.Results))
	}
	if loaded.AverageAge != 17.25 {
		t.Errorf("average age = %v, expected 17.25", loaded.AverageAge)
	}
}

// TestGetLatestReport_NoRows tests that a missing source returns nil, nil.
func TestGetLatestReport_NoRows(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	report, err := db.GetLatestReport(context.Background(), "never-analyzed.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report != nil {
		t.Error("expected nil report for unknown source")
	}
}

// TestGetHistory tests ordering and filtering of stored reports.
func TestGetHistory(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	// Save three reports for one source and one for another.
	for _, age := range []float64{15.0, 16.0, 17.25} {
		if err := db.SaveReport(ctx, testReport("essay.txt", age)); err != nil {
			t.Fatalf("failed to save report: %v", err)
		}
	}
	if err := db.SaveReport(ctx, testReport("other.txt", 10.0)); err != nil {
		t.Fatalf("failed to save report: %v", err)
	}

	history, err := db.GetHistory(ctx, "essay.txt")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d reports, expected 3", len(history))
	}

	// Newest first: the last saved report comes back first.
	if history[0].AverageAge != 17.25 {
		t.Errorf("first history entry average age = %v, expected 17.25", history[0].AverageAge)
	}
	if history[2].AverageAge != 15.0 {
		t.Errorf("last history entry average age = %v, expected 15.0", history[2].AverageAge)
	}
}

// TestListSources tests distinct source listing.
func TestListSources(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	for _, source := range []string{"b.txt", "a.txt", "b.txt"} {
		if err := db.SaveReport(ctx, testReport(source, 10.0)); err != nil {
			t.Fatalf("failed to save report: %v", err)
		}
	}

	sources, err := db.ListSources(ctx)
	if err != nil {
		t.Fatalf("failed to list sources: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("got %d sources, expected 2: %v", len(sources), sources)
	}
	if sources[0] != "a.txt" || sources[1] != "b.txt" {
		t.Errorf("sources = %v, expected sorted [a.txt b.txt]", sources)
	}
}

// TestGetHistoryWithMetadata tests the metadata projection.
func TestGetHistoryWithMetadata(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	if err := db.SaveReport(ctx, testReport("essay.txt", 17.25)); err != nil {
		t.Fatalf("failed to save report: %v", err)
	}

	metas, err := db.GetHistoryWithMetadata(ctx, "essay.txt")
	if err != nil {
		t.Fatalf("failed to get metadata: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("got %d entries, expected 1", len(metas))
	}

	meta := metas[0]
	if meta.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if meta.Source != "essay.txt" {
		t.Errorf("source = %q, expected %q", meta.Source, "essay.txt")
	}
	if meta.Words != 100 {
		t.Errorf("words = %d, expected 100", meta.Words)
	}
	if meta.Sentences != 5 {
		t.Errorf("sentences = %d, expected 5", meta.Sentences)
	}
	if meta.AverageAge != 17.25 {
		t.Errorf("average age = %v, expected 17.25", meta.AverageAge)
	}
	if meta.Timestamp.IsZero() {
		t.Error("expected parsed timestamp")
	}
}

// TestGetReportByID tests fetching a single report by its row ID.
func TestGetReportByID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	ctx := context.Background()

	if err := db.SaveReport(ctx, testReport("essay.txt", 17.25)); err != nil {
		t.Fatalf("failed to save report: %v", err)
	}

	metas, err := db.GetHistoryWithMetadata(ctx, "essay.txt")
	if err != nil || len(metas) != 1 {
		t.Fatalf("failed to get metadata: %v", err)
	}

	report, err := db.GetReportByID(ctx, metas[0].ID)
	if err != nil {
		t.Fatalf("failed to get report by ID: %v", err)
	}
	if report == nil {
		t.Fatal("expected report, got nil")
	}
	if report.Source != "essay.txt" {
		t.Errorf("source = %q, expected %q", report.Source, "essay.txt")
	}

	missing, err := db.GetReportByID(ctx, metas[0].ID+1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil report for unknown ID")
	}
}

// TestParseTimestamp tests the multi-format timestamp parser.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "sqlite default format", input: "2025-06-01 12:00:00", zero: false},
		{name: "iso 8601 with Z", input: "2025-06-01T12:00:00Z", zero: false},
		{name: "rfc3339", input: "2025-06-01T12:00:00+09:00", zero: false},
		{name: "garbage returns zero time", input: "not-a-timestamp", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.zero {
				t.Errorf("parseTimestamp(%q).IsZero() = %v, expected %v", tt.input, got.IsZero(), tt.zero)
			}
		})
	}
}
