// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/docpipe/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(dir, "docpipe.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestRecordAndSummary(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := []struct {
		stage  string
		file   string
		status types.StageStatus
		detail string
	}{
		{"xml", "a.docx", types.StageConverted, ""},
		{"xml", "b.docx", types.StageConverted, ""},
		{"xml", "c.docx", types.StageFailed, "not a valid DOCX file"},
		{"markdown", "a.xml", types.StageSkipped, ""},
	}
	for _, r := range records {
		if err := store.Record(ctx, r.stage, r.file, r.status, r.detail); err != nil {
			t.Fatalf("Record(%s, %s): %v", r.stage, r.file, err)
		}
	}

	summaries, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	// Ordered by stage name: markdown before xml.
	md := summaries[0]
	if md.Stage != "markdown" || md.Skipped != 1 || md.Converted != 0 {
		t.Errorf("markdown summary = %+v", md)
	}
	xml := summaries[1]
	if xml.Stage != "xml" || xml.Converted != 2 || xml.Failed != 1 {
		t.Errorf("xml summary = %+v", xml)
	}
}

func TestRecordUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "xml", "a.docx", types.StageFailed, "boom"); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "xml", "a.docx", types.StageConverted, ""); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries after upsert, want 1", len(entries))
	}
	if entries[0].Status != string(types.StageConverted) {
		t.Errorf("status = %q, want converted", entries[0].Status)
	}
	if entries[0].Detail != "" {
		t.Errorf("detail = %q, want empty after upsert", entries[0].Detail)
	}
}

func TestEntriesOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "xml", "b.docx", types.StageConverted, ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "markdown", "a.xml", types.StageConverted, ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "xml", "a.docx", types.StageConverted, ""); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.File+"/"+e.Stage)
		if e.UpdatedAt == "" {
			t.Errorf("entry %s has no timestamp", e.File)
		}
	}
	want := []string{"a.docx/xml", "a.xml/markdown", "b.docx/xml"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("entries ordered %v, want %v", got, want)
	}
}

func TestExportYAML(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, "json", "a.md", types.StageFailed, "bad markdown"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := store.ExportYAML(ctx, path); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"conversions:", "file: a.md", "stage: json", "status: failed", "detail: bad markdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q:\n%s", want, out)
		}
	}
}

func TestStoreReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "xml", "a.docx", types.StageConverted, ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	entries, err := reopened.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries after reopen, want 1", len(entries))
	}
}
