package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "papers.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func samplePapers() []models.Paper {
	return []models.Paper{
		{
			ID: "a", Title: "Older", Authors: []string{"A"}, Abstract: "abs", Summary: "sum",
			KeyPoints: []string{"k1", "k2"}, Impact: "imp", Links: map[string]string{"github": "https://g"},
			Date: "2025-12-08", Upvotes: 10, Tags: []string{"x"},
		},
		{
			ID: "b", Title: "Newer", Authors: []string{"B", "et al."}, Abstract: "abs", Summary: "sum",
			KeyPoints: []string{"k"}, Impact: "imp", Links: map[string]string{"project": "https://p"},
			Date: "2025-12-12", Upvotes: 20, Tags: []string{"y", "z"},
		},
		{
			ID: "c", Title: "Middle", Authors: []string{"C"}, Abstract: "abs", Summary: "sum",
			KeyPoints: []string{"k"}, Impact: "imp", Links: map[string]string{},
			Date: "2025-12-10", Upvotes: 30, Tags: nil,
		},
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	store := openTestStore(t)
	if _, err := os.Stat(filepath.Dir(store.Path())); err != nil {
		t.Fatalf("data dir missing: %v", err)
	}
}

func TestCloseNilStore(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Fatalf("Close on nil store: %v", err)
	}
}

func TestReseedAndDropTables(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if ok, err := store.HasTable(ctx); err != nil || ok {
		t.Fatalf("HasTable before reseed = %v, %v", ok, err)
	}
	if err := store.ReseedPapers(ctx, nil); err != nil {
		t.Fatalf("ReseedPapers(nil): %v", err)
	}
	if ok, _ := store.HasTable(ctx); !ok {
		t.Fatal("papers table missing after reseed")
	}

	cols, err := store.Columns(ctx)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if !reflect.DeepEqual(cols, SchemaColumns) {
		t.Errorf("columns = %v, want %v", cols, SchemaColumns)
	}

	if err := store.DropTables(ctx); err != nil {
		t.Fatalf("DropTables: %v", err)
	}
	if err := store.DropTables(ctx); err != nil {
		t.Fatalf("DropTables twice: %v", err)
	}
	if ok, _ := store.HasTable(ctx); ok {
		t.Fatal("papers table still present after drop")
	}
}

func TestReseedPapersReplacesRows(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	list := samplePapers()
	for i := 0; i < 2; i++ {
		if err := store.ReseedPapers(ctx, list); err != nil {
			t.Fatalf("ReseedPapers run %d: %v", i, err)
		}
		n, err := store.CountPapers(ctx)
		if err != nil {
			t.Fatalf("CountPapers: %v", err)
		}
		if n != len(list) {
			t.Fatalf("run %d: count = %d, want %d", i, n, len(list))
		}
	}

	sample, err := store.SamplePapers(ctx, 2)
	if err != nil {
		t.Fatalf("SamplePapers: %v", err)
	}
	want := []PaperRef{{ID: "a", Title: "Older"}, {ID: "b", Title: "Newer"}}
	if !reflect.DeepEqual(sample, want) {
		t.Errorf("sample = %v, want %v", sample, want)
	}
}

func TestReseedPapersRollsBackOnDuplicate(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.ReseedPapers(ctx, samplePapers()); err != nil {
		t.Fatalf("ReseedPapers: %v", err)
	}
	dup := append(samplePapers(), samplePapers()[0])
	if err := store.ReseedPapers(ctx, dup); err == nil {
		t.Fatal("expected duplicate id to fail")
	}
	n, err := store.CountPapers(ctx)
	if err != nil {
		t.Fatalf("CountPapers: %v", err)
	}
	if n != 3 {
		t.Errorf("count after failed reseed = %d, want previous 3", n)
	}
}

func TestListPapersEmpty(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.ReseedPapers(ctx, samplePapers()); err != nil {
		t.Fatalf("ReseedPapers: %v", err)
	}
	if _, err := store.ClearTables(ctx); err != nil {
		t.Fatalf("ClearTables: %v", err)
	}

	for _, limit := range []int{0, 1} {
		list, err := store.ListPapers(ctx, limit)
		if err != nil {
			t.Fatalf("ListPapers(%d): %v", limit, err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("ListPapers(%d) = %#v, want empty non-nil slice", limit, list)
		}
		b, _ := json.Marshal(list)
		if string(b) != "[]" {
			t.Errorf("empty list encodes as %s, want []", b)
		}
	}
}

func TestListPapersOrderAndDecode(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.ReseedPapers(ctx, samplePapers()); err != nil {
		t.Fatalf("ReseedPapers: %v", err)
	}

	list, err := store.ListPapers(ctx, 0)
	if err != nil {
		t.Fatalf("ListPapers: %v", err)
	}
	var ids []string
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	if !reflect.DeepEqual(ids, []string{"b", "c", "a"}) {
		t.Fatalf("order = %v, want newest date first", ids)
	}

	b := list[0]
	if !reflect.DeepEqual(b.Authors, []string{"B", "et al."}) || !reflect.DeepEqual(b.Tags, []string{"y", "z"}) {
		t.Errorf("decoded lists = %v %v", b.Authors, b.Tags)
	}
	if b.Links["project"] != "https://p" || b.Upvotes != 20 {
		t.Errorf("decoded paper = %+v", b)
	}
	if b.CreatedAt.IsZero() {
		t.Error("created_at was not defaulted")
	}
	if c := list[1]; len(c.Tags) != 0 || c.Tags == nil {
		t.Errorf("nil tags should round-trip as empty list, got %#v", c.Tags)
	}

	limited, err := store.ListPapers(ctx, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("ListPapers(1) = %d, %v", len(limited), err)
	}
}

func TestGetPaper(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.ReseedPapers(ctx, samplePapers()); err != nil {
		t.Fatalf("ReseedPapers: %v", err)
	}

	p, err := store.GetPaper(ctx, "a")
	if err != nil {
		t.Fatalf("GetPaper: %v", err)
	}
	if p.Title != "Older" || !reflect.DeepEqual(p.KeyPoints, []string{"k1", "k2"}) {
		t.Errorf("GetPaper = %+v", p)
	}

	if _, err := store.GetPaper(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("missing paper err = %v, want sql.ErrNoRows", err)
	}
}

func TestClearTablesKeepsSchema(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	if err := store.ReseedPapers(ctx, samplePapers()); err != nil {
		t.Fatalf("ReseedPapers: %v", err)
	}

	n, err := store.ClearTables(ctx)
	if err != nil {
		t.Fatalf("ClearTables: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}
	if count, _ := store.CountPapers(ctx); count != 0 {
		t.Errorf("count after clear = %d", count)
	}
	cols, _ := store.Columns(ctx)
	if !reflect.DeepEqual(cols, SchemaColumns) {
		t.Errorf("columns after clear = %v", cols)
	}
}

func TestParseTimestamp(t *testing.T) {
	if ts := parseTimestamp("2025-12-08 10:11:12"); ts.Hour() != 10 || ts.Day() != 8 {
		t.Errorf("text timestamp = %v", ts)
	}
	if ts := parseTimestamp([]byte("2025-12-08T10:11:12Z")); ts.Minute() != 11 {
		t.Errorf("RFC3339 timestamp = %v", ts)
	}
	if ts := parseTimestamp(nil); !ts.IsZero() {
		t.Errorf("nil timestamp = %v", ts)
	}
}
