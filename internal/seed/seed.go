// Package seed implements the destructive seed and the guarded clear of the
// papers database. Both open the store for the duration of one call.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
	"github.com/donavanyieh/Daily-Attention-UI/internal/papers"
	sqlstore "github.com/donavanyieh/Daily-Attention-UI/internal/storage/sqlite"
)

// SampleSize is how many rows the init report lists.
const SampleSize = 3

// InitResult describes a finished seed run.
type InitResult struct {
	Path        string
	Count       int
	Sample      []sqlstore.PaperRef
	Fingerprint string
	PaperIDs    []string
}

// Init drops and recreates the papers table at path and inserts list.
func Init(ctx context.Context, path string, list []models.Paper) (InitResult, error) {
	store, err := sqlstore.Open(path)
	if err != nil {
		return InitResult{}, err
	}
	defer store.Close()

	if err := store.ReseedPapers(ctx, list); err != nil {
		return InitResult{}, fmt.Errorf("seed papers: %w", err)
	}
	count, err := store.CountPapers(ctx)
	if err != nil {
		return InitResult{}, fmt.Errorf("count papers: %w", err)
	}
	sample, err := store.SamplePapers(ctx, SampleSize)
	if err != nil {
		return InitResult{}, fmt.Errorf("sample papers: %w", err)
	}
	fingerprint, err := papers.Fingerprint(list)
	if err != nil {
		return InitResult{}, fmt.Errorf("fingerprint dataset: %w", err)
	}

	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	logging.Debugf("[seed] inserted %d papers into %s (fingerprint %s)", count, store.Path(), fingerprint)
	return InitResult{
		Path:        store.Path(),
		Count:       count,
		Sample:      sample,
		Fingerprint: fingerprint,
		PaperIDs:    ids,
	}, nil
}

// ClearOutcome is the branch the clearer took.
type ClearOutcome int

const (
	FileMissing ClearOutcome = iota
	TableMissing
	AlreadyEmpty
	Cleared
)

func (o ClearOutcome) String() string {
	switch o {
	case FileMissing:
		return "file_missing"
	case TableMissing:
		return "table_missing"
	case AlreadyEmpty:
		return "already_empty"
	case Cleared:
		return "cleared"
	}
	return fmt.Sprintf("ClearOutcome(%d)", int(o))
}

// ClearResult describes a finished clear run.
type ClearResult struct {
	Path    string
	AbsPath string
	Outcome ClearOutcome
	Before  int
	After   int
}

// Clear deletes every row from the papers table at path. The checks run in
// order file, table, row count; the first one that fails ends the run with
// no changes to the database.
func Clear(ctx context.Context, path string) (ClearResult, error) {
	if path == "" {
		path = sqlstore.DefaultPath
	}
	res := ClearResult{Path: path, AbsPath: absPath(path)}

	exists, err := fileExists(path)
	if err != nil {
		return res, err
	}
	if !exists {
		res.Outcome = FileMissing
		return res, nil
	}

	store, err := sqlstore.Open(path)
	if err != nil {
		return res, err
	}
	defer store.Close()

	hasTable, err := store.HasTable(ctx)
	if err != nil {
		return res, fmt.Errorf("check papers table: %w", err)
	}
	if !hasTable {
		res.Outcome = TableMissing
		return res, nil
	}

	before, err := store.CountPapers(ctx)
	if err != nil {
		return res, fmt.Errorf("count papers: %w", err)
	}
	res.Before = before
	if before == 0 {
		res.Outcome = AlreadyEmpty
		return res, nil
	}

	deleted, err := store.ClearTables(ctx)
	if err != nil {
		return res, fmt.Errorf("delete papers: %w", err)
	}
	after, err := store.CountPapers(ctx)
	if err != nil {
		return res, fmt.Errorf("count papers: %w", err)
	}
	logging.Debugf("[seed] deleted %d rows from %s", deleted, path)
	res.After = after
	res.Outcome = Cleared
	return res, nil
}

// DropResult describes a finished drop run.
type DropResult struct {
	Path        string
	AbsPath     string
	FileMissing bool
	HadTable    bool
}

// Drop removes the papers table. A missing file is left uncreated.
func Drop(ctx context.Context, path string) (DropResult, error) {
	if path == "" {
		path = sqlstore.DefaultPath
	}
	res := DropResult{Path: path, AbsPath: absPath(path)}

	exists, err := fileExists(path)
	if err != nil {
		return res, err
	}
	if !exists {
		res.FileMissing = true
		return res, nil
	}

	store, err := sqlstore.Open(path)
	if err != nil {
		return res, err
	}
	defer store.Close()

	if res.HadTable, err = store.HasTable(ctx); err != nil {
		return res, fmt.Errorf("check papers table: %w", err)
	}
	if err := store.DropTables(ctx); err != nil {
		return res, fmt.Errorf("drop papers table: %w", err)
	}
	return res, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
