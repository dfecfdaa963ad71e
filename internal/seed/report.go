package seed

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/donavanyieh/Daily-Attention-UI/internal/hashutil"
)

// Report prints the operator summary of a seed run.
func (r InitResult) Report(w io.Writer) {
	fmt.Fprintln(w, "✅ Database initialized successfully!")
	fmt.Fprintf(w, "✅ Created '%s' with %d papers\n", filepath.Base(r.Path), r.Count)
	if r.Fingerprint != "" {
		fmt.Fprintf(w, "   Fingerprint: %s\n", hashutil.Short(r.Fingerprint))
	}
	fmt.Fprintln(w, "\n📄 Sample papers:")
	for _, ref := range r.Sample {
		fmt.Fprintf(w, "   - %s: %s\n", ref.ID, ref.Title)
	}
}

// Report prints the message for whichever branch the clear run took.
func (r ClearResult) Report(w io.Writer) {
	switch r.Outcome {
	case FileMissing:
		fmt.Fprintf(w, "❌ Database file '%s' not found!\n", filepath.Base(r.Path))
		fmt.Fprintf(w, "   Expected path: %s\n", r.AbsPath)
	case TableMissing:
		fmt.Fprintln(w, "❌ Table 'papers' not found in database!")
	case AlreadyEmpty:
		fmt.Fprintln(w, "ℹ️  Database is already empty. No papers to delete.")
	case Cleared:
		fmt.Fprintln(w, "✅ Database cleared successfully!")
		fmt.Fprintf(w, "✅ Deleted %d papers from 'papers' table\n", r.Before)
		fmt.Fprintf(w, "✅ Current count: %d papers\n", r.After)
		fmt.Fprintln(w, "\nℹ️  Table structure has been preserved.")
		fmt.Fprintln(w, "   Run 'papers_init' to repopulate with mock data.")
	}
}

// Report prints the summary of a drop run.
func (r DropResult) Report(w io.Writer) {
	switch {
	case r.FileMissing:
		fmt.Fprintf(w, "❌ Database file '%s' not found!\n", filepath.Base(r.Path))
		fmt.Fprintf(w, "   Expected path: %s\n", r.AbsPath)
	case r.HadTable:
		fmt.Fprintf(w, "✅ Dropped table 'papers' from '%s'\n", filepath.Base(r.Path))
	default:
		fmt.Fprintln(w, "ℹ️  Table 'papers' does not exist. Nothing to drop.")
	}
}
