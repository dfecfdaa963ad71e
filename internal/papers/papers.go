// Package papers holds the fixed mock dataset used to seed the papers table.
package papers

import (
	"github.com/donavanyieh/Daily-Attention-UI/internal/hashutil"
	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
)

// Mock returns a deep copy of the seed dataset in its literal order.
func Mock() []models.Paper {
	out := make([]models.Paper, len(mockPapers))
	for i, p := range mockPapers {
		out[i] = p.Clone()
	}
	return out
}

// IDs returns the dataset IDs in literal order.
func IDs() []string {
	ids := make([]string, len(mockPapers))
	for i, p := range mockPapers {
		ids[i] = p.ID
	}
	return ids
}

// ByID looks up a dataset record.
func ByID(id string) (models.Paper, bool) {
	for _, p := range mockPapers {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Paper{}, false
}

// Fingerprint identifies a list of papers by the hash of its JSON encoding.
func Fingerprint(list []models.Paper) (string, error) {
	return hashutil.HashJSON(list)
}
