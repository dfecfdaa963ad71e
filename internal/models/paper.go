package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Paper is a research paper's metadata as stored in the papers table.
type Paper struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Authors   []string          `json:"authors"`
	Abstract  string            `json:"abstract"`
	Summary   string            `json:"summary"`
	KeyPoints []string          `json:"keyPoints"`
	Impact    string            `json:"impact"`
	Links     map[string]string `json:"links"`
	Date      string            `json:"date"`
	Upvotes   int               `json:"upvotes"`
	Tags      []string          `json:"tags"`
	CreatedAt time.Time         `json:"created_at,omitzero"`
}

// EncodedColumns holds the JSON text written to the list/map columns.
type EncodedColumns struct {
	Authors   string
	KeyPoints string
	Links     string
	Tags      string
}

// Encode serializes the list and map fields. Nil values encode as [] / {}.
func (p Paper) Encode() (EncodedColumns, error) {
	var (
		out EncodedColumns
		err error
	)
	if out.Authors, err = encodeList(p.Authors); err != nil {
		return EncodedColumns{}, fmt.Errorf("encode authors: %w", err)
	}
	if out.KeyPoints, err = encodeList(p.KeyPoints); err != nil {
		return EncodedColumns{}, fmt.Errorf("encode keyPoints: %w", err)
	}
	links := p.Links
	if links == nil {
		links = map[string]string{}
	}
	b, err := json.Marshal(links)
	if err != nil {
		return EncodedColumns{}, fmt.Errorf("encode links: %w", err)
	}
	out.Links = string(b)
	if out.Tags, err = encodeList(p.Tags); err != nil {
		return EncodedColumns{}, fmt.Errorf("encode tags: %w", err)
	}
	return out, nil
}

// Decode fills the list and map fields of p from their column text.
func (c EncodedColumns) Decode(p *Paper) error {
	if err := json.Unmarshal([]byte(c.Authors), &p.Authors); err != nil {
		return fmt.Errorf("decode authors: %w", err)
	}
	if err := json.Unmarshal([]byte(c.KeyPoints), &p.KeyPoints); err != nil {
		return fmt.Errorf("decode keyPoints: %w", err)
	}
	if err := json.Unmarshal([]byte(c.Links), &p.Links); err != nil {
		return fmt.Errorf("decode links: %w", err)
	}
	if err := json.Unmarshal([]byte(c.Tags), &p.Tags); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	return nil
}

// Clone returns a deep copy of p.
func (p Paper) Clone() Paper {
	out := p
	out.Authors = cloneStrings(p.Authors)
	out.KeyPoints = cloneStrings(p.KeyPoints)
	out.Tags = cloneStrings(p.Tags)
	if p.Links != nil {
		out.Links = make(map[string]string, len(p.Links))
		for k, v := range p.Links {
			out.Links[k] = v
		}
	}
	return out
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
