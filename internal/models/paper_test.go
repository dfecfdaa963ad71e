package models

import (
	"reflect"
	"testing"
)

func TestEncodeNilFieldsAsEmpty(t *testing.T) {
	enc, err := Paper{ID: "x"}.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc.Authors != "[]" || enc.KeyPoints != "[]" || enc.Tags != "[]" {
		t.Errorf("lists = %q %q %q, want []", enc.Authors, enc.KeyPoints, enc.Tags)
	}
	if enc.Links != "{}" {
		t.Errorf("links = %q, want {}", enc.Links)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Paper{
		ID:        "2312.22134",
		Authors:   []string{"Tomáš Novák", "James O'Neill", "et al."},
		KeyPoints: []string{"Routing stability is key to performance.", "a <b> & \"c\""},
		Links:     map[string]string{"github": "https://github.com/sparse-moe", "project": "https://x.ai/?a=1&b=2"},
		Tags:      []string{"MoE", "LLMs"},
	}
	enc, err := in.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var out Paper
	if err := enc.Decode(&out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(out.Authors, in.Authors) {
		t.Errorf("authors = %v, want %v", out.Authors, in.Authors)
	}
	if !reflect.DeepEqual(out.KeyPoints, in.KeyPoints) {
		t.Errorf("keyPoints = %v, want %v", out.KeyPoints, in.KeyPoints)
	}
	if !reflect.DeepEqual(out.Links, in.Links) {
		t.Errorf("links = %v, want %v", out.Links, in.Links)
	}
	if !reflect.DeepEqual(out.Tags, in.Tags) {
		t.Errorf("tags = %v, want %v", out.Tags, in.Tags)
	}
}

func TestDecodeRejectsMalformedColumn(t *testing.T) {
	enc := EncodedColumns{Authors: `["a"]`, KeyPoints: `not json`, Links: `{}`, Tags: `[]`}
	var p Paper
	if err := enc.Decode(&p); err == nil {
		t.Fatal("expected error for malformed keyPoints")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Paper{
		Authors: []string{"a"},
		Links:   map[string]string{"k": "v"},
		Tags:    []string{"t"},
	}
	c := orig.Clone()
	c.Authors[0] = "changed"
	c.Links["k"] = "changed"
	c.Tags[0] = "changed"

	if orig.Authors[0] != "a" || orig.Links["k"] != "v" || orig.Tags[0] != "t" {
		t.Errorf("clone shares storage with original: %+v", orig)
	}
	if (Paper{}).Clone().Links != nil {
		t.Error("clone of nil links should stay nil")
	}
}
