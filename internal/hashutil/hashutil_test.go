package hashutil

import "testing"

func TestHashJSONAndShort(t *testing.T) {
	h, err := HashJSON([]string{"a", "b"})
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	if again, _ := HashJSON([]string{"a", "b"}); again != h {
		t.Error("hash not deterministic")
	}
	if other, _ := HashJSON([]string{"ab"}); other == h {
		t.Error("different values hashed equal")
	}
	if len(h) != 64 {
		t.Fatalf("len = %d", len(h))
	}
	if got := Short(h); got != h[:12] {
		t.Errorf("Short = %s", got)
	}
	if got := Short("abc"); got != "abc" {
		t.Errorf("Short(abc) = %s", got)
	}
	if _, err := HashJSON(make(chan int)); err == nil {
		t.Error("expected error for unencodable value")
	}
}
