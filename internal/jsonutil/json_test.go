package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodeKeepsMarkup(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(map[string]string{"subject": "<unknown description> A&B"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\"subject\":\"<unknown description> A&B\"}\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestEncodePrettyIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, []int{1, 2}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "[\n  1,\n  2\n]\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
