package output

import (
	"os"
	"path/filepath"
	"testing"

	"moop-core/blastxml"
	"moop-core/program"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "core", "blastxml", "testdata", name)
}

func loadQueries(t *testing.T, name string) []Query {
	t.Helper()
	res := blastxml.ParseFile(fixture(name))
	if !res.OK() {
		t.Fatalf("parse %s: %s", name, res.Err)
	}
	out := make([]Query, 0, len(res.Queries))
	for _, q := range res.Queries {
		out = append(out, Query{
			SourceFile: name,
			Program:    program.Parse(res.Report.Program),
			Report:     res.Report,
			Result:     q,
		})
	}
	return out
}

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	// Ensure the testdata directory exists before writing.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	// First-run: create golden if missing.
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func feed(list []Query) <-chan Query {
	ch := make(chan Query, len(list))
	for _, q := range list {
		ch <- q
	}
	close(ch)
	return ch
}
