package alignfmt

import (
	"os"
	"path/filepath"
	"testing"

	"moop-core/blastxml"
	"moop-core/program"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
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

func fixtureHSP(t *testing.T, name string, hit int) (program.Program, blastxml.HSP) {
	t.Helper()
	res := blastxml.ParseFile(filepath.Join("..", "blastxml", "testdata", name))
	if !res.OK() {
		t.Fatalf("parse %s: %s", name, res.Err)
	}
	return program.Parse(res.Report.Program), res.Queries[0].Hits[hit].HSPs[0]
}

func TestFromHSPFixtures_Golden(t *testing.T) {
	cases := []struct {
		fixture string
		hit     int
		golden  string
		qFrame  int
		hFrame  int
		strand  Strand
	}{
		{"blastx_minus_frame.xml", 0, "blastx_minus_frame.golden", -2, 0, Plus},
		{"tblastn_plus_frame.xml", 0, "tblastn_plus_frame.golden", 0, 3, Plus},
		{"blastn_multi.xml", 1, "blastn_minus_strand.golden", 0, 0, Minus},
	}
	for _, c := range cases {
		t.Run(c.fixture, func(t *testing.T) {
			p, hsp := fixtureHSP(t, c.fixture, c.hit)
			req := FromHSP(p, hsp)
			if req.QueryFrame != c.qFrame || req.HitFrame != c.hFrame || req.Strand != c.strand {
				t.Fatalf("request frames = %d/%d strand %s", req.QueryFrame, req.HitFrame, req.Strand)
			}
			got := Format(req)
			path := filepath.Join("testdata", c.golden)
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
		})
	}
}

func TestFromHSPProgramFrames(t *testing.T) {
	h := blastxml.HSP{
		AlignmentLength: 3, QuerySeq: "MKV", HitSeq: "MKV", Midline: "MKV",
		QueryFrom: 1, QueryTo: 9, HitFrom: 30, HitTo: 22,
		QueryFrame: 2, HitFrame: -1,
	}
	cases := []struct {
		p      program.Program
		qf, hf int
		strand Strand
	}{
		{program.BlastN, 0, 0, Minus},
		{program.BlastP, 0, 0, Plus},
		{program.BlastX, 2, 0, Plus},
		{program.TBlastN, 0, -1, Plus},
		{program.TBlastX, 2, -1, Plus},
		{program.Unknown, 0, 0, Minus},
	}
	for _, c := range cases {
		req := FromHSP(c.p, h)
		if req.QueryFrame != c.qf || req.HitFrame != c.hf || req.Strand != c.strand {
			t.Errorf("%s: frames %d/%d strand %s", c.p, req.QueryFrame, req.HitFrame, req.Strand)
		}
	}
}

func TestFromHSPDefaults(t *testing.T) {
	req := FromHSP(program.TBlastN, blastxml.HSP{QuerySeq: "MK-V", HitFrom: 1, HitTo: 9})
	if req.AlignmentLength != 4 {
		t.Fatalf("alignment length fallback = %d", req.AlignmentLength)
	}
	if req.HitFrame != 1 {
		t.Fatalf("missing frame should read forward, got %d", req.HitFrame)
	}
}
