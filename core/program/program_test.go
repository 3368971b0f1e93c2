package program

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]Program{
		"blastn":       BlastN,
		" BLASTX ":     BlastX,
		"tblastn":      TBlastN,
		"tblastx":      TBlastX,
		"blastp":       BlastP,
		"megablast":    BlastN,
		"blastn-short": BlastN,
		"blastp-fast":  BlastP,
		"psiblast":     Unknown,
		"":             Unknown,
	}
	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Errorf("Parse(%q)=%q want %q", in, got, want)
		}
	}
}

func TestMoleculesAndUnits(t *testing.T) {
	cases := []struct {
		p            Program
		qUnit, sUnit string
		db           Molecule
		qTr, sTr     bool
	}{
		{BlastN, "bp", "bp", Nucleotide, false, false},
		{BlastP, "aa", "aa", Protein, false, false},
		{BlastX, "bp", "aa", Protein, true, false},
		{TBlastN, "aa", "bp", Nucleotide, false, true},
		{TBlastX, "bp", "bp", Nucleotide, true, true},
	}
	for _, c := range cases {
		if c.p.QueryUnit() != c.qUnit || c.p.SubjectUnit() != c.sUnit {
			t.Errorf("%s units = %s/%s", c.p, c.p.QueryUnit(), c.p.SubjectUnit())
		}
		if c.p.DatabaseType() != c.db {
			t.Errorf("%s db type = %s", c.p, c.p.DatabaseType())
		}
		if c.p.QueryTranslated() != c.qTr || c.p.SubjectTranslated() != c.sTr {
			t.Errorf("%s translation flags wrong", c.p)
		}
	}
}

func TestUnknownString(t *testing.T) {
	if Unknown.String() != "unknown" || BlastX.String() != "blastx" {
		t.Fatalf("String() changed")
	}
}
