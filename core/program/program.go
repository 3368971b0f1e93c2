// core/program/program.go
package program

import "strings"

// Program identifies the BLAST+ search program that produced a report.
type Program string

const (
	Unknown Program = ""
	BlastN  Program = "blastn"
	BlastP  Program = "blastp"
	BlastX  Program = "blastx"
	TBlastN Program = "tblastn"
	TBlastX Program = "tblastx"
)

// Molecule is the residue type of one side of an alignment or of a database.
type Molecule string

const (
	Nucleotide Molecule = "nucleotide"
	Protein    Molecule = "protein"
)

// All lists the known programs in a stable order.
var All = []Program{BlastN, BlastP, BlastX, TBlastN, TBlastX}

// Parse maps free text (a flag value or BlastOutput_program) to a Program.
// Matching is case-insensitive; unrecognized names yield Unknown.
func Parse(name string) Program {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range All {
		if n == string(p) {
			return p
		}
	}
	// megablast / dc-megablast / blastn-short all report as blastn variants
	if strings.Contains(n, "megablast") || strings.HasPrefix(n, "blastn") {
		return BlastN
	}
	if strings.HasPrefix(n, "blastp") {
		return BlastP
	}
	return Unknown
}

func (p Program) String() string {
	if p == Unknown {
		return "unknown"
	}
	return string(p)
}

// QueryMolecule is the residue type of the sequence the user submitted.
func (p Program) QueryMolecule() Molecule {
	switch p {
	case BlastP, TBlastN:
		return Protein
	default:
		return Nucleotide
	}
}

// SubjectMolecule is the residue type stored in the searched database.
func (p Program) SubjectMolecule() Molecule {
	switch p {
	case BlastP, BlastX:
		return Protein
	default:
		return Nucleotide
	}
}

// DatabaseType is the database type a program can search.
func (p Program) DatabaseType() Molecule { return p.SubjectMolecule() }

// QueryTranslated reports whether the query is translated in six frames.
func (p Program) QueryTranslated() bool { return p == BlastX || p == TBlastX }

// SubjectTranslated reports whether the subject is translated in six frames.
func (p Program) SubjectTranslated() bool { return p == TBlastN || p == TBlastX }

// QueryUnit is the length unit for query coordinates ("bp" or "aa").
func (p Program) QueryUnit() string { return unit(p.QueryMolecule()) }

// SubjectUnit is the length unit for subject coordinates ("bp" or "aa").
func (p Program) SubjectUnit() string { return unit(p.SubjectMolecule()) }

func unit(m Molecule) string {
	if m == Protein {
		return "aa"
	}
	return "bp"
}
