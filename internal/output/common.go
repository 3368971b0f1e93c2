package output

import (
	"moop-core/blastxml"
	"moop-core/program"
)

// Output format names accepted by -o/--output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
	FormatFASTA = "fasta"
)

// Formats lists every format in help-text order.
var Formats = []string{FormatText, FormatTSV, FormatJSON, FormatJSONL, FormatGFF, FormatFASTA}

// TSVHeader is the canonical header row for TSV output (one row per HSP).
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tquery\thit_num\thit_id\tsubject\thit_len\thsp_num\tpident\talign_len\tidentities\tgaps\tqfrom\tqto\tsfrom\tsto\tqframe\tsframe\tevalue\tbitscore\tscore\tqcov_hsp\tscov_hsp\tqcov_hit\tband"

// Query is one parsed query together with the report it came from. It is the
// unit that flows from the app to the writers.
type Query struct {
	SourceFile string
	Program    program.Program
	Report     blastxml.ReportInfo
	Result     blastxml.QueryResult
}

// hitNum is the hit's reported rank, or its position when BLAST omitted it.
func hitNum(h blastxml.Hit, idx int) int {
	if h.Num > 0 {
		return h.Num
	}
	return idx + 1
}
