// Package writers turns parsed queries into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text report, TSV, JSON/JSONL, GFF, FASTA).
//   - core/blastxml stays parse-only; apps stay orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
