package blastxml

import (
	"github.com/shenwei356/xopen"
)

// ParseFile parses the report at path. Compressed files (gzip, bzip2, xz,
// zstd) are read transparently and "-" reads standard input. A file that
// cannot be opened is reported like any other traversal failure.
func ParseFile(path string) Result {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return Result{Err: ErrTraversalText + err.Error()}
	}
	defer fh.Close()
	return ParseReader(fh)
}
