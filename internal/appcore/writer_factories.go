package appcore

import (
	"io"

	"moop/internal/output"
	"moop/internal/writers"
)

// QueryWriterFactory starts the registered writer for one output format.
type QueryWriterFactory struct {
	Format string
	Config writers.Config
}

func NewQueryWriterFactory(format string, header bool, text output.Options) QueryWriterFactory {
	return QueryWriterFactory{
		Format: format,
		Config: writers.Config{Header: header, Text: text},
	}
}

// NeedSeq reports whether the format prints aligned sequences. TSV and GFF
// only carry coordinates and statistics.
func (w QueryWriterFactory) NeedSeq() bool {
	switch w.Format {
	case output.FormatTSV, output.FormatGFF:
		return false
	case output.FormatText:
		return w.Config.Text.Alignments
	}
	return true
}

func (w QueryWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Query, <-chan error) {
	return writers.StartQueryWriter(out, w.Format, w.Config, bufSize)
}
