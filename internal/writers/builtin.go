package writers

import (
	"encoding/json"
	"io"

	"moop/internal/jsonlutil"
	"moop/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, in <-chan output.Query, cfg Config) error {
		return output.StreamText(w, in, cfg.Text)
	})
	Register(output.FormatTSV, func(w io.Writer, in <-chan output.Query, cfg Config) error {
		return output.StreamTSV(w, in, cfg.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, in <-chan output.Query, _ Config) error {
		// a single JSON array needs the whole run
		var buf []output.Query
		for q := range in {
			buf = append(buf, q)
		}
		return output.WriteJSON(w, buf)
	})
	Register(output.FormatJSONL, writeJSONL)
	Register(output.FormatGFF, func(w io.Writer, in <-chan output.Query, cfg Config) error {
		return output.StreamGFF(w, in, cfg.Header)
	})
	Register(output.FormatFASTA, func(w io.Writer, in <-chan output.Query, _ Config) error {
		return output.StreamFASTA(w, in)
	})
}

// writeJSONL streams each query as one JSON line (v1).
func writeJSONL(w io.Writer, in <-chan output.Query, _ Config) error {
	return jsonlutil.Encode[output.Query](w, in,
		func(enc *json.Encoder, q output.Query) error {
			return enc.Encode(output.ToAPIQuery(q))
		},
		IsBrokenPipe,
	)
}
