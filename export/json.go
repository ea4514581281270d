package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/onlinealg/ksline/simulate"
)

// jsonRow is the wire shape written for each ResultRow: AlgoCosts flattened
// into a name->cost map so downstream JSON consumers don't need to know the
// column order, while Write still enforces the same header-consistency rule
// as CSVSink for parity between the two sinks.
type jsonRow struct {
	K         int                `json:"k"`
	N         int                `json:"n"`
	Lambda    float64            `json:"lambda"`
	Eta       float64            `json:"eta"`
	OptCost   float64            `json:"opt_cost"`
	AlgoCosts map[string]float64 `json:"algo_costs"`
}

// JSONSink writes result rows as newline-delimited JSON objects.
type JSONSink struct {
	enc         *json.Encoder
	columns     []string
	wroteHeader bool
}

// NewJSONSink wraps w in a JSONSink.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

// Write appends rows as NDJSON. Returns ErrHeaderMismatch if a row's
// algorithm columns don't match the header established by the first batch.
func (s *JSONSink) Write(rows []simulate.ResultRow) error {
	if len(rows) == 0 {
		return nil
	}
	if !s.wroteHeader {
		names, err := header(rows)
		if err != nil {
			return err
		}
		s.columns = names
		s.wroteHeader = true
	}

	for _, row := range rows {
		if err := matchHeader(s.columns, row); err != nil {
			return err
		}
		costs := make(map[string]float64, len(row.AlgoCosts))
		for _, ac := range row.AlgoCosts {
			costs[ac.Name] = ac.Cost
		}
		rec := jsonRow{
			K:         row.K,
			N:         row.N,
			Lambda:    row.Lambda,
			Eta:       row.Eta,
			OptCost:   row.OptCost,
			AlgoCosts: costs,
		}
		if err := s.enc.Encode(rec); err != nil {
			return fmt.Errorf("export: write json row: %w", err)
		}
	}
	return nil
}

// Close is a no-op: JSONSink holds no resource of its own beyond w, which
// callers own and close themselves.
func (s *JSONSink) Close() error { return nil }
