package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/onlinealg/ksline/simulate"
)

// CSVSink writes result rows as CSV: a fixed "k,n,lambda,eta,opt_cost"
// prefix followed by one column per algorithm, named from the first batch
// of rows it ever receives. Column names are stdlib encoding/csv fields, not
// a third-party spreadsheet dependency — no retrieved repo uses one for flat
// tabular export (Hola-to-network_logistics_problem's excelize targets full
// workbooks, a mismatch here).
type CSVSink struct {
	w           *csv.Writer
	columns     []string
	wroteHeader bool
}

// NewCSVSink wraps w in a CSVSink. The header row is written lazily, on the
// first non-empty Write call.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// Write appends rows to the CSV stream, writing the header line first if it
// has not been written yet. Returns ErrHeaderMismatch if a row's algorithm
// columns don't match the established header.
func (s *CSVSink) Write(rows []simulate.ResultRow) error {
	if len(rows) == 0 {
		return nil
	}

	if !s.wroteHeader {
		names, err := header(rows)
		if err != nil {
			return err
		}
		s.columns = names
		if err := s.w.Write(s.headerRow()); err != nil {
			return fmt.Errorf("export: write csv header: %w", err)
		}
		s.wroteHeader = true
	}

	for _, row := range rows {
		if err := matchHeader(s.columns, row); err != nil {
			return err
		}
		record := make([]string, 0, 5+len(s.columns))
		record = append(record,
			strconv.Itoa(row.K),
			strconv.Itoa(row.N),
			strconv.FormatFloat(row.Lambda, 'g', -1, 64),
			strconv.FormatFloat(row.Eta, 'g', -1, 64),
			strconv.FormatFloat(row.OptCost, 'g', -1, 64),
		)
		for _, ac := range row.AlgoCosts {
			record = append(record, strconv.FormatFloat(ac.Cost, 'g', -1, 64))
		}
		if err := s.w.Write(record); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	return nil
}

func (s *CSVSink) headerRow() []string {
	cols := make([]string, 0, 5+len(s.columns))
	cols = append(cols, "k", "n", "lambda", "eta", "opt_cost")
	cols = append(cols, s.columns...)
	return cols
}

// Close flushes any buffered CSV output.
func (s *CSVSink) Close() error {
	s.w.Flush()
	return s.w.Error()
}
