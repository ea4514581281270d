package export

import (
	"errors"

	"github.com/onlinealg/ksline/simulate"
)

// ErrHeaderMismatch indicates a row's AlgoCosts names (or their order) do
// not match the header established by the first row written to a sink.
var ErrHeaderMismatch = errors.New("export: result row algorithm columns do not match sink header")

// ResultSink consumes batches of simulation result rows. Close flushes any
// buffered output; it does not close the underlying writer, which stays
// owned by the caller.
type ResultSink interface {
	Write(rows []simulate.ResultRow) error
	Close() error
}

// header returns the ordered algorithm-name column list from the first row,
// and validates every row against it. An empty rows slice returns a nil
// header and no error.
func header(rows []simulate.ResultRow) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	names := make([]string, len(rows[0].AlgoCosts))
	for i, ac := range rows[0].AlgoCosts {
		names[i] = ac.Name
	}
	for _, row := range rows {
		if err := matchHeader(names, row); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func matchHeader(names []string, row simulate.ResultRow) error {
	if len(row.AlgoCosts) != len(names) {
		return ErrHeaderMismatch
	}
	for i, ac := range row.AlgoCosts {
		if ac.Name != names[i] {
			return ErrHeaderMismatch
		}
	}
	return nil
}
