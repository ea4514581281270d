package instgen

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/onlinealg/ksline/core"
)

// fileRequest is the wire shape of one request inside a file-loaded
// instance: S/T are the service/release positions (equal for a Simple
// request).
type fileRequest struct {
	S core.Position `json:"s"`
	T core.Position `json:"t"`
}

// fileInstance is the wire shape of one instance inside an instance file.
type fileInstance struct {
	Initial  []core.Position `json:"initial"`
	Requests []fileRequest   `json:"requests"`
}

// FileInstanceSource reads a JSON array of fileInstance objects from a
// reader, decoding the entire document up front (these files describe batch
// research inputs, not streaming telemetry, so eager decoding is the right
// trade-off — no retrieved repo streams instance files incrementally
// either).
type FileInstanceSource struct {
	instances []fileInstance
	next      int
}

// NewFileInstanceSource decodes r as a JSON array of instances.
func NewFileInstanceSource(r io.Reader) (*FileInstanceSource, error) {
	var instances []fileInstance
	if err := json.NewDecoder(r).Decode(&instances); err != nil {
		return nil, fmt.Errorf("instgen: decode instance file: %w", err)
	}
	return &FileInstanceSource{instances: instances}, nil
}

// Next returns the next decoded instance, or (Instance{}, false, nil) once
// every instance in the file has been returned.
func (s *FileInstanceSource) Next() (core.Instance, bool, error) {
	if s.next >= len(s.instances) {
		return core.Instance{}, false, nil
	}
	raw := s.instances[s.next]
	s.next++

	config := core.NewServerConfiguration(raw.Initial)
	requests := make([]core.Request, len(raw.Requests))
	for i, fr := range raw.Requests {
		if fr.S == fr.T {
			requests[i] = core.NewSimpleRequest(fr.S)
		} else {
			requests[i] = core.NewRelocationRequest(fr.S, fr.T)
		}
	}

	in, err := core.NewInstance(config, requests)
	if err != nil {
		return core.Instance{}, false, fmt.Errorf("instgen: instance %d: %w", s.next-1, err)
	}
	return in, true, nil
}
