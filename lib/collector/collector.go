// Package collector turns analytics tokens seen on delivery requests into
// records and stores them.
package collector

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/pthm/cldurl/lib/analytics"
)

// Record is one decoded token observation.
type Record struct {
	Time        time.Time `msgpack:"t"`
	Path        string    `msgpack:"p"`
	Token       string    `msgpack:"k"`
	Product     string    `msgpack:"pr"`
	SDKVersion  string    `msgpack:"sv"`
	TechVersion string    `msgpack:"tv"`
	Features    []string  `msgpack:"f,omitempty"`
}

// Recorder stores records.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// FromToken decodes token into a Record observed at now for the given path.
func FromToken(token, path string, now time.Time) (Record, error) {
	sig, err := analytics.Decode(token)
	if err != nil {
		return Record{}, err
	}
	return FromSignature(sig, token, path, now), nil
}

// FromSignature builds a Record from a signature already decoded from token.
func FromSignature(sig analytics.Signature, token, path string, now time.Time) Record {
	return Record{
		Time:        now.UTC(),
		Path:        path,
		Token:       token,
		Product:     sig.Product.String(),
		SDKVersion:  sig.SDKVersion.String(),
		TechVersion: sig.TechVersion.String(),
		Features:    sig.Features.Names(),
	}
}

// StreamRecorder appends msgpack-encoded records to a writer.
// It is safe for concurrent use.
type StreamRecorder struct {
	mu  sync.Mutex
	enc *msgpack.Encoder
}

// NewStreamRecorder returns a recorder writing to w.
func NewStreamRecorder(w io.Writer) *StreamRecorder {
	return &StreamRecorder{enc: msgpack.NewEncoder(w)}
}

// Record implements Recorder.
func (s *StreamRecorder) Record(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(&rec)
}

// ReadAll decodes every record written by a StreamRecorder.
func ReadAll(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var out []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, rec)
	}
}

// Multi fans a record out to several recorders. All recorders are called;
// their errors are joined.
func Multi(recorders ...Recorder) Recorder {
	return multiRecorder(recorders)
}

type multiRecorder []Recorder

func (m multiRecorder) Record(ctx context.Context, rec Record) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
