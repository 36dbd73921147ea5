// Package store holds the immutable, ordered list of process records the
// dashboard renders.
package store

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

var (
	ErrEmptyStep     = errors.New("record has no step name")
	ErrDuplicateStep = errors.New("duplicate step name")
	ErrNotFinite     = errors.New("value is not a finite number")
	ErrNoRecords     = errors.New("no records")
)

type options struct {
	logger *log.Logger
}

type Option func(*options)

// WithLogger reports data-entry inconsistencies that do not block loading.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Store is read-only after New returns.
type Store struct {
	records []model.ProcessRecord
	index   map[string]int
}

// New validates records and takes a copy of them. Order is preserved.
func New(records []model.ProcessRecord, opts ...Option) (*Store, error) {
	o := options{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(&o)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	s := &Store{
		records: make([]model.ProcessRecord, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for n, r := range records {
		r.Step = strings.TrimSpace(r.Step)
		if r.Step == "" {
			return nil, fmt.Errorf("record %d: %w", n+1, ErrEmptyStep)
		}
		if _, dup := s.index[r.Step]; dup {
			return nil, fmt.Errorf("record %d %q: %w", n+1, r.Step, ErrDuplicateStep)
		}
		if err := checkFinite(r); err != nil {
			return nil, fmt.Errorf("record %d %q: %w", n+1, r.Step, err)
		}
		if r.RuntimeInconsistent() {
			o.logger.Printf("step %q has only one of run_time/expected_time; runtime shown as no data", r.Step)
		}
		s.records[n] = clone(r)
		s.index[r.Step] = n
	}
	return s, nil
}

func checkFinite(r model.ProcessRecord) error {
	fields := []struct {
		name string
		v    *float64
	}{
		{"run_time", r.RunTime},
		{"expected_time", r.ExpectedTime},
		{"downtime", &r.Downtime},
		{"failure_rate", r.FailureRate},
		{"availability", &r.Availability},
		{"performance", &r.Performance},
		{"quality", &r.Quality},
		{"oee", &r.OEE},
		{"material_used", r.MaterialUsed},
		{"waste_material", r.WasteMaterial},
	}
	for _, fld := range fields {
		if fld.v == nil {
			continue
		}
		if math.IsNaN(*fld.v) || math.IsInf(*fld.v, 0) {
			return fmt.Errorf("%s: %w", fld.name, ErrNotFinite)
		}
	}
	return nil
}

// clone detaches optional fields from the caller's pointers.
func clone(r model.ProcessRecord) model.ProcessRecord {
	cpInt := func(p *int) *int {
		if p == nil {
			return nil
		}
		return model.Int(*p)
	}
	cpFloat := func(p *float64) *float64 {
		if p == nil {
			return nil
		}
		return model.Float(*p)
	}
	r.Lot = cpInt(r.Lot)
	r.Units = cpInt(r.Units)
	r.RunTime = cpFloat(r.RunTime)
	r.ExpectedTime = cpFloat(r.ExpectedTime)
	r.FailureRate = cpFloat(r.FailureRate)
	r.MaterialUsed = cpFloat(r.MaterialUsed)
	r.WasteMaterial = cpFloat(r.WasteMaterial)
	return r
}

// Records returns the records in input order. Callers own the result.
func (s *Store) Records() []model.ProcessRecord {
	out := make([]model.ProcessRecord, len(s.records))
	for n, r := range s.records {
		out[n] = clone(r)
	}
	return out
}

func (s *Store) Lookup(step string) (model.ProcessRecord, bool) {
	n, ok := s.index[step]
	if !ok {
		return model.ProcessRecord{}, false
	}
	return clone(s.records[n]), true
}

func (s *Store) Len() int { return len(s.records) }
