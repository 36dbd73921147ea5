package store

import (
	"bytes"
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

func TestSample(t *testing.T) {
	s := Sample()
	if s.Len() != 11 {
		t.Fatalf("sample has %d records, want 11", s.Len())
	}
	recs := s.Records()
	if recs[0].Step != "Paste Grinding" || recs[10].Step != "Shipping" {
		t.Fatalf("sample order = %q ... %q", recs[0].Step, recs[10].Step)
	}
	m3, ok := s.Lookup("Machine 3")
	if !ok || m3.Status != model.StatusStopped || m3.Lot != nil || m3.RunTime != nil {
		t.Fatalf("Machine 3 = %+v", m3)
	}
}

func TestNewRejects(t *testing.T) {
	for name, tc := range map[string]struct {
		records []model.ProcessRecord
		err     error
	}{
		"empty list":  {records: nil, err: ErrNoRecords},
		"blank step":  {records: []model.ProcessRecord{{Step: "  "}}, err: ErrEmptyStep},
		"duplicate":   {records: []model.ProcessRecord{{Step: "A"}, {Step: "A "}}, err: ErrDuplicateStep},
		"nan":         {records: []model.ProcessRecord{{Step: "A", Downtime: math.NaN()}}, err: ErrNotFinite},
		"inf runtime": {records: []model.ProcessRecord{{Step: "A", RunTime: model.Float(math.Inf(1)), ExpectedTime: model.Float(1)}}, err: ErrNotFinite},
	} {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tc.records)
			if !errors.Is(err, tc.err) {
				t.Fatalf("New() error = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestNewLogsHalfRuntime(t *testing.T) {
	var buf bytes.Buffer
	s, err := New([]model.ProcessRecord{{Step: "Half", RunTime: model.Float(3)}}, WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"Half"`) {
		t.Fatalf("log = %q, want a note about Half", buf.String())
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d", s.Len())
	}
}

func TestRecordsAreCopies(t *testing.T) {
	lot := 7
	in := []model.ProcessRecord{{Step: "A", Lot: &lot}}
	s, err := New(in)
	if err != nil {
		t.Fatal(err)
	}
	lot = 9
	in[0].Step = "B"

	out := s.Records()
	if out[0].Step != "A" || *out[0].Lot != 7 {
		t.Fatalf("store changed with its input: %+v lot %d", out[0], *out[0].Lot)
	}
	*out[0].Lot = 11
	if again, _ := s.Lookup("A"); *again.Lot != 7 {
		t.Fatalf("store changed through Records(): lot %d", *again.Lot)
	}
}

const yamlDoc = `
records:
  - step: Machine 1
    status: Running
    lot: 20002
    units: 205
    run_time: 20
    expected_time: 30
    downtime: 12
    failure_rate: null
    availability: 66.67
    performance: 66.67
    quality: 100
    oee: 44.44
    material_used: 32.4
    waste_material: 4.2
  - step: Machine 3
    status: Stopped
    units: 733
    downtime: 3
    quality: 97
`

const tomlDoc = `
[[records]]
step = "Machine 1"
status = "Running"
lot = 20002
units = 205
run_time = 20.0
expected_time = 30.0
downtime = 12.0
availability = 66.67
performance = 66.67
quality = 100.0
oee = 44.44
material_used = 32.4
waste_material = 4.2

[[records]]
step = "Machine 3"
status = "Stopped"
units = 733
downtime = 3.0
quality = 97.0
`

const jsonDoc = `{"records": [
 {"step": "Machine 1", "status": "Running", "lot": 20002, "units": 205, "run_time": 20, "expected_time": 30,
  "downtime": 12, "failure_rate": null, "availability": 66.67, "performance": 66.67, "quality": 100, "oee": 44.44,
  "material_used": 32.4, "waste_material": 4.2},
 {"step": "Machine 3", "status": "Stopped", "units": 733, "downtime": 3, "quality": 97}
]}`

func TestDecodeFormatsAgree(t *testing.T) {
	for format, doc := range map[Format]string{
		FormatYAML: yamlDoc,
		FormatTOML: tomlDoc,
		FormatJSON: jsonDoc,
	} {
		format := format
		doc := doc
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			s, err := Decode([]byte(doc), format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			recs := s.Records()
			if len(recs) != 2 {
				t.Fatalf("got %d records", len(recs))
			}
			m1, m3 := recs[0], recs[1]
			if m1.Step != "Machine 1" || *m1.Lot != 20002 || *m1.RunTime != 20 || *m1.MaterialUsed != 32.4 || m1.OEE != 44.44 {
				t.Fatalf("Machine 1 = %+v", m1)
			}
			if m1.FailureRate != nil {
				t.Fatalf("failure_rate = %v, want absent", *m1.FailureRate)
			}
			if m3.Status != model.StatusStopped || m3.Lot != nil || m3.RunTime != nil || *m3.Units != 733 {
				t.Fatalf("Machine 3 = %+v", m3)
			}
		})
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	for format, doc := range map[Format]string{
		FormatYAML: "records:\n  - step: A\n    status: Running\n    failure_rte: 3\n",
		FormatTOML: "[[records]]\nstep = \"A\"\nstatus = \"Running\"\nfailure_rte = 3.0\n",
		FormatJSON: `{"records": [{"step": "A", "status": "Running", "failure_rte": 3}]}`,
	} {
		format := format
		doc := doc
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			if _, err := Decode([]byte(doc), format); err == nil {
				t.Fatal("misspelled key accepted")
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"line.yaml": FormatYAML,
		"line.YML":  FormatYAML,
		"line.toml": FormatTOML,
		"data.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatFromPath("line.csv"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("FormatFromPath(csv) error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := s.Lookup("Machine 3"); !ok {
		t.Fatal("Machine 3 missing")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v", err)
	}

	bad := filepath.Join(t.TempDir(), "dup.json")
	if err := os.WriteFile(bad, []byte(`{"records":[{"step":"A"},{"step":"A"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrDuplicateStep) {
		t.Fatalf("Load(dup) error = %v", err)
	}
}
