package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/madhih2000/OEE-Dashboard/internal/store"
)

func TestDecodeFormats(t *testing.T) {
	want := Config{Addr: "0.0.0.0:9000", DataFile: "line.yaml", NoColor: true, Title: "Line 4"}

	tests := map[string]struct {
		format store.Format
		doc    string
	}{
		"yaml": {format: store.FormatYAML, doc: "addr: 0.0.0.0:9000\ndata: line.yaml\nno_color: true\ntitle: Line 4\n"},
		"toml": {format: store.FormatTOML, doc: "addr = \"0.0.0.0:9000\"\ndata = \"line.yaml\"\nno_color = true\ntitle = \"Line 4\"\n"},
		"json": {format: store.FormatJSON, doc: `{"addr":"0.0.0.0:9000","data":"line.yaml","no_color":true,"title":"Line 4"}`},
	}

	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode([]byte(tc.doc), tc.format)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("Decode = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDecodeKeepsDefaults(t *testing.T) {
	got, err := Decode([]byte("title: Line 4\n"), store.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if got.Addr != DefaultAddr || got.Title != "Line 4" || got.DataFile != "" {
		t.Fatalf("Decode = %+v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]struct {
		format store.Format
		doc    string
		err    error
	}{
		"bad addr":       {format: store.FormatYAML, doc: "addr: localhost\n", err: ErrBadAddr},
		"unknown format": {format: "ini", doc: "", err: store.ErrUnknownFormat},
	}
	for name, tc := range tests {
		if _, err := Decode([]byte(tc.doc), tc.format); !errors.Is(err, tc.err) {
			t.Errorf("%s: err = %v, want %v", name, err, tc.err)
		}
	}

	for format, doc := range map[store.Format]string{
		store.FormatJSON: `{"port": 1}`,
		store.FormatYAML: "port: 1\n",
		store.FormatTOML: "port = 1\n",
	} {
		if _, err := Decode([]byte(doc), format); err == nil {
			t.Errorf("unknown %s key accepted", format)
		}
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	for _, format := range []store.Format{store.FormatYAML, store.FormatTOML} {
		got, err := Decode(nil, format)
		if err != nil || got != Default() {
			t.Errorf("Decode(empty %s) = %+v, %v", format, got, err)
		}
	}
}

func TestLoadResolvesDataPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oeedash.toml")
	if err := os.WriteFile(path, []byte("data = \"records.yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataFile != filepath.Join(dir, "records.yaml") {
		t.Fatalf("DataFile = %q", cfg.DataFile)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
