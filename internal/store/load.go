package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

var ErrUnknownFormat = errors.New("unknown records file format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// document is the on-disk shape: a top-level "records" list.
type document struct {
	Records []model.ProcessRecord `json:"records" yaml:"records" toml:"records"`
}

// Unmarshal decodes one document into v. Keys that v has no field for are
// an error in every format; an empty document leaves v untouched.
func Unmarshal(data []byte, format Format, v any) error {
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(v); errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("%s parse failed: %w", format, err)
	}
	return nil
}

// Decode parses a records document and builds a store from it.
func Decode(data []byte, format Format, opts ...Option) (*Store, error) {
	var doc document
	if err := Unmarshal(data, format, &doc); err != nil {
		return nil, err
	}
	return New(doc.Records, opts...)
}

// Load reads a records file from disk.
func Load(path string, opts ...Option) (*Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(data, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
