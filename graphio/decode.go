package graphio

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a graph or grid source holds no document.
var ErrEmptyDocument = errors.New("graphio: empty document")

// ErrUnknownFormat is returned by ReadFile for unsupported extensions.
var ErrUnknownFormat = errors.New("graphio: unknown file format, use .json, .yaml or .yml")

// DecodeJSON reads a GraphSpec from JSON.
func DecodeJSON(r io.Reader) (*GraphSpec, error) {
	var spec GraphSpec
	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return nil, decodeError(err, "JSON")
	}

	return &spec, nil
}

// DecodeYAML reads a GraphSpec from YAML.
func DecodeYAML(r io.Reader) (*GraphSpec, error) {
	var spec GraphSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, decodeError(err, "YAML")
	}

	return &spec, nil
}

// ReadFile decodes a GraphSpec from path, picking the format by extension.
func ReadFile(path string) (*GraphSpec, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: open %s", path)
	}
	defer f.Close()

	return decode(f)
}

func decoderFor(path string) (func(io.Reader) (*GraphSpec, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", path)
	}
}

// decodeError reports an empty document as ErrEmptyDocument and wraps
// anything else with the format name.
func decodeError(err error, format string) error {
	if errors.Is(err, io.EOF) {
		return errors.Wrapf(ErrEmptyDocument, "graphio: decode %s", format)
	}

	return errors.Wrapf(err, "graphio: decode %s", format)
}
