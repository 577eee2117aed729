package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mpyw/singletonsafe/internal/typespec"
)

// ErrUnsupportedFormat is returned for registration files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported registration file format")

// Format is the encoding of a registration file.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// file is the on-disk shape of a registration snapshot:
//
//	registrations:
//	  - type: github.com/example/app.Service
//	    lifetime: singleton
type file struct {
	Registrations []fileEntry `yaml:"registrations" toml:"registrations"`
}

type fileEntry struct {
	Type     string `yaml:"type" toml:"type"`
	Lifetime string `yaml:"lifetime" toml:"lifetime"`
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a registration snapshot from path.
func Load(path string) ([]Registration, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registrations: %w", err)
	}

	regs, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return regs, nil
}

// Decode parses a registration snapshot in the given format.
func Decode(data []byte, format Format) ([]Registration, error) {
	var f file

	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	regs := make([]Registration, 0, len(f.Registrations))

	for i, entry := range f.Registrations {
		spec, err := typespec.ParseOne(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("registration %d: %w", i, err)
		}

		lifetime, err := ParseLifetime(entry.Lifetime)
		if err != nil {
			return nil, fmt.Errorf("registration %d (%s): %w", i, spec, err)
		}

		regs = append(regs, Registration{Spec: spec, Lifetime: lifetime})
	}

	return regs, nil
}
