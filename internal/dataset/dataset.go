package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ErrMalformed is returned when input cannot be decoded into integers
var ErrMalformed = errors.New("malformed input")

// ErrUnknownFormat is returned for an unsupported format name
var ErrUnknownFormat = errors.New("unknown input format")

// Format names an input encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// tomlDocument is the shape of TOML input
type tomlDocument struct {
	Values []int `toml:"values"`
}

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension, defaulting to text
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Decode reads all of r and decodes it as f
func Decode(r io.Reader, f Format) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return DecodeBytes(data, f)
}

// DecodeBytes decodes data as f
func DecodeBytes(data []byte, f Format) ([]int, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []int{}, nil
	}

	var (
		values []int
		err    error
	)

	switch f {
	case FormatText:
		values, err = decodeText(string(data))
	case FormatJSON:
		err = sonic.Unmarshal(data, &values)
	case FormatYAML:
		err = yaml.Unmarshal(data, &values)
	case FormatTOML:
		var doc tomlDocument
		err = toml.Unmarshal(data, &doc)
		values = doc.Values
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrMalformed, f, err)
	}

	if values == nil {
		values = []int{}
	}
	return values, nil
}

// Load reads path and decodes it using the format implied by its extension
func Load(path string) ([]int, error) {
	return LoadAs(path, FormatFromPath(path))
}

// LoadAs reads path and decodes it as f regardless of its extension
func LoadAs(path string, f Format) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return DecodeBytes(data, f)
}

// ParseArgs parses integer command-line arguments; each argument may itself
// hold several comma-separated values.
func ParseArgs(args []string) ([]int, error) {
	return decodeText(strings.Join(args, " "))
}

func decodeText(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformed, field)
		}
		values = append(values, n)
	}
	return values, nil
}
