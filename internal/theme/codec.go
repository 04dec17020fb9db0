package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
)

// Format is a document encoding.
type Format string

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = "yaml"
	// FormatJSON encodes the document as indented JSON.
	FormatJSON Format = "json"
	// FormatTOML encodes the document as TOML.
	FormatTOML Format = "toml"
	// FormatCUE reads CUE documents. It cannot be written.
	FormatCUE Format = "cue"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Writable reports whether Marshal supports the format.
func (f Format) Writable() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTOML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("unknown document format %q (valid: yaml, json, toml, cue)", s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer document format from %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// Document is a decoded theme document together with its generic form,
// which the schema check inspects for keys the typed model ignores.
type Document struct {
	Path   string
	Format Format
	Config *ThemeConfig
	Raw    map[string]any
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", oerrors.ErrParse, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				"theme document not found",
				path,
				"Run 'themecfg init' to create one, or pass --file",
			)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, oerrors.NewPermissionError("cannot read theme document", map[string]string{"Path": path}, "")
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{Format: format, Config: &ThemeConfig{}}

	var err error
	switch format {
	case FormatYAML:
		err = parseYAML(data, doc)
	case FormatJSON:
		err = parseJSON(data, doc)
	case FormatTOML:
		err = parseTOML(data, doc)
	case FormatCUE:
		err = parseCUE(data, doc)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", oerrors.ErrParse, format, err)
	}

	if doc.Raw == nil {
		doc.Raw = map[string]any{}
	}
	doc.Config.normalize()
	return doc, nil
}

// parseYAML decodes the typed model with yaml.v3. The generic form goes
// through JSON so that unquoted keys such as color shade `500` become
// strings.
func parseYAML(data []byte, doc *Document) error {
	if err := yaml.Unmarshal(data, doc.Config); err != nil {
		return err
	}
	return k8syaml.Unmarshal(data, &doc.Raw)
}

func parseJSON(data []byte, doc *Document) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := k8syaml.Unmarshal(data, doc.Config); err != nil {
		return err
	}
	return k8syaml.Unmarshal(data, &doc.Raw)
}

func parseTOML(data []byte, doc *Document) error {
	if err := toml.Unmarshal(data, doc.Config); err != nil {
		return err
	}
	return toml.Unmarshal(data, &doc.Raw)
}

func parseCUE(data []byte, doc *Document) error {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename("theme.cue"))
	if err := v.Err(); err != nil {
		return err
	}
	if err := v.Decode(doc.Config); err != nil {
		return err
	}
	return v.Decode(&doc.Raw)
}

// Marshal encodes cfg in the given format.
func Marshal(cfg *ThemeConfig, format Format) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("nothing to encode")
	}
	out := cfg.Clone()

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(out); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("format %q cannot be written", format)
	}
}
