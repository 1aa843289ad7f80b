package tagdef

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/basictag/basictag-go/pkg/value"
)

// Parse errors.
var (
	ErrMissingName     = errors.New("tag definition has no name")
	ErrDuplicateName   = errors.New("duplicate tag name")
	ErrUnknownType     = errors.New("unknown data type")
	ErrUnknownValidate = errors.New("unknown validate mode")
	ErrNegativeMaxLen  = errors.New("max_len must not be negative")
)

// File is the parsed form of a tag definition file.
type File struct {
	// Version is the definition file format version.
	Version int `yaml:"version"`

	// Tags lists the tag definitions in file order.
	Tags []Definition `yaml:"tags"`
}

// Definition describes one tag to create.
type Definition struct {
	// Name is the tag name. Required and unique within the file.
	Name string `yaml:"name"`

	// Alias is the requested alias. Collisions are remapped by the
	// registry, as with direct creation.
	Alias int `yaml:"alias"`

	// Type is the data type name (int8..uint64, float, double, boolean,
	// string, datetime, text, uuid, bytes).
	Type string `yaml:"type"`

	// LocalWritable and RemoteWritable are the tag's writability flags.
	LocalWritable  bool `yaml:"local_writable"`
	RemoteWritable bool `yaml:"remote_writable"`

	// MaxLen is the capacity bound for string and bytes tags.
	MaxLen int `yaml:"max_len"`

	// Initial is an optional initial value stored into the backing cell
	// before the first read.
	Initial any `yaml:"initial"`

	// Validate names an optional built-in write validator ("uuid").
	Validate string `yaml:"validate"`
}

// DataType resolves the definition's type name.
func (d *Definition) DataType() (value.DataType, error) {
	return ParseDataType(d.Type)
}

// ParseDataType maps a type name to its value.DataType.
func ParseDataType(name string) (value.DataType, error) {
	switch name {
	case "int8":
		return value.DataTypeInt8, nil
	case "int16":
		return value.DataTypeInt16, nil
	case "int32":
		return value.DataTypeInt32, nil
	case "int64":
		return value.DataTypeInt64, nil
	case "uint8":
		return value.DataTypeUInt8, nil
	case "uint16":
		return value.DataTypeUInt16, nil
	case "uint32":
		return value.DataTypeUInt32, nil
	case "uint64":
		return value.DataTypeUInt64, nil
	case "float":
		return value.DataTypeFloat, nil
	case "double":
		return value.DataTypeDouble, nil
	case "boolean":
		return value.DataTypeBoolean, nil
	case "string":
		return value.DataTypeString, nil
	case "datetime":
		return value.DataTypeDateTime, nil
	case "text":
		return value.DataTypeText, nil
	case "uuid":
		return value.DataTypeUUID, nil
	case "bytes":
		return value.DataTypeBytes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// ParseFile reads and parses a tag definition file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses tag definitions from YAML data. Validation errors carry the
// line number of the offending definition.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}

	lines := definitionLines(data)
	seen := make(map[string]bool, len(f.Tags))
	for i := range f.Tags {
		def := &f.Tags[i]
		if err := validateDefinition(def, seen); err != nil {
			if i < len(lines) && lines[i] > 0 {
				return nil, fmt.Errorf("line %d: %w", lines[i], err)
			}
			return nil, err
		}
		seen[def.Name] = true
	}
	return &f, nil
}

func validateDefinition(def *Definition, seen map[string]bool) error {
	if def.Name == "" {
		return ErrMissingName
	}
	if seen[def.Name] {
		return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
	}
	if _, err := def.DataType(); err != nil {
		return err
	}
	if def.MaxLen < 0 {
		return ErrNegativeMaxLen
	}
	switch def.Validate {
	case "", "uuid":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownValidate, def.Validate)
	}
	return nil
}

// definitionLines extracts the starting line of each entry under "tags"
// for error reporting.
func definitionLines(data []byte) []int {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(doc.Content)-1; i += 2 {
		if doc.Content[i].Value != "tags" {
			continue
		}
		seq := doc.Content[i+1]
		if seq.Kind != yaml.SequenceNode {
			return nil
		}
		lines := make([]int, len(seq.Content))
		for j, entry := range seq.Content {
			lines[j] = entry.Line
		}
		return lines
	}
	return nil
}
