package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`
	Minimum     *float64               `json:"minimum,omitempty"`

	AdditionalProperties *bool `json:"additionalProperties,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

type Option func(*Generator)

// WithTagName selects the struct tag that names properties, "json" by default.
func WithTagName(tag string) Option {
	return func(g *Generator) {
		g.tagName = tag
	}
}

// WithEnum restricts every value of type t to values.
func WithEnum(t reflect.Type, values ...any) Option {
	return func(g *Generator) {
		g.enums[t] = values
	}
}

// WithBaseID sets the prefix of the root schema's $id.
func WithBaseID(base string) Option {
	return func(g *Generator) {
		g.baseID = strings.TrimSuffix(base, "/")
	}
}

// Generator generates JSON schemas from Go structs.
// Field constraints come from the `schema` tag, e.g. `schema:"required,minLength=1"`,
// and descriptions from the `description` tag.
type Generator struct {
	tagName string
	baseID  string
	enums   map[reflect.Type][]any
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		tagName: "json",
		enums:   make(map[reflect.Type][]any),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateSchema generates a JSON schema from a Go type
func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	s, err := g.schemaForType(t)
	if err != nil {
		return nil, err
	}

	s.Schema = schemaRef
	s.Title = derefType(t).Name()
	if g.baseID != "" {
		s.ID = g.baseID + "/" + strings.ToLower(s.Title)
	}
	return s, nil
}

// GenerateJSONSchema generates a JSON schema for the type of v as indented JSON.
func (g *Generator) GenerateJSONSchema(v any) (string, error) {
	s, err := g.GenerateSchema(reflect.TypeOf(v))
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(b), nil
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (g *Generator) schemaForType(t reflect.Type) (*JSONSchema, error) {
	t = derefType(t)

	s := &JSONSchema{}
	switch t.Kind() {
	case reflect.Struct:
		return g.structSchema(t)
	case reflect.Slice, reflect.Array:
		items, err := g.schemaForType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for array items: %w", err)
		}
		s.Type = "array"
		s.Items = items
	case reflect.String:
		s.Type = "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s.Type = "integer"
	case reflect.Float32, reflect.Float64:
		s.Type = "number"
	case reflect.Bool:
		s.Type = "boolean"
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}

	if values, ok := g.enums[t]; ok {
		s.Enum = values
	}
	return s, nil
}

func (g *Generator) structSchema(t reflect.Type) (*JSONSchema, error) {
	closed := false
	s := &JSONSchema{
		Type:                 "object",
		Properties:           make(map[string]*JSONSchema),
		AdditionalProperties: &closed,
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := g.fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.schemaForType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}

		required, err := applySchemaTag(field.Tag.Get("schema"), fs)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if required {
			s.Required = append(s.Required, name)
		}

		s.Properties[name] = fs
	}

	return s, nil
}

// fieldName returns "" for fields the tag hides with "-".
func (g *Generator) fieldName(field reflect.StructField) string {
	tag := field.Tag.Get(g.tagName)
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name
}

func applySchemaTag(tag string, s *JSONSchema) (bool, error) {
	required := false
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		key, value, _ := strings.Cut(part, "=")

		switch key {
		case "":
		case "required":
			required = true
		case "enum":
			for _, e := range strings.Split(value, "|") {
				s.Enum = append(s.Enum, e)
			}
		case "default":
			s.Default = value
		case "pattern":
			s.Pattern = value
		case "minLength", "minItems":
			n, err := strconv.Atoi(value)
			if err != nil {
				return false, fmt.Errorf("invalid %s %q", key, value)
			}
			if key == "minLength" {
				s.MinLength = &n
			} else {
				s.MinItems = &n
			}
		case "minimum":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false, fmt.Errorf("invalid minimum %q", value)
			}
			s.Minimum = &f
		default:
			return false, fmt.Errorf("unknown schema tag option %q", key)
		}
	}
	return required, nil
}
