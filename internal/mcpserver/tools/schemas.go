package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Common JSON Schema building blocks

// StringSchema creates a JSON schema for a string field
func StringSchema(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

// IntegerSchema creates a JSON schema for an integer field with optional min/max
func IntegerSchema(description string, min, max *int) map[string]any {
	schema := map[string]any{
		"type":        "integer",
		"description": description,
	}
	if min != nil {
		schema["minimum"] = *min
	}
	if max != nil {
		schema["maximum"] = *max
	}
	return schema
}

// BooleanSchema creates a JSON schema for a boolean field
func BooleanSchema(description string) map[string]any {
	return map[string]any{
		"type":        "boolean",
		"description": description,
	}
}

// EnumSchema creates a JSON schema for an enum field
func EnumSchema(description string, values []string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"enum":        values,
	}
}

// ArraySchema creates a JSON schema for an array field
func ArraySchema(description string, items map[string]any) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       items,
	}
}

// BuildSchema creates a complete JSON schema object with properties and required fields.
// Properties not listed are rejected.
func BuildSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Kind is the primitive type of a schema field
type Kind string

const (
	KindString      Kind = "string"
	KindInteger     Kind = "integer"
	KindBoolean     Kind = "boolean"
	KindStringArray Kind = "array"
	KindDayRange    Kind = "day_range" // "<n>d", rendered as a string
)

var dayRangePattern = regexp.MustCompile(`^[1-9][0-9]*d$`)

// Field declares one named tool argument.
// Min and Max bound the value of integer fields and the length of array fields.
type Field struct {
	Name        string
	Description string
	Kind        Kind
	Required    bool
	Default     any
	Enum        []string
	Pattern     *regexp.Regexp
	Min         *int
	Max         *int
}

// StringField declares an optional free-form string
func StringField(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindString}
}

// EnumField declares a string restricted to a closed set of values
func EnumField(name, description string, values []string) Field {
	return Field{Name: name, Description: description, Kind: KindString, Enum: values}
}

// DayRangeField declares a window such as "30d" of 1 to maxDays days
func DayRangeField(name, description string, maxDays int) Field {
	return Field{Name: name, Description: description, Kind: KindDayRange, Pattern: dayRangePattern, Max: &maxDays}
}

// IntegerField declares an integer with optional inclusive bounds
func IntegerField(name, description string, min, max *int) Field {
	return Field{Name: name, Description: description, Kind: KindInteger, Min: min, Max: max}
}

// BooleanField declares a boolean flag
func BooleanField(name, description string) Field {
	return Field{Name: name, Description: description, Kind: KindBoolean}
}

// StringArrayField declares a list of strings with an optional minimum length
func StringArrayField(name, description string, minItems *int) Field {
	return Field{Name: name, Description: description, Kind: KindStringArray, Min: minItems}
}

// Require marks the field as required
func (f Field) Require() Field {
	f.Required = true
	return f
}

// WithDefault sets the value substituted when the field is absent
func (f Field) WithDefault(v any) Field {
	f.Default = v
	return f
}

// JSONSchema renders the field as a JSON schema property
func (f Field) JSONSchema() map[string]any {
	var schema map[string]any
	switch {
	case f.Kind == KindString && len(f.Enum) > 0:
		schema = EnumSchema(f.Description, f.Enum)
	case f.Kind == KindString || f.Kind == KindDayRange:
		schema = StringSchema(f.Description)
		if f.Pattern != nil {
			schema["pattern"] = f.Pattern.String()
		}
	case f.Kind == KindInteger:
		schema = IntegerSchema(f.Description, f.Min, f.Max)
	case f.Kind == KindBoolean:
		schema = BooleanSchema(f.Description)
	case f.Kind == KindStringArray:
		schema = ArraySchema(f.Description, map[string]any{"type": "string"})
		if f.Min != nil {
			schema["minItems"] = *f.Min
		}
		if f.Max != nil {
			schema["maxItems"] = *f.Max
		}
	default:
		schema = map[string]any{"description": f.Description}
	}
	if f.Default != nil {
		schema["default"] = f.Default
	}
	return schema
}

// Schema is the ordered set of fields a tool accepts
type Schema struct {
	fields []Field
}

// NewSchema builds a schema from fields in declaration order
func NewSchema(fields ...Field) Schema {
	return Schema{fields: fields}
}

// Fields returns the declared fields in order
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// JSONSchema renders the schema for tools/list
func (s Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.fields))
	var required []string
	for _, f := range s.fields {
		properties[f.Name] = f.JSONSchema()
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return BuildSchema(properties, required)
}

// Validate checks raw arguments against the schema and returns the typed,
// defaulted input. All violations are reported, fields in declaration order
// followed by unknown keys in sorted order. A null value counts as absent.
func (s Schema) Validate(raw map[string]any) (Input, error) {
	values := make(map[string]any, len(s.fields))
	known := make(map[string]bool, len(s.fields))
	var errs ValidationErrors

	for _, f := range s.fields {
		known[f.Name] = true

		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				errs = append(errs, &FieldError{Field: f.Name, Constraint: "required", Message: "is required"})
			} else if f.Default != nil {
				values[f.Name] = cloneValue(f.Default)
			}
			continue
		}

		coerced, ferr := f.coerce(v)
		if ferr != nil {
			errs = append(errs, ferr)
			continue
		}
		values[f.Name] = coerced
	}

	unknown := make([]string, 0)
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, &FieldError{Field: key, Constraint: "additionalProperties", Message: "is not a recognized field"})
	}

	if len(errs) > 0 {
		return Input{}, errs
	}
	return Input{values: values}, nil
}

func (f Field) coerce(v any) (any, *FieldError) {
	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return nil, f.typeError("a string")
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return nil, &FieldError{
				Field:      f.Name,
				Constraint: "enum",
				Message:    fmt.Sprintf("must be one of [%s], got %q", strings.Join(f.Enum, ", "), s),
			}
		}
		if f.Pattern != nil && !f.Pattern.MatchString(s) {
			return nil, &FieldError{
				Field:      f.Name,
				Constraint: "pattern",
				Message:    fmt.Sprintf("must match %s, got %q", f.Pattern.String(), s),
			}
		}
		return s, nil

	case KindDayRange:
		s, ok := v.(string)
		if !ok {
			return nil, f.typeError("a string")
		}
		if !f.Pattern.MatchString(s) {
			return nil, &FieldError{
				Field:      f.Name,
				Constraint: "pattern",
				Message:    fmt.Sprintf("must match %s, got %q", f.Pattern.String(), s),
			}
		}
		// digits past int range fail Atoi and are over any bound anyway
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "d")); err != nil || n > *f.Max {
			return nil, &FieldError{
				Field:      f.Name,
				Constraint: "maximum",
				Message:    fmt.Sprintf("must be at most %dd, got %q", *f.Max, s),
			}
		}
		return s, nil

	case KindInteger:
		n, ok := toInt(v)
		if !ok {
			return nil, f.typeError("an integer")
		}
		if f.Min != nil && n < *f.Min {
			return nil, &FieldError{Field: f.Name, Constraint: "minimum", Message: fmt.Sprintf("must be >= %d, got %d", *f.Min, n)}
		}
		if f.Max != nil && n > *f.Max {
			return nil, &FieldError{Field: f.Name, Constraint: "maximum", Message: fmt.Sprintf("must be <= %d, got %d", *f.Max, n)}
		}
		return n, nil

	case KindBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, f.typeError("a boolean")
		}
		return b, nil

	case KindStringArray:
		items, ok := toStrings(v)
		if !ok {
			return nil, f.typeError("an array of strings")
		}
		if f.Min != nil && len(items) < *f.Min {
			return nil, &FieldError{Field: f.Name, Constraint: "minItems", Message: fmt.Sprintf("must contain at least %d item(s)", *f.Min)}
		}
		if f.Max != nil && len(items) > *f.Max {
			return nil, &FieldError{Field: f.Name, Constraint: "maxItems", Message: fmt.Sprintf("must contain at most %d item(s)", *f.Max)}
		}
		return items, nil
	}

	return nil, &FieldError{Field: f.Name, Constraint: "type", Message: fmt.Sprintf("has unsupported kind %q", f.Kind)}
}

func (f Field) typeError(want string) *FieldError {
	return &FieldError{Field: f.Name, Constraint: "type", Message: "must be " + want}
}

// toInt accepts integral JSON numbers in any of the shapes decoders produce
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return toInt(i)
	}
	return 0, false
}

func toStrings(v any) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return append([]string{}, items...), true
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func cloneValue(v any) any {
	if items, ok := v.([]string); ok {
		return append([]string{}, items...)
	}
	return v
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// Input is a validated, defaulted set of tool arguments
type Input struct {
	values map[string]any
}

// Has reports whether name was supplied or defaulted
func (in Input) Has(name string) bool {
	_, ok := in.values[name]
	return ok
}

// String returns a string argument, or "" when absent
func (in Input) String(name string) string {
	s, _ := in.values[name].(string)
	return s
}

// StringPtr returns a string argument, or nil when absent
func (in Input) StringPtr(name string) *string {
	s, ok := in.values[name].(string)
	if !ok {
		return nil
	}
	return &s
}

// Days returns the day count of a validated day range argument, or 0 when absent
func (in Input) Days(name string) int {
	s, _ := in.values[name].(string)
	n, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
	if err != nil {
		return 0
	}
	return n
}

// Int returns an integer argument, or 0 when absent
func (in Input) Int(name string) int {
	n, _ := in.values[name].(int)
	return n
}

// Bool returns a boolean argument, or false when absent
func (in Input) Bool(name string) bool {
	b, _ := in.values[name].(bool)
	return b
}

// Strings returns a copy of a string array argument, or an empty slice when absent
func (in Input) Strings(name string) []string {
	items, _ := in.values[name].([]string)
	return append([]string{}, items...)
}
