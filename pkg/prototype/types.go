package prototype

import (
	"encoding/json"
	"fmt"
)

// Default field values applied by the constructors and by Update.
const (
	DefaultIntValue    = 1
	DefaultStringValue = "Value"
	DefaultBoolValue   = true
)

// Variant names one concrete type within the hierarchy.
type Variant string

const (
	// VariantBase is the root level, carrying an int and a string
	VariantBase Variant = "base"

	// VariantExtended adds a bool on top of the base level
	VariantExtended Variant = "extended"
)

// Validate checks that a constructor is registered for the variant.
func (v Variant) Validate() error {
	if v == "" {
		return fmt.Errorf("variant cannot be empty")
	}
	if !IsRegistered(v) {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	return nil
}

// BaseFields is the aggregate of fields declared by the base level.
type BaseFields struct {
	IntValue    int    `json:"int_value"`
	StringValue string `json:"string_value"`
}

// ExtendedFields is the aggregate of fields declared by the extended level.
type ExtendedFields struct {
	BoolValue bool `json:"bool_value"`
}

// State is a flat, serialisable view of a value across all of its levels.
// BoolValue is nil for variants that do not declare it.
type State struct {
	Variant Variant `json:"variant"`
	BaseFields
	BoolValue *bool `json:"bool_value,omitempty"`
}

// Value is implemented by every variant in the hierarchy.
type Value interface {
	// Variant reports the concrete variant of the value.
	Variant() Variant

	// Fields returns a copy of the base-level aggregate.
	Fields() BaseFields

	// State returns the fields of every level.
	State() State

	// Update sets the base-level fields. Omitted options take their defaults.
	Update(opts ...UpdateOption)

	// Copy returns an independent clone of the same concrete variant.
	Copy() Value

	// Equal reports whether both base-level fields match exactly.
	Equal(other Value) bool
}

// UpdateOption sets one base-level field during Update.
type UpdateOption func(*BaseFields)

// WithIntValue overrides the int field. Without it, Update writes DefaultIntValue.
func WithIntValue(v int) UpdateOption {
	return func(f *BaseFields) {
		f.IntValue = v
	}
}

// WithStringValue overrides the string field. Without it, Update writes DefaultStringValue.
func WithStringValue(s string) UpdateOption {
	return func(f *BaseFields) {
		f.StringValue = s
	}
}

func defaultBaseFields() BaseFields {
	return BaseFields{
		IntValue:    DefaultIntValue,
		StringValue: DefaultStringValue,
	}
}

// Base is the root variant.
type Base struct {
	fields BaseFields
}

// NewBase returns a base value with default fields.
func NewBase() *Base {
	return &Base{fields: defaultBaseFields()}
}

// Variant implements Value.
func (b *Base) Variant() Variant {
	return VariantBase
}

// IntValue returns the int field.
func (b *Base) IntValue() int {
	return b.fields.IntValue
}

// StringValue returns the string field.
func (b *Base) StringValue() string {
	return b.fields.StringValue
}

// Fields implements Value.
func (b *Base) Fields() BaseFields {
	return b.fields
}

// Update implements Value. Calling it without options resets both fields to
// their defaults.
func (b *Base) Update(opts ...UpdateOption) {
	fields := defaultBaseFields()
	for _, opt := range opts {
		opt(&fields)
	}
	b.fields = fields
}

// Equal implements Value. Only the base-level fields take part, for every
// variant: fields added by derived levels are ignored.
func (b *Base) Equal(other Value) bool {
	if other == nil {
		return false
	}
	return b.fields == other.Fields()
}

// State implements Value.
func (b *Base) State() State {
	return State{Variant: VariantBase, BaseFields: b.fields}
}

// String renders the value for diagnostics.
func (b *Base) String() string {
	return fmt.Sprintf("Base{int=%d, string=%q}", b.fields.IntValue, b.fields.StringValue)
}

// MarshalJSON encodes the value as its State.
func (b *Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.State())
}

// base gives the composition helpers access to the base level of any variant.
func (b *Base) base() *Base {
	return b
}

// Extended adds a bool to the base level. The base level is held by value.
type Extended struct {
	Base
	ext ExtendedFields
}

// NewExtended returns an extended value with default fields.
func NewExtended() *Extended {
	return &Extended{
		Base: *NewBase(),
		ext:  ExtendedFields{BoolValue: DefaultBoolValue},
	}
}

// Variant implements Value.
func (e *Extended) Variant() Variant {
	return VariantExtended
}

// BoolValue returns the bool field.
func (e *Extended) BoolValue() bool {
	return e.ext.BoolValue
}

// SetBoolValue sets the bool field.
func (e *Extended) SetBoolValue(v bool) {
	e.ext.BoolValue = v
}

// ExtendedFields returns a copy of the extended-level aggregate.
func (e *Extended) ExtendedFields() ExtendedFields {
	return e.ext
}

// State implements Value.
func (e *Extended) State() State {
	b := e.ext.BoolValue
	return State{Variant: VariantExtended, BaseFields: e.fields, BoolValue: &b}
}

// String renders the value for diagnostics.
func (e *Extended) String() string {
	return fmt.Sprintf("Extended{int=%d, string=%q, bool=%t}", e.fields.IntValue, e.fields.StringValue, e.ext.BoolValue)
}

// MarshalJSON encodes the value as its State.
func (e *Extended) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.State())
}

func (e *Extended) extended() *Extended {
	return e
}

// Identical reports whether a and b are the same variant with every level's
// fields equal. Unlike Equal, it accounts for fields added by derived levels.
func Identical(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	sa, sb := a.State(), b.State()
	if sa.Variant != sb.Variant || sa.BaseFields != sb.BaseFields {
		return false
	}
	if sa.BoolValue == nil || sb.BoolValue == nil {
		return sa.BoolValue == nil && sb.BoolValue == nil
	}
	return *sa.BoolValue == *sb.BoolValue
}
