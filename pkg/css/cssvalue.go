package css

import "encoding/json"

// ValueKind distinguishes the three states a CSS-cascaded property can be in
// before the cascade resolves it (spec.md §4.2): an explicit value, the
// property's initial value, or "inherit from the parent's computed value".
type ValueKind int

const (
	ValueKindInitial ValueKind = iota
	ValueKindValue
	ValueKindInherit
)

// CssValue wraps a property's declared value together with the Initial/
// Inherit keywords every property accepts. T is the parsed Go representation
// of the property (LengthUnit, Color, Sides[LengthUnit], ...).
type CssValue[T any] struct {
	Kind  ValueKind
	Value T // meaningful only when Kind == ValueKindValue
}

// Of wraps a concrete value.
func Of[T any](v T) CssValue[T] { return CssValue[T]{Kind: ValueKindValue, Value: v} }

// Initial returns the "initial" keyword state.
func Initial[T any]() CssValue[T] { return CssValue[T]{Kind: ValueKindInitial} }

// Inherit returns the "inherit" keyword state.
func Inherit[T any]() CssValue[T] { return CssValue[T]{Kind: ValueKindInherit} }

// Resolve collapses the three-state value into a concrete T given the
// property's initial value and the parent's already-computed value.
func (c CssValue[T]) Resolve(initial T, parent T) T {
	switch c.Kind {
	case ValueKindInitial:
		return initial
	case ValueKindInherit:
		return parent
	default:
		return c.Value
	}
}

// UnmarshalJSON accepts the keyword strings "initial"/"inherit"; any other
// JSON value is unmarshaled directly into T, and a mismatch is returned as
// the json error. It runs no CSS parser: CSS strings such as "16px" are
// parsed per property through DecodeCssValue instead.
func (c *CssValue[T]) UnmarshalJSON(data []byte) error {
	var keyword string
	if err := json.Unmarshal(data, &keyword); err == nil {
		switch keyword {
		case "initial":
			*c = Initial[T]()
			return nil
		case "inherit":
			*c = Inherit[T]()
			return nil
		}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Of(v)
	return nil
}

// MarshalJSON round-trips initial/inherit as keywords and values as-is.
func (c CssValue[T]) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ValueKindInitial:
		return json.Marshal("initial")
	case ValueKindInherit:
		return json.Marshal("inherit")
	default:
		return json.Marshal(c.Value)
	}
}

// DecodeCssValue decodes a JSON string property value (e.g. `"12px"`) into a
// CssValue[T] using parse for the Value case, and recognizes the "initial"/
// "inherit" keywords without invoking parse. This is the entry point node
// JSON decoding uses for typed style properties (spec.md §3, §4.1), since Go
// cannot attach a parse function to a generic UnmarshalJSON method.
func DecodeCssValue[T any](raw string, parse func(string) (T, error)) (CssValue[T], error) {
	switch raw {
	case "initial":
		return Initial[T](), nil
	case "inherit":
		return Inherit[T](), nil
	default:
		v, err := parse(raw)
		if err != nil {
			return CssValue[T]{}, err
		}
		return Of(v), nil
	}
}
