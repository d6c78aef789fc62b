package number

import (
	"database/sql/driver"
	"fmt"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The backend of v is kept. Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	w, err := Parse(string(text))
	if err != nil {
		return err
	}
	w.calc = v.calc
	*v = w
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Value.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte, int64 and float64 sources.
// The backend of v is kept.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (v *Value) Scan(src any) error {
	var (
		w   Value
		err error
	)
	switch src := src.(type) {
	case string:
		w, err = Parse(src)
	case []byte:
		w, err = Parse(string(src))
	case int64:
		w = FromInt64(src)
	case float64:
		w, err = FromFloat64(src)
	default:
		err = ErrUnsupportedType
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", src, v, err)
	}
	w.calc = v.calc
	*v = w
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (v Value) Value() (driver.Value, error) {
	return v.String(), nil
}

// NullValue represents a value that can be null.
// Its zero value is null.
// NullValue is not thread-safe.
type NullValue struct {
	Number Value
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Value.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullValue) Scan(src any) error {
	if src == nil {
		n.Number = Value{calc: n.Number.calc}
		n.Valid = false
		return nil
	}
	if err := n.Number.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Value.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullValue) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Number.Value()
}
