package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies the concrete type stored in a Value.
type Kind int

const (
	Null Kind = iota
	String
	Number
	Bool
	Object
	Array
)

// ErrEmpty indicates the input held no JSON value at all.
var ErrEmpty = errors.New("empty document")

// Value represents an arbitrary JSON value without assuming its shape.
type Value struct {
	Kind   Kind
	Text   string
	Num    float64
	Flag   bool
	Fields map[string]Value
	Items  []Value
}

// Parse decodes exactly one JSON value from data. Numbers beyond the float64
// range are kept as signed infinity rather than rejected.
func Parse(data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	tok, err := decoder.Token()
	if err == io.EOF {
		return Value{}, ErrEmpty
	}
	if err != nil {
		return Value{}, err
	}
	value, err := readValue(decoder, tok)
	if err != nil {
		return Value{}, err
	}
	switch _, err := decoder.Token(); {
	case err == io.EOF:
		return value, nil
	case err == nil:
		return Value{}, errors.New("unexpected content after the JSON document")
	default:
		return Value{}, err
	}
}

// readValue builds the Value that starts with tok, consuming the rest of it
// from decoder.
func readValue(decoder *json.Decoder, tok json.Token) (Value, error) {
	switch typed := tok.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return readObject(decoder)
		case '[':
			return readArray(decoder)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", typed)
	case string:
		return Value{Kind: String, Text: typed}, nil
	case json.Number:
		num, err := strconv.ParseFloat(typed.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, err
		}
		return Value{Kind: Number, Num: num}, nil
	case bool:
		return Value{Kind: Bool, Flag: typed}, nil
	case nil:
		return Value{Kind: Null}, nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func readObject(decoder *json.Decoder) (Value, error) {
	fields := map[string]Value{}
	for decoder.More() {
		keyTok, err := nextToken(decoder)
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		tok, err := nextToken(decoder)
		if err != nil {
			return Value{}, err
		}
		child, err := readValue(decoder, tok)
		if err != nil {
			return Value{}, err
		}
		fields[key] = child
	}
	if _, err := nextToken(decoder); err != nil {
		return Value{}, err
	}
	return Value{Kind: Object, Fields: fields}, nil
}

func readArray(decoder *json.Decoder) (Value, error) {
	items := []Value{}
	for decoder.More() {
		tok, err := nextToken(decoder)
		if err != nil {
			return Value{}, err
		}
		child, err := readValue(decoder, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, child)
	}
	if _, err := nextToken(decoder); err != nil {
		return Value{}, err
	}
	return Value{Kind: Array, Items: items}, nil
}

// nextToken reads a token inside a document, where EOF means truncated input.
func nextToken(decoder *json.Decoder) (json.Token, error) {
	tok, err := decoder.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// ObjectValue returns the field map when the value is an object.
func (v Value) ObjectValue() (map[string]Value, bool) {
	if v.Kind != Object {
		return nil, false
	}
	return v.Fields, true
}

// ArrayValue returns the items when the value is an array.
func (v Value) ArrayValue() ([]Value, bool) {
	if v.Kind != Array {
		return nil, false
	}
	return v.Items, true
}

// StringValue returns the string when the value is a string.
func (v Value) StringValue() (string, bool) {
	if v.Kind != String {
		return "", false
	}
	return v.Text, true
}

// NumberValue returns the number when the value is numeric.
func (v Value) NumberValue() (float64, bool) {
	if v.Kind != Number {
		return 0, false
	}
	return v.Num, true
}

// Field looks up a member of an object. Non-objects have no fields.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind != Object {
		return Value{}, false
	}
	child, ok := v.Fields[name]
	return child, ok
}

// Has reports whether an object carries the named member, null included.
func (v Value) Has(name string) bool {
	_, ok := v.Field(name)
	return ok
}

// String names the kind the way JSON does.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Interface converts the Value into standard Go JSON types.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case Object:
		out := make(map[string]interface{}, len(v.Fields))
		for key, value := range v.Fields {
			out[key] = value.Interface()
		}
		return out
	case Array:
		out := make([]interface{}, 0, len(v.Items))
		for _, value := range v.Items {
			out = append(out, value.Interface())
		}
		return out
	case String:
		return v.Text
	case Number:
		return v.Num
	case Bool:
		return v.Flag
	default:
		return nil
	}
}
