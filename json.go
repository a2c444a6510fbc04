package nbt

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/minio/simdjson-go"
)

// The typed JSON form keeps every kind explicit so that a tree survives a
// JSON round trip unchanged:
//
//	tag:       {"type":"<Kind>","value":<value>}
//	Compound:  [{"name":"k","type":"<Kind>","value":<value>}, ...]
//	List:      {"elem":"<Kind>","items":[<value>, ...]}
//	ByteArray: "<base64>"
//	Float/Double non-finite values: "NaN", "+Inf", "-Inf"
//
// Names and String values that are not valid UTF-8, or that already start
// with "b64:", are written as "b64:<base64 of the raw bytes>".
//
// A named root is {"name":"<name>","value":<Compound value>}.

// ToJSON renders t in typed JSON form.
func ToJSON(t Tag) (string, error) {
	var sb strings.Builder
	if err := writeJSONTag(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// NamedToJSON renders a named root in typed JSON form.
func NamedToJSON(n Named) (string, error) {
	var sb strings.Builder
	sb.WriteString(`{"name":`)
	writeJSONText(&sb, n.Name)
	sb.WriteString(`,"value":`)
	data := n.Data
	if data == nil {
		data = NewCompound()
	}
	if err := writeJSONValue(&sb, data); err != nil {
		return "", err
	}
	sb.WriteByte('}')
	return sb.String(), nil
}

func writeJSONTag(sb *strings.Builder, t Tag) error {
	if t == nil {
		return fmt.Errorf("nbt: json of nil tag")
	}
	sb.WriteString(`{"type":"`)
	sb.WriteString(t.Kind().String())
	sb.WriteString(`","value":`)
	if err := writeJSONValue(sb, t); err != nil {
		return err
	}
	sb.WriteByte('}')
	return nil
}

func writeJSONValue(sb *strings.Builder, t Tag) error {
	switch v := t.(type) {
	case Byte:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Short:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Int:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Long:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		writeJSONFloat(sb, float64(v), 32)
	case Double:
		writeJSONFloat(sb, float64(v), 64)
	case String:
		writeJSONText(sb, string(v))
	case ByteArray:
		sb.WriteByte('"')
		sb.WriteString(base64.StdEncoding.EncodeToString(v))
		sb.WriteByte('"')
	case IntArray:
		sb.WriteByte('[')
		for i, x := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(int64(x), 10))
		}
		sb.WriteByte(']')
	case LongArray:
		sb.WriteByte('[')
		for i, x := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(x, 10))
		}
		sb.WriteByte(']')
	case *List:
		sb.WriteString(`{"elem":"`)
		sb.WriteString(v.ElemKind().String())
		sb.WriteString(`","items":[`)
		for i, it := range v.All() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeJSONValue(sb, it); err != nil {
				return err
			}
		}
		sb.WriteString("]}")
	case *Compound:
		sb.WriteByte('[')
		first := true
		for k, it := range v.All() {
			if it == nil {
				return fmt.Errorf("nbt: json of nil tag %q", k)
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(`{"name":`)
			writeJSONText(sb, k)
			sb.WriteString(`,"type":"`)
			sb.WriteString(it.Kind().String())
			sb.WriteString(`","value":`)
			if err := writeJSONValue(sb, it); err != nil {
				return err
			}
			sb.WriteByte('}')
		}
		sb.WriteByte(']')
	default:
		return fmt.Errorf("nbt: json of unknown tag %T", t)
	}
	return nil
}

func writeJSONFloat(sb *strings.Builder, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		sb.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		sb.WriteString(`"+Inf"`)
	case math.IsInf(f, -1):
		sb.WriteString(`"-Inf"`)
	default:
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

const jsonRawPrefix = "b64:"

func writeJSONText(sb *strings.Builder, s string) {
	if utf8.ValidString(s) && !strings.HasPrefix(s, jsonRawPrefix) {
		writeJSONString(sb, s)
		return
	}
	sb.WriteByte('"')
	sb.WriteString(jsonRawPrefix)
	sb.WriteString(base64.StdEncoding.EncodeToString([]byte(s)))
	sb.WriteByte('"')
}

func jsonText(it *simdjson.Iter) (string, error) {
	s, err := it.String()
	if err != nil || !strings.HasPrefix(s, jsonRawPrefix) {
		return s, err
	}
	raw, err := base64.StdEncoding.DecodeString(s[len(jsonRawPrefix):])
	if err != nil {
		return "", fmt.Errorf("nbt: json %q: %w", s, err)
	}
	return string(raw), nil
}

func writeJSONString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigit(c >> 4))
				sb.WriteByte(hexDigit(c & 0xF))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + (n - 10)
}

// FromJSON parses a tag in typed JSON form.
func FromJSON(data []byte) (Tag, error) {
	obj, err := parseJSONRoot(data)
	if err != nil {
		return nil, err
	}
	return tagFromJSONObject(obj)
}

// NamedFromJSON parses a named root in typed JSON form.
func NamedFromJSON(data []byte) (Named, error) {
	obj, err := parseJSONRoot(data)
	if err != nil {
		return Named{}, err
	}
	nameEl := obj.FindKey("name", nil)
	if nameEl == nil || nameEl.Type != simdjson.TypeString {
		return Named{}, fmt.Errorf("nbt: json root missing string \"name\"")
	}
	name, err := jsonText(&nameEl.Iter)
	if err != nil {
		return Named{}, err
	}
	valEl := obj.FindKey("value", nil)
	if valEl == nil {
		return Named{}, fmt.Errorf("nbt: json root missing \"value\"")
	}
	t, err := valueFromJSON(KindCompound, valEl.Type, &valEl.Iter)
	if err != nil {
		return Named{}, err
	}
	return Named{Name: name, Data: t.(*Compound)}, nil
}

func parseJSONRoot(data []byte) (*simdjson.Object, error) {
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("nbt: json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	if typ != simdjson.TypeObject {
		return nil, fmt.Errorf("nbt: json root must be an object, got %v", typ)
	}
	return root.Object(nil)
}

func tagFromJSONObject(obj *simdjson.Object) (Tag, error) {
	k, err := jsonKindField(obj, "type")
	if err != nil {
		return nil, err
	}
	valEl := obj.FindKey("value", nil)
	if valEl == nil {
		return nil, fmt.Errorf("nbt: json tag missing \"value\"")
	}
	return valueFromJSON(k, valEl.Type, &valEl.Iter)
}

func jsonKindField(obj *simdjson.Object, field string) (Kind, error) {
	el := obj.FindKey(field, nil)
	if el == nil || el.Type != simdjson.TypeString {
		return 0, fmt.Errorf("nbt: json missing string %q", field)
	}
	name, err := el.Iter.String()
	if err != nil {
		return 0, err
	}
	return ParseKind(name)
}

func valueFromJSON(k Kind, typ simdjson.Type, it *simdjson.Iter) (Tag, error) {
	switch k {
	case KindByte:
		v, err := jsonInt(typ, it, math.MinInt8, math.MaxInt8)
		return Byte(v), err
	case KindShort:
		v, err := jsonInt(typ, it, math.MinInt16, math.MaxInt16)
		return Short(v), err
	case KindInt:
		v, err := jsonInt(typ, it, math.MinInt32, math.MaxInt32)
		return Int(v), err
	case KindLong:
		v, err := jsonInt(typ, it, math.MinInt64, math.MaxInt64)
		return Long(v), err
	case KindFloat:
		v, err := jsonFloat(typ, it)
		return Float(v), err
	case KindDouble:
		v, err := jsonFloat(typ, it)
		return Double(v), err
	case KindString:
		if typ != simdjson.TypeString {
			return nil, fmt.Errorf("nbt: json String value must be a string, got %v", typ)
		}
		s, err := jsonText(it)
		return String(s), err
	case KindByteArray:
		if typ != simdjson.TypeString {
			return nil, fmt.Errorf("nbt: json ByteArray value must be a base64 string, got %v", typ)
		}
		s, err := it.String()
		if err != nil {
			return nil, err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("nbt: json ByteArray: %w", err)
		}
		return ByteArray(b), nil
	case KindIntArray:
		out := IntArray{}
		err := jsonArray(typ, it, func(t simdjson.Type, el *simdjson.Iter) error {
			v, err := jsonInt(t, el, math.MinInt32, math.MaxInt32)
			out = append(out, int32(v))
			return err
		})
		return out, err
	case KindLongArray:
		out := LongArray{}
		err := jsonArray(typ, it, func(t simdjson.Type, el *simdjson.Iter) error {
			v, err := jsonInt(t, el, math.MinInt64, math.MaxInt64)
			out = append(out, v)
			return err
		})
		return out, err
	case KindList:
		return listFromJSON(typ, it)
	case KindCompound:
		return compoundFromJSON(typ, it)
	default:
		return nil, invalidKind(k, "json value")
	}
}

func listFromJSON(typ simdjson.Type, it *simdjson.Iter) (*List, error) {
	if typ != simdjson.TypeObject {
		return nil, fmt.Errorf("nbt: json List value must be an object, got %v", typ)
	}
	obj, err := it.Object(nil)
	if err != nil {
		return nil, err
	}
	elem, err := jsonKindField(obj, "elem")
	if err != nil {
		return nil, err
	}
	itemsEl := obj.FindKey("items", nil)
	if itemsEl == nil {
		return nil, fmt.Errorf("nbt: json List missing \"items\"")
	}
	l := &List{elem: elem}
	err = jsonArray(itemsEl.Type, &itemsEl.Iter, func(t simdjson.Type, el *simdjson.Iter) error {
		v, err := valueFromJSON(elem, t, el)
		if err != nil {
			return err
		}
		return l.Append(v)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func compoundFromJSON(typ simdjson.Type, it *simdjson.Iter) (*Compound, error) {
	c := NewCompound()
	err := jsonArray(typ, it, func(t simdjson.Type, el *simdjson.Iter) error {
		if t != simdjson.TypeObject {
			return fmt.Errorf("nbt: json Compound entry must be an object, got %v", t)
		}
		obj, err := el.Object(nil)
		if err != nil {
			return err
		}
		nameEl := obj.FindKey("name", nil)
		if nameEl == nil || nameEl.Type != simdjson.TypeString {
			return fmt.Errorf("nbt: json Compound entry missing string \"name\"")
		}
		name, err := jsonText(&nameEl.Iter)
		if err != nil {
			return err
		}
		v, err := tagFromJSONObject(obj)
		if err != nil {
			return fmt.Errorf("compound entry %q: %w", name, err)
		}
		c.Set(name, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func jsonArray(typ simdjson.Type, it *simdjson.Iter, fn func(simdjson.Type, *simdjson.Iter) error) error {
	if typ != simdjson.TypeArray {
		return fmt.Errorf("nbt: json value must be an array, got %v", typ)
	}
	arr, err := it.Array(nil)
	if err != nil {
		return err
	}
	iter := arr.Iter()
	for {
		t := iter.Advance()
		if t == simdjson.TypeNone {
			return nil
		}
		elem := iter
		if err := fn(t, &elem); err != nil {
			return err
		}
	}
}

func jsonInt(typ simdjson.Type, it *simdjson.Iter, lo, hi int64) (int64, error) {
	var v int64
	switch typ {
	case simdjson.TypeInt:
		n, err := it.Int()
		if err != nil {
			return 0, err
		}
		v = n
	case simdjson.TypeUint:
		n, err := it.Uint()
		if err != nil {
			return 0, err
		}
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("nbt: json integer %d out of range", n)
		}
		v = int64(n)
	case simdjson.TypeFloat:
		f, err := it.Float()
		if err != nil {
			return 0, err
		}
		if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("nbt: json number %v is not an integer", f)
		}
		v = int64(f)
	default:
		return 0, fmt.Errorf("nbt: json value must be a number, got %v", typ)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("nbt: json integer %d out of range [%d, %d]", v, lo, hi)
	}
	return v, nil
}

func jsonFloat(typ simdjson.Type, it *simdjson.Iter) (float64, error) {
	switch typ {
	case simdjson.TypeInt, simdjson.TypeUint, simdjson.TypeFloat:
		return it.Float()
	case simdjson.TypeString:
		s, err := it.String()
		if err != nil {
			return 0, err
		}
		switch s {
		case "NaN":
			return math.NaN(), nil
		case "+Inf":
			return math.Inf(1), nil
		case "-Inf":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("nbt: json float string %q", s)
	default:
		return 0, fmt.Errorf("nbt: json value must be a number, got %v", typ)
	}
}
