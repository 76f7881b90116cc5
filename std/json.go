package std

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/mewisme/mew/objects"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// JSON builds the MewJ namespace: sniff parses a JSON string per
// RFC 8259, mewify serializes a value back to JSON text. Parsing goes
// through gjson rather than encoding/json because gjson.Result.ForEach
// walks object members in source order, which Go's map-based
// encoding/json cannot guarantee — and key order is a tested invariant
// of the language (specification §8).
func JSON() *objects.BuiltinNamespace {
	return &objects.BuiltinNamespace{
		Name: "MewJ",
		Members: map[string]objects.Value{
			"sniff": fn("sniff", func(args []objects.Value) (objects.Value, error) {
				s, ok := arg(args, 0).(*objects.String)
				if !ok {
					return nil, typeErr("MewJ.sniff expects a string argument")
				}
				if !gjson.Valid(s.Value) {
					return nil, valueErr("invalid JSON input")
				}
				return sniffValue(gjson.Parse(s.Value)), nil
			}),
			"mewify": fn("mewify", func(args []objects.Value) (objects.Value, error) {
				compact, err := serializeJSON(arg(args, 0))
				if err != nil {
					return nil, err
				}
				if len(args) > 1 {
					indent := int(argNumber(args, 1))
					if indent > 0 {
						opts := pretty.Options{Indent: strings.Repeat(" ", indent)}
						out := pretty.PrettyOptions([]byte(compact), &opts)
						return &objects.String{Value: strings.TrimRight(string(out), "\n")}, nil
					}
				}
				return &objects.String{Value: compact}, nil
			}),
		},
	}
}

func sniffValue(r gjson.Result) objects.Value {
	switch r.Type {
	case gjson.Null:
		return &objects.Null{}
	case gjson.True, gjson.False:
		return &objects.Bool{Value: r.Bool()}
	case gjson.Number:
		return num(r.Float())
	case gjson.String:
		return &objects.String{Value: r.String()}
	case gjson.JSON:
		if r.IsArray() {
			arr := &objects.Array{}
			r.ForEach(func(_, v gjson.Result) bool {
				arr.Elements = append(arr.Elements, sniffValue(v))
				return true
			})
			return arr
		}
		obj := objects.NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.Set(k.String(), sniffValue(v))
			return true
		})
		return obj
	default:
		return &objects.Undefined{}
	}
}

// serializeJSON renders v as compact JSON text. Undefined is omitted
// from object properties and rendered as null inside arrays, matching
// familiar JSON.stringify behavior (specification §6).
func serializeJSON(v objects.Value) (string, error) {
	var sb strings.Builder
	if err := writeJSON(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeJSON(sb *strings.Builder, v objects.Value) error {
	switch val := v.(type) {
	case *objects.Number:
		if math.IsNaN(val.Value) || math.IsInf(val.Value, 0) {
			return valueErr("cannot serialize a non-finite number to JSON")
		}
		sb.WriteString(formatJSONNumber(val.Value))
		return nil
	case *objects.String:
		quoted, _ := json.Marshal(val.Value)
		sb.Write(quoted)
		return nil
	case *objects.Bool:
		if val.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
		return nil
	case *objects.Null:
		sb.WriteString("null")
		return nil
	case *objects.Array:
		sb.WriteByte('[')
		for i, e := range val.Elements {
			if i > 0 {
				sb.WriteByte(',')
			}
			if _, isUndef := e.(*objects.Undefined); isUndef {
				sb.WriteString("null")
				continue
			}
			if err := writeJSON(sb, e); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
		return nil
	case *objects.Object:
		sb.WriteByte('{')
		first := true
		for _, k := range val.Keys {
			if _, isUndef := val.Values[k].(*objects.Undefined); isUndef {
				continue
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			keyQuoted, _ := json.Marshal(k)
			sb.Write(keyQuoted)
			sb.WriteByte(':')
			if err := writeJSON(sb, val.Values[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
		return nil
	default:
		return typeErr("cannot serialize a %s to JSON", v.Type())
	}
}

func formatJSONNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
