package schema

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"time"
)

// Validate checks a value against a schema and returns every violation
// found. A nil or empty result means the value conforms. Validation walks
// the value, so it terminates even on cyclic (lazy) schemas.
//
// Effect and promise nodes are accepted as opaque: their output is the
// product of an arbitrary transform and cannot be checked against the
// pre-transform schema.
func Validate(s Schema, v any) Issues {
	return validate(s.Node(), v, "/")
}

func validate(n *Node, v any, path string) Issues {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindString:
		return validateString(n, v, path)
	case KindNumber:
		return validateNumber(n, v, path)
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return Issues{typeIssue(path, "boolean", v)}
		}
		return nil
	case KindDate:
		return validateDate(n, v, path)
	case KindArray, KindSet:
		return validateSequence(n, v, path)
	case KindMap:
		return validateMap(n, v, path)
	case KindRecord:
		return validateRecord(n, v, path)
	case KindObject:
		return validateObject(n, v, path)
	case KindTuple:
		return validateTuple(n, v, path)
	case KindEnum, KindNativeEnum:
		for _, m := range n.members {
			if reflect.DeepEqual(m, v) {
				return nil
			}
		}
		return Issues{{Path: path, Code: CodeInvalidEnum, Message: "value is not an enum member", Params: map[string]any{"got": v}}}
	case KindLiteral:
		if !reflect.DeepEqual(n.literal, v) {
			return Issues{{Path: path, Code: CodeInvalidLiteral, Message: "value does not equal the literal", Params: map[string]any{"want": n.literal, "got": v}}}
		}
		return nil
	case KindUnion, KindDiscriminatedUnion:
		for _, alt := range n.items {
			if len(validate(alt, v, path)) == 0 {
				return nil
			}
		}
		return Issues{{Path: path, Code: CodeUnionNoMatch, Message: "value matches no union alternative"}}
	case KindIntersection:
		var iss Issues
		for _, op := range n.items {
			iss = AppendIssues(iss, validate(op, v, path)...)
		}
		return iss
	case KindOptional:
		if v == nil {
			return nil
		}
		return validate(n.inner, v, path)
	case KindNullable:
		if v == nil {
			return nil
		}
		return validate(n.inner, v, path)
	case KindBranded:
		return validate(n.inner, v, path)
	case KindDefault:
		if reflect.DeepEqual(n.defaultValue, v) {
			return nil
		}
		return validate(n.inner, v, path)
	case KindEffect, KindPromise:
		return nil
	case KindFunction:
		if v == nil || reflect.TypeOf(v).Kind() != reflect.Func {
			return Issues{typeIssue(path, "function", v)}
		}
		return nil
	case KindLazy:
		return validate(n.Resolve(), v, path)
	case KindVoid, KindUndefined:
		if v != nil {
			return Issues{typeIssue(path, string(n.kind), v)}
		}
		return nil
	case KindNull:
		if v != nil {
			return Issues{typeIssue(path, "null", v)}
		}
		return nil
	case KindNaN:
		if f, ok := toFloat(v); !ok || !math.IsNaN(f) {
			return Issues{typeIssue(path, "nan", v)}
		}
		return nil
	default:
		return nil
	}
}

func typeIssue(path, want string, got any) Issue {
	return Issue{Path: path, Code: CodeInvalidType, Message: fmt.Sprintf("expected %s", want), Params: map[string]any{"got": fmt.Sprintf("%T", got)}}
}

func validateString(n *Node, v any, path string) Issues {
	s, ok := v.(string)
	if !ok {
		return Issues{typeIssue(path, "string", v)}
	}
	var iss Issues
	if ex, ok := n.ExactLength(); ok && len(s) != ex {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooShort, Message: "length differs from the declared exact length", Params: map[string]any{"want": ex, "got": len(s)}})
	}
	if min, ok := n.MinLength(); ok && len(s) < min {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooShort, Message: "string shorter than minimum", Params: map[string]any{"min": min, "got": len(s)}})
	}
	if max, ok := n.MaxLength(); ok && len(s) > max {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooLong, Message: "string longer than maximum", Params: map[string]any{"max": max, "got": len(s)}})
	}
	if p, ok := n.Pattern(); ok {
		re, err := regexp.Compile(p)
		if err == nil && !re.MatchString(s) {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodePattern, Message: "string does not match pattern", Params: map[string]any{"pattern": p}})
		}
	}
	return iss
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return 0, false
	}
}

func validateNumber(n *Node, v any, path string) Issues {
	f, ok := toFloat(v)
	if !ok {
		return Issues{typeIssue(path, "number", v)}
	}
	var iss Issues
	if n.integer && f != math.Trunc(f) {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidType, Message: "expected integer", Params: map[string]any{"got": f}})
	}
	if min, ok := n.NumberMin(); ok && f < min {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooSmall, Message: "number below minimum", Params: map[string]any{"min": min, "got": f}})
	}
	if max, ok := n.NumberMax(); ok && f > max {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooBig, Message: "number above maximum", Params: map[string]any{"max": max, "got": f}})
	}
	return iss
}

func validateDate(n *Node, v any, path string) Issues {
	t, ok := v.(time.Time)
	if !ok {
		return Issues{typeIssue(path, "date", v)}
	}
	var iss Issues
	if min, ok := n.DateMin(); ok && t.Before(min) {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooSmall, Message: "date before minimum", Params: map[string]any{"min": min, "got": t}})
	}
	if max, ok := n.DateMax(); ok && t.After(max) {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooBig, Message: "date after maximum", Params: map[string]any{"max": max, "got": t}})
	}
	return iss
}

func validateSequence(n *Node, v any, path string) Issues {
	items, ok := v.([]any)
	if !ok {
		return Issues{typeIssue(path, string(n.kind), v)}
	}
	var iss Issues
	if ex, ok := n.ExactLength(); ok && len(items) != ex {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooShort, Message: "size differs from the declared exact size", Params: map[string]any{"want": ex, "got": len(items)}})
	}
	if min, ok := n.MinLength(); ok && len(items) < min {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooShort, Message: "fewer elements than minimum", Params: map[string]any{"min": min, "got": len(items)}})
	}
	if max, ok := n.MaxLength(); ok && len(items) > max {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooLong, Message: "more elements than maximum", Params: map[string]any{"max": max, "got": len(items)}})
	}
	for i, it := range items {
		iss = AppendIssues(iss, validate(n.elem, it, childPath(path, fmt.Sprint(i)))...)
	}
	return iss
}

func validateMap(n *Node, v any, path string) Issues {
	m, ok := v.(map[any]any)
	if !ok {
		return Issues{typeIssue(path, "map", v)}
	}
	var iss Issues
	for k, mv := range m {
		seg := fmt.Sprint(k)
		iss = AppendIssues(iss, validate(n.key, k, childPath(path, seg))...)
		iss = AppendIssues(iss, validate(n.value, mv, childPath(path, seg))...)
	}
	return iss
}

func validateRecord(n *Node, v any, path string) Issues {
	m, ok := v.(map[string]any)
	if !ok {
		return Issues{typeIssue(path, "record", v)}
	}
	var iss Issues
	for k, mv := range m {
		iss = AppendIssues(iss, validate(n.value, mv, childPath(path, k))...)
	}
	return iss
}

func validateObject(n *Node, v any, path string) Issues {
	m, ok := v.(map[string]any)
	if !ok {
		return Issues{typeIssue(path, "object", v)}
	}
	var iss Issues
	for _, f := range n.fields {
		fv, present := m[f.Name]
		if !present {
			if !fieldMayBeMissing(f.Schema) {
				iss = AppendIssues(iss, Issue{Path: childPath(path, f.Name), Code: CodeRequired, Message: "required field is missing"})
			}
			continue
		}
		iss = AppendIssues(iss, validate(f.Schema, fv, childPath(path, f.Name))...)
	}
	return iss
}

func fieldMayBeMissing(n *Node) bool {
	switch n.kind {
	case KindOptional, KindDefault, KindVoid, KindUndefined:
		return true
	default:
		return false
	}
}

func validateTuple(n *Node, v any, path string) Issues {
	items, ok := v.([]any)
	if !ok {
		return Issues{typeIssue(path, "tuple", v)}
	}
	var iss Issues
	if len(items) < len(n.items) {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooShort, Message: "tuple shorter than its positional schema", Params: map[string]any{"want": len(n.items), "got": len(items)}})
	}
	for i, it := range n.items {
		if i >= len(items) {
			break
		}
		iss = AppendIssues(iss, validate(it, items[i], childPath(path, fmt.Sprint(i)))...)
	}
	if len(items) > len(n.items) {
		if n.rest == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeTooLong, Message: "tuple longer than its positional schema", Params: map[string]any{"want": len(n.items), "got": len(items)}})
		} else {
			for i := len(n.items); i < len(items); i++ {
				iss = AppendIssues(iss, validate(n.rest, items[i], childPath(path, fmt.Sprint(i)))...)
			}
		}
	}
	return iss
}
