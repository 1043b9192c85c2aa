package wirelens

import (
	"context"
	"fmt"
	"image"
	"math"
	"reflect"

	"github.com/zoobzio/capitan"
)

// FieldEnumerable lets nested job sub-objects opt in to normalization as a
// string-keyed mapping. Known composite sub-objects (sampler settings,
// override tables) implement this explicitly instead of relying on
// implicit struct introspection.
type FieldEnumerable interface {
	Fields() map[string]any
}

// Normalize rewrites an arbitrary value into one composed only of nil,
// bool, finite number, string, []any, and map[string]any — the universal
// subset representable in JSON.
//
// The walk is recursive and depth-first with no cycle detection; callers
// must guarantee the input graph is acyclic. Unconvertible leaves degrade
// to nil with a NormalizeUnsupported event rather than aborting: a
// partially-correct debug payload is more useful than none. Normalize
// never panics and is idempotent over its own output.
func Normalize(ctx context.Context, value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v
	case float64:
		return normalizeFloat(ctx, v)
	case float32:
		return normalizeFloat(ctx, float64(v))
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = Normalize(ctx, e)
		}
		return out
	case Payload:
		return Normalize(ctx, map[string]any(v))
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Normalize(ctx, e)
		}
		return out
	case image.Image:
		url, err := EncodeDataURL(v)
		if err != nil {
			emitUnsupported(ctx, value, err.Error())
			return nil
		}
		return url
	case FieldEnumerable:
		return Normalize(ctx, v.Fields())
	}
	return normalizeReflect(ctx, value)
}

// normalizeFloat eliminates non-finite numbers: infinities collapse to nil
// silently, NaN is reported as unconvertible.
func normalizeFloat(ctx context.Context, f float64) any {
	if math.IsInf(f, 0) {
		return nil
	}
	if math.IsNaN(f) {
		emitUnsupported(ctx, f, "NaN is not representable")
		return nil
	}
	return f
}

// normalizeReflect handles the shapes the type switch cannot name:
// arbitrary slices and maps, pointers, and named scalar kinds (enumerated
// constants reduce to their underlying value).
func normalizeReflect(ctx context.Context, value any) any {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Normalize(ctx, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(ctx, rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Normalize(ctx, iter.Value().Interface())
		}
		return out
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(ctx, rv.Float())
	default:
		emitUnsupported(ctx, value, "no JSON-compatible representation")
		return nil
	}
}

func emitUnsupported(ctx context.Context, value any, reason string) {
	capitan.Error(ctx, NormalizeUnsupported,
		ValueTypeKey.Field(fmt.Sprintf("%T", value)),
		ErrorKey.Field(reason),
	)
}
