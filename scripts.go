package wirelens

import (
	"fmt"
	"strings"
)

// selectableScriptPayload slices the active selectable script out of the
// flat argument vector. The vector's first element is the selection index:
// 0 means no script is active, k>0 selects scripts[k-1]. The host
// guarantees the index is in range; a violation is reported as an error so
// the assembly boundary can contain it.
func selectableScriptPayload(args []any, scripts []ScriptDescriptor) (map[string]any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("script args vector is empty")
	}
	index, err := argIndex(args[0])
	if err != nil {
		return nil, fmt.Errorf("selectable script index: %w", err)
	}
	if index == 0 {
		return map[string]any{"script_name": nil, "script_args": []any{}}, nil
	}
	if index < 0 || index > len(scripts) {
		return nil, fmt.Errorf("selectable script index %d out of range (have %d scripts)", index, len(scripts))
	}
	script := scripts[index-1]
	return map[string]any{
		"script_name": strings.ToLower(script.Name),
		"script_args": args[script.ArgsFrom:script.ArgsTo],
	}, nil
}

// alwaysonScriptPayload emits one entry per always-on script, keyed by its
// verbatim name. Always-on scripts are included regardless of any
// per-script enable flag: the wire format always carries their slot, and
// the enable state travels inside the argument slice itself.
func alwaysonScriptPayload(args []any, scripts []ScriptDescriptor) map[string]any {
	all := make(map[string]any, len(scripts))
	for _, script := range scripts {
		all[script.Name] = map[string]any{
			"args": args[script.ArgsFrom:script.ArgsTo],
		}
	}
	return map[string]any{"alwayson_scripts": all}
}

// argIndex coerces the leading vector element to an int. Hosts that
// round-trip argument vectors through JSON deliver it as float64.
func argIndex(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float32:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected numeric index, got %T", v)
	}
}
