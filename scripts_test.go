package wirelens

import (
	"reflect"
	"testing"
)

func TestSelectableScriptPayload(t *testing.T) {
	descriptors := []ScriptDescriptor{
		{Name: "Outpainting", ArgsFrom: 1, ArgsTo: 3},
		{Name: "SD Upscale", ArgsFrom: 3, ArgsTo: 5},
	}

	t.Run("no script active", func(t *testing.T) {
		entry, err := selectableScriptPayload([]any{0, "a", "b", "c", "d"}, descriptors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry["script_name"] != nil {
			t.Errorf("expected nil script_name, got %v", entry["script_name"])
		}
		args, ok := entry["script_args"].([]any)
		if !ok || len(args) != 0 {
			t.Errorf("expected empty script_args, got %v", entry["script_args"])
		}
	})

	t.Run("no script active ignores descriptors", func(t *testing.T) {
		// Index 0 wins regardless of what is registered.
		entry, err := selectableScriptPayload([]any{0}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry["script_name"] != nil {
			t.Errorf("expected nil script_name, got %v", entry["script_name"])
		}
	})

	t.Run("selects by index", func(t *testing.T) {
		entry, err := selectableScriptPayload([]any{2, "a", "b", "c", "d"}, descriptors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry["script_name"] != "sd upscale" {
			t.Errorf("expected lowercased name 'sd upscale', got %v", entry["script_name"])
		}
		want := []any{"c", "d"}
		if !reflect.DeepEqual(entry["script_args"], want) {
			t.Errorf("expected args %v, got %v", want, entry["script_args"])
		}
	})

	t.Run("float index from json round trip", func(t *testing.T) {
		entry, err := selectableScriptPayload([]any{float64(1), "a", "b"}, descriptors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry["script_name"] != "outpainting" {
			t.Errorf("expected 'outpainting', got %v", entry["script_name"])
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		if _, err := selectableScriptPayload([]any{5}, descriptors); err == nil {
			t.Error("expected error for out-of-range index")
		}
	})

	t.Run("empty vector", func(t *testing.T) {
		if _, err := selectableScriptPayload(nil, descriptors); err == nil {
			t.Error("expected error for empty vector")
		}
	})

	t.Run("non-numeric index", func(t *testing.T) {
		if _, err := selectableScriptPayload([]any{"first"}, descriptors); err == nil {
			t.Error("expected error for non-numeric index")
		}
	})
}

func TestAlwaysonScriptPayload(t *testing.T) {
	args := []any{0, 1.5, true, "x", 7}

	t.Run("one entry per descriptor", func(t *testing.T) {
		descriptors := []ScriptDescriptor{
			{Name: "ControlNet", ArgsFrom: 1, ArgsTo: 3},
			{Name: "Dynamic Prompts", ArgsFrom: 3, ArgsTo: 5},
		}

		entry := alwaysonScriptPayload(args, descriptors)
		all, ok := entry["alwayson_scripts"].(map[string]any)
		if !ok {
			t.Fatalf("expected alwayson_scripts mapping, got %T", entry["alwayson_scripts"])
		}
		if len(all) != len(descriptors) {
			t.Fatalf("expected %d entries, got %d", len(descriptors), len(all))
		}

		for _, d := range descriptors {
			slot, ok := all[d.Name].(map[string]any)
			if !ok {
				t.Fatalf("missing entry for %q", d.Name)
			}
			want := args[d.ArgsFrom:d.ArgsTo]
			if !reflect.DeepEqual(slot["args"], want) {
				t.Errorf("%s: expected args %v, got %v", d.Name, want, slot["args"])
			}
		}
	})

	t.Run("names stay verbatim", func(t *testing.T) {
		entry := alwaysonScriptPayload(args, []ScriptDescriptor{
			{Name: "ControlNet", ArgsFrom: 1, ArgsTo: 2},
		})
		all := entry["alwayson_scripts"].(map[string]any)
		if _, ok := all["ControlNet"]; !ok {
			t.Error("always-on names must not be case-normalized")
		}
	})

	t.Run("no descriptors", func(t *testing.T) {
		entry := alwaysonScriptPayload(args, nil)
		all, ok := entry["alwayson_scripts"].(map[string]any)
		if !ok || len(all) != 0 {
			t.Errorf("expected empty mapping, got %v", entry["alwayson_scripts"])
		}
	})
}
