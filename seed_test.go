package wirelens

import "testing"

func TestSeedEnableExtrasPayload(t *testing.T) {
	t.Run("all corner combinations", func(t *testing.T) {
		// The flag is false only when every field sits at its default.
		for mask := 0; mask < 16; mask++ {
			fields := map[string]any{
				fieldSubseed:         int64(-1),
				fieldSubseedStrength: 0.0,
				fieldSeedResizeFromH: 0,
				fieldSeedResizeFromW: 0,
			}
			if mask&1 != 0 {
				fields[fieldSubseed] = int64(5)
			}
			if mask&2 != 0 {
				fields[fieldSubseedStrength] = 0.5
			}
			if mask&4 != 0 {
				fields[fieldSeedResizeFromH] = 128
			}
			if mask&8 != 0 {
				fields[fieldSeedResizeFromW] = 64
			}

			entry, err := seedEnableExtrasPayload(NewMockSource(fields))
			if err != nil {
				t.Fatalf("mask %d: unexpected error: %v", mask, err)
			}
			want := mask != 0
			if entry["seed_enable_extras"] != want {
				t.Errorf("mask %d: expected seed_enable_extras=%v, got %v", mask, want, entry["seed_enable_extras"])
			}
		}
	})

	t.Run("integer and float representations agree", func(t *testing.T) {
		entry, err := seedEnableExtrasPayload(NewMockSource(map[string]any{
			fieldSubseed:         -1.0,
			fieldSubseedStrength: 0,
			fieldSeedResizeFromH: int64(0),
			fieldSeedResizeFromW: float32(0),
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry["seed_enable_extras"] != false {
			t.Error("defaults in mixed numeric types should still disable extras")
		}
	})

	t.Run("missing field", func(t *testing.T) {
		src := NewMockSource(map[string]any{
			fieldSubseed: int64(-1),
		})
		if _, err := seedEnableExtrasPayload(src); err == nil {
			t.Error("expected error when a seed field is missing")
		}
	})

	t.Run("non-numeric field", func(t *testing.T) {
		src := NewMockSourceWithDefaults(map[string]any{
			fieldSubseedStrength: "strong",
		})
		if _, err := seedEnableExtrasPayload(src); err == nil {
			t.Error("expected error for non-numeric seed field")
		}
	})
}
