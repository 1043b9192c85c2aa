package wirelens

import "fmt"

// Names of the raw fields the seed-extras flag is derived from.
const (
	fieldSubseed         = "subseed"
	fieldSubseedStrength = "subseed_strength"
	fieldSeedResizeFromH = "seed_resize_from_h"
	fieldSeedResizeFromW = "seed_resize_from_w"
)

// seedEnableExtrasPayload back-computes the seed_enable_extras flag the
// wire schema declares but the job does not store. The flag is false only
// when all four seed-variation fields sit at their sentinel defaults:
// subseed -1, subseed_strength 0, seed_resize_from_h 0, seed_resize_from_w 0.
// Any single deviation enables the extras.
func seedEnableExtrasPayload(src Source) (map[string]any, error) {
	subseed, err := numericField(src, fieldSubseed)
	if err != nil {
		return nil, err
	}
	strength, err := numericField(src, fieldSubseedStrength)
	if err != nil {
		return nil, err
	}
	resizeH, err := numericField(src, fieldSeedResizeFromH)
	if err != nil {
		return nil, err
	}
	resizeW, err := numericField(src, fieldSeedResizeFromW)
	if err != nil {
		return nil, err
	}

	allDefault := subseed == -1 && strength == 0 && resizeH == 0 && resizeW == 0
	return map[string]any{"seed_enable_extras": !allDefault}, nil
}

// numericField reads a required numeric job field. The four seed fields are
// part of the host contract, so absence is an error rather than a tolerated
// mismatch.
func numericField(src Source, name string) (float64, error) {
	value, ok := src.Field(name)
	if !ok {
		return 0, fmt.Errorf("required field %s missing from job", name)
	}
	switch n := value.(type) {
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("field %s is %T, expected a number", name, value)
	}
}
