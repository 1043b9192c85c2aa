package wirelens

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// Processing is a ready-made in-memory generation job implementing Source.
// Hosts with their own job representation implement Source directly; this
// type covers the standard field set of both modalities.
//
// Wire names come from the json tags, which keep Processing aligned with
// the request models: a schema field is found on the job exactly when a
// same-named tag exists here or in Extra.
type Processing struct {
	Prompt            string         `json:"prompt"`
	NegativePrompt    string         `json:"negative_prompt"`
	Styles            []string       `json:"styles"`
	Seed              int64          `json:"seed"`
	Subseed           int64          `json:"subseed"`
	SubseedStrength   float64        `json:"subseed_strength"`
	SeedResizeFromH   int            `json:"seed_resize_from_h"`
	SeedResizeFromW   int            `json:"seed_resize_from_w"`
	SamplerName       string         `json:"sampler_name"`
	Scheduler         string         `json:"scheduler"`
	BatchSize         int            `json:"batch_size"`
	NIter             int            `json:"n_iter"`
	Steps             int            `json:"steps"`
	CFGScale          float64        `json:"cfg_scale"`
	Width             int            `json:"width"`
	Height            int            `json:"height"`
	RestoreFaces      bool           `json:"restore_faces"`
	Tiling            bool           `json:"tiling"`
	DoNotSaveSamples  bool           `json:"do_not_save_samples"`
	DoNotSaveGrid     bool           `json:"do_not_save_grid"`
	Eta               float64        `json:"eta"`
	DenoisingStrength float64        `json:"denoising_strength"`
	OverrideSettings  map[string]any `json:"override_settings"`

	// Hires-fix fields (txt2img).
	EnableHr          bool    `json:"enable_hr"`
	HrScale           float64 `json:"hr_scale"`
	HrUpscaler        string  `json:"hr_upscaler"`
	HrSecondPassSteps int     `json:"hr_second_pass_steps"`
	HrResizeX         int     `json:"hr_resize_x"`
	HrResizeY         int     `json:"hr_resize_y"`
	HrPrompt          string  `json:"hr_prompt"`
	HrNegativePrompt  string  `json:"hr_negative_prompt"`

	// Img2img fields.
	InitImages             []any   `json:"init_images"`
	ResizeMode             int     `json:"resize_mode"`
	ImageCFGScale          float64 `json:"image_cfg_scale"`
	Mask                   any     `json:"mask"`
	MaskBlur               int     `json:"mask_blur"`
	InpaintingFill         int     `json:"inpainting_fill"`
	InpaintFullRes         bool    `json:"inpaint_full_res"`
	InpaintFullResPadding  int     `json:"inpaint_full_res_padding"`
	InpaintingMaskInvert   int     `json:"inpainting_mask_invert"`
	InitialNoiseMultiplier float64 `json:"initial_noise_multiplier"`
	IncludeInitImages      bool    `json:"include_init_images"`

	// Script layout, not schema fields.
	Args       []any              `json:"-"`
	Selectable []ScriptDescriptor `json:"-"`
	AlwaysOn   []ScriptDescriptor `json:"-"`

	// Extra holds host-specific attributes looked up after the declared
	// fields, letting new schema fields resolve without a type change.
	Extra map[string]any `json:"-"`
}

// NewProcessing creates a job with the host's seed defaults (seed and
// subseed unset at -1), matching the state a fresh UI run starts from.
func NewProcessing() *Processing {
	return &Processing{
		Seed:    -1,
		Subseed: -1,
	}
}

// ScriptArgs implements Source.
func (p *Processing) ScriptArgs() []any { return p.Args }

// SelectableScripts implements Source.
func (p *Processing) SelectableScripts() []ScriptDescriptor { return p.Selectable }

// AlwaysOnScripts implements Source.
func (p *Processing) AlwaysOnScripts() []ScriptDescriptor { return p.AlwaysOn }

// Field implements Source via an accessor table built once at first use:
// per-call cost is a map hit plus one struct field load, with reflection
// confined to table construction.
func (p *Processing) Field(name string) (any, bool) {
	if getter, ok := processingAccessors()[name]; ok {
		return getter(p), true
	}
	if value, ok := p.Extra[name]; ok {
		return value, true
	}
	return nil, false
}

type fieldGetter func(*Processing) any

var (
	accessorsOnce sync.Once
	accessors     map[string]fieldGetter
)

// processingAccessors maps wire field names to getters, derived from
// sentinel metadata so the naming rules stay identical to schema
// derivation.
func processingAccessors() map[string]fieldGetter {
	accessorsOnce.Do(func() {
		metadata := sentinel.Inspect[Processing]()
		rt := reflect.TypeOf(Processing{})

		accessors = make(map[string]fieldGetter, len(metadata.Fields))
		for _, field := range metadata.Fields {
			name := jsonFieldName(field)
			if name == "-" {
				continue
			}
			sf, ok := rt.FieldByName(field.Name)
			if !ok {
				continue
			}
			index := sf.Index
			accessors[name] = func(p *Processing) any {
				return reflect.ValueOf(p).Elem().FieldByIndex(index).Interface()
			}
		}
	})
	return accessors
}
