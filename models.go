package wirelens

// Wire-format request models for the two generation modalities. The field
// set and json names mirror what the HTTP API of the host declares; the
// schema for each modality is derived from these structs via sentinel, so
// adding a field here automatically extends the reconstructed payload as
// long as the job exposes a same-named attribute.

// Txt2ImgRequest declares the text-to-image wire request body.
type Txt2ImgRequest struct {
	Prompt            string         `json:"prompt"`
	NegativePrompt    string         `json:"negative_prompt"`
	Styles            []string       `json:"styles,omitempty"`
	Seed              int64          `json:"seed"`
	Subseed           int64          `json:"subseed"`
	SubseedStrength   float64        `json:"subseed_strength"`
	SeedResizeFromH   int            `json:"seed_resize_from_h"`
	SeedResizeFromW   int            `json:"seed_resize_from_w"`
	SeedEnableExtras  bool           `json:"seed_enable_extras"`
	SamplerName       string         `json:"sampler_name"`
	Scheduler         string         `json:"scheduler,omitempty"`
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
	Eta               float64        `json:"eta,omitempty"`
	DenoisingStrength float64        `json:"denoising_strength,omitempty"`
	OverrideSettings  map[string]any `json:"override_settings,omitempty"`
	EnableHr          bool           `json:"enable_hr"`
	FirstphaseWidth   int            `json:"firstphase_width,omitempty"`
	FirstphaseHeight  int            `json:"firstphase_height,omitempty"`
	HrScale           float64        `json:"hr_scale,omitempty"`
	HrUpscaler        string         `json:"hr_upscaler,omitempty"`
	HrSecondPassSteps int            `json:"hr_second_pass_steps,omitempty"`
	HrResizeX         int            `json:"hr_resize_x,omitempty"`
	HrResizeY         int            `json:"hr_resize_y,omitempty"`
	HrPrompt          string         `json:"hr_prompt,omitempty"`
	HrNegativePrompt  string         `json:"hr_negative_prompt,omitempty"`
	SamplerIndex      string         `json:"sampler_index,omitempty"`
	ScriptName        string         `json:"script_name,omitempty"`
	ScriptArgs        []any          `json:"script_args,omitempty"`
	AlwaysonScripts   map[string]any `json:"alwayson_scripts,omitempty"`
	SendImages        bool           `json:"send_images,omitempty"`
	SaveImages        bool           `json:"save_images,omitempty"`
}

// Img2ImgRequest declares the image-to-image wire request body.
type Img2ImgRequest struct {
	InitImages             []any          `json:"init_images"`
	ResizeMode             int            `json:"resize_mode"`
	DenoisingStrength      float64        `json:"denoising_strength"`
	ImageCFGScale          float64        `json:"image_cfg_scale,omitempty"`
	Mask                   any            `json:"mask,omitempty"`
	MaskBlur               int            `json:"mask_blur,omitempty"`
	InpaintingFill         int            `json:"inpainting_fill"`
	InpaintFullRes         bool           `json:"inpaint_full_res"`
	InpaintFullResPadding  int            `json:"inpaint_full_res_padding"`
	InpaintingMaskInvert   int            `json:"inpainting_mask_invert"`
	InitialNoiseMultiplier float64        `json:"initial_noise_multiplier,omitempty"`
	Prompt                 string         `json:"prompt"`
	NegativePrompt         string         `json:"negative_prompt"`
	Styles                 []string       `json:"styles,omitempty"`
	Seed                   int64          `json:"seed"`
	Subseed                int64          `json:"subseed"`
	SubseedStrength        float64        `json:"subseed_strength"`
	SeedResizeFromH        int            `json:"seed_resize_from_h"`
	SeedResizeFromW        int            `json:"seed_resize_from_w"`
	SeedEnableExtras       bool           `json:"seed_enable_extras"`
	SamplerName            string         `json:"sampler_name"`
	Scheduler              string         `json:"scheduler,omitempty"`
	BatchSize              int            `json:"batch_size"`
	NIter                  int            `json:"n_iter"`
	Steps                  int            `json:"steps"`
	CFGScale               float64        `json:"cfg_scale"`
	Width                  int            `json:"width"`
	Height                 int            `json:"height"`
	RestoreFaces           bool           `json:"restore_faces"`
	Tiling                 bool           `json:"tiling"`
	DoNotSaveSamples       bool           `json:"do_not_save_samples"`
	DoNotSaveGrid          bool           `json:"do_not_save_grid"`
	Eta                    float64        `json:"eta,omitempty"`
	OverrideSettings       map[string]any `json:"override_settings,omitempty"`
	SamplerIndex           string         `json:"sampler_index,omitempty"`
	IncludeInitImages      bool           `json:"include_init_images,omitempty"`
	ScriptName             string         `json:"script_name,omitempty"`
	ScriptArgs             []any          `json:"script_args,omitempty"`
	AlwaysonScripts        map[string]any `json:"alwayson_scripts,omitempty"`
	SendImages             bool           `json:"send_images,omitempty"`
	SaveImages             bool           `json:"save_images,omitempty"`
}
