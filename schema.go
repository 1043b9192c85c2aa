package wirelens

import (
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

// ExcludedFields never appear in a reconstructed payload even when the job
// carries them: legacy aliases superseded by newer fields, and
// response-shaping flags that have no bearing on reproduction.
var ExcludedFields = map[string]struct{}{
	// Optional; the effect is achieved with hr_resize_x/y and width/height.
	"firstphase_width":  {},
	"firstphase_height": {},
	// Deprecated alias of sampler_name.
	"sampler_index": {},
	// Response-shaping flags.
	"send_images": {},
	"save_images": {},
}

// Schema is the ordered set of field names one wire-request modality
// declares. Field order follows struct declaration order, which drives the
// copy order during assembly.
type Schema struct {
	modality string
	fields   []string
}

// SchemaFor derives a schema from a wire-model struct type using sentinel.
// Field names come from json tags; fields tagged json:"-" are dropped.
func SchemaFor[T any](modality string) *Schema {
	metadata := sentinel.Inspect[T]()

	fields := make([]string, 0, len(metadata.Fields))
	for _, field := range metadata.Fields {
		name := jsonFieldName(field)
		if name == "-" {
			continue
		}
		fields = append(fields, name)
	}
	return &Schema{modality: modality, fields: fields}
}

// Modality returns the request kind this schema describes.
func (s *Schema) Modality() string { return s.modality }

// Fields returns the declared field names in declaration order.
// The returned slice is a copy and safe to modify.
func (s *Schema) Fields() []string {
	fields := make([]string, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

var (
	txt2imgSchemaOnce sync.Once
	txt2imgSchema     *Schema
	img2imgSchemaOnce sync.Once
	img2imgSchema     *Schema
)

// Txt2ImgSchema returns the text-to-image wire schema, derived once.
func Txt2ImgSchema() *Schema {
	txt2imgSchemaOnce.Do(func() {
		txt2imgSchema = SchemaFor[Txt2ImgRequest](ModalityTxt2Img)
	})
	return txt2imgSchema
}

// Img2ImgSchema returns the image-to-image wire schema, derived once.
func Img2ImgSchema() *Schema {
	img2imgSchemaOnce.Do(func() {
		img2imgSchema = SchemaFor[Img2ImgRequest](ModalityImg2Img)
	})
	return img2imgSchema
}

// jsonFieldName extracts the wire name from field metadata.
func jsonFieldName(field sentinel.FieldMetadata) string {
	if jsonTag, ok := field.Tags["json"]; ok {
		// Handle "name,omitempty" format
		parts := strings.Split(jsonTag, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0]
		}
	}

	// Default to lowercase field name
	return strings.ToLower(field.Name[:1]) + field.Name[1:]
}
