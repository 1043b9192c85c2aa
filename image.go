package wirelens

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// DataURLPrefix is the scheme every encoded raster starts with.
const DataURLPrefix = "data:image/png;base64,"

// Raster is an interleaved, row-major pixel buffer in the reversed-channel
// convention the host pipeline uses (BGR, or BGRA when Channels is 4).
// It implements image.Image; At swaps the blue and red channels so that
// encoding always yields canonical RGB output.
type Raster struct {
	Width    int
	Height   int
	Channels int // 3 (BGR) or 4 (BGRA)
	Pix      []uint8
}

// NewRaster allocates a zeroed raster of the given dimensions.
func NewRaster(width, height, channels int) *Raster {
	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// ColorModel implements image.Image.
func (*Raster) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// At implements image.Image, converting the stored BGR(A) sample to NRGBA.
func (r *Raster) At(x, y int) color.Color {
	i := (y*r.Width + x) * r.Channels
	c := color.NRGBA{B: r.Pix[i], G: r.Pix[i+1], R: r.Pix[i+2], A: 0xff}
	if r.Channels == 4 {
		c.A = r.Pix[i+3]
	}
	return c
}

// SetBGR stores one pixel in the raster's native channel order.
func (r *Raster) SetBGR(x, y int, blue, green, red uint8) {
	i := (y*r.Width + x) * r.Channels
	r.Pix[i], r.Pix[i+1], r.Pix[i+2] = blue, green, red
	if r.Channels == 4 {
		r.Pix[i+3] = 0xff
	}
}

// EncodeDataURL converts an image into a self-contained data URL: the PNG
// encoding of the image, base64-encoded and MIME-tagged. Encoder errors
// propagate unchanged.
func EncodeDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
