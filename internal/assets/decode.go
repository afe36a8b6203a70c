package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// DecodeRGBA8 decodes an encoded image (PNG or JPEG) into tightly packed
// RGBA8 pixels, top-left origin.
func DecodeRGBA8(data []byte) (pixels []uint8, width, height uint32, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, uint32(bounds.Dx()), uint32(bounds.Dy()), nil
}

// Source couples a Resolver with the decoder, satisfying the texture
// system's loading boundary.
type Source struct {
	resolver *Resolver
}

func NewSource(resolver *Resolver) *Source {
	return &Source{resolver: resolver}
}

// LoadRGBA8 resolves uri and decodes it to RGBA8 pixels.
func (s *Source) LoadRGBA8(uri string) ([]uint8, uint32, uint32, error) {
	data, err := s.resolver.Resolve(uri)
	if err != nil {
		return nil, 0, 0, err
	}
	pixels, width, height, err := DecodeRGBA8(data)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("asset %q: %w", uri, err)
	}
	return pixels, width, height, nil
}
