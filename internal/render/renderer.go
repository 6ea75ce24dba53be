package render

import "image"

// Renderer binds fixed options to Decode and Render
type Renderer struct {
	Options Options
}

// NewRenderer returns a renderer using DefaultOptions
func NewRenderer() *Renderer {
	return &Renderer{Options: DefaultOptions()}
}

// Decode decodes data with the package-level Decode
func (r *Renderer) Decode(data []byte) (image.Image, string, error) {
	return Decode(data)
}

// Render renders img with the renderer's options
func (r *Renderer) Render(img image.Image) string {
	return Render(img, r.Options)
}
