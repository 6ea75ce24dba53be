package render

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/webp"

	"github.com/GriffinCanCode/catscii/internal/shared/failure"
)

var decoders = map[string]func(io.Reader) (image.Image, error){
	"image/png":  png.Decode,
	"image/jpeg": jpeg.Decode,
	"image/gif":  gif.Decode,
	"image/webp": webp.Decode,
}

// Decode decodes data into an image and reports the detected MIME type.
// Unsupported or corrupt payloads yield a decode-stage failure.
func Decode(data []byte) (image.Image, string, error) {
	mime := mimetype.Detect(data)

	decode, ok := decoders[mime.String()]
	if !ok {
		return nil, mime.String(), failure.Decode(fmt.Errorf("unsupported content type %s", mime.String()))
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, mime.String(), failure.Decode(err)
	}
	return img, mime.String(), nil
}
