package imageproc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"

	"github.com/disintegration/imaging"

	"github.com/leca/ai-photobooth/internal/model"
)

// ErrMalformedInput reports a string that is not a well-formed base64
// image data URL.
var ErrMalformedInput = errors.New("invalid base64 image string")

// ConversionError reports a failure to decode or re-encode image bytes.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string { return "converting image: " + e.Err.Error() }

func (e *ConversionError) Unwrap() error { return e.Err }

// dataURLPattern matches data:image/<subtype>;base64,<payload>.
var dataURLPattern = regexp.MustCompile(`^data:image/([A-Za-z0-9.+-]+);base64,(.+)$`)

// ParseDataURL decodes a base64 image data URL into its subtype and raw
// bytes. It fails with ErrMalformedInput if the string does not match the
// expected shape or the payload is not valid base64.
func ParseDataURL(s string) (model.ImagePayload, error) {
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return model.ImagePayload{}, ErrMalformedInput
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return model.ImagePayload{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return model.ImagePayload{Subtype: m[1], Data: data}, nil
}

// ToPNG decodes image bytes in any supported raster format and re-encodes
// them as PNG. Either the full PNG buffer is returned or the call fails
// with a ConversionError.
func ToPNG(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ConversionError{Err: err}
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, &ConversionError{Err: err}
	}
	return buf.Bytes(), nil
}

// Ingest parses a data URL and normalizes the image to PNG, the one
// format the downstream edit provider accepts. It has no side effects on
// failure.
func Ingest(dataURL string) (model.ImagePayload, error) {
	payload, err := ParseDataURL(dataURL)
	if err != nil {
		return model.ImagePayload{}, err
	}
	png, err := ToPNG(payload.Data)
	if err != nil {
		return model.ImagePayload{}, err
	}
	return model.ImagePayload{Subtype: "png", Data: png}, nil
}
