package images

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// standardize decodes source pixels and re-encodes them into the fixed target
// format: center-cropped cover fit (the longer dimension is cropped, never
// stretched) at width×height, JPEG at the given quality.
func standardize(source io.Reader, width, height, quality int) ([]byte, error) {
	img, err := imaging.Decode(source, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("can't decode image: %w", err)
	}

	fitted := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("can't encode image: %w", err)
	}

	return buf.Bytes(), nil
}
