// Package imgproc decodes stored images and produces resized JPEG variants
// with the original visual orientation preserved.
package imgproc

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
)

const jpegQuality = 90

var ErrBadHeight = errors.New("imgproc: target height must be positive")

// ResizeToHeight decodes src, applies any EXIF orientation, scales the
// result to the target height with the width chosen to preserve the aspect
// ratio (width = round(origW / (origH / targetH))) and re-encodes as JPEG.
func ResizeToHeight(src []byte, targetHeight int) ([]byte, error) {
	if targetHeight <= 0 {
		return nil, ErrBadHeight
	}

	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	if format == "jpeg" {
		img = ApplyOrientation(img, Orientation(src))
	}

	b := img.Bounds()
	origW, origH := b.Dx(), b.Dy()
	if origH == 0 {
		return nil, errors.New("imgproc: empty source image")
	}

	width := int(math.Round(float64(origW) / (float64(origH) / float64(targetHeight))))
	if width < 1 {
		width = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
