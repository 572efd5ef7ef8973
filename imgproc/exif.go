package imgproc

import (
	"encoding/binary"
	"image"
)

const orientationTag = 0x0112

// Orientation returns the EXIF orientation (1-8) from raw JPEG bytes, or 0
// when the file carries none that can be read. Parse failures are treated
// as "no orientation"; they must never fail a resize.
func Orientation(jpegBytes []byte) int {
	if len(jpegBytes) < 4 || jpegBytes[0] != 0xFF || jpegBytes[1] != 0xD8 {
		return 0
	}
	i := 2
	for i+4 < len(jpegBytes) {
		if jpegBytes[i] != 0xFF {
			return 0
		}
		marker := jpegBytes[i+1]
		i += 2
		// end of metadata: image data or end of image
		if marker == 0xDA || marker == 0xD9 {
			return 0
		}
		if i+2 > len(jpegBytes) {
			return 0
		}
		segLen := int(jpegBytes[i])<<8 | int(jpegBytes[i+1])
		i += 2
		if segLen < 2 || i+segLen-2 > len(jpegBytes) {
			return 0
		}
		if marker == 0xE1 { // APP1
			seg := jpegBytes[i : i+segLen-2]
			if len(seg) >= 6 && string(seg[:6]) == "Exif\x00\x00" {
				return tiffOrientation(seg[6:])
			}
		}
		i += segLen - 2
	}
	return 0
}

// tiffOrientation walks IFD0 of the TIFF block looking for the orientation
// tag.
func tiffOrientation(tiff []byte) int {
	if len(tiff) < 8 {
		return 0
	}
	var order binary.ByteOrder
	switch {
	case tiff[0] == 'I' && tiff[1] == 'I':
		order = binary.LittleEndian
	case tiff[0] == 'M' && tiff[1] == 'M':
		order = binary.BigEndian
	default:
		return 0
	}
	if order.Uint16(tiff[2:4]) != 42 {
		return 0
	}

	ifd0 := int(order.Uint32(tiff[4:8]))
	if ifd0 <= 0 || ifd0+2 > len(tiff) {
		return 0
	}
	count := int(order.Uint16(tiff[ifd0 : ifd0+2]))
	off := ifd0 + 2
	for i := 0; i < count && off+12 <= len(tiff); i++ {
		tag := order.Uint16(tiff[off : off+2])
		typ := order.Uint16(tiff[off+2 : off+4])
		if tag == orientationTag {
			if typ != 3 { // expect SHORT
				return 0
			}
			val := int(order.Uint16(tiff[off+8 : off+10]))
			if val >= 1 && val <= 8 {
				return val
			}
			return 0
		}
		off += 12
	}
	return 0
}

// ApplyOrientation bakes an EXIF orientation into the pixels so the visual
// orientation survives re-encoding without metadata.
func ApplyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return flipH(img)
	case 3:
		return rotate180(img)
	case 4:
		return flipV(img)
	case 5:
		return rotate90(flipH(img))
	case 6:
		return rotate90(img)
	case 7:
		return rotate270(flipH(img))
	case 8:
		return rotate270(img)
	default:
		return img
	}
}

// transform writes each source pixel to a destination computed by place.
func transform(src image.Image, w, h int, place func(x, y int) (int, int)) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx, dy := place(x, y)
			dst.Set(dx, dy, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func rotate90(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transform(src, h, w, func(x, y int) (int, int) { return h - 1 - y, x })
}

func rotate180(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transform(src, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
}

func rotate270(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transform(src, h, w, func(x, y int) (int, int) { return y, w - 1 - x })
}

func flipH(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transform(src, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
}

func flipV(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return transform(src, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
}
