package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality area resampling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationArea:
		return draw.CatmullRom
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	if width < 1 || height < 1 || img.Area() == 0 {
		return dst
	}
	dstRect := image.Rect(0, 0, width, height)
	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// CoverResize resizes an image to exactly width x height with cover/crop
// semantics: the source is center-cropped to the target aspect ratio
// first, then area-resampled, so the target is filled edge to edge with
// no letterboxing. A zero-area source yields a blank target.
func CoverResize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	if width < 1 || height < 1 || img.Area() == 0 {
		return dst
	}

	srcW, srcH := img.Width(), img.Height()
	cropW, cropH := srcW, srcH
	// Shrink one source dimension to match the target aspect ratio.
	if srcW*height > width*srcH {
		cropW = srcH * width / height
		if cropW < 1 {
			cropW = 1
		}
	} else {
		cropH = srcW * height / width
		if cropH < 1 {
			cropH = 1
		}
	}
	x0 := (srcW - cropW) / 2
	y0 := (srcH - cropH) / 2
	srcRect := image.Rect(x0, y0, x0+cropW, y0+cropH)

	dstRect := image.Rect(0, 0, width, height)
	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, srcRect, draw.Over, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	return Resize(img, width, height, interp)
}
