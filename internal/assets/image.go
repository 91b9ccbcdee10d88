package assets

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImagePath is the bundled texture, relative to the install location.
const ImagePath = "assets/image.png"

// Image is a bottom-up RGBA8 pixel buffer: the first row is the bottom of
// the picture, matching GL texture coordinates.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// LoadImage decodes the file, flips it vertically and converts it to
// straight-alpha RGBA8.
func LoadImage(path string) (*Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil, errors.Errorf("decode image %s: empty image", path)
	}
	return &Image{Width: width, Height: height, Pix: flipRows(toNRGBA(img))}, nil
}

// toNRGBA keeps colors unpremultiplied; GL samples the texture as straight
// alpha.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// flipRows returns the rows bottom to top, tightly packed.
func flipRows(img *image.NRGBA) []uint8 {
	b := img.Bounds()
	rowLen := b.Dx() * 4
	pix := make([]uint8, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		srcStart := img.PixOffset(b.Min.X, y)
		dstStart := (b.Max.Y - 1 - y) * rowLen
		copy(pix[dstStart:dstStart+rowLen], img.Pix[srcStart:srcStart+rowLen])
	}
	return pix
}

// ResolvePath looks for rel next to the executable first and falls back to
// the working directory.
func ResolvePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return rel
}
