package gridgraph

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
)

// whiteLevel is the luminance above which a pixel is walkable.
const whiteLevel = 254

// FromImage decodes an occupancy image and builds a GridGraph from it.
// The image is converted to grayscale; pixels with luminance > 254 become
// walkable cells of value 1, every other pixel a blocked cell of value 0.
// Pixel (x, y) maps to Cell{Row: y, Col: x}. opts.WalkableThreshold is
// forced to 1; all other options apply unchanged.
func FromImage(r io.Reader, opts GridOptions) (*GridGraph, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}

	return FromDecoded(img, opts)
}

// FromDecoded binarizes an already decoded image; see FromImage.
func FromDecoded(img image.Image, opts GridOptions) (*GridGraph, error) {
	b := img.Bounds()
	values := make([][]int, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]int, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y > whiteLevel {
				row[x-b.Min.X] = 1
			}
		}
		values[y-b.Min.Y] = row
	}
	opts.WalkableThreshold = 1

	return NewGridGraph(values, opts)
}
