package core

import "strings"

// Image is a monochrome bitmap.
type Image struct {
	W, H int
	bits []bool
}

// ParseImage builds an image from ASCII art: '#' is a lit pixel and any
// other character is unlit. Blank leading and trailing lines are dropped
// and short rows are padded.
func ParseImage(art string) *Image {
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	img := &Image{H: len(lines)}
	for _, l := range lines {
		img.W = max(img.W, len(l))
	}
	img.bits = make([]bool, img.W*img.H)
	for y, l := range lines {
		for x := 0; x < len(l); x++ {
			img.bits[y*img.W+x] = l[x] == '#'
		}
	}
	return img
}

// At reports whether the pixel at (x, y) is lit.
func (img *Image) At(x, y int) bool {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		return false
	}
	return img.bits[y*img.W+x]
}

// Mirror returns the image flipped horizontally.
func (img *Image) Mirror() *Image {
	out := &Image{W: img.W, H: img.H, bits: make([]bool, len(img.bits))}
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			out.bits[y*img.W+x] = img.bits[y*img.W+img.W-1-x]
		}
	}
	return out
}
