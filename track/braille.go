package track

import (
	"image"
	"strings"
)

const (
	dotsX          = 2
	dotsY          = 4
	brailleBase    = 0x2800
	alphaThreshold = 0x4000
)

// dot bit for column x, row y inside a braille cell
var brailleBits = [dotsY][dotsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Coverage reports, per cell, whether at least half of its dots are opaque.
func Coverage(img image.Image, cols, rows int) [][]bool {
	out := make([][]bool, rows)
	b := img.Bounds()
	for row := 0; row < rows; row++ {
		out[row] = make([]bool, cols)
		for col := 0; col < cols; col++ {
			n := 0
			for dy := 0; dy < dotsY; dy++ {
				for dx := 0; dx < dotsX; dx++ {
					x := b.Min.X + col*dotsX + dx
					y := b.Min.Y + row*dotsY + dy
					if x >= b.Max.X || y >= b.Max.Y {
						continue
					}
					if _, _, _, a := img.At(x, y).RGBA(); a >= alphaThreshold {
						n++
					}
				}
			}
			out[row][col] = n*2 >= dotsX*dotsY
		}
	}
	return out
}

// Braille samples img (cols*2 by rows*4 pixels) into braille cells, one
// string per row. Empty cells are spaces.
func Braille(img image.Image, cols, rows int) []string {
	lines := make([]string, rows)
	b := img.Bounds()
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		for col := 0; col < cols; col++ {
			var cell rune
			for dy := 0; dy < dotsY; dy++ {
				for dx := 0; dx < dotsX; dx++ {
					x := b.Min.X + col*dotsX + dx
					y := b.Min.Y + row*dotsY + dy
					if x >= b.Max.X || y >= b.Max.Y {
						continue
					}
					_, _, _, a := img.At(x, y).RGBA()
					if a >= alphaThreshold {
						cell |= brailleBits[dy][dx]
					}
				}
			}
			if cell == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(brailleBase + cell)
			}
		}
		lines[row] = sb.String()
	}
	return lines
}
