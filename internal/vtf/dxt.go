package vtf

import (
	"encoding/binary"
	"image"
)

// DXT images are stored as 4x4 blocks, left to right, top to bottom.
// Blocks overhanging the image edge are clipped.

func decodeDXT1(img *image.NRGBA, data []byte) {
	forEachBlock(img, 8, data, func(block []byte, px func(x, y int, c [4]uint8)) {
		palette := colorPalette(block, false)
		indices := binary.LittleEndian.Uint32(block[4:])
		for i := 0; i < 16; i++ {
			px(i%4, i/4, palette[(indices>>(2*i))&0x3])
		}
	})
}

func decodeDXT3(img *image.NRGBA, data []byte) {
	forEachBlock(img, 16, data, func(block []byte, px func(x, y int, c [4]uint8)) {
		alpha := binary.LittleEndian.Uint64(block)
		palette := colorPalette(block[8:], true)
		indices := binary.LittleEndian.Uint32(block[12:])
		for i := 0; i < 16; i++ {
			c := palette[(indices>>(2*i))&0x3]
			c[3] = expand4(uint16(alpha >> (4 * i)))
			px(i%4, i/4, c)
		}
	})
}

func decodeDXT5(img *image.NRGBA, data []byte) {
	forEachBlock(img, 16, data, func(block []byte, px func(x, y int, c [4]uint8)) {
		alphas := alphaPalette(block[0], block[1])
		// 48 bits of 3-bit alpha indices
		var alphaBits uint64
		for i := 7; i >= 2; i-- {
			alphaBits = alphaBits<<8 | uint64(block[i])
		}

		palette := colorPalette(block[8:], true)
		indices := binary.LittleEndian.Uint32(block[12:])
		for i := 0; i < 16; i++ {
			c := palette[(indices>>(2*i))&0x3]
			c[3] = alphas[(alphaBits>>(3*i))&0x7]
			px(i%4, i/4, c)
		}
	})
}

func forEachBlock(img *image.NRGBA, blockSize int, data []byte, fn func(block []byte, px func(x, y int, c [4]uint8))) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	blocksX := (w + 3) / 4
	blocksY := (h + 3) / 4

	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			o := (by*blocksX + bx) * blockSize
			fn(data[o:o+blockSize], func(x, y int, c [4]uint8) {
				ix, iy := bx*4+x, by*4+y
				if ix >= w || iy >= h {
					return
				}
				copy(img.Pix[img.PixOffset(ix, iy):], c[:])
			})
		}
	}
}

// colorPalette expands the two 5:6:5 endpoints of a color block.
// Without fourColor, c0 <= c1 selects three colors plus transparent black.
func colorPalette(block []byte, fourColor bool) [4][4]uint8 {
	c0 := binary.LittleEndian.Uint16(block)
	c1 := binary.LittleEndian.Uint16(block[2:])

	var p [4][4]uint8
	p[0][0], p[0][1], p[0][2] = unpack565(c0)
	p[1][0], p[1][1], p[1][2] = unpack565(c1)
	p[0][3], p[1][3] = 0xFF, 0xFF

	if fourColor || c0 > c1 {
		for ch := 0; ch < 3; ch++ {
			a, b := int(p[0][ch]), int(p[1][ch])
			p[2][ch] = uint8((2*a + b) / 3)
			p[3][ch] = uint8((a + 2*b) / 3)
		}
		p[2][3], p[3][3] = 0xFF, 0xFF
		return p
	}

	for ch := 0; ch < 3; ch++ {
		p[2][ch] = uint8((int(p[0][ch]) + int(p[1][ch])) / 2)
	}
	p[2][3] = 0xFF
	// p[3] stays transparent black
	return p
}

func alphaPalette(a0, a1 uint8) [8]uint8 {
	var p [8]uint8
	p[0], p[1] = a0, a1

	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			p[i+1] = uint8(((7-i)*int(a0) + i*int(a1)) / 7)
		}
		return p
	}

	for i := 1; i <= 4; i++ {
		p[i+1] = uint8(((5-i)*int(a0) + i*int(a1)) / 5)
	}
	p[6] = 0
	p[7] = 0xFF
	return p
}
