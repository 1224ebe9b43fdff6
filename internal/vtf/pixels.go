package vtf

import (
	"encoding/binary"
	"fmt"
	"image"
)

// convert turns raw pixel data of the given format into an NRGBA image.
func convert(data []byte, width, height int, format ImageFormat) (*image.NRGBA, error) {
	if want := format.ImageSize(width, height); want < 0 || len(data) < want {
		return nil, fmt.Errorf("short image data: %d bytes for %dx%d %s", len(data), width, height, format)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	switch format {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		decodeDXT1(img, data)
		return img, nil
	case FormatDXT3:
		decodeDXT3(img, data)
		return img, nil
	case FormatDXT5:
		decodeDXT5(img, data)
		return img, nil
	}

	pixel, ok := pixelDecoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	bpp := format.bytesPerPixel()
	for i := 0; i < width*height; i++ {
		r, g, b, a := pixel(data[i*bpp : (i+1)*bpp])
		o := i * 4
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = a
	}

	return img, nil
}

type pixelDecoder func(p []byte) (r, g, b, a uint8)

var pixelDecoders = map[ImageFormat]pixelDecoder{
	FormatRGBA8888: func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[1], p[2], p[3] },
	FormatABGR8888: func(p []byte) (uint8, uint8, uint8, uint8) { return p[3], p[2], p[1], p[0] },
	FormatARGB8888: func(p []byte) (uint8, uint8, uint8, uint8) { return p[1], p[2], p[3], p[0] },
	FormatBGRA8888: func(p []byte) (uint8, uint8, uint8, uint8) { return p[2], p[1], p[0], p[3] },
	FormatBGRX8888: func(p []byte) (uint8, uint8, uint8, uint8) { return p[2], p[1], p[0], 0xFF },
	FormatRGB888:   func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[1], p[2], 0xFF },
	FormatBGR888:   func(p []byte) (uint8, uint8, uint8, uint8) { return p[2], p[1], p[0], 0xFF },
	FormatI8:       func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[0], p[0], 0xFF },
	FormatIA88:     func(p []byte) (uint8, uint8, uint8, uint8) { return p[0], p[0], p[0], p[1] },
	FormatA8:       func(p []byte) (uint8, uint8, uint8, uint8) { return 0, 0, 0, p[0] },
	FormatRGB888Bluescreen: func(p []byte) (uint8, uint8, uint8, uint8) {
		return bluescreen(p[0], p[1], p[2])
	},
	FormatBGR888Bluescreen: func(p []byte) (uint8, uint8, uint8, uint8) {
		return bluescreen(p[2], p[1], p[0])
	},
	FormatRGB565: func(p []byte) (uint8, uint8, uint8, uint8) {
		// red in the low bits
		b, g, r := unpack565(binary.LittleEndian.Uint16(p))
		return r, g, b, 0xFF
	},
	FormatBGR565: func(p []byte) (uint8, uint8, uint8, uint8) {
		r, g, b := unpack565(binary.LittleEndian.Uint16(p))
		return r, g, b, 0xFF
	},
	FormatBGRA4444: func(p []byte) (uint8, uint8, uint8, uint8) {
		v := binary.LittleEndian.Uint16(p)
		return expand4(v >> 8), expand4(v >> 4), expand4(v), expand4(v >> 12)
	},
	FormatBGRA5551: func(p []byte) (uint8, uint8, uint8, uint8) {
		v := binary.LittleEndian.Uint16(p)
		a := uint8(0)
		if v&0x8000 != 0 {
			a = 0xFF
		}
		return expand5(v >> 10), expand5(v >> 5), expand5(v), a
	},
	FormatBGRX5551: func(p []byte) (uint8, uint8, uint8, uint8) {
		v := binary.LittleEndian.Uint16(p)
		return expand5(v >> 10), expand5(v >> 5), expand5(v), 0xFF
	},
}

// bluescreen treats pure blue as the transparent key color.
func bluescreen(r, g, b uint8) (uint8, uint8, uint8, uint8) {
	if r == 0 && g == 0 && b == 0xFF {
		return 0, 0, 0, 0
	}
	return r, g, b, 0xFF
}

// unpack565 splits a 5:6:5 value into its high, middle and low channels,
// each expanded to 8 bits.
func unpack565(v uint16) (hi, mid, lo uint8) {
	return expand5(v >> 11), expand6(v >> 5), expand5(v)
}

func expand4(v uint16) uint8 {
	v &= 0x0F
	return uint8(v<<4 | v)
}

func expand5(v uint16) uint8 {
	v &= 0x1F
	return uint8(v<<3 | v>>2)
}

func expand6(v uint16) uint8 {
	v &= 0x3F
	return uint8(v<<2 | v>>4)
}
