package vtf

// ImageFormat is the pixel encoding of an image stored in a VTF file.
type ImageFormat int32

const (
	FormatNone ImageFormat = -1

	FormatRGBA8888 ImageFormat = iota - 1
	FormatABGR8888
	FormatRGB888
	FormatBGR888
	FormatRGB565
	FormatI8
	FormatIA88
	FormatP8
	FormatA8
	FormatRGB888Bluescreen
	FormatBGR888Bluescreen
	FormatARGB8888
	FormatBGRA8888
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatBGRX8888
	FormatBGR565
	FormatBGRX5551
	FormatBGRA4444
	FormatDXT1OneBitAlpha
	FormatBGRA5551
	FormatUV88
	FormatUVWQ8888
	FormatRGBA16161616F
	FormatRGBA16161616
	FormatUVLX8888
)

func (f ImageFormat) String() string {
	switch f {
	case FormatNone:
		return "NONE"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatABGR8888:
		return "ABGR8888"
	case FormatRGB888:
		return "RGB888"
	case FormatBGR888:
		return "BGR888"
	case FormatRGB565:
		return "RGB565"
	case FormatI8:
		return "I8"
	case FormatIA88:
		return "IA88"
	case FormatP8:
		return "P8"
	case FormatA8:
		return "A8"
	case FormatRGB888Bluescreen:
		return "RGB888_BLUESCREEN"
	case FormatBGR888Bluescreen:
		return "BGR888_BLUESCREEN"
	case FormatARGB8888:
		return "ARGB8888"
	case FormatBGRA8888:
		return "BGRA8888"
	case FormatDXT1:
		return "DXT1"
	case FormatDXT3:
		return "DXT3"
	case FormatDXT5:
		return "DXT5"
	case FormatBGRX8888:
		return "BGRX8888"
	case FormatBGR565:
		return "BGR565"
	case FormatBGRX5551:
		return "BGRX5551"
	case FormatBGRA4444:
		return "BGRA4444"
	case FormatDXT1OneBitAlpha:
		return "DXT1_ONEBITALPHA"
	case FormatBGRA5551:
		return "BGRA5551"
	case FormatUV88:
		return "UV88"
	case FormatUVWQ8888:
		return "UVWQ8888"
	case FormatRGBA16161616F:
		return "RGBA16161616F"
	case FormatRGBA16161616:
		return "RGBA16161616"
	case FormatUVLX8888:
		return "UVLX8888"
	default:
		return "Unknown"
	}
}

// bytesPerPixel returns the storage size of one pixel for uncompressed
// formats, and 0 for block-compressed or unknown ones.
func (f ImageFormat) bytesPerPixel() int {
	switch f {
	case FormatI8, FormatP8, FormatA8:
		return 1
	case FormatRGB565, FormatBGR565, FormatIA88, FormatBGRX5551,
		FormatBGRA4444, FormatBGRA5551, FormatUV88:
		return 2
	case FormatRGB888, FormatBGR888, FormatRGB888Bluescreen, FormatBGR888Bluescreen:
		return 3
	case FormatRGBA8888, FormatABGR8888, FormatARGB8888, FormatBGRA8888,
		FormatBGRX8888, FormatUVWQ8888, FormatUVLX8888:
		return 4
	case FormatRGBA16161616F, FormatRGBA16161616:
		return 8
	default:
		return 0
	}
}

// blockBytes returns the size of one 4x4 block for DXT formats, and 0
// otherwise.
func (f ImageFormat) blockBytes() int {
	switch f {
	case FormatDXT1, FormatDXT1OneBitAlpha:
		return 8
	case FormatDXT3, FormatDXT5:
		return 16
	default:
		return 0
	}
}

// ImageSize returns the number of bytes a width x height image occupies
// in this format, or -1 when the format is unknown.
func (f ImageFormat) ImageSize(width, height int) int {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if bb := f.blockBytes(); bb != 0 {
		return ((width + 3) / 4) * ((height + 3) / 4) * bb
	}

	if bpp := f.bytesPerPixel(); bpp != 0 {
		return width * height * bpp
	}

	return -1
}
