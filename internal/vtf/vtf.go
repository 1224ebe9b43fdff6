// Package vtf decodes Valve Texture Format containers far enough to
// produce a preview bitmap of the largest mipmap.
package vtf

import "errors"

// Magic is the signature identifying VTF files ("VTF\0")
var Magic = [4]byte{'V', 'T', 'F', 0}

var (
	// ErrDecode wraps every failure to turn container bytes into a bitmap.
	ErrDecode = errors.New("malformed texture")
	// ErrUnsupportedFormat is returned (wrapped in ErrDecode) for pixel
	// encodings the decoder cannot convert.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Header is the header of a VTF file.
// Fields introduced by later minor versions are zero (or 1 for Depth)
// when reading older files.
type Header struct {
	Magic        [4]byte   // "VTF\0" for valid files
	Version      [2]uint32 // major, minor; major is always 7
	HeaderSize   uint32    // offset of the first data byte for versions < 7.3
	Width        uint16    // width of the largest mipmap
	Height       uint16    // height of the largest mipmap
	Flags        Flags
	Frames       uint16
	FirstFrame   uint16
	Reflectivity [3]float32
	BumpScale    float32

	HighResFormat ImageFormat
	MipmapCount   uint8
	LowResFormat  ImageFormat
	LowResWidth   uint8
	LowResHeight  uint8

	// Depth is present from 7.2.
	Depth uint16

	// Resources is present from 7.3.
	Resources []Resource
}

// Minor returns the minor version number.
func (h *Header) Minor() uint32 {
	return h.Version[1]
}

// Faces returns the number of faces stored per frame.
func (h *Header) Faces() int {
	if h.Flags&FlagEnvMap == 0 {
		return 1
	}
	// 7.1 through 7.4 append a spheremap unless the first frame is -1
	if h.Minor() >= 1 && h.Minor() <= 4 && h.FirstFrame != 0xFFFF {
		return 7
	}
	return 6
}

// Flags holds texture flags. Only the ones affecting layout are named.
type Flags uint32

const (
	FlagEnvMap Flags = 0x00004000
)

// Resource is a single entry of the 7.3+ resource directory.
//
// [tag(3 bytes)][flags(1 byte)][data(uint32)]
type Resource struct {
	Tag   [3]byte
	Flags uint8
	// Data is an absolute file offset, or the inline value when
	// Flags has ResourceNoData set.
	Data uint32
}

// ResourceNoData marks a resource whose Data field is the value itself.
const ResourceNoData = 0x02

var (
	// ResourceLowRes tags the low resolution thumbnail image.
	ResourceLowRes = [3]byte{0x01, 0x00, 0x00}
	// ResourceHighRes tags the mipmapped high resolution image data.
	ResourceHighRes = [3]byte{0x30, 0x00, 0x00}
)

// Resource looks up a resource by tag.
func (h *Header) Resource(tag [3]byte) (Resource, bool) {
	for _, r := range h.Resources {
		if r.Tag == tag {
			return r, true
		}
	}
	return Resource{}, false
}
