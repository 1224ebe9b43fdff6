// Package vtftest builds small VTF files for tests.
package vtftest

import (
	"bytes"
	"encoding/binary"

	"github.com/ossyrian/crosshair-switcher/internal/vtf"
)

// Texture describes a VTF file to build. Zero values get sensible defaults.
type Texture struct {
	Minor   uint32 // minor version, 7.<Minor>
	Width   uint16
	Height  uint16
	Format  vtf.ImageFormat
	Mipmaps uint8
	Frames  uint16
	Flags   vtf.Flags
	LowRes  bool // prepend a 16x16 DXT1 thumbnail

	// Data is the full size image of frame 0. Other frames and the smaller
	// mipmaps are filled with Filler.
	Data   []byte
	Filler byte
}

// Build encodes t as a VTF file.
func Build(t Texture) []byte {
	if t.Mipmaps == 0 {
		t.Mipmaps = 1
	}
	if t.Frames == 0 {
		t.Frames = 1
	}

	lowResFormat := vtf.FormatNone
	var lowW, lowH uint8
	var lowData []byte
	if t.LowRes {
		lowResFormat = vtf.FormatDXT1
		lowW, lowH = 16, 16
		lowData = bytes.Repeat([]byte{0xEE}, vtf.FormatDXT1.ImageSize(16, 16))
	}

	high := highResData(t)

	var headerSize uint32
	var resourceCount uint32
	switch {
	case t.Minor >= 3:
		resourceCount = 1
		if t.LowRes {
			resourceCount++
		}
		headerSize = 80 + 8*resourceCount
	case t.Minor == 2:
		headerSize = 80
	default:
		headerSize = 64
	}

	buf := new(bytes.Buffer)
	le := func(v any) { _ = binary.Write(buf, binary.LittleEndian, v) }

	buf.Write(vtf.Magic[:])
	le([2]uint32{7, t.Minor})
	le(headerSize)
	le(t.Width)
	le(t.Height)
	le(uint32(t.Flags))
	le(t.Frames)
	le(uint16(0)) // first frame
	buf.Write(make([]byte, 4))
	le([3]float32{0.5, 0.5, 0.5})
	buf.Write(make([]byte, 4))
	le(float32(1))
	le(int32(t.Format))
	le(t.Mipmaps)
	le(int32(lowResFormat))
	le(lowW)
	le(lowH)

	if t.Minor >= 2 {
		le(uint16(1)) // depth
	}

	if t.Minor >= 3 {
		buf.Write(make([]byte, 3))
		le(resourceCount)
		buf.Write(make([]byte, 8))

		offset := headerSize
		if t.LowRes {
			le(vtf.Resource{Tag: vtf.ResourceLowRes, Data: offset})
			offset += uint32(len(lowData))
		}
		le(vtf.Resource{Tag: vtf.ResourceHighRes, Data: offset})
	}

	for uint32(buf.Len()) < headerSize {
		buf.WriteByte(0)
	}

	buf.Write(lowData)
	buf.Write(high)

	return buf.Bytes()
}

// highResData lays out every mipmap smallest first, each holding all frames.
func highResData(t Texture) []byte {
	out := new(bytes.Buffer)

	for mip := int(t.Mipmaps) - 1; mip >= 0; mip-- {
		w := max(int(t.Width)>>mip, 1)
		h := max(int(t.Height)>>mip, 1)
		// unknown formats get no payload
		size := max(t.Format.ImageSize(w, h), 0)

		for frame := 0; frame < int(t.Frames); frame++ {
			if mip == 0 && frame == 0 {
				img := make([]byte, size)
				copy(img, t.Data)
				out.Write(img)
				continue
			}
			out.Write(bytes.Repeat([]byte{t.Filler}, size))
		}
	}

	return out.Bytes()
}

// Solid returns an RGBA8888 payload of w x h pixels of one color.
func Solid(w, h int, r, g, b, a byte) []byte {
	return bytes.Repeat([]byte{r, g, b, a}, w*h)
}
