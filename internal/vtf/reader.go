package vtf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"log/slog"
)

// Reader reads information from VTF files.
type Reader struct {
	file   io.ReadSeeker
	logger *slog.Logger
	header *Header
}

// NewReader returns a Reader over r. A nil logger discards output.
func NewReader(r io.ReadSeeker, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{file: r, logger: logger}
}

// headerFixed mirrors the part of the header shared by every 7.x version.
type headerFixed struct {
	Version       [2]uint32
	HeaderSize    uint32
	Width         uint16
	Height        uint16
	Flags         uint32
	Frames        uint16
	FirstFrame    uint16
	_             [4]byte
	Reflectivity  [3]float32
	_             [4]byte
	BumpScale     float32
	HighResFormat int32
	MipmapCount   uint8
	LowResFormat  int32
	LowResWidth   uint8
	LowResHeight  uint8
}

// ReadHeader reads header information from a VTF file.
// This function will read at least 63 bytes of data,
// and will raise an error if the first 4 bytes read
// are not magic (Magic).
func (r *Reader) ReadHeader() (*Header, error) {
	h := &Header{Depth: 1}

	if _, err := io.ReadFull(r.file, h.Magic[:]); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("invalid VTF magic: expected %q, got %q", Magic, h.Magic)
	}

	var fixed headerFixed
	if err := binary.Read(r.file, binary.LittleEndian, &fixed); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if fixed.Version[0] != 7 || fixed.Version[1] > 5 {
		return nil, fmt.Errorf("unsupported VTF version: %d.%d", fixed.Version[0], fixed.Version[1])
	}
	if fixed.Width == 0 || fixed.Height == 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", fixed.Width, fixed.Height)
	}

	h.Version = fixed.Version
	h.HeaderSize = fixed.HeaderSize
	h.Width = fixed.Width
	h.Height = fixed.Height
	h.Flags = Flags(fixed.Flags)
	h.Frames = max(fixed.Frames, 1)
	h.FirstFrame = fixed.FirstFrame
	h.Reflectivity = fixed.Reflectivity
	h.BumpScale = fixed.BumpScale
	h.HighResFormat = ImageFormat(fixed.HighResFormat)
	h.MipmapCount = max(fixed.MipmapCount, 1)
	h.LowResFormat = ImageFormat(fixed.LowResFormat)
	h.LowResWidth = fixed.LowResWidth
	h.LowResHeight = fixed.LowResHeight

	if h.Minor() >= 2 {
		if err := binary.Read(r.file, binary.LittleEndian, &h.Depth); err != nil {
			return nil, fmt.Errorf("failed to read depth: %w", err)
		}
		h.Depth = max(h.Depth, 1)
	}

	if h.Minor() >= 3 {
		if err := r.readResources(h); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("header is valid",
		"version", fmt.Sprintf("%d.%d", h.Version[0], h.Version[1]),
		"width", h.Width,
		"height", h.Height,
		"format", h.HighResFormat,
		"mipmaps", h.MipmapCount,
		"frames", h.Frames,
	)

	r.header = h
	return h, nil
}

// readResources reads the 7.3+ resource directory.
// [padding(3)][count(uint32)][padding(8)][count x Resource]
func (r *Reader) readResources(h *Header) error {
	if _, err := r.file.Seek(3, io.SeekCurrent); err != nil {
		return fmt.Errorf("failed to skip resource padding: %w", err)
	}

	var count uint32
	if err := binary.Read(r.file, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("failed to read resource count: %w", err)
	}
	// the directory is capped at 32 entries by the format
	if count > 32 {
		return fmt.Errorf("invalid resource count: %d", count)
	}

	if _, err := r.file.Seek(8, io.SeekCurrent); err != nil {
		return fmt.Errorf("failed to skip resource padding: %w", err)
	}

	h.Resources = make([]Resource, count)
	if err := binary.Read(r.file, binary.LittleEndian, h.Resources); err != nil {
		return fmt.Errorf("failed to read resource directory: %w", err)
	}

	return nil
}

// HighResOffset returns the absolute offset of the first high resolution
// mipmap (the smallest one).
func (r *Reader) HighResOffset() (int64, error) {
	h := r.header
	if h == nil {
		return 0, fmt.Errorf("header not read")
	}

	if h.Minor() >= 3 {
		res, ok := h.Resource(ResourceHighRes)
		if !ok {
			return 0, fmt.Errorf("missing high resolution image resource")
		}
		return int64(res.Data), nil
	}

	offset := int64(h.HeaderSize)
	if h.LowResFormat != FormatNone && h.LowResWidth > 0 && h.LowResHeight > 0 {
		size := h.LowResFormat.ImageSize(int(h.LowResWidth), int(h.LowResHeight))
		if size < 0 {
			return 0, fmt.Errorf("unknown low resolution format: %d", h.LowResFormat)
		}
		offset += int64(size)
	}

	return offset, nil
}

// LargestMipmapOffset returns the offset and size of frame 0, face 0,
// slice 0 of the full size mipmap. Mipmaps are stored smallest first.
func (r *Reader) LargestMipmapOffset() (offset int64, size int, err error) {
	offset, err = r.HighResOffset()
	if err != nil {
		return 0, 0, err
	}

	h := r.header
	perImage := int64(h.Frames) * int64(h.Faces())

	for mip := int(h.MipmapCount) - 1; mip > 0; mip-- {
		w := max(int(h.Width)>>mip, 1)
		ht := max(int(h.Height)>>mip, 1)
		d := max(int(h.Depth)>>mip, 1)

		mipSize := h.HighResFormat.ImageSize(w, ht)
		if mipSize < 0 {
			return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, h.HighResFormat)
		}
		offset += int64(mipSize) * perImage * int64(d)
	}

	size = h.HighResFormat.ImageSize(int(h.Width), int(h.Height))
	if size < 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, h.HighResFormat)
	}

	return offset, size, nil
}

// ReadLargestImage reads and converts the largest mipmap.
func (r *Reader) ReadLargestImage() (*image.NRGBA, error) {
	offset, size, err := r.LargestMipmapOffset()
	if err != nil {
		return nil, err
	}

	end, err := r.file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream length: %w", err)
	}
	if offset < 0 || offset+int64(size) > end {
		return nil, fmt.Errorf("image data at offset %d needs %d bytes, stream has %d", offset, size, end)
	}

	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to image data at offset %d: %w", offset, err)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, fmt.Errorf("failed to read %d bytes of image data at offset %d: %w", size, offset, err)
	}

	h := r.header
	img, err := convert(data, int(h.Width), int(h.Height), h.HighResFormat)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("decoded image",
		"offset", offset,
		"size", size,
	)

	return img, nil
}

// Decode decodes the highest resolution image in a VTF container and
// returns it with its native dimensions. All errors wrap ErrDecode.
func Decode(data []byte) (*image.NRGBA, int, int, error) {
	r := NewReader(bytes.NewReader(data), nil)

	h, err := r.ReadHeader()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	img, err := r.ReadLargestImage()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return img, int(h.Width), int(h.Height), nil
}
