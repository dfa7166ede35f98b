package gd

// #include <gd.h>
import "C"

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"unsafe"
)

// Gd2Format selects raw or zlib compressed chunks in GD2 output
type Gd2Format int

const (
	Gd2Raw        Gd2Format = 1
	Gd2Compressed Gd2Format = 2
)

// ExportOptions controls Encode, Export and ExportTo.
// Start from DefaultExportOptions; the zero value asks for the lowest
// JPEG quality and no PNG compression.
type ExportOptions struct {
	// Format overrides detection by file extension
	Format ImageType
	// Quality is the JPEG (0-95) or WebP (0-100) quality; -1 is the library default
	Quality int
	// Level is the PNG compression level (0-9); -1 is the library default
	Level int
	// Foreground is the color drawn as black in WBMP output
	Foreground *Color
	// Gd2Format chooses raw or compressed GD2 chunks
	Gd2Format Gd2Format
	// ChunkSize is the GD2 chunk size; 0 is the library default
	ChunkSize int
	// Compression enables RLE compression of BMP output
	Compression bool
}

// DefaultExportOptions creates default export options
func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		Quality:   -1,
		Level:     -1,
		Gd2Format: Gd2Compressed,
	}
}

// encode copies a buffer returned by a native encoder into Go memory and frees it
func (r *Image) encode(op string, fn func(im C.gdImagePtr, size *C.int) unsafe.Pointer) ([]byte, error) {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return nil, ErrImageClosed
	}
	var size C.int
	ptr := fn(r.image, &size)
	if ptr == nil {
		return nil, handleGdError(op)
	}
	defer C.gdFree(ptr)
	stats.encodes.Add(1)
	return C.GoBytes(ptr, size), nil
}

// Jpeg encodes the image as JPEG. Quality ranges 0-95; -1 uses the default.
func (r *Image) Jpeg(quality int) ([]byte, error) {
	return r.encode("gdImageJpegPtr", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageJpegPtr(im, size, C.int(quality))
	})
}

// Png encodes the image as PNG. Level ranges 0-9; -1 uses the default.
func (r *Image) Png(level int) ([]byte, error) {
	return r.encode("gdImagePngPtrEx", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImagePngPtrEx(im, size, C.int(level))
	})
}

// Gif encodes the image as GIF
func (r *Image) Gif() ([]byte, error) {
	return r.encode("gdImageGifPtr", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageGifPtr(im, size)
	})
}

// Wbmp encodes the image as WBMP, drawing pixels of color fg as black
func (r *Image) Wbmp(fg Color) ([]byte, error) {
	pixel, err := r.ColorToPixel(fg)
	if err != nil {
		return nil, err
	}
	return r.encode("gdImageWBMPPtr", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageWBMPPtr(im, size, C.int(pixel))
	})
}

// Gd encodes the image in the uncompressed gd format
func (r *Image) Gd() ([]byte, error) {
	return r.encode("gdImageGdPtr", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageGdPtr(im, size)
	})
}

// Gd2 encodes the image in the chunked gd2 format
func (r *Image) Gd2(format Gd2Format, chunkSize int) ([]byte, error) {
	if format != Gd2Raw && format != Gd2Compressed {
		format = Gd2Compressed
	}
	return r.encode("gdImageGd2Ptr", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageGd2Ptr(im, C.int(chunkSize), C.int(format), size)
	})
}

// Webp encodes the image as WebP. Quality ranges 0-100; -1 uses the default.
func (r *Image) Webp(quality int) ([]byte, error) {
	return r.encode("gdImageWebpPtrEx", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageWebpPtrEx(im, size, C.int(quality))
	})
}

// Bmp encodes the image as BMP, optionally RLE compressed
func (r *Image) Bmp(compression bool) ([]byte, error) {
	return r.encode("gdImageBmpPtr", func(im C.gdImagePtr, size *C.int) unsafe.Pointer {
		return C.gdImageBmpPtr(im, size, C.int(boolToInt(compression)))
	})
}

// Encode encodes the image in the given format
func (r *Image) Encode(imageType ImageType, options *ExportOptions) ([]byte, error) {
	if options == nil {
		options = DefaultExportOptions()
	}
	switch imageType {
	case ImageTypeJpeg:
		return r.Jpeg(options.Quality)
	case ImageTypePng:
		return r.Png(options.Level)
	case ImageTypeGif:
		return r.Gif()
	case ImageTypeWbmp:
		if options.Foreground == nil {
			return nil, ErrMissingForeground
		}
		return r.Wbmp(*options.Foreground)
	case ImageTypeGd:
		return r.Gd()
	case ImageTypeGd2:
		return r.Gd2(options.Gd2Format, options.ChunkSize)
	case ImageTypeWebp:
		return r.Webp(options.Quality)
	case ImageTypeBmp:
		return r.Bmp(options.Compression)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedImageType, string(imageType))
}

// Export writes the image to a file and returns the number of bytes written.
// The format is taken from options or else from the file extension.
func (r *Image) Export(filename string, options *ExportOptions) (int, error) {
	if options == nil {
		options = DefaultExportOptions()
	}
	imageType := options.Format
	if imageType == ImageTypeUnknown {
		imageType = ImageTypeFromExtension(filename)
	}
	if imageType == ImageTypeUnknown {
		return 0, fmt.Errorf("%w: %s", ErrUnrecognizedImageType, filename)
	}
	buf, err := r.Encode(imageType, options)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filename, buf, 0644); err != nil {
		return 0, err
	}
	return len(buf), nil
}

// ExportTo encodes the image to w. options.Format is required.
func (r *Image) ExportTo(w io.Writer, options *ExportOptions) (int, error) {
	if options == nil || options.Format == ImageTypeUnknown {
		return 0, fmt.Errorf("%w: no format given", ErrUnrecognizedImageType)
	}
	buf, err := r.Encode(options.Format, options)
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}
