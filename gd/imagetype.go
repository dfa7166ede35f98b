package gd

import (
	"bytes"
	"path/filepath"
	"strings"
)

// ImageType represents an image format understood by libgd
type ImageType string

const (
	ImageTypeUnknown ImageType = ""
	ImageTypeJpeg    ImageType = "jpeg"
	ImageTypePng     ImageType = "png"
	ImageTypeGif     ImageType = "gif"
	ImageTypeWbmp    ImageType = "wbmp"
	ImageTypeGd      ImageType = "gd"
	ImageTypeGd2     ImageType = "gd2"
	ImageTypeWebp    ImageType = "webp"
	ImageTypeBmp     ImageType = "bmp"
)

// ImageTypes maps each image type to its canonical file extension
var ImageTypes = map[ImageType]string{
	ImageTypeJpeg: "jpg",
	ImageTypePng:  "png",
	ImageTypeGif:  "gif",
	ImageTypeWbmp: "wbmp",
	ImageTypeGd:   "gd",
	ImageTypeGd2:  "gd2",
	ImageTypeWebp: "webp",
	ImageTypeBmp:  "bmp",
}

// ImageMimeTypes maps image types to their MIME type
var ImageMimeTypes = map[ImageType]string{
	ImageTypeJpeg: "image/jpeg",
	ImageTypePng:  "image/png",
	ImageTypeGif:  "image/gif",
	ImageTypeWbmp: "image/vnd.wap.wbmp",
	ImageTypeWebp: "image/webp",
	ImageTypeBmp:  "image/bmp",
}

var extensionTypes = map[string]ImageType{
	"jpg":  ImageTypeJpeg,
	"jpeg": ImageTypeJpeg,
	"png":  ImageTypePng,
	"gif":  ImageTypeGif,
	"wbmp": ImageTypeWbmp,
	"gd":   ImageTypeGd,
	"gd2":  ImageTypeGd2,
	"webp": ImageTypeWebp,
	"bmp":  ImageTypeBmp,
}

// MimeType returns the MIME type of the image type, if it has one
func (t ImageType) MimeType() (string, bool) {
	mime, ok := ImageMimeTypes[t]
	return mime, ok
}

// Extension returns the canonical file extension without the dot
func (t ImageType) Extension() string {
	return ImageTypes[t]
}

var (
	magicJpeg = []byte{0xFF, 0xD8}
	magicPng  = []byte{0x89, 0x50, 0x4E, 0x47}
	magicGif  = []byte("GIF8")
	magicGd2  = []byte("gd2")
	magicGd   = []byte{0xFF, 0xFF}

	// true color .gd files start with 0xFFFE
	magicGdTrueColor = []byte{0xFF, 0xFE}
	magicRiff        = []byte("RIFF")
	magicWebp        = []byte("WEBP")
	magicBmp         = []byte("BM")
)

// DetermineImageType detects the format of an encoded image from its leading bytes.
// WBMP has no real signature, so a leading zero byte is only checked last.
func DetermineImageType(buf []byte) ImageType {
	switch {
	case len(buf) == 0:
		return ImageTypeUnknown
	case bytes.HasPrefix(buf, magicJpeg):
		return ImageTypeJpeg
	case bytes.HasPrefix(buf, magicPng):
		return ImageTypePng
	case bytes.HasPrefix(buf, magicGif):
		return ImageTypeGif
	case bytes.HasPrefix(buf, magicGd2):
		return ImageTypeGd2
	case bytes.HasPrefix(buf, magicGd), bytes.HasPrefix(buf, magicGdTrueColor):
		return ImageTypeGd
	case len(buf) >= 12 && bytes.HasPrefix(buf, magicRiff) && bytes.Equal(buf[8:12], magicWebp):
		return ImageTypeWebp
	case bytes.HasPrefix(buf, magicBmp):
		return ImageTypeBmp
	case buf[0] == 0x00:
		return ImageTypeWbmp
	}
	return ImageTypeUnknown
}

// ImageTypeFromExtension maps a file name to an image type by its extension
func ImageTypeFromExtension(filename string) ImageType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return extensionTypes[ext]
}
