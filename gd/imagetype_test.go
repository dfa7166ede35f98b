package gd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineImageType(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want ImageType
	}{
		{"empty", nil, ImageTypeUnknown},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, ImageTypeJpeg},
		{"png", []byte{0x89, 'P', 'N', 'G', '\r', '\n'}, ImageTypePng},
		{"gif87", []byte("GIF87a"), ImageTypeGif},
		{"gif89", []byte("GIF89a"), ImageTypeGif},
		{"gd2", []byte("gd2\x00\x00\x02"), ImageTypeGd2},
		{"gd palette", []byte{0xFF, 0xFF, 0x00, 0x10}, ImageTypeGd},
		{"gd truecolor", []byte{0xFF, 0xFE, 0x00, 0x10}, ImageTypeGd},
		{"webp", []byte("RIFF\x10\x00\x00\x00WEBPVP8 "), ImageTypeWebp},
		{"riff without webp", []byte("RIFF\x10\x00\x00\x00WAVE"), ImageTypeUnknown},
		{"bmp", []byte("BM\x36\x00"), ImageTypeBmp},
		{"wbmp", []byte{0x00, 0x00, 0x10, 0x10}, ImageTypeWbmp},
		{"text", []byte("hello"), ImageTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineImageType(tt.buf))
		})
	}
}

func TestDetermineImageTypeFromEncoders(t *testing.T) {
	img, err := NewImageFromBuffer(createTestPNG(t, 8, 8))
	if !assert.NoError(t, err) {
		return
	}
	defer img.Close()

	for _, imageType := range []ImageType{ImageTypePng, ImageTypeJpeg, ImageTypeGif, ImageTypeGd, ImageTypeGd2} {
		buf, err := img.Encode(imageType, nil)
		if assert.NoError(t, err, imageType) {
			assert.Equal(t, imageType, DetermineImageType(buf))
		}
	}
}

func TestImageTypeFromExtension(t *testing.T) {
	assert.Equal(t, ImageTypeJpeg, ImageTypeFromExtension("photo.jpg"))
	assert.Equal(t, ImageTypeJpeg, ImageTypeFromExtension("photo.JPEG"))
	assert.Equal(t, ImageTypePng, ImageTypeFromExtension("/tmp/a.b/image.png"))
	assert.Equal(t, ImageTypeGd2, ImageTypeFromExtension("tiles.gd2"))
	assert.Equal(t, ImageTypeWbmp, ImageTypeFromExtension("icon.wbmp"))
	assert.Equal(t, ImageTypeUnknown, ImageTypeFromExtension("README"))
	assert.Equal(t, ImageTypeUnknown, ImageTypeFromExtension("archive.tar"))
}

func TestImageType_MimeType(t *testing.T) {
	mime, ok := ImageTypePng.MimeType()
	assert.True(t, ok)
	assert.Equal(t, "image/png", mime)

	mime, ok = ImageTypeWbmp.MimeType()
	assert.True(t, ok)
	assert.Equal(t, "image/vnd.wap.wbmp", mime)

	_, ok = ImageTypeGd2.MimeType()
	assert.False(t, ok)

	assert.Equal(t, "jpg", ImageTypeJpeg.Extension())
	assert.Equal(t, "", ImageTypeUnknown.Extension())
}
