package gd

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain handles setup and teardown for all tests
func TestMain(m *testing.M) {
	// Start libgd once for all tests
	config := &Config{
		ReportLeaks: true,
	}
	Startup(config)

	// Run tests
	code := m.Run()

	// Release the font cache
	Shutdown()

	// Exit with test result code
	os.Exit(code)
}

// gradient creates a Go image with a gradient pattern
func gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			b := uint8(((x + y) * 255) / (width + height))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// createTestPNG creates a test PNG image with a pattern
func createTestPNG(t *testing.T, width, height int) []byte {
	var buf bytes.Buffer
	err := png.Encode(&buf, gradient(width, height))
	require.NoError(t, err)
	return buf.Bytes()
}

// createTestJPEG creates a test JPEG image with a pattern
func createTestJPEG(t *testing.T, width, height int) []byte {
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, gradient(width, height), &jpeg.Options{Quality: 90})
	require.NoError(t, err)
	return buf.Bytes()
}

// ensureTestDir creates a per-test temporary directory
func ensureTestDir(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), "gdgen-test")
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err)
	return dir
}

// createIndexedImage creates a palette image with black, white and red allocated
func createIndexedImage(t *testing.T, width, height int) (*Image, Color, Color, Color) {
	img, err := NewIndexedImage(width, height)
	require.NoError(t, err)
	p := img.Palette()
	black, err := p.Allocate(ColorBlack)
	require.NoError(t, err)
	white, err := p.Allocate(ColorWhite)
	require.NoError(t, err)
	red, err := p.Allocate(NewColor(255, 0, 0))
	require.NoError(t, err)
	return img, black, white, red
}

func TestVersionInfo(t *testing.T) {
	t.Logf("libgd version: %s (major=%d, minor=%d, release=%d)",
		Version, MajorVersion, MinorVersion, ReleaseVersion)

	assert.NotEmpty(t, Version)
	assert.GreaterOrEqual(t, MajorVersion, 2)
	assert.Contains(t, Version, "2.")
}

func TestMemoryStats(t *testing.T) {
	var before MemoryStats
	ReadMemStats(&before)

	img, err := NewImage(10, 10)
	require.NoError(t, err)

	var during MemoryStats
	ReadMemStats(&during)
	assert.Equal(t, before.Images+1, during.Images)

	_, err = img.Png(-1)
	require.NoError(t, err)

	img.Close()
	img.Close()

	var after MemoryStats
	ReadMemStats(&after)
	assert.Equal(t, before.Images, after.Images)
	assert.Equal(t, before.Encodes+1, after.Encodes)
}

func TestStartupIsIdempotent(t *testing.T) {
	Startup(&Config{ReportLeaks: false})
	assert.True(t, running)
	assert.True(t, reportLeaks, "only the first Startup applies its config")
}

func TestLogger(t *testing.T) {
	previous := Logger()
	defer SetLogger(previous)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Info("hello")
	assert.Contains(t, buf.String(), "hello")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

// captureLogs routes the package logger into a buffer for the rest of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	previous := Logger()
	t.Cleanup(func() { SetLogger(previous) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestNativeLevel(t *testing.T) {
	tests := []struct {
		priority int
		want     slog.Level
	}{
		{priorityError, slog.LevelError},
		{priorityWarning, slog.LevelWarn},
		{priorityNotice, slog.LevelInfo},
		{priorityInfo, slog.LevelInfo},
		{priorityDebug, slog.LevelDebug},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nativeLevel(tt.priority), "priority %d", tt.priority)
	}
}

func TestNativeErrorsReachLogger(t *testing.T) {
	logs := captureLogs(t)

	// a complete PNG signature followed by bytes that are not a chunk
	corrupt := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, []byte("garbage, not a chunk")...)
	_, err := NewImageFromBuffer(corrupt)

	var libErr *LibraryError
	require.ErrorAs(t, err, &libErr)
	assert.Equal(t, "gdImageCreateFromPngPtr", libErr.Op)
	assert.NotEmpty(t, libErr.Message)
	assert.Contains(t, err.Error(), libErr.Message)
	t.Logf("native message: %s", libErr.Message)

	out := logs.String()
	assert.Contains(t, out, "libgd: "+libErr.Message)
	assert.Regexp(t, `level=(WARN|ERROR)`, out)

	// the message is consumed by the error that reported it
	assert.Empty(t, takeGdError())
}

func TestNativeMessagesBelowWarningAreNotKept(t *testing.T) {
	logs := captureLogs(t)

	logNativeMessage(priorityInfo, "informational\n")
	assert.Empty(t, takeGdError())
	assert.Contains(t, logs.String(), "level=INFO")
	assert.Contains(t, logs.String(), `msg="libgd: informational"`)

	logNativeMessage(priorityError, "broken\n")
	assert.Equal(t, "broken", takeGdError())
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestMemoryAllocationFailure(t *testing.T) {
	logs := captureLogs(t)

	// the pixel count overflows the size check in the native allocator
	_, err := NewImage(100000, 100000)
	assert.ErrorIs(t, err, ErrMemoryAllocation)
	var libErr *LibraryError
	assert.ErrorAs(t, err, &libErr)
	t.Logf("allocation log: %s", logs.String())
}

func TestFontconfigToggle(t *testing.T) {
	defer SetFontconfig(false)

	err := SetFontconfig(true)
	if err != nil {
		// libgd built without fontconfig
		assert.ErrorIs(t, err, ErrFontconfigUnavailable)
		assert.False(t, Fontconfig())
		return
	}
	assert.True(t, Fontconfig())
	require.NoError(t, SetFontconfig(false))
	assert.False(t, Fontconfig())
}
