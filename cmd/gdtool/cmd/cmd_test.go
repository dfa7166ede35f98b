package cmd

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cshum/gdgen/gd"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a solid gray PNG
func writeTestPNG(t *testing.T, dir string, width, height int) string {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "input.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

// run executes the root command with an isolated config
func run(t *testing.T, args ...string) string {
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTargetSize(t *testing.T) {
	w, h, err := targetSize(50, 0, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, w)
	assert.Equal(t, 25, h)

	w, h, err = targetSize(0, 30, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, 60, w)
	assert.Equal(t, 30, h)

	w, h, err = targetSize(10, 10, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	w, h, err = targetSize(1, 0, 1000, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	_, _, err = targetSize(0, 0, 200, 100)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("FF8000")
	require.NoError(t, err)
	assert.Equal(t, gd.NewColor(255, 128, 0), c)

	c, err = parseColor("#00000040")
	require.NoError(t, err)
	assert.Equal(t, 64, c.Alpha())

	_, err = parseColor("red")
	assert.Error(t, err)
	_, err = parseColor("GGGGGG")
	assert.Error(t, err)
}

func TestExportOptions(t *testing.T) {
	viper.Set("png_level", 7)
	viper.Set("webp_quality", 55)
	defer viper.Set("png_level", -1)
	defer viper.Set("webp_quality", -1)

	options, err := exportOptions("PNG")
	require.NoError(t, err)
	assert.Equal(t, gd.ImageTypePng, options.Format)
	assert.Equal(t, 7, options.Level)

	options, err = exportOptions("webp")
	require.NoError(t, err)
	assert.Equal(t, 55, options.Quality)

	options, err = exportOptions("jpg")
	require.NoError(t, err)
	assert.Equal(t, gd.ImageTypeJpeg, options.Format)

	options, err = exportOptions("JPEG")
	require.NoError(t, err)
	assert.Equal(t, gd.ImageTypeJpeg, options.Format)

	_, err = exportOptions("tiff")
	assert.Error(t, err)
}

func TestConvertFormatAlias(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 16, 16)

	defer func() {
		convertFormat = ""
		convertCmd.Flags().Lookup("format").Changed = false
	}()

	output := filepath.Join(dir, "out.bin")
	out := run(t, "convert", "--format", "jpg", input, output)
	assert.Contains(t, out, "16x16 jpeg")

	buf, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, gd.ImageTypeJpeg, gd.DetermineImageType(buf))
}

func TestNativeErrorsLoggedAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 8, 8)
	run(t, "convert", "--log-level", "warn", input, filepath.Join(dir, "first.gif"))

	corrupt := filepath.Join(dir, "corrupt.png")
	data := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, []byte("garbage, not a chunk")...)
	require.NoError(t, os.WriteFile(corrupt, data, 0644))

	t.Setenv("HOME", t.TempDir())
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	defer rootCmd.SetErr(nil)
	rootCmd.SetArgs([]string{"convert", "--log-level", "warn", corrupt, filepath.Join(dir, "second.gif")})
	err := rootCmd.Execute()

	var libErr *gd.LibraryError
	require.ErrorAs(t, err, &libErr)
	assert.Contains(t, stderr.String(), "libgd: ")
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 80, 40)

	gifFile := filepath.Join(dir, "out.gif")
	out := run(t, "convert", input, gifFile)
	assert.Contains(t, out, "80x40 gif")

	resized := filepath.Join(dir, "small.png")
	out = run(t, "resize", input, resized, "--width", "40", "--level", "9")
	assert.Contains(t, out, "40x20 png")

	annotated := filepath.Join(dir, "text.png")
	out = run(t, "text", input, annotated, "Hello", "--color", "FF0000", "--size", "12", "--x", "2", "--y", "20")
	assert.Contains(t, out, "80x40 png")

	out = run(t, "info", "--output", "json", input, gifFile, resized)
	var infos []imageInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "png", infos[0].Format)
	assert.True(t, infos[0].TrueColor)
	assert.Equal(t, "gif", infos[1].Format)
	assert.False(t, infos[1].TrueColor)
	assert.Positive(t, infos[1].Colors)
	assert.Equal(t, 40, infos[2].Width)

	out = run(t, "info", "--output", "table", resized)
	assert.Contains(t, out, "small.png")
}
