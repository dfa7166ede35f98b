package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cshum/gdgen/gd"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	textFont  string
	textSize  float64
	textX     float64
	textY     float64
	textColor string
	textAngle float64
)

// textCmd represents the text command
var textCmd = &cobra.Command{
	Use:   "text <input> <output> <text>",
	Short: "Draw text onto an image",
	Long:  `Render text with a TrueType font. Without --font the bundled Go Regular font is used.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.Flags().StringVar(&textFont, "font", "", "TrueType font file or fontconfig pattern")
	textCmd.Flags().Float64Var(&textSize, "size", 24, "point size")
	textCmd.Flags().Float64Var(&textX, "x", 10, "baseline origin x")
	textCmd.Flags().Float64Var(&textY, "y", 40, "baseline origin y")
	textCmd.Flags().StringVar(&textColor, "color", "000000", "text color as RRGGBB or RRGGBBAA")
	textCmd.Flags().Float64Var(&textAngle, "angle", 0, "rotation in degrees, counterclockwise")
}

// parseColor reads RRGGBB, with an optional libgd alpha byte (00-7F)
func parseColor(s string) (gd.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return gd.Color{}, fmt.Errorf("invalid color %q: want RRGGBB or RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return gd.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		return gd.NewColor(int(v>>16&0xFF), int(v>>8&0xFF), int(v&0xFF)), nil
	}
	return gd.NewColorAlpha(int(v>>24&0xFF), int(v>>16&0xFF), int(v>>8&0xFF), int(v&0xFF)), nil
}

// defaultFont writes the bundled font to a temporary file
func defaultFont() (string, func(), error) {
	dir, err := os.MkdirTemp("", "gdtool")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }
	path := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func runText(cmd *cobra.Command, args []string) error {
	fg, err := parseColor(textColor)
	if err != nil {
		return err
	}

	fontPath := textFont
	if fontPath == "" {
		path, cleanup, err := defaultFont()
		if err != nil {
			return fmt.Errorf("failed to prepare default font: %w", err)
		}
		defer cleanup()
		fontPath = path
	}
	font, err := gd.NewTrueTypeFont(fontPath, textSize, nil)
	if err != nil {
		return err
	}
	defer font.Close()

	img, err := gd.NewImageFromFile(args[0], nil)
	if err != nil {
		return err
	}
	defer img.Close()

	if !img.IsTrueColor() {
		// an indexed image draws with its own entry, allocated or closest
		if resolved, ok := img.Palette().Resolve(fg); ok {
			fg = resolved
		}
	}

	err = img.Draw(func(c *gd.Canvas) error {
		if err := c.SetColor(fg); err != nil {
			return err
		}
		c.SetFont(font)
		c.MoveTo(textX, textY)
		bounds, err := c.Text(args[2], gd.Degrees(textAngle))
		if err != nil {
			return err
		}
		gd.Logger().Debug("text drawn", "lower_left", bounds.LowerLeft, "upper_right", bounds.UpperRight)
		return nil
	})
	if err != nil {
		return err
	}

	options, err := exportOptions("")
	if err != nil {
		return err
	}
	return saveImage(cmd, img, args[1], options)
}
