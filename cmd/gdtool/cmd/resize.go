package cmd

import (
	"errors"
	"math"

	"github.com/cshum/gdgen/gd"
	"github.com/spf13/cobra"
)

var (
	resizeWidth      int
	resizeHeight     int
	resizeNoResample bool
	resizeFormat     string
	resizeQuality    int
	resizeLevel      int
)

// resizeCmd represents the resize command
var resizeCmd = &cobra.Command{
	Use:   "resize <input> <output>",
	Short: "Scale an image",
	Long:  `Scale the input to the given size. When only one of --width and --height is set the aspect ratio is kept.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)
	resizeCmd.Flags().IntVar(&resizeWidth, "width", 0, "target width in pixels")
	resizeCmd.Flags().IntVar(&resizeHeight, "height", 0, "target height in pixels")
	resizeCmd.Flags().BoolVar(&resizeNoResample, "no-resample", false, "use nearest neighbour scaling")
	resizeCmd.Flags().StringVar(&resizeFormat, "format", "", "output format (default from the output extension)")
	resizeCmd.Flags().IntVar(&resizeQuality, "quality", -1, "JPEG or WebP quality (default from config)")
	resizeCmd.Flags().IntVar(&resizeLevel, "level", -1, "PNG compression level 0-9 (default from config)")
}

// targetSize fills in a missing dimension from the aspect ratio
func targetSize(width, height, srcWidth, srcHeight int) (int, int, error) {
	switch {
	case width <= 0 && height <= 0:
		return 0, 0, errors.New("at least one of --width and --height is required")
	case width <= 0:
		width = int(math.Round(float64(height) * float64(srcWidth) / float64(srcHeight)))
	case height <= 0:
		height = int(math.Round(float64(width) * float64(srcHeight) / float64(srcWidth)))
	}
	return max(width, 1), max(height, 1), nil
}

func runResize(cmd *cobra.Command, args []string) error {
	img, err := gd.NewImageFromFile(args[0], nil)
	if err != nil {
		return err
	}
	defer img.Close()

	width, height, err := targetSize(resizeWidth, resizeHeight, img.Width(), img.Height())
	if err != nil {
		return err
	}
	if err := img.Resize(width, height, !resizeNoResample); err != nil {
		return err
	}

	options, err := exportOptions(resizeFormat)
	if err != nil {
		return err
	}
	applyEncodeFlags(cmd, options, resizeQuality, resizeLevel)
	return saveImage(cmd, img, args[1], options)
}
