package cmd

import (
	"github.com/cshum/gdgen/gd"
	"github.com/spf13/cobra"
)

var (
	convertFormat  string
	convertQuality int
	convertLevel   int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert an image to another format",
	Long:  `Decode the input and encode it again. The output format comes from --format or the output file extension.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertFormat, "format", "", "output format (jpeg, png, gif, wbmp, gd, gd2, webp, bmp)")
	convertCmd.Flags().IntVar(&convertQuality, "quality", -1, "JPEG or WebP quality (default from config)")
	convertCmd.Flags().IntVar(&convertLevel, "level", -1, "PNG compression level 0-9 (default from config)")
}

// applyEncodeFlags overrides configured defaults with explicitly set flags
func applyEncodeFlags(cmd *cobra.Command, options *gd.ExportOptions, quality, level int) {
	if cmd.Flags().Changed("quality") {
		options.Quality = quality
	}
	if cmd.Flags().Changed("level") {
		options.Level = level
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	img, err := gd.NewImageFromFile(args[0], nil)
	if err != nil {
		return err
	}
	defer img.Close()

	options, err := exportOptions(convertFormat)
	if err != nil {
		return err
	}
	applyEncodeFlags(cmd, options, convertQuality, convertLevel)
	return saveImage(cmd, img, args[1], options)
}
