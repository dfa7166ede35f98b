package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cshum/gdgen/gd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gdtool",
	Short: "Inspect, convert and annotate images with libgd",
	Long:  `gdtool is a command line interface over the libgd graphics library: image inspection, format conversion, resizing and text rendering.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gd.Startup(&gd.Config{ReportLeaks: true})
		gd.SetLogger(newLogger(cmd.ErrOrStderr(), viper.GetString("log_level")))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// libgd is shut down once the command finishes, whether it failed or not.
func Execute() error {
	defer gd.Shutdown()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SilenceUsage = true

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gdtool/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table or json")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("jpeg_quality", -1)
	viper.SetDefault("png_level", -1)
	viper.SetDefault("webp_quality", -1)
	viper.SetDefault("log_level", "warn")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gdtool/config" (without extension)
		viper.AddConfigPath(filepath.Join(home, ".gdtool"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("gdtool")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", cfgFile, err)
			os.Exit(1)
		}
	}
}

// newLogger creates a text logger writing to w at the named level
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}

// exportOptions builds export options for filename from the configured defaults
func exportOptions(format string) (*gd.ExportOptions, error) {
	options := gd.DefaultExportOptions()
	if format != "" {
		// accept extensions such as jpg as well as type names
		options.Format = gd.ImageTypeFromExtension("image." + format)
		if options.Format == gd.ImageTypeUnknown {
			return nil, fmt.Errorf("unknown format %q", format)
		}
	}
	options.Level = viper.GetInt("png_level")
	options.Quality = viper.GetInt("jpeg_quality")
	if options.Format == gd.ImageTypeWebp {
		options.Quality = viper.GetInt("webp_quality")
	}
	return options, nil
}

// saveImage exports img and reports the result
func saveImage(cmd *cobra.Command, img *gd.Image, filename string, options *gd.ExportOptions) error {
	if options.Format == gd.ImageTypeUnknown {
		options.Format = gd.ImageTypeFromExtension(filename)
		if options.Format == gd.ImageTypeWebp && !cmd.Flags().Changed("quality") {
			options.Quality = viper.GetInt("webp_quality")
		}
	}
	if options.Format == gd.ImageTypeWbmp && options.Foreground == nil {
		options.Foreground = &gd.ColorBlack
	}
	n, err := img.Export(filename, options)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	gd.Logger().Info("image written", "file", filename, "bytes", n, "format", options.Format)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d %s, %d bytes\n", filename, img.Width(), img.Height(), options.Format, n)
	return nil
}
