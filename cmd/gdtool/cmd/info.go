package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/cshum/gdgen/gd"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file...>",
	Short: "Show image properties",
	Long:  `Decode each file and display its format, size, color mode, palette usage and flags.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

type imageInfo struct {
	File        string `json:"file"`
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	TrueColor   bool   `json:"true_color"`
	Colors      int    `json:"colors,omitempty"`
	Transparent string `json:"transparent,omitempty"`
	Interlaced  bool   `json:"interlaced"`
}

func readInfo(filename string) (imageInfo, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return imageInfo{}, err
	}
	img, err := gd.NewImageFromBuffer(buf)
	if err != nil {
		return imageInfo{}, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	defer img.Close()

	info := imageInfo{
		File:       filename,
		Format:     string(gd.DetermineImageType(buf)),
		Width:      img.Width(),
		Height:     img.Height(),
		TrueColor:  img.IsTrueColor(),
		Interlaced: img.Interlaced(),
	}
	if !img.IsTrueColor() {
		info.Colors = img.Palette().Used()
	}
	if c, ok := img.Transparent(); ok {
		info.Transparent = c.String()
	}
	return info, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	infos := make([]imageInfo, 0, len(args))
	for _, filename := range args {
		info, err := readInfo(filename)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	if IsJSONOutput() {
		output, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("File", "Format", "Width", "Height", "True Color", "Colors", "Transparent", "Interlaced")
	for _, info := range infos {
		colors := "-"
		if !info.TrueColor {
			colors = strconv.Itoa(info.Colors)
		}
		transparent := info.Transparent
		if transparent == "" {
			transparent = "-"
		}
		table.Append(
			info.File,
			info.Format,
			strconv.Itoa(info.Width),
			strconv.Itoa(info.Height),
			yesNo(info.TrueColor),
			colors,
			transparent,
			yesNo(info.Interlaced),
		)
	}
	return table.Render()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
