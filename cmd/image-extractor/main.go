package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "image-extractor",
		Short: "Extract design elements from images",
		Long:  "A tool to extract colors, a color palette, fonts and effects from a raster image, as a CLI or as an HTTP service",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("image-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(newExtractCmd(), newServeCmd(), versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
