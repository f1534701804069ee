// Package main is the entry point for the pdfmd CLI, which converts PDF
// documents into structured Markdown with OCR captions for embedded images.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfmd CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmd",
	Short: "Convert PDF documents to structured Markdown",
	Long: `pdfmd converts PDF documents into Markdown that preserves the native text
layout, classifies headings by typography, and runs OCR over embedded raster
images so their text appears as captions.

Native text is extracted directly; OCR is applied only to embedded images,
never to full pages.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pdfmd version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pdfmd", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfmd.yaml or ~/.config/pdfmd/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfmd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfmd"))
		}
	}

	viper.SetEnvPrefix("PDFMD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
