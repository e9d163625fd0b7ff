package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pdf-ocr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pdf-ocr %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
