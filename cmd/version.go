package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/lexicon"
	"github.com/spigell/interview-coach/internal/persona"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the versions of the embedded data",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s version: %s\n", app, version)
		fmt.Printf("question catalog: %s\n", catalog.Default().Version())
		fmt.Printf("personas: %s\n", persona.Default(nil).Version())
		fmt.Printf("lexicon: %s\n", lexicon.Default().Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
