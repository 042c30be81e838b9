package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List interviewer personas",
	Run: func(_ *cobra.Command, _ []string) {
		d := loadDeps()
		for _, p := range d.personas.List() {
			fmt.Printf("%-10s %-28s pressure %d, %s\n", p.ID, p.Name, p.Pressure, p.Style)
		}
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
}
