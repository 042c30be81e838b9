package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/ats"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score a plain-text resume the way an applicant tracking system would",
	Run: func(cmd *cobra.Command, _ []string) {
		d := loadDeps()

		resumeFile, _ := cmd.Flags().GetString("resume")
		jobFile, _ := cmd.Flags().GetString("job")

		resume, err := os.ReadFile(resumeFile)
		if err != nil {
			d.logger.Fatal("reading resume", zap.Error(err), zap.String("file", resumeFile))
		}

		var job []byte
		if jobFile != "" {
			if job, err = os.ReadFile(jobFile); err != nil {
				d.logger.Fatal("reading job description", zap.Error(err), zap.String("file", jobFile))
			}
		}

		result := ats.NewScorer(d.lexicon, d.logger).Score(string(resume), string(job))

		pretty, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(pretty))
	},
}

func init() {
	rootCmd.AddCommand(atsCmd)

	atsCmd.Flags().StringP("resume", "r", "", "plain-text resume file")
	atsCmd.Flags().StringP("job", "J", "", "optional plain-text job description file")
	atsCmd.MarkFlagRequired("resume")
}
