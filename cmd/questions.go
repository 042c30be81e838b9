package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/session"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Draw interview questions for a job title",
	Run: func(cmd *cobra.Command, _ []string) {
		d := loadDeps()

		role, _ := cmd.Flags().GetString("role")
		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = session.DefaultQuestionCount
		}

		bucket := catalog.DetectRoleType(role)
		level := catalog.DetectLevel(role)
		fmt.Printf("role: %s, level: %s\n", bucket, level)

		for i, q := range d.catalog.QuestionsForInterview(d.src, bucket, level, count) {
			fmt.Printf("%d. [%s/%s] %s\n", i+1, q.Category, q.Level, q.Text)
		}
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().String("role", "", "job title, e.g. \"Senior Data Analyst\"")
	questionsCmd.Flags().IntP("count", "n", session.DefaultQuestionCount, "number of questions")
	questionsCmd.MarkFlagRequired("role")
}
