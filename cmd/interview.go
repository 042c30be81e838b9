package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/ai"
	"github.com/spigell/interview-coach/internal/ai/gemini"
	"github.com/spigell/interview-coach/internal/assessment"
	"github.com/spigell/interview-coach/internal/feedback"
	"github.com/spigell/interview-coach/internal/interview"
	"github.com/spigell/interview-coach/internal/session"
)

const (
	CommandSkip  = "/skip"
	CommandEnd   = "/end"
	CommandPause = "/pause"
	CommandQuit  = "/quit"
)

var errQuit = errors.New("quit requested")

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		runInterview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().String("role", "", "job title you are interviewing for")
	interviewCmd.Flags().StringP("persona", "p", "", "interviewer persona (mentor, recruiter, executive)")
	interviewCmd.Flags().StringP("language", "l", "", "interview language, e.g. en or hi")
	interviewCmd.Flags().IntP("count", "n", 0, "number of questions")
	interviewCmd.Flags().String("cv", "", "file with a short CV summary")
	interviewCmd.Flags().Bool("no-delay", false, "do not pause before the interviewer replies")

	viper.BindPFlag("interview.persona", interviewCmd.Flags().Lookup("persona"))
	viper.BindPFlag("interview.language", interviewCmd.Flags().Lookup("language"))
	viper.BindPFlag("interview.question-count", interviewCmd.Flags().Lookup("count"))
}

func runInterview(cmd *cobra.Command) {
	ctx := context.Background()
	d := loadDeps()
	cfg := d.config

	role, _ := cmd.Flags().GetString("role")
	if strings.TrimSpace(role) == "" {
		var err error
		if role, err = (&promptui.Prompt{Label: "Job title"}).Run(); err != nil {
			d.logger.Fatal("exiting", zap.Error(err))
		}
	}

	personaID := cfg.Interview.Persona
	if personaID == "" {
		personaID = selectPersona(d)
	}

	var cvSummary string
	if cvFile, _ := cmd.Flags().GetString("cv"); cvFile != "" {
		data, err := os.ReadFile(cvFile)
		if err != nil {
			d.logger.Fatal("reading cv summary", zap.Error(err), zap.String("file", cvFile))
		}
		cvSummary = string(data)
	}

	noDelay, _ := cmd.Flags().GetBool("no-delay")
	engineCfg := interview.Config{
		Catalog:       d.catalog,
		Personas:      d.personas,
		Scorer:        assessment.NewScorer(d.lexicon, d.logger),
		Source:        d.src,
		Logger:        d.logger,
		ThinkingDelay: cfg.Interview.ThinkingDelay && !noDelay,
	}
	wireAI(ctx, cfg.AI, d, &engineCfg)

	engine := interview.New(engineCfg)
	turn, err := engine.Start(ctx, session.Options{
		JobRole:       role,
		Language:      cfg.Interview.Language,
		Persona:       personaID,
		CVSummary:     cvSummary,
		QuestionCount: cfg.Interview.QuestionCount,
	})
	if err != nil {
		d.logger.Fatal("starting the interview", zap.Error(err))
	}

	fmt.Printf("\n%s\n", turn.Greeting)
	fmt.Printf("Commands: %s, %s, %s, %s\n", CommandSkip, CommandPause, CommandEnd, CommandQuit)

	if err := askQuestions(ctx, engine, turn); err != nil {
		if errors.Is(err, errQuit) || errors.Is(err, promptui.ErrInterrupt) {
			engine.Abort()
			d.logger.Info("exiting", zap.String("reason", "interview aborted"))
			return
		}
		d.logger.Fatal("interview failed", zap.Error(err))
	}

	report, err := engine.Finish(ctx)
	if errors.Is(err, feedback.ErrNotEnoughResponses) {
		fmt.Println(report.Score.OverallFeedback)
		return
	}
	if err != nil {
		d.logger.Fatal("finishing the interview", zap.Error(err))
	}

	pretty, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(pretty))
}

func askQuestions(ctx context.Context, engine *interview.Engine, turn interview.Turn) error {
	for !turn.Done {
		fmt.Printf("\n[%d/%d] %s\n", turn.Number, turn.Total, turn.Prompt)

		if state := engine.State(); state == session.StateAskQuestion || state == session.StateAskFollowUp {
			if err := engine.Listen(); err != nil {
				return err
			}
		}

		answer, err := (&promptui.Prompt{Label: "Answer"}).Run()
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case CommandQuit:
			return errQuit
		case CommandEnd:
			return engine.EndEarly()
		case CommandPause:
			if err := engine.Pause(); err != nil {
				return err
			}
			if _, err := (&promptui.Prompt{Label: "Paused. Press ENTER to continue"}).Run(); err != nil {
				return err
			}
			if err := engine.Resume(); err != nil {
				return err
			}
			continue
		case CommandSkip:
			turn, err = engine.Skip(ctx)
		default:
			turn, err = engine.Submit(ctx, answer)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func selectPersona(d *deps) string {
	personas := d.personas.List()
	items := make([]string, 0, len(personas))
	for _, p := range personas {
		items = append(items, fmt.Sprintf("%s (%s, pressure %d)", p.Name, p.Style, p.Pressure))
	}

	prompt := promptui.Select{
		Label: "Choose your interviewer",
		Items: items,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		d.logger.Fatal("exiting", zap.Error(err))
	}
	return personas[idx].ID
}

// wireAI attaches the generative collaborators when enabled. Failures leave
// the interview fully local.
func wireAI(ctx context.Context, cfg *AIConfig, d *deps, engineCfg *interview.Config) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	generator, err := newGenerator(ctx, cfg, d.logger)
	if err != nil {
		d.logger.Warn("skipping AI feedback", zap.Error(err))
		return
	}

	engineCfg.Aggregator = feedback.NewAggregator(generator, d.logger, cfg.Gemini.MaxLogLength)
	engineCfg.Opener = ai.StaticOpening{}
	if cfg.Opening {
		engineCfg.Opener = gemini.NewOpener(generator, d.logger)
	}
}
