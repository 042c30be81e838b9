package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		d := loadDeps()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Deps{
			Catalog:  d.catalog,
			Personas: d.personas,
			Lexicon:  d.lexicon,
			Source:   d.src,
			Logger:   d.logger,
		})

		d.logger.Info("starting the interview-coach api", zap.String("version", version))
		if err := srv.Run(ctx, d.config.Server.Addr); err != nil {
			d.logger.Fatal("serving http", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
