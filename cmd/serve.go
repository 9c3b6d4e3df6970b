package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/backend"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bundled demo backend",
	Long:  `Run the demo assistant backend so the client can be exercised without real infrastructure.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		defer logger.Sync()

		cfg := backend.Load()
		server := backend.NewServer(cfg, logger)

		addr := ":" + cfg.Port
		logger.Info("demo backend listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, server.Router()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
