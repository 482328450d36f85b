package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rockfall-server",
	Short: "Rockfall Monitoring - sensor telemetry and alerting backend",
	Long: `Rockfall Monitoring is a backend for rockfall-risk sensor data:
CSV telemetry ingestion, alert derivation, dashboard statistics and
model-based risk prediction.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
