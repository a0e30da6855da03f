// Command tiles draws constrained Truchet tilings and 10 PRINT diagonals.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	seedFlag string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Generate procedural tilings",
	Long: `Generate Truchet tilings whose lines flow in color from tile to tile.

Examples:
  tiles truchet --tileset cross --blank 0.1
  tiles truchet -c run.yaml --seed 1a2b3c --format svg
  tiles diagonal --blank 0.2
  tiles watch run.yaml --show`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFlag, "seed", "", "Hex value for the seed to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log placement and color flow details")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
