// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/core/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	version      = "0.1.0"
	shodanAPIKey string
	configPath   string
	config       *core.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ollama-hunter",
	Short: "ollama-hunter: find publicly exposed Ollama and llama.cpp servers via Shodan.",
	Long: `ollama-hunter queries the Shodan search API for Internet-facing Ollama and
llama.cpp inference servers and emits the results as structured JSON records
(IP, port, geolocation, organization, hostnames and, where the captured
banner allows it, the list of hosted models).

The tool never connects to the discovered servers itself; all data comes
from Shodan's existing index.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger before any command runs
		if verbose {
			logger.SetupLogger("debug")
		} else {
			logger.SetupLogger("info")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	printBanner()
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func loadConfigOrExit() {
	// A .env file is the documented place for the API key; missing is fine.
	_ = godotenv.Load()

	if configPath != "" {
		cfg, err := core.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		config = cfg
	}
}

// resolveAPIKey returns the Shodan key by precedence: --shodan flag, then
// the SHODAN_API_KEY environment (including .env), then the config file.
// The key is never written to any output file.
func resolveAPIKey() string {
	if shodanAPIKey != "" {
		return shodanAPIKey
	}
	if key := os.Getenv("SHODAN_API_KEY"); key != "" {
		return key
	}
	if config != nil {
		return config.ShodanAPIKey
	}
	return ""
}

func printBanner() {
	banner := `
       _ _                             _                 _
  ___ | | | __ _ _ __ ___   __ _      | |__  _   _ _ __ | |_ ___ _ __
 / _ \| | |/ _' | '_ ' _ \ / _' |_____| '_ \| | | | '_ \| __/ _ \ '__|
| (_) | | | (_| | | | | | | (_| |_____| | | | |_| | | | | ||  __/ |
 \___/|_|_|\__,_|_| |_| |_|\__,_|     |_| |_|\__,_|_| |_|\__\___|_|
`
	color.Cyan(banner)
	color.Magenta("ollama-hunter v%s - exposed LLM server discovery via Shodan", version)
	color.Yellow("Data source: https://api.shodan.io (results are index data, not live probes)\n")
}

func init() {
	// Add global flags here
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging.")
	rootCmd.PersistentFlags().StringVar(&shodanAPIKey, "shodan", "", "Shodan API key (or set SHODAN_API_KEY env / .env)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML or JSON)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\r\n")

	cobra.OnInitialize(loadConfigOrExit)
}
