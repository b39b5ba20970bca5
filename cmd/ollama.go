// cmd/ollama.go
package cmd

import (
	"github.com/gmh5225/ollama-hunter/internal/modules/discovery"
	"github.com/spf13/cobra"
)

var (
	ollamaOutputPath   string
	ollamaOutputFormat string
	ollamaPages        int
)

// ollamaCmd represents the ollama command
var ollamaCmd = &cobra.Command{
	Use:   "ollama",
	Short: "Search Shodan for publicly exposed Ollama servers.",
	Long: `Searches Shodan's index for hosts exposing the Ollama HTTP management
endpoint and emits one record per discovered server. Model names are parsed
from the captured banner where present; the servers themselves are never
contacted.`,
	Example: `  ollama-hunter ollama
  ollama-hunter ollama -o ollama_servers.json
  ollama-hunter ollama -f console --pages 3`,
	Run: func(cmd *cobra.Command, args []string) {
		runScan(discovery.OllamaProfile(), ollamaOutputPath, ollamaOutputFormat, ollamaPages)
	},
}

func init() {
	rootCmd.AddCommand(ollamaCmd)

	// Local flags for the ollama command
	ollamaCmd.Flags().StringVarP(&ollamaOutputPath, "output", "o", "", "Output file to save results (default: stdout).")
	ollamaCmd.Flags().StringVarP(&ollamaOutputFormat, "format", "f", "json", "Output format: json, csv, console.")
	ollamaCmd.Flags().IntVar(&ollamaPages, "pages", 0, "Maximum result pages per query (default 10).")
}
