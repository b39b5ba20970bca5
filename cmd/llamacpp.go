// cmd/llamacpp.go
package cmd

import (
	"github.com/gmh5225/ollama-hunter/internal/modules/discovery"
	"github.com/spf13/cobra"
)

var (
	llamaCppOutputPath   string
	llamaCppOutputFormat string
	llamaCppPages        int
)

// llamaCppCmd represents the llamacpp command
var llamaCppCmd = &cobra.Command{
	Use:   "llamacpp",
	Short: "Search Shodan for publicly exposed llama.cpp servers.",
	Long: `Searches Shodan's index for hosts running the llama.cpp HTTP server
(identified by its Server header and chat UI banner) and emits one record
per discovered server. Where a captured banner carries an OpenAI-style
model listing, the model identifiers are included.`,
	Example: `  ollama-hunter llamacpp
  ollama-hunter llamacpp -o llamacpp_servers.json
  ollama-hunter llamacpp -f csv --pages 5`,
	Run: func(cmd *cobra.Command, args []string) {
		runScan(discovery.LlamaCppProfile(), llamaCppOutputPath, llamaCppOutputFormat, llamaCppPages)
	},
}

func init() {
	rootCmd.AddCommand(llamaCppCmd)

	// Local flags for the llamacpp command
	llamaCppCmd.Flags().StringVarP(&llamaCppOutputPath, "output", "o", "", "Output file to save results (default: stdout).")
	llamaCppCmd.Flags().StringVarP(&llamaCppOutputFormat, "format", "f", "json", "Output format: json, csv, console.")
	llamaCppCmd.Flags().IntVar(&llamaCppPages, "pages", 0, "Maximum result pages per query (default 10).")
}
