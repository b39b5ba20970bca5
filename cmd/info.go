// cmd/info.go
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/gmh5225/ollama-hunter/internal/shodan"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the Shodan API plan and remaining credits for the configured key.",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := resolveAPIKey()
		if apiKey == "" {
			color.Red("❌ No Shodan API key. Pass --shodan, set SHODAN_API_KEY, or put it in a config file.")
			os.Exit(1)
		}

		client := shodan.NewClient(apiKey)
		info, err := client.APIInfo()
		if err != nil {
			color.Red("❌ API info lookup failed: %v", err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Plan", "Query Credits", "Scan Credits"})
		t.AppendRow(table.Row{info.Plan, info.QueryCredits, info.ScanCredits})
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
