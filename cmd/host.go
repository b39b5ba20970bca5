// cmd/host.go
package cmd

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gmh5225/ollama-hunter/internal/shodan"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// hostCmd represents the host command
var hostCmd = &cobra.Command{
	Use:   "host [ip]",
	Short: "Look up one IP in Shodan's index.",
	Long: `Fetches the full Shodan record for a single IP address: organization,
ISP, geolocation, hostnames and the ports with captured service banners.
The host itself is never contacted.`,
	Example: `  ollama-hunter host 34.1.2.96`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ip := args[0]

		apiKey := resolveAPIKey()
		if apiKey == "" {
			color.Red("❌ No Shodan API key. Pass --shodan, set SHODAN_API_KEY, or put it in a config file.")
			os.Exit(1)
		}

		client := shodan.NewClient(apiKey)
		info, err := client.Host(ip)
		if err != nil {
			color.Red("❌ Host lookup failed: %v", err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendRows([]table.Row{
			{"IP", info.IPStr},
			{"Org", info.Org},
			{"ISP", info.ISP},
			{"OS", info.OS},
			{"Country", info.CountryName},
			{"City", info.CityName},
			{"Hostnames", strings.Join(info.Hostnames, ", ")},
		})
		t.Render()

		if len(info.Data) > 0 {
			color.Cyan("\nCaptured services:")
			for _, svc := range info.Data {
				banner := strings.TrimSpace(svc.Banner)
				if len(banner) > 120 {
					banner = banner[:120] + "..."
				}
				color.Green("  ➡️ port %d: %s", svc.Port, banner)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(hostCmd)
}
