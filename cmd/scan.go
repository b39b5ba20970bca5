// cmd/scan.go
package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/core/logger"
	"github.com/gmh5225/ollama-hunter/internal/modules/discovery"
	"github.com/gmh5225/ollama-hunter/internal/output"
	"github.com/gmh5225/ollama-hunter/internal/shodan"
)

// runScan is the shared body of the ollama and llamacpp commands: resolve
// the key, drive the paginated search, render and deliver the records.
// Fatal failures exit non-zero before any output file is touched.
func runScan(profile discovery.Profile, outputPath, outputFormat string, pages int) {
	log := logger.GetLogger()

	apiKey := resolveAPIKey()
	if apiKey == "" {
		color.Red("❌ No Shodan API key. Pass --shodan, set SHODAN_API_KEY, or put it in a config file.")
		os.Exit(1)
	}

	// Flag beats config, config beats the default.
	if pages <= 0 {
		if config != nil && config.Pages > 0 {
			pages = config.Pages
		} else {
			pages = core.DefaultPages
		}
	}
	interval := time.Duration(core.DefaultIntervalSeconds) * time.Second
	if config != nil && config.IntervalSeconds > 0 {
		interval = time.Duration(config.IntervalSeconds) * time.Second
	}

	color.Cyan("\n🔎 Hunting exposed %s servers (up to %d pages per query)...", profile.Name, pages)
	log.Infof("Starting %s discovery, %d fingerprint queries", profile.Name, len(profile.Queries))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Querying Shodan..."
	s.Start()

	scanner := discovery.NewScanner(shodan.NewClient(apiKey), profile, pages, interval)
	records, err := scanner.Run()
	s.Stop()

	if err != nil {
		switch {
		case errors.Is(err, core.ErrAuthentication):
			color.Red("❌ Authentication failed: %v", err)
			color.Yellow("Check your Shodan API key (https://account.shodan.io).")
		case errors.Is(err, core.ErrRateLimited):
			color.Red("❌ Rate limited by Shodan: %v", err)
			color.Yellow("Wait a while and rerun; no automatic retry is performed.")
		default:
			color.Red("❌ Discovery failed: %v", err)
		}
		os.Exit(1)
	}

	if len(records) == 0 {
		color.Yellow("⚠️  No exposed %s servers found.", profile.Name)
	} else {
		color.Green("🎯 Found %d exposed %s servers!", len(records), profile.Name)
	}

	formatted, err := output.FormatRecords(records, outputFormat)
	if err != nil {
		color.Red("❌ Output formatting failed: %v", err)
		os.Exit(1)
	}
	if outputPath != "" {
		if err := output.WriteOutput(outputPath, formatted); err != nil {
			color.Red("❌ Failed to write output: %v", err)
			os.Exit(1)
		}
		color.Cyan("📄 Results saved to %s", outputPath)
	} else {
		color.Cyan("\n%s", formatted)
	}
	log.Infof("%s discovery completed, %d records emitted", profile.Name, len(records))
}
