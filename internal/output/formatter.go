// internal/output/formatter.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/core/logger"
	"github.com/gmh5225/ollama-hunter/internal/modules/discovery"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatRecords renders the discovered servers in the requested format.
// The JSON form is the stable output contract of this tool: a single UTF-8
// array, one element per record, "[]" when nothing was found.
func FormatRecords(records []discovery.ServerRecord, outputFormat string) (string, error) {
	log := logger.GetLogger()
	switch outputFormat {
	case "json":
		jsonData, err := json.MarshalIndent(records, "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonData), nil
	case "csv":
		var b strings.Builder
		writer := csv.NewWriter(&b)
		if err := writer.Write([]string{"ip", "port", "country", "city", "org", "hostnames", "models"}); err != nil {
			return "", fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, r := range records {
			row := []string{
				r.IPStr,
				strconv.Itoa(r.Port),
				r.Location.CountryName,
				r.Location.CityName,
				r.Org,
				strings.Join(r.Hostnames, ";"),
				strings.Join(r.Models, ";"),
			}
			if err := writer.Write(row); err != nil {
				return "", fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		writer.Flush()
		return b.String(), nil
	case "console":
		if len(records) == 0 {
			return "No exposed servers found.", nil
		}
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "IP", "Port", "Country", "City", "Org", "Models"})
		for i, r := range records {
			t.AppendRow(table.Row{i + 1, r.IPStr, r.Port, r.Location.CountryName, r.Location.CityName, r.Org, strings.Join(r.Models, ", ")})
		}
		return t.Render(), nil
	default:
		log.Errorf("Unsupported output format: %s", outputFormat)
		return "", core.ErrOutputFormat
	}
}

// WriteOutput writes content to a specified file.
func WriteOutput(filepath string, content string) error {
	log := logger.GetLogger()
	err := os.WriteFile(filepath, []byte(content), 0644)
	if err != nil {
		log.Errorf("Failed to write output to %s: %v", filepath, err)
		return fmt.Errorf("%w: %v", core.ErrFileWrite, err)
	}
	return nil
}
