// internal/modules/discovery/record.go
package discovery

import "github.com/gmh5225/ollama-hunter/internal/shodan"

// unknownField substitutes for any location or org field the search API did
// not report for a hit.
const unknownField = "Unknown"

// Location is the geolocation part of a ServerRecord.
type Location struct {
	CountryName string `json:"country_name"`
	CityName    string `json:"city_name"`
}

// ServerRecord is one discovered inference server. Each record maps to
// exactly one search hit; records are never merged or synthesized.
type ServerRecord struct {
	IPStr     string   `json:"ip_str"`
	Port      int      `json:"port"`
	Location  Location `json:"location"`
	Org       string   `json:"org"`
	Hostnames []string `json:"hostnames"`
	Models    []string `json:"models"`
}

// MapMatch converts one raw search hit into a ServerRecord. Missing fields
// never fail the run: country, city and org fall back to "Unknown",
// hostnames and models to empty (non-nil) slices. Model names are parsed
// from the captured banner with the given extractor.
func MapMatch(m shodan.HostMatch, extract ModelExtractor) ServerRecord {
	rec := ServerRecord{
		IPStr: m.IPStr,
		Port:  m.Port,
		Location: Location{
			CountryName: m.Location.CountryName,
			CityName:    m.Location.CityName,
		},
		Org:       m.Org,
		Hostnames: m.Hostnames,
		Models:    []string{},
	}
	if rec.Location.CountryName == "" {
		rec.Location.CountryName = unknownField
	}
	if rec.Location.CityName == "" {
		rec.Location.CityName = unknownField
	}
	if rec.Org == "" {
		rec.Org = unknownField
	}
	if rec.Hostnames == nil {
		rec.Hostnames = []string{}
	}
	if extract != nil {
		if models := extract(m.Data); models != nil {
			rec.Models = models
		}
	}
	return rec
}
