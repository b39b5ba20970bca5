// internal/modules/discovery/scanner.go
package discovery

import (
	"errors"
	"fmt"
	"time"

	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/core/logger"
	"github.com/gmh5225/ollama-hunter/internal/shodan"
	"github.com/sirupsen/logrus"
)

// Scanner drives the paginated search for one product profile and maps the
// hits into ServerRecords. One Run is fully synchronous: query by query,
// page by page.
type Scanner struct {
	client   shodan.Searcher
	profile  Profile
	pages    int
	interval time.Duration
	log      *logrus.Logger
}

// NewScanner creates a Scanner with a page budget per query and a courtesy
// interval between page fetches. pages <= 0 falls back to the default.
func NewScanner(client shodan.Searcher, profile Profile, pages int, interval time.Duration) *Scanner {
	if pages <= 0 {
		pages = core.DefaultPages
	}
	return &Scanner{
		client:   client,
		profile:  profile,
		pages:    pages,
		interval: interval,
		log:      logger.GetLogger(),
	}
}

// Run executes every fingerprint query of the profile and returns the
// discovered servers in first-seen order. Endpoints matched by more than one
// query are kept once (first hit wins). Authentication and rate-limit errors
// abort the run immediately; other per-query failures are logged and skipped,
// unless nothing at all was collected, in which case the last failure is
// returned.
func (s *Scanner) Run() ([]ServerRecord, error) {
	records := []ServerRecord{}
	seen := make(map[string]struct{})
	var lastErr error

	for _, query := range s.profile.Queries {
		s.log.Infof("[%s] searching: %s", s.profile.Name, query)
		if err := s.runQuery(query, seen, &records); err != nil {
			if errors.Is(err, core.ErrAuthentication) || errors.Is(err, core.ErrRateLimited) {
				return nil, err
			}
			s.log.Warnf("[%s] query %q failed: %v", s.profile.Name, query, err)
			lastErr = err
		}
	}

	if len(records) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all queries failed: %w", lastErr)
	}
	s.log.Infof("[%s] discovered %d unique servers", s.profile.Name, len(records))
	return records, nil
}

func (s *Scanner) runQuery(query string, seen map[string]struct{}, records *[]ServerRecord) error {
	fetched := 0
	for page := 1; page <= s.pages; page++ {
		result, err := s.client.Search(query, page)
		if err != nil {
			return err
		}

		for _, m := range result.Matches {
			if m.Port == 0 {
				m.Port = s.profile.DefaultPort
			}
			key := fmt.Sprintf("%s:%d", m.IPStr, m.Port)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			*records = append(*records, MapMatch(m, s.profile.Extract))
		}

		fetched += len(result.Matches)
		s.log.Debugf("[%s] page %d: %d matches, %d/%d fetched", s.profile.Name, page, len(result.Matches), fetched, result.Total)

		// A short page means the result set is exhausted.
		if len(result.Matches) < shodan.PageSize || fetched >= result.Total {
			break
		}
		if s.interval > 0 {
			time.Sleep(s.interval)
		}
	}
	return nil
}
