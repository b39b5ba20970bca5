package discovery

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gmh5225/ollama-hunter/internal/core"
	"github.com/gmh5225/ollama-hunter/internal/shodan"
)

// fakeSearcher serves scripted pages per query and records the calls made.
type fakeSearcher struct {
	pages map[string][]*shodan.SearchResult
	errs  map[string]error
	calls []string
}

func (f *fakeSearcher) Search(query string, page int) (*shodan.SearchResult, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s#%d", query, page))
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	results := f.pages[query]
	if page > len(results) {
		return &shodan.SearchResult{Matches: []shodan.HostMatch{}}, nil
	}
	return results[page-1], nil
}

func testProfile(queries ...string) Profile {
	return Profile{Name: "test", Queries: queries, DefaultPort: 11434}
}

func singlePage(matches ...shodan.HostMatch) []*shodan.SearchResult {
	return []*shodan.SearchResult{{Matches: matches, Total: len(matches)}}
}

func TestScannerRun_DedupAcrossQueries(t *testing.T) {
	hit := shodan.HostMatch{IPStr: "1.2.3.4", Port: 11434, Org: "First Org"}
	later := shodan.HostMatch{IPStr: "1.2.3.4", Port: 11434, Org: "Second Org"}
	other := shodan.HostMatch{IPStr: "5.6.7.8", Port: 8080}

	client := &fakeSearcher{pages: map[string][]*shodan.SearchResult{
		"q1": singlePage(hit),
		"q2": singlePage(later, other),
	}}
	records, err := NewScanner(client, testProfile("q1", "q2"), 1, 0).Run()
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 unique records, got %d", len(records))
	}
	// First hit wins for a duplicated endpoint.
	if records[0].IPStr != "1.2.3.4" || records[0].Org != "First Org" {
		t.Errorf("Expected first hit to win, got %+v", records[0])
	}
	if records[1].IPStr != "5.6.7.8" {
		t.Errorf("Expected second record for the new endpoint, got %+v", records[1])
	}
}

func TestScannerRun_EmptyResults(t *testing.T) {
	client := &fakeSearcher{pages: map[string][]*shodan.SearchResult{}}
	records, err := NewScanner(client, testProfile("q1"), 1, 0).Run()
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if records == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestScannerRun_AuthErrorAborts(t *testing.T) {
	client := &fakeSearcher{
		pages: map[string][]*shodan.SearchResult{"q2": singlePage(shodan.HostMatch{IPStr: "1.2.3.4", Port: 80})},
		errs:  map[string]error{"q1": fmt.Errorf("%w: bad key", core.ErrAuthentication)},
	}
	records, err := NewScanner(client, testProfile("q1", "q2"), 1, 0).Run()
	if !errors.Is(err, core.ErrAuthentication) {
		t.Errorf("Expected ErrAuthentication, got %v", err)
	}
	if records != nil {
		t.Errorf("Expected no records on auth failure, got %v", records)
	}
	// q2 must not have been attempted.
	for _, call := range client.calls {
		if call == "q2#1" {
			t.Error("Expected the run to abort before the second query")
		}
	}
}

func TestScannerRun_RateLimitAborts(t *testing.T) {
	client := &fakeSearcher{errs: map[string]error{"q1": fmt.Errorf("%w: slow down", core.ErrRateLimited)}}
	_, err := NewScanner(client, testProfile("q1"), 1, 0).Run()
	if !errors.Is(err, core.ErrRateLimited) {
		t.Errorf("Expected ErrRateLimited, got %v", err)
	}
}

func TestScannerRun_SkipsFailedQuery(t *testing.T) {
	client := &fakeSearcher{
		pages: map[string][]*shodan.SearchResult{"q2": singlePage(shodan.HostMatch{IPStr: "1.2.3.4", Port: 80})},
		errs:  map[string]error{"q1": errors.New("connection reset")},
	}
	records, err := NewScanner(client, testProfile("q1", "q2"), 1, 0).Run()
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record from the surviving query, got %d", len(records))
	}
}

func TestScannerRun_AllQueriesFailed(t *testing.T) {
	client := &fakeSearcher{errs: map[string]error{"q1": errors.New("connection reset")}}
	_, err := NewScanner(client, testProfile("q1"), 1, 0).Run()
	if err == nil {
		t.Fatal("Expected an error when every query fails and nothing was collected")
	}
}

func TestScannerRun_PageBudget(t *testing.T) {
	fullPage := func() *shodan.SearchResult {
		r := &shodan.SearchResult{Total: 1000}
		for i := 0; i < shodan.PageSize; i++ {
			r.Matches = append(r.Matches, shodan.HostMatch{IPStr: fmt.Sprintf("10.0.%d.%d", len(r.Matches)/250, i), Port: 11434 + i})
		}
		return r
	}
	client := &fakeSearcher{pages: map[string][]*shodan.SearchResult{
		"q1": {fullPage(), fullPage(), fullPage(), fullPage()},
	}}
	_, err := NewScanner(client, testProfile("q1"), 2, 0).Run()
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if len(client.calls) != 2 {
		t.Errorf("Expected 2 page fetches under a 2-page budget, got %d (%v)", len(client.calls), client.calls)
	}
}

func TestScannerRun_DefaultPortSubstitution(t *testing.T) {
	client := &fakeSearcher{pages: map[string][]*shodan.SearchResult{
		"q1": singlePage(shodan.HostMatch{IPStr: "1.2.3.4"}),
	}}
	records, err := NewScanner(client, testProfile("q1"), 1, 0).Run()
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if len(records) != 1 || records[0].Port != 11434 {
		t.Errorf("Expected the profile default port, got %+v", records)
	}
}
