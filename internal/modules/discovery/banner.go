// internal/modules/discovery/banner.go
package discovery

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ModelExtractor parses model identifiers out of a raw service banner,
// preserving the order they appear in. Returns an empty slice when the
// banner carries no recognizable model listing.
type ModelExtractor func(banner string) []string

// modelNamePattern validates a single model identifier of the form name[:tag],
// e.g. "smollm2:135m" or "library/llama2:latest".
var modelNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]*(:[A-Za-z0-9._-]+)?$`)

// ExtractOllamaModels parses the model inventory from an Ollama banner.
//
// Two forms are recognized, in order of preference:
//  1. An embedded /api/tags JSON payload: a "models" (new API) or "tags"
//     (old API) array of objects carrying a "name" field.
//  2. A "models:" text marker followed by a comma-separated list on the
//     same line, as seen in crawler-truncated banners.
func ExtractOllamaModels(banner string) []string {
	if names := extractNamedArray(banner, []string{`"models"`, `"tags"`}, "name"); len(names) > 0 {
		return names
	}
	return extractModelsMarker(banner)
}

// ExtractLlamaCppModels parses the model list from a llama.cpp banner. The
// server exposes an OpenAI-compatible /v1/models endpoint, so a captured
// banner embeds a "data" array of objects carrying an "id" field.
func ExtractLlamaCppModels(banner string) []string {
	return extractNamedArray(banner, []string{`"data"`}, "id")
}

// extractNamedArray locates one of the given JSON keys in the banner and
// decodes the array that follows it, collecting the field value of each
// element. Trailing banner text after the array is ignored.
func extractNamedArray(banner string, keys []string, field string) []string {
	for _, key := range keys {
		idx := strings.Index(banner, key)
		if idx < 0 {
			continue
		}
		rest := banner[idx+len(key):]
		open := strings.Index(rest, "[")
		if open < 0 {
			continue
		}
		var items []map[string]interface{}
		dec := json.NewDecoder(strings.NewReader(rest[open:]))
		if err := dec.Decode(&items); err != nil {
			continue
		}
		names := []string{}
		for _, item := range items {
			if name, ok := item[field].(string); ok && name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return []string{}
}

// extractModelsMarker scans for a case-insensitive "models:" marker and
// splits the remainder of that line on commas. Tokens are trimmed of
// whitespace and truncation ellipses; anything that does not look like a
// name[:tag] identifier is dropped.
func extractModelsMarker(banner string) []string {
	lower := strings.ToLower(banner)
	idx := strings.Index(lower, "models:")
	if idx < 0 {
		return []string{}
	}
	rest := banner[idx+len("models:"):]
	if nl := strings.IndexAny(rest, "\r\n"); nl >= 0 {
		rest = rest[:nl]
	}

	models := []string{}
	for _, tok := range strings.Split(rest, ",") {
		tok = strings.Trim(tok, " \t.")
		if tok == "" {
			continue
		}
		if modelNamePattern.MatchString(tok) {
			models = append(models, tok)
		}
	}
	return models
}
