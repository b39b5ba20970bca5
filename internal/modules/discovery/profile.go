// internal/modules/discovery/profile.go
package discovery

// Profile describes how to find one server product on Shodan: the
// fingerprint queries that match its banner, the port to assume when a hit
// carries none, and how to read model names out of its banners.
type Profile struct {
	Name        string
	Queries     []string
	DefaultPort int
	Extract     ModelExtractor
}

// OllamaProfile targets the Ollama HTTP management endpoint. The queries
// cover the product banner, the default port, the favicon and the plain-text
// API responses the crawler captures on port 11434.
func OllamaProfile() Profile {
	return Profile{
		Name: "ollama",
		Queries: []string{
			`product:"Ollama"`,
			`"Ollama API" port:11434`,
			`"Ollama API"`,
			`http.title:"Ollama"`,
			`http.html:"ollama"`,
			`http.favicon.hash:-1959422854`,
			`port:11434 "HTTP/1.1 200 OK"`,
		},
		DefaultPort: 11434,
		Extract:     ExtractOllamaModels,
	}
}

// LlamaCppProfile targets the llama.cpp HTTP server, which announces itself
// in the Server header and the web chat UI title. It has no single standard
// port, so hits without one keep the most common choice, 8080.
func LlamaCppProfile() Profile {
	return Profile{
		Name: "llama.cpp",
		Queries: []string{
			`title:"llama.cpp"`,
			`title:"llama.cpp - chat"`,
			`server:"llama.cpp"`,
			`http.html:"llama.cpp"`,
			`http.html:"llama-cpp-python"`,
			`product:"llama.cpp"`,
		},
		DefaultPort: 8080,
		Extract:     ExtractLlamaCppModels,
	}
}
