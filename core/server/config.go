package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// ContentPrefix is the bucket prefix under which catalog assets live.
	ContentPrefix string `mapstructure:"content_prefix" default:"content"`
}

// NormalizedContentPrefix returns the content prefix without a trailing slash.
// An empty prefix is rejected by falling back to the default so that uploads
// never land at the bucket root.
func (c Config) NormalizedContentPrefix() string {
	p := c.ContentPrefix
	for len(p) > 0 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	if p == "" {
		return "content"
	}
	return p
}
