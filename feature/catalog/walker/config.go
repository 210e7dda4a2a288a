package walker

// Config holds configuration for the catalog source tree.
type Config struct {
	// Root is the directory containing one subdirectory per company.
	Root string `mapstructure:"root" default:"./catalog"`
	// Delimiter separates tokens inside SKU codes.
	Delimiter string `mapstructure:"delimiter" default:"_"`
}
