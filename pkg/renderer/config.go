package renderer

// DefaultMaxDepth is the recursion limit used when Config.MaxDepth is unset
const DefaultMaxDepth = 64

// SeedMaterialWeight is the share of the material's own color in the seed
// color. The rest comes from the scene background.
const SeedMaterialWeight = 0.1

// Config contains rendering configuration
type Config struct {
	MaxDepth int // Maximum recursion depth for reflected and refracted rays
}

// DefaultConfig returns the default render configuration
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}
