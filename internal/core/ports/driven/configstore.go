package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g. TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns fallback if the key doesn't exist or isn't a boolean.
	GetBool(key string, fallback bool) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Configuration keys understood by the settings service.
const (
	// KeyContentDir is the directory scanned for record files.
	KeyContentDir = "content.dir"

	// KeyRequireAllLevels toggles the levels-1..5 completeness rule.
	KeyRequireAllLevels = "validation.require_all_levels"

	// KeyBilingualPolicy grades bilingual convention violations (warn|reject).
	KeyBilingualPolicy = "validation.bilingual_policy"

	// KeyIntegrityPolicy decides whether dangling cross-references fail
	// a lint run (warn|fail).
	KeyIntegrityPolicy = "integrity.policy"
)
