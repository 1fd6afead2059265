package source

// Config holds configuration for resolving calendar references.
type Config struct {
	// GitRepo is the repository used by git: references. Parent directories
	// are searched for a .git directory.
	GitRepo string `mapstructure:"git_repo" default:"."`
	// CacheTTLSeconds is how long decoded documents are reused. 0 disables
	// the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
	// HTTPFileRefs lets API callers name local files. Off by default since it
	// exposes the server's filesystem.
	HTTPFileRefs bool `mapstructure:"http_file_refs" default:"false"`
}
