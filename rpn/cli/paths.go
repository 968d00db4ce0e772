package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
//
// Paths fall back to the user's home directory if the platform has no
// dedicated config or cache location.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: strings.ToLower(appTag)}
	home, err := os.UserHomeDir()
	if err != nil {
		return a, err
	}
	a.home = home
	return a, nil
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, ".config")
	}
	return filepath.Join(c, a.tag)
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.tag)
}
