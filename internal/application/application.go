package application

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "givr"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the givr configuration directory path.
// Linux: ~/.config/givr (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Roaming\givr
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

func lazyLoad() {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			errDir = err

			return
		}

		base = home
	}

	appDir = filepath.Join(base, AppName)
	errDir = os.MkdirAll(appDir, 0o755)
}
