package dirs

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "filmcompressor"

// AppName returns the canonical application name for directory paths.
func AppName() string {
	return appName
}

// ConfigDir returns the app's configuration directory.
// - Linux: $XDG_CONFIG_HOME/filmcompressor or ~/.config/filmcompressor
// - macOS: ~/Library/Application Support/filmcompressor
// - Windows: %AppData%/filmcompressor
func ConfigDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return homeJoin("Library", "Application Support", AppName())
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		return homeJoin(".config", AppName())
	default:
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, AppName()), nil
	}
}

// StateDir returns the app's state directory, where logs are written.
// - Linux: $XDG_STATE_HOME/filmcompressor or ~/.local/state/filmcompressor
// - macOS: ~/Library/Application Support/filmcompressor/state
// - Windows: %LocalAppData%/filmcompressor/state (fallback to ConfigDir/state)
func StateDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return homeJoin("Library", "Application Support", AppName(), "state")
	case "linux":
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		return homeJoin(".local", "state", AppName())
	default:
		if la := os.Getenv("LOCALAPPDATA"); la != "" {
			return filepath.Join(la, AppName(), "state"), nil
		}
		cfg, err := ConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, "state"), nil
	}
}

// DefaultLogFile returns the log path used when none is configured.
func DefaultLogFile() (string, error) {
	d, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppName()+".log"), nil
}

func homeJoin(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, elem...)...), nil
}
