// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape when no system clipboard is reachable (SSH, headless).
package clipboard

import (
	"fmt"

	"github.com/andareed/siftly-welllog/logging"
	"github.com/atotto/clipboard"
)

// Copy tries the system clipboard first, then OSC52.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Debugf("Clipboard: system clipboard failed: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Read returns the system clipboard contents. OSC52 cannot be read back.
func Read() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("no system clipboard available")
	}
	return clipboard.ReadAll()
}
