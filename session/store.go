package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andareed/siftly-welllog/clipboard"
)

// ErrLoadUnsupported is returned when a store has nothing it can read back.
var ErrLoadUnsupported = errors.New("this session store cannot load")

// Store is where snapshots go. The serializer itself never touches storage.
type Store interface {
	Save(s State) error
	Load() (State, error)
	String() string
}

// FileStore keeps the snapshot in a JSON file.
type FileStore struct {
	Path string
}

func (f FileStore) String() string { return f.Path }

func (f FileStore) Save(s State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, data, 0o600); err != nil {
		return fmt.Errorf("write session %s: %w", f.Path, err)
	}
	return nil
}

func (f FileStore) Load() (State, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return State{}, fmt.Errorf("read session %s: %w", f.Path, err)
	}
	return Decode(data)
}

// ClipboardStore copies the snapshot to the clipboard. Used where the
// file system the user cares about is on the other end of an SSH session.
type ClipboardStore struct {
	Copy  func(string) error
	Paste func() (string, error)
}

func (ClipboardStore) String() string { return "clipboard" }

func (c ClipboardStore) Save(s State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	cp := c.Copy
	if cp == nil {
		cp = clipboard.Copy
	}
	return cp(string(data))
}

// Load reads a snapshot back from the system clipboard. An OSC52-only
// terminal cannot be read, which surfaces as ErrLoadUnsupported.
func (c ClipboardStore) Load() (State, error) {
	paste := c.Paste
	if paste == nil {
		paste = clipboard.Read
	}
	text, err := paste()
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrLoadUnsupported, err)
	}
	return Decode([]byte(text))
}

const (
	StoreFile      = "file"
	StoreClipboard = "clipboard"
)

// Select picks a store from the requested kind and the environment. An
// empty kind means "clipboard over SSH, file otherwise".
func Select(kind, path string, getenv func(string) string) (Store, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch kind {
	case StoreClipboard:
		return ClipboardStore{}, nil
	case StoreFile:
		return FileStore{Path: path}, nil
	case "":
		if getenv("SSH_TTY") != "" {
			return ClipboardStore{}, nil
		}
		return FileStore{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown session store %q (want file or clipboard)", kind)
	}
}
