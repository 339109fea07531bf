// Package clip reads and writes plain text on the system clipboard.
package clip

import (
	"fmt"
	"sync"

	atotto "github.com/atotto/clipboard"
	"go.uber.org/zap"
	xclip "golang.design/x/clipboard"
)

type Reader interface {
	ReadText() (string, error)
}

type Writer interface {
	WriteText(s string) error
}

type Clipboard interface {
	Reader
	Writer
}

// System picks golang.design/x/clipboard when it initializes and falls back
// to atotto/clipboard, which shells out to the platform tools.
func System(log *zap.Logger) Clipboard {
	if log == nil {
		log = zap.NewNop()
	}
	if err := xclip.Init(); err != nil {
		log.Info("native clipboard unavailable, using command fallback", zap.Error(err))
		if atotto.Unsupported {
			return Memory()
		}
		return commandClipboard{}
	}
	return nativeClipboard{}
}

type nativeClipboard struct{}

func (nativeClipboard) ReadText() (string, error) {
	return string(xclip.Read(xclip.FmtText)), nil
}

func (nativeClipboard) WriteText(s string) error {
	xclip.Write(xclip.FmtText, []byte(s))
	return nil
}

type commandClipboard struct{}

func (commandClipboard) ReadText() (string, error) {
	s, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

func (commandClipboard) WriteText(s string) error {
	if err := atotto.WriteAll(s); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// MemoryClipboard keeps text in process. It backs headless runs and tests.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func Memory() *MemoryClipboard { return &MemoryClipboard{} }

func (m *MemoryClipboard) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *MemoryClipboard) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}
