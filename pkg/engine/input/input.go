// Package input turns device events into game intents.
package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by RawMode when stdin is not a terminal
var ErrNotTerminal = errors.New("input: stdin is not a terminal")

// RawMode switches stdin to raw mode and returns a function restoring it.
func RawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, ErrNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, err
	}
	return func() { _ = term.Restore(fd, oldState) }, nil
}

// KeyReader decodes raw terminal bytes into key codes understood by the bindings.
// A terminal delivers an escape sequence in one read, so an ESC that ends a
// read is a lone Escape key press.
type KeyReader struct {
	r       io.Reader
	buf     [64]byte
	pending []byte
}

// NewKeyReader reads keys from r, usually os.Stdin in raw mode
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// readByte returns the next byte, reading more input only when none is pending
func (k *KeyReader) readByte() (byte, error) {
	for len(k.pending) == 0 {
		n, err := k.r.Read(k.buf[:])
		k.pending = k.buf[:n]
		if n == 0 && err != nil {
			return 0, err
		}
	}
	b := k.pending[0]
	k.pending = k.pending[1:]
	return b, nil
}

// ReadKey blocks until one key is read and returns its code.
// Unknown escape sequences yield an empty code.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.readByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape()
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a')), nil
	case b >= 32 && b < 127:
		return string(rune(b)), nil
	default:
		return "", nil
	}
}

// readEscape handles both CSI (ESC [) and SS3 (ESC O) arrow sequences.
// A lone ESC is reported as "escape" straight away, and any byte after it
// that does not start a sequence is left for the next ReadKey.
func (k *KeyReader) readEscape() (string, error) {
	if len(k.pending) == 0 {
		return "escape", nil
	}
	if b2 := k.pending[0]; b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	k.pending = k.pending[1:]

	b3, err := k.readByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}

// ReadIntent reads one key and maps it through the bindings
func (k *KeyReader) ReadIntent() (Intent, error) {
	code, err := k.ReadKey()
	if err != nil {
		return Intent{}, err
	}
	return Translate(RawInput{Device: DeviceTerminal, Code: code}), nil
}
