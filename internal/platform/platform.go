package platform

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
)

type WindowConfig struct {
	Title    string
	Width    int
	Height   int
	Centered bool
	VSync    bool
	GLMajor  int
	GLMinor  int
}

// PlatformWindowWrapper owns one native window together with the GL context
// bound to it. All methods must be called from the thread that created it.
type PlatformWindowWrapper interface {
	Show()
	Close()
	// PollEvent never blocks; ok is false once the queue is empty.
	PollEvent() (event Event, ok bool)
	SwapWindow()
	GLProcAddress(name string) unsafe.Pointer
	Backend() string
}

// Opener creates a window and makes its GL context current.
type Opener func(conf WindowConfig) (PlatformWindowWrapper, error)

var (
	openerMu   sync.Mutex
	opener     Opener
	openerName string
)

// Register installs the backend used by NewPlatformWindowWrapper. Backends
// call it from init, so importing one for side effects selects it.
func Register(name string, open Opener) {
	openerMu.Lock()
	defer openerMu.Unlock()
	if open == nil {
		panic("platform: Register opener is nil")
	}
	if opener != nil {
		panic("platform: Register called twice, " + openerName + " already registered, got " + name)
	}
	opener, openerName = open, name
}

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	openerMu.Lock()
	open := opener
	openerMu.Unlock()
	if open == nil {
		return nil, errors.New("platform: no window backend registered")
	}
	return open(conf)
}
