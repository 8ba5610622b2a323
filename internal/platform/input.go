package platform

import (
	"errors"
	"fmt"

	"github.com/go-vgo/robotgo"
)

var (
	// ErrIdleUnsupported indicates idle detection is not available on this system.
	ErrIdleUnsupported = errors.New("idle detection unsupported")
	// ErrInjectUnsupported indicates synthetic input cannot be sent on this system.
	ErrInjectUnsupported = errors.New("synthetic input unsupported")
)

// IdleProvider returns the whole seconds since last user input.
type IdleProvider interface {
	IdleSeconds() (uint32, error)
}

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

type cursor interface {
	Location() (int, int)
	Move(x, y int)
}

type robotgoCursor struct{}

func (robotgoCursor) Location() (int, int) {
	return robotgo.Location()
}

func (robotgoCursor) Move(x, y int) {
	robotgo.Move(x, y)
}

// InputDriver reads OS idle time and nudges the system pointer.
type InputDriver struct {
	idle   IdleProvider
	cursor cursor
	inject func() error
}

// NewInputDriver returns the driver for the running platform.
func NewInputDriver() *InputDriver {
	return &InputDriver{
		idle:   NewIdleProvider(),
		cursor: robotgoCursor{},
		inject: injectPointerEvent,
	}
}

// IdleSeconds returns the whole seconds since the last user input.
func (driver *InputDriver) IdleSeconds() (uint32, error) {
	seconds, err := driver.idle.IdleSeconds()
	if err != nil {
		return 0, err
	}
	return seconds, nil
}

// Nudge moves the pointer by dx, dy and then submits one synthetic pointer
// event with no motion of its own so the OS records fresh input.
func (driver *InputDriver) Nudge(dx, dy int) error {
	x, y := driver.cursor.Location()
	driver.cursor.Move(x+dx, y+dy)

	if err := driver.inject(); err != nil {
		return fmt.Errorf("inject pointer event: %w", err)
	}
	return nil
}
