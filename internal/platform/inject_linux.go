//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
)

const (
	motionRelative = 1
	currentTime    = 0
)

// injectPointerEvent fakes a relative pointer motion of zero through XTest,
// which the server counts as user input.
func injectPointerEvent() error {
	session, err := connectX11()
	if err != nil {
		return err
	}
	if !session.xtest {
		return ErrInjectUnsupported
	}

	err = xtest.FakeInputChecked(session.conn, xproto.MotionNotify, motionRelative, currentTime, session.root, 0, 0, 0).Check()
	if err != nil {
		return fmt.Errorf("xtest fake input: %w", err)
	}
	return nil
}
