//go:build linux

package platform

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/screensaver"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
)

type x11Session struct {
	conn        *xgb.Conn
	root        xproto.Window
	screensaver bool
	xtest       bool
}

var (
	x11Once    sync.Once
	x11Current *x11Session
	x11Err     error
)

// connectX11 opens one X connection per process and probes the extensions used here.
func connectX11() (*x11Session, error) {
	x11Once.Do(func() {
		conn, err := xgb.NewConn()
		if err != nil {
			x11Err = fmt.Errorf("connect to X server: %w", err)
			return
		}
		x11Current = &x11Session{
			conn:        conn,
			root:        xproto.Setup(conn).DefaultScreen(conn).Root,
			screensaver: screensaver.Init(conn) == nil,
			xtest:       xtest.Init(conn) == nil,
		}
	})
	return x11Current, x11Err
}
