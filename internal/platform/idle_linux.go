//go:build linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/BurntSushi/xgb/screensaver"
	"github.com/BurntSushi/xgb/xproto"
)

type idleProvider struct {
	xprintidlePath string
}

func newIdleProvider() IdleProvider {
	path, err := exec.LookPath("xprintidle")
	if err != nil {
		path = ""
	}
	return &idleProvider{xprintidlePath: path}
}

func (provider *idleProvider) IdleSeconds() (uint32, error) {
	if session, err := connectX11(); err == nil && session.screensaver {
		reply, err := screensaver.QueryInfo(session.conn, xproto.Drawable(session.root)).Reply()
		if err == nil {
			return reply.MsSinceUserInput / 1000, nil
		}
	}
	return provider.xprintidleSeconds()
}

func (provider *idleProvider) xprintidleSeconds() (uint32, error) {
	if provider.xprintidlePath == "" {
		sessionType := strings.ToLower(os.Getenv("XDG_SESSION_TYPE"))
		if sessionType == "wayland" {
			return 0, fmt.Errorf("%w: wayland session without xprintidle", ErrIdleUnsupported)
		}
		return 0, ErrIdleUnsupported
	}
	output, err := exec.Command(provider.xprintidlePath).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	return parseIdleMillis(string(output))
}
