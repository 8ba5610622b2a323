package platform

import (
	"fmt"
	"os/exec"
	"time"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return &idleProvider{}
}

func (provider *idleProvider) IdleSeconds() (uint32, error) {
	output, err := exec.Command("ioreg", "-c", "IOHIDSystem").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}

	idle, err := parseHIDIdleTime(output)
	if err != nil {
		return 0, fmt.Errorf("parse ioreg output: %w", err)
	}
	return uint32(idle / time.Second), nil
}
