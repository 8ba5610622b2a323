package platform

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseHIDIdleTime extracts HIDIdleTime (nanoseconds) from `ioreg -c IOHIDSystem` output.
func parseHIDIdleTime(output []byte) (time.Duration, error) {
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return 0, fmt.Errorf("HIDIdleTime line missing '='")
		}

		fields := strings.Fields(strings.Trim(strings.TrimSpace(parts[1]), "\""))
		if len(fields) == 0 {
			return 0, fmt.Errorf("HIDIdleTime value missing")
		}

		nanos, err := strconv.ParseInt(fields[0], 0, 64)
		if err != nil {
			return 0, fmt.Errorf("parse HIDIdleTime %q: %w", fields[0], err)
		}
		if nanos < 0 {
			nanos = 0
		}
		return time.Duration(nanos), nil
	}

	return 0, fmt.Errorf("HIDIdleTime not found in ioreg output")
}

// parseIdleMillis converts xprintidle output to whole seconds.
func parseIdleMillis(output string) (uint32, error) {
	idleMillis, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if idleMillis < 0 {
		idleMillis = 0
	}
	return uint32(idleMillis / 1000), nil
}
