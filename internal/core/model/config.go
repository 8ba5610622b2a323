package model

import (
	"strconv"
	"strings"
	"time"
)

// DefaultIntervalSeconds is used when no valid interval is supplied.
const DefaultIntervalSeconds uint32 = 40

// MonitorConfig contains runtime settings for the idle monitor.
type MonitorConfig struct {
	Interval      time.Duration
	IdleThreshold time.Duration
}

// DefaultMonitorConfig returns the configuration used when the user supplied nothing usable.
func DefaultMonitorConfig() MonitorConfig {
	return NewMonitorConfig(DefaultIntervalSeconds)
}

// NewMonitorConfig builds a config that ticks every seconds and nudges once
// the user has been idle for at least as long.
func NewMonitorConfig(seconds uint32) MonitorConfig {
	if seconds == 0 {
		seconds = DefaultIntervalSeconds
	}
	period := time.Duration(seconds) * time.Second
	return MonitorConfig{
		Interval:      period,
		IdleThreshold: period,
	}
}

// Valid reports whether the config can drive a ticker.
func (config MonitorConfig) Valid() bool {
	return config.Interval >= time.Second && config.IdleThreshold >= 0
}

// IntervalSeconds returns the interval in whole seconds.
func (config MonitorConfig) IntervalSeconds() uint32 {
	return uint32(config.Interval / time.Second)
}

// ThresholdSeconds returns the idle threshold in whole seconds.
func (config MonitorConfig) ThresholdSeconds() uint32 {
	return uint32(config.IdleThreshold / time.Second)
}

// ParseIntervalSeconds reads a user supplied interval.
// Anything that is not a positive whole number of seconds yields the default and false.
func ParseIntervalSeconds(value string) (uint32, bool) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || parsed == 0 {
		return DefaultIntervalSeconds, false
	}
	return uint32(parsed), true
}
