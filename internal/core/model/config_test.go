package model

import (
	"testing"
	"time"
)

func TestParseIntervalSeconds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   uint32
		wantOK bool
	}{
		{name: "default value", input: "40", want: 40, wantOK: true},
		{name: "custom value", input: "90", want: 90, wantOK: true},
		{name: "surrounding spaces", input: "  15 ", want: 15, wantOK: true},
		{name: "empty", input: "", want: DefaultIntervalSeconds},
		{name: "letters", input: "abc", want: DefaultIntervalSeconds},
		{name: "negative", input: "-5", want: DefaultIntervalSeconds},
		{name: "fraction", input: "1.5", want: DefaultIntervalSeconds},
		{name: "zero", input: "0", want: DefaultIntervalSeconds},
		{name: "overflow", input: "4294967296", want: DefaultIntervalSeconds},
		{name: "max uint32", input: "4294967295", want: 4294967295, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntervalSeconds(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseIntervalSeconds(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewMonitorConfig(t *testing.T) {
	config := NewMonitorConfig(12)
	if config.Interval != 12*time.Second {
		t.Errorf("Interval = %v, want 12s", config.Interval)
	}
	if config.IdleThreshold != config.Interval {
		t.Errorf("IdleThreshold = %v, want it to equal Interval", config.IdleThreshold)
	}
	if config.IntervalSeconds() != 12 || config.ThresholdSeconds() != 12 {
		t.Errorf("seconds = (%d, %d), want (12, 12)", config.IntervalSeconds(), config.ThresholdSeconds())
	}
}

func TestNewMonitorConfigZeroFallsBack(t *testing.T) {
	config := NewMonitorConfig(0)
	if config != DefaultMonitorConfig() {
		t.Errorf("NewMonitorConfig(0) = %+v, want default %+v", config, DefaultMonitorConfig())
	}
	if config.Interval != 40*time.Second {
		t.Errorf("default interval = %v, want 40s", config.Interval)
	}
}

func TestMonitorConfigValid(t *testing.T) {
	if (MonitorConfig{}).Valid() {
		t.Error("zero config should not be valid")
	}
	if !DefaultMonitorConfig().Valid() {
		t.Error("default config should be valid")
	}
}
