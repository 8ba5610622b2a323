package platform

import "testing"

func TestIdleSecondsFromTicks(t *testing.T) {
	tests := []struct {
		name      string
		now       uint32
		lastInput uint32
		want      uint32
	}{
		{name: "five seconds", now: 1_000_000 + 5000, lastInput: 1_000_000, want: 5},
		{name: "no idle", now: 42, lastInput: 42, want: 0},
		{name: "truncates partial seconds", now: 9999, lastInput: 0, want: 9},
		{name: "below one second", now: 1500, lastInput: 1000, want: 0},
		{name: "counter wrapped", now: 2000, lastInput: 0xFFFFFFFF - 2999, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IdleSecondsFromTicks(tt.now, tt.lastInput); got != tt.want {
				t.Errorf("IdleSecondsFromTicks(%d, %d) = %d, want %d", tt.now, tt.lastInput, got, tt.want)
			}
		})
	}
}
