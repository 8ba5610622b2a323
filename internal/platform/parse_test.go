package platform

import (
	"testing"
	"time"
)

func TestParseHIDIdleTime(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "typical ioreg output",
			output: `+-o IOHIDSystem  <class IOHIDSystem, id 0x100000457>
    {
      "HIDIdleTime" = 45123456789
      "HIDParameters" = {}
    }`,
			want: 45123456789 * time.Nanosecond,
		},
		{
			name:   "hex value",
			output: `"HIDIdleTime" = 0x3B9ACA00`,
			want:   time.Second,
		},
		{
			name:    "missing key",
			output:  `"HIDParameters" = {}`,
			wantErr: true,
		},
		{
			name:    "missing equals",
			output:  `"HIDIdleTime" 12`,
			wantErr: true,
		},
		{
			name:    "missing value",
			output:  `"HIDIdleTime" = `,
			wantErr: true,
		},
		{
			name:    "not a number",
			output:  `"HIDIdleTime" = soon`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHIDIdleTime([]byte(tt.output))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHIDIdleTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseHIDIdleTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseIdleMillis(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    uint32
		wantErr bool
	}{
		{name: "trailing newline", output: "5000\n", want: 5},
		{name: "truncates", output: "45999", want: 45},
		{name: "negative clamps", output: "-10", want: 0},
		{name: "garbage", output: "idle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIdleMillis(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIdleMillis() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseIdleMillis() = %d, want %d", got, tt.want)
			}
		})
	}
}
