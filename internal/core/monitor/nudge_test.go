package monitor

import "testing"

type scriptedRandom struct {
	values []int
	calls  []int
}

func (random *scriptedRandom) Intn(n int) int {
	random.calls = append(random.calls, n)
	if len(random.values) == 0 {
		return 0
	}
	value := random.values[0]
	random.values = random.values[1:]
	return value % n
}

func TestNudgeOffsets(t *testing.T) {
	tests := []struct {
		name   string
		draws  []int
		wantDX int
		wantDY int
	}{
		{name: "lowest draw subtracts", draws: []int{0, 4, 6}, wantDX: -4, wantDY: -6},
		{name: "draw 49 subtracts", draws: []int{49, 7, 3}, wantDX: -7, wantDY: -3},
		{name: "draw 50 adds", draws: []int{50, 7, 3}, wantDX: 7, wantDY: 3},
		{name: "highest draw adds", draws: []int{99, 9, 9}, wantDX: 9, wantDY: 9},
		{name: "zero magnitude", draws: []int{10, 0, 0}, wantDX: 0, wantDY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := &scriptedRandom{values: tt.draws}
			dx, dy := nudgeOffsets(random)
			if dx != tt.wantDX || dy != tt.wantDY {
				t.Errorf("nudgeOffsets() = (%d, %d), want (%d, %d)", dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestNudgeOffsetsDrawRanges(t *testing.T) {
	random := &scriptedRandom{}
	nudgeOffsets(random)

	want := []int{directionRange, maxNudge, maxNudge}
	if len(random.calls) != len(want) {
		t.Fatalf("Intn called %d times, want %d", len(random.calls), len(want))
	}
	for i, n := range want {
		if random.calls[i] != n {
			t.Errorf("draw %d used range %d, want %d", i, random.calls[i], n)
		}
	}
}
