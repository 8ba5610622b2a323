package platform

// IdleSecondsFromTicks converts the current and last-input millisecond tick
// counts into whole idle seconds. The counters are 32-bit and wrap roughly every
// 49.7 days; the difference is taken in uint32 arithmetic and nothing more.
func IdleSecondsFromTicks(now, lastInput uint32) uint32 {
	return (now - lastInput) / 1000
}
