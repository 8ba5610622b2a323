//go:build windows

package platform

import (
	"fmt"
	"unsafe"
)

const inputMouse = 0

type mouseInput struct {
	dx        int32
	dy        int32
	mouseData uint32
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// input mirrors INPUT with the mouse member of its union, the largest one.
type input struct {
	inputType uint32
	mouse     mouseInput
}

// injectPointerEvent sends one mouse record with zero deltas and no flags.
func injectPointerEvent() error {
	record := input{inputType: inputMouse}

	sent, _, err := procSendInput.Call(
		1,
		uintptr(unsafe.Pointer(&record)),
		unsafe.Sizeof(record),
	)
	if sent == 0 {
		if err != nil {
			return fmt.Errorf("send input: %w", err)
		}
		return fmt.Errorf("send input: blocked")
	}
	return nil
}
