//go:build gameboyadvance

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Hardware is the on-device bus. Each access is a volatile halfword load or
// store at the physical address.
type Hardware struct{}

func (Hardware) Read16(address uint32) uint16 {
	return (*volatile.Register16)(unsafe.Pointer(uintptr(address))).Get()
}

func (Hardware) Write16(address uint32, value uint16) {
	(*volatile.Register16)(unsafe.Pointer(uintptr(address))).Set(value)
}

var _ Bus = Hardware{}
