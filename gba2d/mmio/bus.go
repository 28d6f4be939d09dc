// Package mmio is the single contact point between the library and the
// device's memory-mapped registers and video memory.
package mmio

// Bus performs 16-bit accesses to the memory map.
//
// Implementations must not reorder accesses: every Read16/Write16 reaches
// the device in program order. Callers own address validity.
type Bus interface {
	Read16(address uint32) uint16
	Write16(address uint32, value uint16)
}
