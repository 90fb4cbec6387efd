// Package loader bulk-loads raw encoded instruction/data images into
// simulator memory. There is no assembly-source pipeline in this domain:
// callers supply an already-encoded byte slice (16/32-bit little-endian
// words) and an optional symbol table for display purposes only.
package loader

import (
	"fmt"

	"github.com/rv32emu/rv32emu/vm"
)

// LoadRaw copies data into machine's memory starting at base, then points
// pc at base and records it as the entry point ResetRegisters restores.
// base must fall inside a mapped memory segment; segment permissions
// are not checked, so an image can be loaded into ROM. A write past the
// end of the image's segment fails with the underlying Memory error.
func LoadRaw(machine *vm.VM, data []byte, base uint32) error {
	if err := machine.LoadProgram(data, base); err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	machine.EntryPoint = base

	return nil
}
