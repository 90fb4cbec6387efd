package service

import "github.com/rv32emu/rv32emu/vm"

// RegisterState represents a snapshot of CPU registers
type RegisterState struct {
	Registers [32]uint32
	Trap      TrapState
	PC        uint32
	Cycles    uint64
}

// TrapState represents the CPU's latched trap condition for serialization
type TrapState struct {
	Trapped bool
	Kind    string
	Value   uint32
}

// BreakpointInfo represents a breakpoint for UI display
type BreakpointInfo struct {
	Address   uint32 `json:"address"`
	Enabled   bool   `json:"enabled"`
	Condition string `json:"condition"` // Expression that must evaluate to true
}

// WatchpointInfo represents a watchpoint for UI display
type WatchpointInfo struct {
	ID      int    `json:"id"`
	Address uint32 `json:"address"`
	Type    string `json:"type"` // "read", "write", "readwrite"
	Enabled bool   `json:"enabled"`
}

// MemoryRegion represents a contiguous memory region
type MemoryRegion struct {
	Address uint32
	Data    []byte
	Size    uint32
}

// ExecutionState represents the current state of execution
type ExecutionState string

const (
	StateRunning    ExecutionState = "running"
	StateHalted     ExecutionState = "halted"
	StateBreakpoint ExecutionState = "breakpoint"
	StateTrapped    ExecutionState = "trapped"
	StateError      ExecutionState = "error"
)

// VMStateToExecution converts vm.ExecutionState to service.ExecutionState
func VMStateToExecution(state vm.ExecutionState) ExecutionState {
	switch state {
	case vm.StateRunning:
		return StateRunning
	case vm.StateHalted:
		return StateHalted
	case vm.StateBreakpoint:
		return StateBreakpoint
	case vm.StateTrapped:
		return StateTrapped
	case vm.StateError:
		return StateError
	default:
		return StateHalted
	}
}

// DisassemblyLine represents a single disassembled instruction
type DisassemblyLine struct {
	Address  uint32 `json:"address"`
	Opcode   uint32 `json:"opcode"`
	Mnemonic string `json:"mnemonic"`
	Symbol   string `json:"symbol"` // Symbol at this address, if any
}

// StackEntry represents a single stack location
type StackEntry struct {
	Address uint32 `json:"address"`
	Value   uint32 `json:"value"`
	Symbol  string `json:"symbol"` // If value points to a symbol
}

// SourceMapEntry maps an address to its disassembled instruction text.
// There is no assembly source in this domain, so the "source" a
// debugger front end displays is the disassembly itself.
type SourceMapEntry struct {
	Address uint32
	Line    string
}

// MemoryWriteInfo reports the most recent memory store, for a front end
// to know which region of its memory view to refresh.
type MemoryWriteInfo struct {
	Address  uint32 `json:"address"`
	HasWrite bool   `json:"hasWrite"`
}
