package vm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ExecutionMode represents the execution mode of the VM
type ExecutionMode int

const (
	ModeRun      ExecutionMode = iota // Run until halt or breakpoint
	ModeStep                          // Execute single instruction
	ModeStepOver                      // Execute until next instruction at same call level
	ModeStepInto                      // Execute single instruction, following branches
)

// ExecutionState represents the current state of execution
type ExecutionState int

const (
	StateRunning ExecutionState = iota
	StateHalted
	StateBreakpoint
	StateTrapped
	StateError
)

func (s ExecutionState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateBreakpoint:
		return "breakpoint"
	case StateTrapped:
		return "trapped"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// VM bundles a CPU with the execution loop, diagnostic subsystems, and the
// runtime state a debugger or CLI front end drives it through. CPU alone
// already owns Mem/pc/x/f/trap; VM is the orchestration layer around it.
type VM struct {
	CPU *CPU

	State ExecutionState
	Mode  ExecutionMode

	MaxCycles      uint64
	CycleLimit     uint64
	InstructionLog []uint32 // history of executed instruction addresses

	LastError error

	EntryPoint       uint32
	StackTop         uint32 // initial sp value, for ResetRegisters
	ProgramArguments []string
	ExitCode         int32

	OutputWriter io.Writer

	ExecutionTrace *ExecutionTrace
	MemoryTrace    *MemoryTrace
	Statistics     *PerformanceStatistics
	CodeCoverage   *CodeCoverage
	StackTrace     *StackTrace
	RegisterTrace  *RegisterTrace

	stdinReader *bufio.Reader
}

// NewVM creates a new virtual machine instance over a fresh Memory.
func NewVM(console func(byte)) *VM {
	mem := NewMemory(console)
	return &VM{
		CPU:              NewCPU(mem),
		State:            StateHalted,
		Mode:             ModeRun,
		MaxCycles:        1_000_000,
		InstructionLog:   make([]uint32, 0, 1024),
		EntryPoint:       RAMStart,
		ProgramArguments: make([]string, 0),
		OutputWriter:     os.Stdout,
		stdinReader:      bufio.NewReader(os.Stdin),
	}
}

// Reset resets the CPU (registers, pc, trap) and the execution state;
// memory contents are left as they are.
func (v *VM) Reset() {
	v.CPU.Reset()
	v.State = StateHalted
	v.InstructionLog = v.InstructionLog[:0]
	v.LastError = nil
}

// ResetRegisters resets CPU registers and state but preserves memory
// contents, restoring pc to EntryPoint and sp to StackTop.
func (v *VM) ResetRegisters() {
	v.CPU.Reset()
	v.CPU.SetNextPC(v.EntryPoint)
	v.CPU.pc = v.EntryPoint
	if v.StackTop != 0 {
		v.CPU.Wx(RegSp, v.StackTop)
	}
	v.State = StateHalted
	v.InstructionLog = v.InstructionLog[:0]
	v.LastError = nil
}

// LoadProgram loads a raw binary image into memory at startAddress and
// points pc at it.
func (v *VM) LoadProgram(data []byte, startAddress uint32) error {
	if err := v.CPU.Mem.WriteBytes(startAddress, data); err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}
	v.CPU.pc = startAddress
	v.CPU.nextPC = startAddress
	v.State = StateHalted
	return nil
}

// SetEntryPoint sets the program counter to the entry point.
func (v *VM) SetEntryPoint(address uint32) {
	v.CPU.pc = address
	v.CPU.nextPC = address
}

// InitializeStack sets sp to stackTop and records it for ResetRegisters.
func (v *VM) InitializeStack(stackTop uint32) {
	v.StackTop = stackTop
	v.CPU.Wx(RegSp, stackTop)
}

// Step executes a single instruction, recording diagnostics along the way.
func (v *VM) Step() error {
	if v.State == StateError {
		return fmt.Errorf("VM is in error state: %w", v.LastError)
	}

	if v.CycleLimit > 0 && v.CPU.Cycles >= v.CycleLimit {
		v.State = StateError
		v.LastError = fmt.Errorf("cycle limit exceeded (%d cycles)", v.CycleLimit)
		return v.LastError
	}

	var regsBefore [32]uint32
	if v.RegisterTrace != nil && v.RegisterTrace.Enabled {
		for i := 0; i < 32; i++ {
			regsBefore[i] = v.CPU.Rx(Reg(i))
		}
	}

	word := v.CPU.Fetch()
	pc := v.CPU.PC()
	v.InstructionLog = append(v.InstructionLog, pc)
	if v.CPU.Trapped() {
		v.State = StateTrapped
		v.LastError = fmt.Errorf("trap at pc=0x%08x: %s", pc, v.CPU.TrapCause().Error())
		return v.LastError
	}

	Decode[struct{}](v.CPU, word)
	v.CPU.Cycles++

	if v.CPU.Trapped() {
		cause := v.CPU.TrapCause()
		switch cause.Kind {
		case EnvironmentCallFromMMode:
			v.State = StateHalted
		case Breakpoint:
			v.State = StateBreakpoint
		default:
			v.State = StateTrapped
			v.LastError = fmt.Errorf("trap at pc=0x%08x: %s", pc, cause.Error())
		}
		return v.LastError
	}

	if v.CodeCoverage != nil {
		v.CodeCoverage.RecordExecution(pc, v.CPU.Cycles)
	}

	if v.RegisterTrace != nil && v.RegisterTrace.Enabled {
		for i := 0; i < 32; i++ {
			nv := v.CPU.Rx(Reg(i))
			if nv != regsBefore[i] {
				v.RegisterTrace.RecordWrite(v.CPU.Cycles, pc, Reg(i).String(), regsBefore[i], nv)
			}
		}
	}

	return nil
}

// Run executes instructions until halt, trap, error, or breakpoint.
func (v *VM) Run() error {
	v.State = StateRunning

	for v.State == StateRunning {
		if err := v.Step(); err != nil {
			return err
		}
		if v.CPU.Cycles > v.MaxCycles {
			v.State = StateHalted
			return fmt.Errorf("maximum cycles exceeded")
		}
	}

	return nil
}

// GetState returns the current execution state.
func (v *VM) GetState() ExecutionState {
	return v.State
}

// SetState sets the execution state.
func (v *VM) SetState(state ExecutionState) {
	v.State = state
}

// GetInstructionHistory returns the history of executed instruction addresses.
func (v *VM) GetInstructionHistory() []uint32 {
	return v.InstructionLog
}

// DumpState returns a string representation of the VM state for debugging.
func (v *VM) DumpState() string {
	trapStr := "-"
	if v.CPU.Trapped() {
		trapStr = v.CPU.TrapCause().Kind.String()
	}
	return fmt.Sprintf(
		"pc=0x%08X sp=0x%08X ra=0x%08X trap=%s cycles=%d state=%v",
		v.CPU.PC(),
		v.CPU.Rx(RegSp),
		v.CPU.Rx(RegRa),
		trapStr,
		v.CPU.Cycles,
		v.State,
	)
}

// Bootstrap initializes the VM runtime environment for a fresh run.
func (v *VM) Bootstrap(args []string) error {
	v.ProgramArguments = args

	stackTop := uint32(RAMStart + RAMSize)
	v.InitializeStack(stackTop)

	v.CPU.Wx(RegRa, 0xFFFFFFFF)
	v.CPU.pc = v.EntryPoint
	v.CPU.nextPC = v.EntryPoint

	v.State = StateHalted
	v.ExitCode = 0

	return nil
}
