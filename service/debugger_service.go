package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rv32emu/rv32emu/debugger"
	"github.com/rv32emu/rv32emu/disasm"
	"github.com/rv32emu/rv32emu/loader"
	"github.com/rv32emu/rv32emu/vm"
)

const (
	// Validator limits for API safety
	maxDisassemblyCount = 1000   // Maximum number of instructions to disassemble
	maxStackCount       = 1000   // Maximum number of stack entries to return
	maxStackOffset      = 100000 // Maximum stack offset to prevent wraparound attacks
	stepsBeforeYield    = 1000   // Yield every N steps during execution
)

var serviceLog *log.Logger

func init() {
	// Check if debug logging is enabled via environment variable
	if os.Getenv("RV32EMU_DEBUG") != "" {
		// Create debug log file.
		// Note: File handle intentionally not closed - kept open for process lifetime.
		// This is acceptable for debug logging; the OS cleans up on process exit.
		logPath := filepath.Join(os.TempDir(), "rv32emu-service-debug.log")
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- fixed filename in temp dir
		if err != nil {
			serviceLog = log.New(os.Stderr, "SERVICE: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		} else {
			serviceLog = log.New(f, "SERVICE: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		}
	} else {
		// Disable logging by default
		serviceLog = log.New(io.Discard, "", 0)
	}
}

// DebuggerService provides a thread-safe interface to debugger functionality
// This service is shared by TUI, GUI, and CLI interfaces
//
// Lock Ordering:
// The service uses its own sync.RWMutex (s.mu) to protect all field access,
// including access to the debugger. When calling Debugger methods that have
// their own internal mutex (like ShouldBreak), the lock order is:
// s.mu -> debugger.mu
//
// This is safe because:
// - The TUI uses the Debugger's internal mutex directly (no service mutex)
// - The service always acquires s.mu before any Debugger method that uses d.mu
// - The GUI only accesses debugger state through the service
//
// Do NOT acquire locks in the reverse order (debugger.mu -> s.mu) as this
// would create a deadlock risk.
type DebuggerService struct {
	mu                   sync.RWMutex
	vm                   *vm.VM
	debugger             *debugger.Debugger
	symbols              map[string]uint32
	sourceMap            []SourceMapEntry  // Address to disassembly mapping
	sourceMapByAddr      map[uint32]string // Quick lookup by address (for debugger)
	loaded               bool              // whether a program image is currently loaded
	entryPoint           uint32
	outputWriter         *EventEmittingWriter
	ctx                  context.Context
	stateChangedCallback func() // Callback for GUI state updates
}

// NewDebuggerService creates a new debugger service
func NewDebuggerService(machine *vm.VM) *DebuggerService {
	return &DebuggerService{
		vm:              machine,
		debugger:        debugger.NewDebugger(machine),
		symbols:         make(map[string]uint32),
		sourceMap:       nil,
		sourceMapByAddr: make(map[uint32]string),
	}
}

// GetVM returns the underlying VM (for testing)
func (s *DebuggerService) GetVM() *vm.VM {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vm
}

// SetContext sets the Wails context for event emission
func (s *DebuggerService) SetContext(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
}

// SetStateChangedCallback sets a callback for GUI state updates during execution
func (s *DebuggerService) SetStateChangedCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateChangedCallback = callback
}

// LoadProgram loads a raw RV32 instruction/data image into memory at
// loadAddr and points execution at entryPoint. symbols is an optional
// address lookup table (e.g. parsed from a linker map sidecar); pass nil
// if none is available.
func (s *DebuggerService) LoadProgram(data []byte, loadAddr uint32, entryPoint uint32, symbols map[string]uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if symbols == nil {
		symbols = make(map[string]uint32)
	}
	s.symbols = symbols
	s.entryPoint = entryPoint

	s.sourceMap, s.sourceMapByAddr = buildSourceMap(data, loadAddr)

	// Create output buffer with event emission
	// IMPORTANT: Only set OutputWriter if it hasn't been configured already.
	// The API server sets up EventWriter for WebSocket broadcasting before calling LoadProgram.
	// The GUI (Wails) doesn't pre-configure OutputWriter, so we set up EventEmittingWriter for it.
	if s.vm.OutputWriter == os.Stdout {
		outputBuffer := &bytes.Buffer{}
		s.outputWriter = NewEventEmittingWriter(outputBuffer, s.ctx)
		s.vm.OutputWriter = s.outputWriter
	}

	// Load into debugger
	s.debugger.LoadSymbols(s.symbols)
	s.debugger.LoadSourceMap(s.sourceMapByAddr)

	// Load into VM memory
	if err := loader.LoadRaw(s.vm, data, loadAddr); err != nil {
		return err
	}
	s.vm.EntryPoint = entryPoint
	s.vm.SetEntryPoint(entryPoint)

	// Initialize stack pointer only if not already set (preserve InitializeStack value)
	if s.vm.StackTop == 0 {
		s.vm.InitializeStack(vm.RAMStart + vm.RAMSize)
	}

	s.vm.State = vm.StateHalted
	s.debugger.Running = false
	s.loaded = true

	return nil
}

// buildSourceMap decodes data instruction-by-instruction, following the same
// quadrant test CPU.Fetch uses to pick a 2- or 4-byte stride, and renders
// each instruction through the disassembler for display purposes.
func buildSourceMap(data []byte, loadAddr uint32) ([]SourceMapEntry, map[uint32]string) {
	d := disasm.New()
	var entries []SourceMapEntry
	byAddr := make(map[uint32]string)

	offset := uint32(0)
	for offset < uint32(len(data)) {
		addr := loadAddr + offset

		var word uint32
		quadrant := data[offset] & 0x3
		if quadrant != 0b11 {
			if offset+2 > uint32(len(data)) {
				break
			}
			word = uint32(data[offset]) | uint32(data[offset+1])<<8
		} else {
			if offset+4 > uint32(len(data)) {
				break
			}
			word = uint32(data[offset]) | uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 | uint32(data[offset+3])<<24
		}

		line := vm.Decode[string](d, word)
		entries = append(entries, SourceMapEntry{Address: addr, Line: line})
		byAddr[addr] = line

		if quadrant != 0b11 {
			offset += 2
		} else {
			offset += 4
		}
	}

	return entries, byAddr
}

// GetRegisterState returns current register state (thread-safe)
func (s *DebuggerService) GetRegisterState() RegisterState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var regs [32]uint32
	for i := 0; i < 32; i++ {
		regs[i] = s.vm.CPU.Rx(vm.Reg(i))
	}

	var trap TrapState
	if s.vm.CPU.Trapped() {
		cause := s.vm.CPU.TrapCause()
		trap = TrapState{Trapped: true, Kind: cause.Kind.String(), Value: cause.Addr}
	}

	return RegisterState{
		Registers: regs,
		Trap:      trap,
		PC:        s.vm.CPU.PC(),
		Cycles:    s.vm.CPU.Cycles,
	}
}

// Step executes a single instruction
func (s *DebuggerService) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vm.Step()
}

// Continue runs until breakpoint or halt
func (s *DebuggerService) Continue() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debugger.Running = true
	s.debugger.StepMode = debugger.StepNone

	return nil
}

// Pause pauses execution and sets VM state to halted
func (s *DebuggerService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugger.Running = false
	s.vm.State = vm.StateHalted
}

// Reset performs a complete reset to initial state
// This clears the loaded program's metadata and all breakpoints, and resets the VM's
// registers and execution state; memory contents are left as they are
// Use ResetToEntryPoint() if you want to restart the current program instead
func (s *DebuggerService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// VM reset: clears registers, pc, trap and execution state (memory is kept)
	s.vm.Reset()

	// Clear loaded program and associated metadata
	s.loaded = false
	s.entryPoint = 0
	s.vm.EntryPoint = 0
	s.vm.StackTop = 0
	s.symbols = make(map[string]uint32)
	s.sourceMap = nil
	s.sourceMapByAddr = make(map[uint32]string)

	// Clear all breakpoints
	s.debugger.Breakpoints.Clear()

	// Reset execution control
	s.debugger.Running = false
	s.vm.State = vm.StateHalted

	return nil
}

// ResetToEntryPoint resets VM to program entry point without clearing the loaded program
// This is useful for restarting execution of the current program
func (s *DebuggerService) ResetToEntryPoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		// No program loaded, perform full reset
		s.vm.Reset()
		s.vm.State = vm.StateHalted
		s.debugger.Running = false
		return nil
	}

	// Reset registers and execution state but preserve memory contents
	s.vm.ResetRegisters()
	s.debugger.Running = false

	return nil
}

// GetExecutionState returns current execution state
func (s *DebuggerService) GetExecutionState() ExecutionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return VMStateToExecution(s.vm.State)
}

// AddBreakpoint adds a breakpoint at the specified address
func (s *DebuggerService) AddBreakpoint(address uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate that the address corresponds to a decoded instruction
	if _, exists := s.sourceMapByAddr[address]; !exists {
		return fmt.Errorf("invalid breakpoint address: 0x%X does not correspond to a decoded instruction", address)
	}

	s.debugger.Breakpoints.AddBreakpoint(address, false, "")
	return nil
}

// RemoveBreakpoint removes a breakpoint
func (s *DebuggerService) RemoveBreakpoint(address uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debugger.Breakpoints.DeleteBreakpointAt(address)
}

// GetBreakpoints returns all breakpoints
func (s *DebuggerService) GetBreakpoints() []BreakpointInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bps := s.debugger.Breakpoints.GetAllBreakpoints()
	result := make([]BreakpointInfo, len(bps))
	for i, bp := range bps {
		result[i] = BreakpointInfo{
			Address: bp.Address,
			Enabled: bp.Enabled,
		}
	}
	return result
}

// ClearAllBreakpoints removes all breakpoints
func (s *DebuggerService) ClearAllBreakpoints() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugger.Breakpoints.Clear()
}

// GetMemory returns memory contents for a region
func (s *DebuggerService) GetMemory(address uint32, size uint32) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	serviceLog.Printf("GetMemory: address=0x%08X, size=%d", address, size)
	data := make([]byte, size)
	for i := uint32(0); i < size; i++ {
		b, err := s.vm.CPU.Mem.Read8(address + i)
		if err != nil {
			serviceLog.Printf("GetMemory: Read8 failed at offset %d: %v", i, err)
			// Return 0 for unmapped or unreadable memory instead of failing the whole request
			// This allows the memory view to show partial results at segment boundaries
			data[i] = 0
			continue
		}
		data[i] = b
	}
	serviceLog.Printf("GetMemory: success, returning %d bytes", len(data))
	return data, nil
}

// GetLastMemoryWrite returns the address of the last memory write and clears the flag
func (s *DebuggerService) GetLastMemoryWrite() MemoryWriteInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := MemoryWriteInfo{
		Address:  s.vm.CPU.Mem.LastWriteAddr,
		HasWrite: s.vm.CPU.Mem.HasWrite,
	}
	serviceLog.Printf("GetLastMemoryWrite: address=0x%08X, hasWrite=%v", result.Address, result.HasWrite)
	s.vm.CPU.Mem.ClearWrite()
	return result
}

// GetSourceLine returns the disassembled instruction text for an address
func (s *DebuggerService) GetSourceLine(address uint32) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sourceMapByAddr[address]
}

// GetSourceMap returns the source map entries
func (s *DebuggerService) GetSourceMap() []SourceMapEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return copy of source map to prevent external modification
	result := make([]SourceMapEntry, len(s.sourceMap))
	copy(result, s.sourceMap)
	return result
}

// GetSourceMapByAddr returns address-to-line lookup (for debugger display)
func (s *DebuggerService) GetSourceMapByAddr() map[uint32]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return copy to prevent external modification
	result := make(map[uint32]string, len(s.sourceMapByAddr))
	for addr, line := range s.sourceMapByAddr {
		result[addr] = line
	}
	return result
}

// GetSymbols returns all symbols
func (s *DebuggerService) GetSymbols() map[string]uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	symbols := make(map[string]uint32, len(s.symbols))
	for k, v := range s.symbols {
		symbols[k] = v
	}
	return symbols
}

// GetSymbolForAddress resolves an address to a symbol name
func (s *DebuggerService) GetSymbolForAddress(addr uint32) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getSymbolForAddressUnsafe(addr)
}

// RunUntilHalt runs program until halt or breakpoint
// If Running is already false (e.g., paused before goroutine started), returns immediately.
// This handles the race where Pause() is called between Continue() setting Running=true
// and this function starting execution.
func (s *DebuggerService) RunUntilHalt() error {
	serviceLog.Println("RunUntilHalt() called")
	s.mu.Lock()
	// Check if already paused before we started (handles race with Pause())
	if !s.debugger.Running {
		serviceLog.Println("RunUntilHalt() - already paused, exiting early")
		s.mu.Unlock()
		return nil
	}

	s.vm.State = vm.StateRunning
	s.mu.Unlock()

	stepCount := 0

	for {
		s.mu.Lock()
		if !s.debugger.Running || s.vm.State != vm.StateRunning {
			serviceLog.Printf("Exiting loop: Running=%v, State=%v", s.debugger.Running, s.vm.State)
			s.mu.Unlock()
			break
		}

		// Check breakpoints
		if shouldBreak, _ := s.debugger.ShouldBreak(); shouldBreak {
			serviceLog.Println("Breakpoint hit")
			s.debugger.Running = false
			s.vm.State = vm.StateBreakpoint
			s.mu.Unlock()
			break
		}

		// Capture values needed for step
		pc := s.vm.CPU.PC()

		// Execute step
		err := s.vm.Step()

		halted := s.vm.State == vm.StateHalted

		if stepCount == 0 {
			serviceLog.Printf("Executing at PC=0x%08X", pc)
		}

		// If error but VM is halted, it's normal program termination (ECALL exit)
		if err != nil && !halted {
			serviceLog.Printf("Step error: %v", err)
			s.debugger.Running = false
			s.mu.Unlock()
			return err
		}

		if halted {
			serviceLog.Println("VM halted")
			s.debugger.Running = false
			s.mu.Unlock()
			break
		}

		// Periodically yield to allow GUI to query state
		stepCount++
		if stepCount >= stepsBeforeYield {
			serviceLog.Printf("Yielding after %d steps", stepCount)
			stepCount = 0
			s.mu.Unlock()
			time.Sleep(1 * time.Millisecond)
			continue
		}

		s.mu.Unlock()
	}

	serviceLog.Println("RunUntilHalt() completed")
	return nil
}

// IsRunning returns whether execution is in progress
func (s *DebuggerService) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.debugger.Running
}

// SetRunning sets the running state synchronously
// Used by async execution methods to set state before launching goroutines
func (s *DebuggerService) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debugger.Running = running
	if running {
		s.vm.State = vm.StateRunning
	} else {
		// Don't override other states (halted, error, breakpoint)
		if s.vm.State == vm.StateRunning {
			s.vm.State = vm.StateHalted
		}
	}
}

// GetExitCode returns the program exit code
func (s *DebuggerService) GetExitCode() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vm.ExitCode
}

// GetOutput returns captured program output (clears buffer)
func (s *DebuggerService) GetOutput() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outputWriter == nil {
		return ""
	}

	return s.outputWriter.GetBufferAndClear()
}

// GetDisassembly returns disassembled instructions starting at address.
// Returns an empty slice if inputs are invalid or memory reads fail.
// Truncates the result if memory errors occur before count is reached.
//
// startAddr may point at either a base (4-byte) or compressed (2-byte)
// instruction; each entry's length determines the next entry's address.
func (s *DebuggerService) GetDisassembly(startAddr uint32, count int) []DisassemblyLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if count <= 0 || count > maxDisassemblyCount {
		return []DisassemblyLine{}
	}

	if s.vm == nil {
		return []DisassemblyLine{}
	}

	d := disasm.New()
	lines := make([]DisassemblyLine, 0, count)
	addr := startAddr

	for i := 0; i < count; i++ {
		half, err := s.vm.CPU.Mem.Read16(addr)
		if err != nil {
			break
		}

		var word uint32
		quadrant := half & 0x3
		if quadrant != 0b11 {
			word = uint32(half)
		} else {
			w, err := s.vm.CPU.Mem.Read32(addr)
			if err != nil {
				break
			}
			word = w
		}

		symbol := s.getSymbolForAddressUnsafe(addr)
		mnemonic := vm.Decode[string](d, word)

		lines = append(lines, DisassemblyLine{
			Address:  addr,
			Opcode:   word,
			Mnemonic: mnemonic,
			Symbol:   symbol,
		})

		if quadrant != 0b11 {
			addr += 2
		} else {
			addr += 4
		}
	}

	return lines
}

// GetStack returns stack contents from SP+offset.
// Returns an empty slice if inputs are invalid or memory reads fail.
//
// Parameters:
//   - offset: stack offset in words (multiplied by 4 for byte offset).
//     Must be in range [-maxStackOffset, maxStackOffset] to prevent wraparound attacks.
//   - count: number of stack entries to read. Must be positive and <= maxStackCount.
//
// The function performs safe arithmetic with overflow detection to prevent
// integer wraparound vulnerabilities.
func (s *DebuggerService) GetStack(offset int, count int) []StackEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if count <= 0 || count > maxStackCount {
		return []StackEntry{}
	}

	if offset < -maxStackOffset || offset > maxStackOffset {
		return []StackEntry{}
	}

	if s.vm == nil {
		return []StackEntry{}
	}

	entries := make([]StackEntry, 0, count)
	sp := s.vm.CPU.Rx(vm.RegSp)

	offsetBytes := int64(offset) * 4
	newAddr := int64(sp) + offsetBytes

	if newAddr < 0 || newAddr > 0xFFFFFFFF {
		return []StackEntry{}
	}

	startAddr := uint32(newAddr)

	for i := 0; i < count; i++ {
		addrOffset := int64(i) * 4
		nextAddr := int64(startAddr) + addrOffset

		if nextAddr < 0 || nextAddr > 0xFFFFFFFF {
			break
		}

		addr := uint32(nextAddr)

		value, err := s.vm.CPU.Mem.Read32(addr)
		if err != nil {
			break
		}

		symbol := s.getSymbolForAddressUnsafe(value)

		entries = append(entries, StackEntry{
			Address: addr,
			Value:   value,
			Symbol:  symbol,
		})
	}

	return entries
}

// getSymbolForAddressUnsafe is the internal version without locking
func (s *DebuggerService) getSymbolForAddressUnsafe(addr uint32) string {
	for name, symbolAddr := range s.symbols {
		if symbolAddr == addr {
			return name
		}
	}
	return ""
}

// StepOver executes one instruction, stepping over function calls
func (s *DebuggerService) StepOver() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugger == nil || !s.loaded {
		return fmt.Errorf("no program loaded")
	}

	s.debugger.SetStepOver()

	for s.debugger.Running {
		if s.debugger.StepMode != debugger.StepSingle {
			if shouldBreak, _ := s.debugger.ShouldBreak(); shouldBreak {
				s.debugger.Running = false
				break
			}
		}

		err := s.vm.Step()
		if err != nil {
			s.debugger.Running = false
			return err
		}

		if s.debugger.StepMode == debugger.StepSingle {
			if shouldBreak, _ := s.debugger.ShouldBreak(); shouldBreak {
				s.debugger.Running = false
				break
			}
		}
	}

	return nil
}

// StepOut executes until the current function returns
func (s *DebuggerService) StepOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugger == nil || !s.loaded {
		return fmt.Errorf("no program loaded")
	}

	s.debugger.SetStepOut()

	return nil
}

// AddWatchpoint adds a watchpoint at the specified address
func (s *DebuggerService) AddWatchpoint(address uint32, watchType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugger == nil {
		return fmt.Errorf("no program loaded")
	}

	var wpType debugger.WatchType
	switch watchType {
	case "read":
		wpType = debugger.WatchRead
	case "write":
		wpType = debugger.WatchWrite
	case "readwrite":
		wpType = debugger.WatchReadWrite
	default:
		return fmt.Errorf("invalid watchpoint type: %s", watchType)
	}

	expression := fmt.Sprintf("[0x%08X]", address)
	s.debugger.Watchpoints.AddWatchpoint(wpType, expression, address, false, 0)

	return nil
}

// RemoveWatchpoint removes a watchpoint by ID
func (s *DebuggerService) RemoveWatchpoint(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugger == nil {
		return fmt.Errorf("no program loaded")
	}

	return s.debugger.Watchpoints.DeleteWatchpoint(id)
}

// GetWatchpoints returns all watchpoints
func (s *DebuggerService) GetWatchpoints() []WatchpointInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.debugger == nil {
		return []WatchpointInfo{}
	}

	wps := s.debugger.Watchpoints.GetAllWatchpoints()
	result := make([]WatchpointInfo, len(wps))
	for i, wp := range wps {
		var wpType string
		switch wp.Type {
		case debugger.WatchRead:
			wpType = "read"
		case debugger.WatchWrite:
			wpType = "write"
		case debugger.WatchReadWrite:
			wpType = "readwrite"
		}

		result[i] = WatchpointInfo{
			ID:      wp.ID,
			Address: wp.Address,
			Type:    wpType,
			Enabled: wp.Enabled,
		}
	}
	return result
}

// ExecuteCommand executes a debugger command and returns output
func (s *DebuggerService) ExecuteCommand(command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugger == nil {
		return "", fmt.Errorf("no program loaded")
	}

	err := s.debugger.ExecuteCommand(command)
	output := s.debugger.GetOutput()

	return output, err
}

// EvaluateExpression evaluates an expression and returns the result
func (s *DebuggerService) EvaluateExpression(expr string) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debugger == nil || s.debugger.Evaluator == nil {
		return 0, fmt.Errorf("no program loaded")
	}

	return s.debugger.Evaluator.EvaluateExpression(expr, s.vm, s.symbols)
}

// EnableExecutionTrace enables execution tracing
func (s *DebuggerService) EnableExecutionTrace() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vm.ExecutionTrace == nil {
		var buf bytes.Buffer
		s.vm.ExecutionTrace = vm.NewExecutionTrace(&buf)
	}

	s.vm.ExecutionTrace.Enabled = true
	s.vm.ExecutionTrace.Start()
	return nil
}

// DisableExecutionTrace disables execution tracing
func (s *DebuggerService) DisableExecutionTrace() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vm.ExecutionTrace != nil {
		s.vm.ExecutionTrace.Enabled = false
	}
}

// GetExecutionTraceData returns execution trace entries
func (s *DebuggerService) GetExecutionTraceData() ([]vm.TraceEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.vm.ExecutionTrace == nil {
		return []vm.TraceEntry{}, nil
	}

	return s.vm.ExecutionTrace.GetEntries(), nil
}

// ClearExecutionTrace clears execution trace entries
func (s *DebuggerService) ClearExecutionTrace() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vm.ExecutionTrace != nil {
		s.vm.ExecutionTrace.Clear()
	}
}

// EnableStatistics enables performance statistics collection
func (s *DebuggerService) EnableStatistics() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vm.Statistics == nil {
		s.vm.Statistics = vm.NewPerformanceStatistics()
	}

	s.vm.Statistics.Enabled = true
	s.vm.Statistics.Start()
	return nil
}

// DisableStatistics disables performance statistics collection
func (s *DebuggerService) DisableStatistics() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vm.Statistics != nil {
		s.vm.Statistics.Enabled = false
	}
}

// GetStatistics returns performance statistics
func (s *DebuggerService) GetStatistics() (*vm.PerformanceStatistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.vm.Statistics == nil {
		return nil, fmt.Errorf("statistics not enabled")
	}

	s.vm.Statistics.Finalize()

	return s.vm.Statistics, nil
}
