package api

import (
	"time"

	"github.com/rv32emu/rv32emu/service"
)

// SessionCreateRequest represents a request to create a new session
type SessionCreateRequest struct{}

// SessionCreateResponse represents the response from creating a session
type SessionCreateResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStatusResponse represents the current status of a session
type SessionStatusResponse struct {
	SessionID string `json:"sessionId"`
	State     string `json:"state"`
	PC        uint32 `json:"pc"`
	Cycles    uint64 `json:"cycles"`
	Error     string `json:"error,omitempty"`
	HasWrite  bool   `json:"hasWrite"`
	WriteAddr uint32 `json:"writeAddr,omitempty"`
}

// LoadProgramRequest represents a request to load a raw RV32 image. Data is
// the raw instruction/data bytes (base64-decoded by the JSON layer);
// Symbols is an optional name->address table for display purposes.
type LoadProgramRequest struct {
	Data       []byte            `json:"data"`
	LoadAddr   uint32            `json:"loadAddr"`
	EntryPoint uint32            `json:"entryPoint,omitempty"`
	Symbols    map[string]uint32 `json:"symbols,omitempty"`
}

// LoadProgramResponse represents the response from loading a program
type LoadProgramResponse struct {
	Success bool              `json:"success"`
	Errors  []string          `json:"errors,omitempty"`
	Symbols map[string]uint32 `json:"symbols,omitempty"`
}

// RegistersResponse represents the current register state: 32 general
// registers plus the CPU's latched trap condition.
type RegistersResponse struct {
	Registers [32]uint32 `json:"registers"`
	PC        uint32     `json:"pc"`
	Cycles    uint64     `json:"cycles"`
	Trap      TrapInfo   `json:"trap"`
}

// TrapInfo reports whether the CPU is halted on a trap and why.
type TrapInfo struct {
	Trapped bool   `json:"trapped"`
	Kind    string `json:"kind,omitempty"`
	Value   uint32 `json:"value,omitempty"`
}

// MemoryRequest represents a request for memory data
type MemoryRequest struct {
	Address uint32 `json:"address"`
	Length  uint32 `json:"length"`
}

// MemoryResponse represents memory data
type MemoryResponse struct {
	Address uint32 `json:"address"`
	Data    []byte `json:"data"`
	Length  uint32 `json:"length"`
}

// DisassemblyRequest represents a request for disassembly
type DisassemblyRequest struct {
	Address uint32 `json:"address"`
	Count   uint32 `json:"count"`
}

// DisassemblyResponse represents disassembled instructions
type DisassemblyResponse struct {
	Instructions []InstructionInfo `json:"instructions"`
}

// InstructionInfo represents a disassembled instruction
type InstructionInfo struct {
	Address     uint32 `json:"address"`
	MachineCode uint32 `json:"machineCode"`
	Disassembly string `json:"disassembly"`
	Symbol      string `json:"symbol,omitempty"`
}

// BreakpointRequest represents a request to add/remove a breakpoint
type BreakpointRequest struct {
	Address uint32 `json:"address"`
}

// BreakpointsResponse represents a list of breakpoints
type BreakpointsResponse struct {
	Breakpoints []uint32 `json:"breakpoints"`
}

// WatchpointResponse represents a single watchpoint
type WatchpointResponse struct {
	ID      int    `json:"id"`
	Address uint32 `json:"address"`
	Type    string `json:"type"`
}

// WatchpointsResponse represents a list of watchpoints
type WatchpointsResponse struct {
	Watchpoints []service.WatchpointInfo `json:"watchpoints"`
}

// TraceEntryInfo represents a single execution trace entry
type TraceEntryInfo struct {
	Sequence        uint64            `json:"sequence"`
	Address         uint32            `json:"address"`
	Opcode          uint32            `json:"opcode"`
	Disassembly     string            `json:"disassembly"`
	RegisterChanges map[string]uint32 `json:"registerChanges"`
	Trapped         bool              `json:"trapped"`
	TrapKind        string            `json:"trapKind,omitempty"`
	DurationNs      int64             `json:"durationNs"`
}

// TraceDataResponse represents execution trace data
type TraceDataResponse struct {
	Entries []TraceEntryInfo `json:"entries"`
	Count   int              `json:"count"`
}

// StatisticsResponse represents performance statistics
type StatisticsResponse struct {
	TotalInstructions  uint64            `json:"totalInstructions"`
	TotalCycles        uint64            `json:"totalCycles"`
	ExecutionTimeMs    int64             `json:"executionTimeMs"`
	InstructionsPerSec float64           `json:"instructionsPerSec"`
	InstructionCounts  map[string]uint64 `json:"instructionCounts"`
	BranchCount        uint64            `json:"branchCount"`
	BranchTakenCount   uint64            `json:"branchTakenCount"`
	BranchMissedCount  uint64            `json:"branchMissedCount"`
	MemoryReads        uint64            `json:"memoryReads"`
	MemoryWrites       uint64            `json:"memoryWrites"`
	BytesRead          uint64            `json:"bytesRead"`
	BytesWritten       uint64            `json:"bytesWritten"`
}

// ExecutionConfig holds execution-related configuration defaults
type ExecutionConfig struct {
	MaxCycles      uint64 `json:"maxCycles"`
	StackSize      uint32 `json:"stackSize"`
	DefaultEntry   string `json:"defaultEntry"`
	EnableTrace    bool   `json:"enableTrace"`
	EnableMemTrace bool   `json:"enableMemTrace"`
	EnableStats    bool   `json:"enableStats"`
}

// DebuggerConfig holds debugger UI configuration defaults
type DebuggerConfig struct {
	HistorySize    int  `json:"historySize"`
	AutoSaveBreaks bool `json:"autoSaveBreaks"`
	ShowSource     bool `json:"showSource"`
	ShowRegisters  bool `json:"showRegisters"`
}

// DisplayConfig holds display formatting configuration defaults
type DisplayConfig struct {
	ColorOutput   bool   `json:"colorOutput"`
	BytesPerLine  int    `json:"bytesPerLine"`
	DisasmContext int    `json:"disasmContext"`
	SourceContext int    `json:"sourceContext"`
	NumberFormat  string `json:"numberFormat"`
}

// TraceConfig holds execution trace configuration defaults
type TraceConfig struct {
	OutputFile    string `json:"outputFile"`
	FilterRegs    string `json:"filterRegs"`
	IncludeFlags  bool   `json:"includeFlags"`
	IncludeTiming bool   `json:"includeTiming"`
	MaxEntries    int    `json:"maxEntries"`
}

// StatisticsConfig holds statistics collection configuration defaults
type StatisticsConfig struct {
	OutputFile     string `json:"outputFile"`
	Format         string `json:"format"`
	CollectHotPath bool   `json:"collectHotPath"`
	TrackCalls     bool   `json:"trackCalls"`
}

// ConfigResponse represents the full server configuration
type ConfigResponse struct {
	Execution  ExecutionConfig  `json:"execution"`
	Debugger   DebuggerConfig   `json:"debugger"`
	Display    DisplayConfig    `json:"display"`
	Trace      TraceConfig      `json:"trace"`
	Statistics StatisticsConfig `json:"statistics"`
}

// ExampleInfo represents a single example program entry
type ExampleInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// ExamplesResponse represents a list of example programs
type ExamplesResponse struct {
	Examples []ExampleInfo `json:"examples"`
	Count    int           `json:"count"`
}

// ExampleContentResponse represents a single example program's content
type ExampleContentResponse struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
	Size    int64  `json:"size"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse represents a simple success response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OutputEvent represents console output
type OutputEvent struct {
	Stream  string `json:"stream"`  // "stdout" or "stderr"
	Content string `json:"content"` // Output content
}

// ExecutionEvent represents execution events like breakpoints
type ExecutionEvent struct {
	Event   string `json:"event"`            // "breakpoint_hit", "error", "halted"
	Address uint32 `json:"address,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	Message string `json:"message,omitempty"`
}

// ToRegisterResponse converts service.RegisterState to API response
func ToRegisterResponse(regs *service.RegisterState) *RegistersResponse {
	return &RegistersResponse{
		Registers: regs.Registers,
		PC:        regs.PC,
		Cycles:    regs.Cycles,
		Trap: TrapInfo{
			Trapped: regs.Trap.Trapped,
			Kind:    regs.Trap.Kind,
			Value:   regs.Trap.Value,
		},
	}
}

// ToInstructionInfo converts service.DisassemblyLine to API response
func ToInstructionInfo(line *service.DisassemblyLine) InstructionInfo {
	return InstructionInfo{
		Address:     line.Address,
		MachineCode: line.Opcode,
		Disassembly: line.Mnemonic,
		Symbol:      line.Symbol,
	}
}
