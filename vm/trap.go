package vm

import "fmt"

// TrapKind enumerates the architectural trap causes a CPU can latch.
// Go has no payload-carrying enum, so TrapCause pairs a TrapKind with
// the payload fields relevant to that kind (Word for IllegalInstruction,
// Addr for the access-fault kinds); the rest stay zero.
type TrapKind int

const (
	InstructionAddressMisaligned TrapKind = iota
	InstructionAccessFault
	IllegalInstruction
	Breakpoint
	LoadAddressMisaligned
	LoadAccessFault
	StoreAddressMisaligned
	StoreAccessFault
	EnvironmentCallFromUMode
	EnvironmentCallFromSMode
	EnvironmentCallFromMMode
	InstructionPageFault
	LoadPageFault
	StorePageFault
	SupervisorSoftwareInterrupt
	MachineSoftwareInterrupt
	SupervisorTimerInterrupt
	MachineTimerInterrupt
	SupervisorExternalInterrupt
	MachineExternalInterrupt
)

var trapKindNames = [...]string{
	"instruction-address-misaligned",
	"instruction-access-fault",
	"illegal-instruction",
	"breakpoint",
	"load-address-misaligned",
	"load-access-fault",
	"store-address-misaligned",
	"store-access-fault",
	"environment-call-from-u-mode",
	"environment-call-from-s-mode",
	"environment-call-from-m-mode",
	"instruction-page-fault",
	"load-page-fault",
	"store-page-fault",
	"supervisor-software-interrupt",
	"machine-software-interrupt",
	"supervisor-timer-interrupt",
	"machine-timer-interrupt",
	"supervisor-external-interrupt",
	"machine-external-interrupt",
}

// String renders the trap kind's wire/display name, e.g. "illegal-instruction".
func (k TrapKind) String() string {
	if int(k) < 0 || int(k) >= len(trapKindNames) {
		return "unknown-trap"
	}
	return trapKindNames[k]
}

// TrapCause describes why a CPU latched a trap. Word is the offending
// instruction word for IllegalInstruction; Addr is the faulting address
// for the *AccessFault kinds. Both are zero for kinds that carry no
// payload.
type TrapCause struct {
	Kind TrapKind
	Word uint32
	Addr uint32
}

// Error satisfies the error interface so a TrapCause can be logged or
// wrapped by host code without a separate string-rendering path.
func (t TrapCause) Error() string {
	switch t.Kind {
	case IllegalInstruction:
		return fmt.Sprintf("%s: word=0x%08x", t.Kind, t.Word)
	case LoadAccessFault, StoreAccessFault:
		return fmt.Sprintf("%s: addr=0x%08x", t.Kind, t.Addr)
	default:
		return t.Kind.String()
	}
}

// Trapped reports whether the CPU currently has a latched trap.
func (c *CPU) Trapped() bool {
	return c.trap != nil
}

// TrapCause returns the CPU's latched trap cause, or nil if untrapped.
func (c *CPU) TrapCause() *TrapCause {
	return c.trap
}

// ClearTrap discards the latched trap, letting execution resume.
func (c *CPU) ClearTrap() {
	c.trap = nil
}

// HandleTrap latches cause as the CPU's current trap. A second trap
// raised before the first is cleared overwrites it; RV32IMFC has no
// nested-trap stack in scope here.
func (c *CPU) HandleTrap(cause TrapCause) {
	c.trap = &cause
}

// HandleEcall latches the default ecall trap. The handler interface
// exists so a future privileged-mode implementation could latch
// EnvironmentCallFromUMode/SMode instead; the simulator always runs in
// machine mode.
func (c *CPU) HandleEcall() {
	c.HandleTrap(TrapCause{Kind: EnvironmentCallFromMMode})
}

// HandleEbreak latches a Breakpoint trap, the RV32 debugger hook.
func (c *CPU) HandleEbreak() {
	c.HandleTrap(TrapCause{Kind: Breakpoint})
}
