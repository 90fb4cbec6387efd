package vm

// CPU represents RV32IMFC processor state: the program counter, a
// latched next-pc (the address Fetch will commit to pc on the next
// call), the 32 integer registers, the 32 float registers, memory, and
// the latched trap, if any. It implements Consumer[struct{}] itself
// (see branch.go, arithmetic.go, inst_memory.go, multiply.go,
// compressed.go, float.go) so Decode(cpu, word) executes the
// instruction directly — the "execute" consumer, static-dispatch
// option (a) from the decoder-consumer design.
type CPU struct {
	pc     uint32
	nextPC uint32
	x      [32]uint32
	f      [32]float32
	Mem    *Memory
	trap   *TrapCause
	Cycles uint64
}

// NewCPU creates a CPU with the given memory and pc/next_pc at 0.
func NewCPU(mem *Memory) *CPU {
	return &CPU{Mem: mem}
}

// PC returns the current program counter.
func (c *CPU) PC() uint32 {
	return c.pc
}

// SetNextPC sets the address Fetch will commit to pc on its next call.
// Fetch already sets next_pc to the address of the following
// instruction; only the jumps (Jal/Jalr and their compressed forms) and
// taken branches call this to override it. A handler that traps may
// leave it stale, per spec.md's open question on next_pc-on-trap.
func (c *CPU) SetNextPC(address uint32) {
	c.nextPC = address
}

// Fetch commits next_pc into pc, reads the instruction word at the new
// pc, advances next_pc past it (2 bytes if the word's low bits mark it
// compressed, 4 otherwise), and returns the raw word. A fetch fault
// latches InstructionAccessFault instead of returning an error, since a
// fetch fault is an architectural event, not a host error.
func (c *CPU) Fetch() uint32 {
	c.pc = c.nextPC
	word, err := c.Mem.Read32(c.pc)
	if err != nil {
		// A word read fails at a pc that is only halfword-aligned, and at
		// the tail of mapped memory; fall back to halfword fetches,
		// reading the upper half too when the low bits mark a 32-bit
		// encoding.
		half, herr := c.Mem.Read16(c.pc)
		if herr != nil {
			c.HandleTrap(TrapCause{Kind: InstructionAccessFault, Addr: c.pc})
			return 0
		}
		word = uint32(half)
		if Word(word).Quadrant() == 0b11 {
			upper, uerr := c.Mem.Read16(c.pc + 2)
			if uerr != nil {
				c.HandleTrap(TrapCause{Kind: InstructionAccessFault, Addr: c.pc})
				return 0
			}
			word |= uint32(upper) << 16
		}
	}
	if Word(word).Quadrant() != 0b11 {
		c.nextPC = c.pc + 2
		return word & 0xffff
	}
	c.nextPC = c.pc + 4
	return word
}

// Step fetches and executes one instruction, returning false once the
// CPU is trapped (the caller must ClearTrap before stepping again).
func (c *CPU) Step() bool {
	if c.Trapped() {
		return false
	}
	word := c.Fetch()
	if c.Trapped() {
		return false
	}
	Decode[struct{}](c, word)
	c.Cycles++
	return !c.Trapped()
}

// Rx returns the value in integer register reg. x0 always reads zero.
func (c *CPU) Rx(reg Reg) uint32 {
	return c.x[reg&0x1f]
}

// Wx writes val to integer register reg. x0 is re-zeroed immediately
// after every write, the same "hard-wired zero" trick the reference
// implementation uses instead of special-casing every writer.
func (c *CPU) Wx(reg Reg, val uint32) {
	c.x[reg&0x1f] = val
	c.x[0] = 0
}

// Rf returns the value in float register reg.
func (c *CPU) Rf(reg Reg) float32 {
	return c.f[reg&0x1f]
}

// Wf writes val to float register reg. Unlike Rx/Wx, f0 is an ordinary
// register; the F extension has no hard-wired-zero register.
func (c *CPU) Wf(reg Reg, val float32) {
	c.f[reg&0x1f] = val
}

// Reset zeroes every register and both program counters, and clears
// any latched trap. Memory contents are left untouched; the loader is
// responsible for re-populating the image.
func (c *CPU) Reset() {
	c.pc = 0
	c.nextPC = 0
	c.x = [32]uint32{}
	c.f = [32]float32{}
	c.trap = nil
	c.Cycles = 0
}
