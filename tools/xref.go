package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rv32emu/rv32emu/rv32ir"
	"github.com/rv32emu/rv32emu/vm"
)

// ReferenceType indicates how an address is used.
type ReferenceType int

const (
	RefDefinition ReferenceType = iota // Instruction address targeted by some other reference
	RefBranch                          // Conditional branch or unconditional jump target
	RefLoad                            // Load address (auipc+load pairing)
	RefStore                           // Store address (auipc+store pairing)
	RefData                            // Address materialized but not obviously loaded/stored/called
	RefCall                            // jal/jalr/c.jal/c.jalr target with rd=ra
)

func (r ReferenceType) String() string {
	switch r {
	case RefDefinition:
		return "definition"
	case RefBranch:
		return "branch"
	case RefLoad:
		return "load"
	case RefStore:
		return "store"
	case RefData:
		return "data"
	case RefCall:
		return "call"
	default:
		return "unknown"
	}
}

// Reference represents a single reference to an address, found at the
// instruction located at Address.
type Reference struct {
	Type    ReferenceType
	Address uint32 // address of the referencing instruction
}

// Symbol represents an address and all its references. Since a raw
// RV32 image carries no label table, the Name is synthesized from the
// address and the kind of reference that first introduced it.
type Symbol struct {
	Addr        uint32
	Name        string
	Definition  *Reference
	References  []*Reference
	IsFunction  bool
	IsDataLabel bool
}

// Xref is the cross-reference database built by BuildXref: every
// address reached by a branch, jump, call, or auipc-based load/store
// pairing, together with who references it.
type Xref struct {
	symbols map[uint32]*Symbol
}

// auipcRef tracks the absolute base address materialized by an AUIPC
// still live in a register, so the following addi/load/store/jalr that
// consumes it (the standard RV32 absolute-addressing idiom, since RV32
// has no load-address-of-label instruction) can be resolved to a target
// address instead of staying a bare immediate.
type auipcRef struct {
	base uint32
}

// BuildXref decodes every instruction in image (loaded at base) and
// derives a cross-reference of branch/jump/call targets and
// auipc-paired load/store/data addresses. It walks the image with the
// same variable 2-or-4-byte stride as vm.CPU.Fetch, so compressed and
// base instructions interleave correctly.
func BuildXref(image []byte, base uint32) *Xref {
	x := &Xref{symbols: make(map[uint32]*Symbol)}
	auipcBases := make(map[vm.Reg]auipcRef)
	visited := make(map[uint32]bool)

	offset := uint32(0)
	for offset < uint32(len(image)) {
		addr := base + offset
		quadrant := image[offset] & 0x3

		var word, size uint32
		if quadrant != 0b11 {
			if offset+2 > uint32(len(image)) {
				break
			}
			word = uint32(image[offset]) | uint32(image[offset+1])<<8
			size = 2
		} else {
			if offset+4 > uint32(len(image)) {
				break
			}
			word = uint32(image[offset]) | uint32(image[offset+1])<<8 |
				uint32(image[offset+2])<<16 | uint32(image[offset+3])<<24
			size = 4
		}

		visited[addr] = true
		inst := rv32ir.Decode(word)
		x.visit(addr, inst, auipcBases)
		offset += size
	}

	for addr := range visited {
		x.MarkDefined(addr)
	}

	return x
}

func (x *Xref) visit(addr uint32, inst rv32ir.Instruction, auipcBases map[vm.Reg]auipcRef) {
	switch {
	case inst.Op.IsAuipc():
		auipcBases[inst.Rd] = auipcRef{base: addr + inst.Imm}
		return

	case inst.Op.IsDirectJump():
		target := addr + inst.Imm
		refType := RefBranch
		if inst.Op.IsCall() && inst.Rd == vm.RegRa {
			refType = RefCall
		}
		x.addReference(target, refType, addr)

	case inst.Op.IsIndirectJump():
		if b, ok := auipcBases[inst.Rs1]; ok {
			target := b.base + inst.Imm
			refType := RefBranch
			if inst.Rd == vm.RegRa {
				refType = RefCall
			}
			x.addReference(target, refType, addr)
			delete(auipcBases, inst.Rs1)
		}

	case inst.Op.IsLoad():
		if b, ok := auipcBases[inst.Rs1]; ok {
			x.addReference(b.base+inst.Imm, RefLoad, addr)
			delete(auipcBases, inst.Rs1)
		}

	case inst.Op.IsStore():
		if b, ok := auipcBases[inst.Rs1]; ok {
			x.addReference(b.base+inst.Imm, RefStore, addr)
			delete(auipcBases, inst.Rs1)
		}

	case inst.Op == rv32ir.OpAddi:
		if b, ok := auipcBases[inst.Rs1]; ok && inst.Rs1 == inst.Rd {
			x.addReference(b.base+inst.Imm, RefData, addr)
			delete(auipcBases, inst.Rs1)
		}
	}

	// Any other write to a register invalidates a pending auipc base
	// for it, since the absolute-address idiom requires the very next
	// use of that register to be the paired consumer.
	if inst.Rd != vm.RegZero && !inst.Op.IsAuipc() {
		delete(auipcBases, inst.Rd)
	}
}

// addReference records that the instruction at fromAddr references
// target, creating target's Symbol if this is its first reference.
func (x *Xref) addReference(target uint32, refType ReferenceType, fromAddr uint32) {
	sym := x.symbolAt(target, refType)
	sym.References = append(sym.References, &Reference{Type: refType, Address: fromAddr})
	if refType == RefCall {
		sym.IsFunction = true
	}
	if refType == RefLoad || refType == RefStore || refType == RefData {
		sym.IsDataLabel = true
	}
}

// symbolAt returns the Symbol for addr, synthesizing one (and its
// address-derived name) on first reference.
func (x *Xref) symbolAt(addr uint32, refType ReferenceType) *Symbol {
	if sym, ok := x.symbols[addr]; ok {
		return sym
	}

	prefix := "loc"
	switch refType {
	case RefCall:
		prefix = "sub"
	case RefLoad, RefStore, RefData:
		prefix = "data"
	}

	sym := &Symbol{
		Addr: addr,
		Name: fmt.Sprintf("%s_%08x", prefix, addr),
	}
	x.symbols[addr] = sym
	return sym
}

// MarkDefined records that addr is a valid instruction boundary within
// the scanned image, so a later report can distinguish a target that
// lands inside code from one that doesn't (e.g. a miscomputed
// auipc-pairing, or data embedded between routines).
func (x *Xref) MarkDefined(addr uint32) {
	sym, ok := x.symbols[addr]
	if !ok {
		return
	}
	if sym.Definition == nil {
		sym.Definition = &Reference{Type: RefDefinition, Address: addr}
	}
}

// GetSymbols returns every symbol discovered, keyed by address.
func (x *Xref) GetSymbols() map[uint32]*Symbol {
	return x.symbols
}

// GetSymbol returns a specific symbol by address.
func (x *Xref) GetSymbol(addr uint32) (*Symbol, bool) {
	sym, ok := x.symbols[addr]
	return sym, ok
}

// GetFunctions returns all symbols reached by a call (jal/jalr with
// rd=ra), sorted by address.
func (x *Xref) GetFunctions() []*Symbol {
	return x.filterSort(func(s *Symbol) bool { return s.IsFunction })
}

// GetDataLabels returns all symbols reached only via auipc-paired
// load/store/address materialization, sorted by address.
func (x *Xref) GetDataLabels() []*Symbol {
	return x.filterSort(func(s *Symbol) bool { return s.IsDataLabel && !s.IsFunction })
}

// GetUndefinedSymbols returns symbols referenced but never confirmed as
// a real instruction boundary within the scanned image.
func (x *Xref) GetUndefinedSymbols() []*Symbol {
	return x.filterSort(func(s *Symbol) bool { return s.Definition == nil })
}

func (x *Xref) filterSort(keep func(*Symbol) bool) []*Symbol {
	out := make([]*Symbol, 0)
	for _, sym := range x.symbols {
		if keep(sym) {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// XRefReport renders a Xref as a text cross-reference listing.
type XRefReport struct {
	symbols []*Symbol
}

// NewXRefReport builds a report over x's symbols, sorted by address.
func NewXRefReport(x *Xref) *XRefReport {
	sorted := make([]*Symbol, 0, len(x.symbols))
	for _, sym := range x.symbols {
		sorted = append(sorted, sym)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Addr < sorted[j].Addr })
	return &XRefReport{symbols: sorted}
}

// String generates a text report, one block per symbol.
func (r *XRefReport) String() string {
	var sb strings.Builder

	sb.WriteString("Address Cross-Reference\n")
	sb.WriteString("========================\n\n")

	for _, sym := range r.symbols {
		sb.WriteString(fmt.Sprintf("%-20s 0x%08x", sym.Name, sym.Addr))
		switch {
		case sym.IsFunction:
			sb.WriteString(" [function]")
		case sym.IsDataLabel:
			sb.WriteString(" [data]")
		default:
			sb.WriteString(" [label]")
		}
		sb.WriteString("\n")

		if sym.Definition != nil {
			sb.WriteString("  Defined:     yes\n")
		} else {
			sb.WriteString("  Defined:     (outside scanned range)\n")
		}

		if len(sym.References) == 0 {
			sb.WriteString("  Referenced:  (never)\n")
		} else {
			sb.WriteString(fmt.Sprintf("  Referenced:  %d time(s)\n", len(sym.References)))

			byType := make(map[ReferenceType][]*Reference)
			for _, ref := range sym.References {
				byType[ref.Type] = append(byType[ref.Type], ref)
			}

			for _, refType := range []ReferenceType{RefCall, RefBranch, RefLoad, RefStore, RefData} {
				refs := byType[refType]
				if len(refs) == 0 {
					continue
				}
				addrs := make([]string, len(refs))
				for i, ref := range refs {
					addrs[i] = fmt.Sprintf("0x%08x", ref.Address)
				}
				sb.WriteString(fmt.Sprintf("    %-10s: %s\n", refType.String(), strings.Join(addrs, ", ")))
			}
		}

		sb.WriteString("\n")
	}

	functions, dataLabels := 0, 0
	for _, sym := range r.symbols {
		if sym.IsFunction {
			functions++
		} else if sym.IsDataLabel {
			dataLabels++
		}
	}

	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Total symbols: %d\n", len(r.symbols)))
	sb.WriteString(fmt.Sprintf("Functions:     %d\n", functions))
	sb.WriteString(fmt.Sprintf("Data labels:   %d\n", dataLabels))

	return sb.String()
}
