package vm

import "fmt"

// Default address-space layout: a 16KB ROM region, a 16KB RAM region,
// and a two-byte TTY MMIO window, matching the reference memory map.
// A host assembling its own layout can still build a Memory from
// arbitrary segments via AddSegment.
const (
	ROMStart = 0x00000000
	ROMSize  = 0x00004000
	RAMStart = 0x00004000
	RAMSize  = 0x00004000

	TTYStatusAddr = 0x00008000 // read-only, always reads 1 (ready)
	TTYDataAddr   = 0x00008001 // write-only, each byte sinks to Console
)

// MemoryPermission is a bitmask of the operations a segment allows.
type MemoryPermission byte

const (
	PermNone  MemoryPermission = 0
	PermRead  MemoryPermission = 1 << 0
	PermWrite MemoryPermission = 1 << 1
)

// MemorySegment is a named, permissioned, contiguous byte range.
type MemorySegment struct {
	Name        string
	Start       uint32
	Size        uint32
	Data        []byte
	Permissions MemoryPermission
}

// Memory is the bus a CPU issues loads and stores through: an ordered
// list of segments plus the TTY MMIO special case. Every access is
// checked for mapping, permission, and (for halfword/word) alignment
// before it touches a segment's backing slice, so an unmapped or
// misaligned access always yields a fault address instead of panicking.
type Memory struct {
	Segments    []*MemorySegment
	StrictAlign bool
	Console     func(byte)

	AccessCount uint64
	ReadCount   uint64
	WriteCount  uint64

	// LastWriteAddr/HasWrite track the most recent store, for a debugger's
	// memory view to know which region to refresh without diffing the
	// whole address space every step.
	LastWriteAddr uint32
	HasWrite      bool
}

// ClearWrite resets the last-write marker; callers poll HasWrite then
// clear it once they've consumed the notification.
func (m *Memory) ClearWrite() {
	m.HasWrite = false
}

// NewMemory builds the default ROM/RAM/TTY layout described in SPEC_FULL;
// sink receives each byte written to the TTY data register (nil drops
// them).
func NewMemory(sink func(byte)) *Memory {
	m := &Memory{StrictAlign: true, Console: sink}
	m.AddSegment("rom", ROMStart, ROMSize, PermRead)
	m.AddSegment("ram", RAMStart, RAMSize, PermRead|PermWrite)
	return m
}

// AddSegment registers a new segment. Segments are searched in
// insertion order, so a caller overlaying a region should add the more
// specific segment first.
func (m *Memory) AddSegment(name string, start, size uint32, perm MemoryPermission) {
	m.Segments = append(m.Segments, &MemorySegment{
		Name:        name,
		Start:       start,
		Size:        size,
		Data:        make([]byte, size),
		Permissions: perm,
	})
}

func (m *Memory) findSegment(address uint32) (*MemorySegment, uint32, error) {
	for _, seg := range m.Segments {
		if address >= seg.Start && address < seg.Start+seg.Size {
			return seg, address - seg.Start, nil
		}
	}
	return nil, 0, fmt.Errorf("address 0x%08x is not mapped", address)
}

func (m *Memory) checkAlignment(address uint32, size uint32) error {
	if !m.StrictAlign {
		return nil
	}
	if address&(size-1) != 0 {
		return fmt.Errorf("unaligned %d-byte access at 0x%08x", size, address)
	}
	return nil
}

// Read8 reads a single byte. The TTY status register always reads 1
// ("ready"), matching the reference implementation's always-ready UART.
func (m *Memory) Read8(address uint32) (byte, error) {
	if address == TTYStatusAddr {
		return 1, nil
	}
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return 0, err
	}
	if seg.Permissions&PermRead == 0 {
		return 0, fmt.Errorf("read denied for segment %q at 0x%08x", seg.Name, address)
	}
	m.AccessCount++
	m.ReadCount++
	return seg.Data[offset], nil
}

// Write8 writes a single byte. Writing to the TTY data register sinks
// the byte to Console instead of touching a segment.
func (m *Memory) Write8(address uint32, value byte) error {
	if address == TTYDataAddr {
		if m.Console != nil {
			m.Console(value)
		}
		m.AccessCount++
		m.WriteCount++
		m.LastWriteAddr = address
		m.HasWrite = true
		return nil
	}
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return err
	}
	if seg.Permissions&PermWrite == 0 {
		return fmt.Errorf("write denied for segment %q at 0x%08x", seg.Name, address)
	}
	m.AccessCount++
	m.WriteCount++
	seg.Data[offset] = value
	m.LastWriteAddr = address
	m.HasWrite = true
	return nil
}

// Read16 reads a little-endian halfword.
func (m *Memory) Read16(address uint32) (uint16, error) {
	if err := m.checkAlignment(address, 2); err != nil {
		return 0, err
	}
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return 0, err
	}
	if seg.Permissions&PermRead == 0 {
		return 0, fmt.Errorf("read denied for segment %q at 0x%08x", seg.Name, address)
	}
	if offset+1 >= uint32(len(seg.Data)) {
		return 0, fmt.Errorf("halfword read exceeds segment %q bounds at 0x%08x", seg.Name, address)
	}
	m.AccessCount++
	m.ReadCount++
	return uint16(seg.Data[offset]) | uint16(seg.Data[offset+1])<<8, nil
}

// Write16 writes a little-endian halfword.
func (m *Memory) Write16(address uint32, value uint16) error {
	if err := m.checkAlignment(address, 2); err != nil {
		return err
	}
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return err
	}
	if seg.Permissions&PermWrite == 0 {
		return fmt.Errorf("write denied for segment %q at 0x%08x", seg.Name, address)
	}
	if offset+1 >= uint32(len(seg.Data)) {
		return fmt.Errorf("halfword write exceeds segment %q bounds at 0x%08x", seg.Name, address)
	}
	m.AccessCount++
	m.WriteCount++
	seg.Data[offset] = byte(value)
	seg.Data[offset+1] = byte(value >> 8)
	m.LastWriteAddr = address
	m.HasWrite = true
	return nil
}

// Read32 reads a little-endian word.
func (m *Memory) Read32(address uint32) (uint32, error) {
	if err := m.checkAlignment(address, 4); err != nil {
		return 0, err
	}
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return 0, err
	}
	if seg.Permissions&PermRead == 0 {
		return 0, fmt.Errorf("read denied for segment %q at 0x%08x", seg.Name, address)
	}
	if offset+3 >= uint32(len(seg.Data)) {
		return 0, fmt.Errorf("word read exceeds segment %q bounds at 0x%08x", seg.Name, address)
	}
	m.AccessCount++
	m.ReadCount++
	return uint32(seg.Data[offset]) |
		uint32(seg.Data[offset+1])<<8 |
		uint32(seg.Data[offset+2])<<16 |
		uint32(seg.Data[offset+3])<<24, nil
}

// Write32 writes a little-endian word.
func (m *Memory) Write32(address uint32, value uint32) error {
	if err := m.checkAlignment(address, 4); err != nil {
		return err
	}
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return err
	}
	if seg.Permissions&PermWrite == 0 {
		return fmt.Errorf("write denied for segment %q at 0x%08x", seg.Name, address)
	}
	if offset+3 >= uint32(len(seg.Data)) {
		return fmt.Errorf("word write exceeds segment %q bounds at 0x%08x", seg.Name, address)
	}
	m.AccessCount++
	m.WriteCount++
	seg.Data[offset] = byte(value)
	seg.Data[offset+1] = byte(value >> 8)
	seg.Data[offset+2] = byte(value >> 16)
	seg.Data[offset+3] = byte(value >> 24)
	m.LastWriteAddr = address
	m.HasWrite = true
	return nil
}

// WriteBytes bulk-copies bytes starting at address, used by the loader
// to place a raw program image into ROM/RAM without one syscall per
// byte. It bypasses permission checks (ROM is writable only through
// this path) but still requires the whole range to be mapped.
func (m *Memory) WriteBytes(address uint32, bytes []byte) error {
	seg, offset, err := m.findSegment(address)
	if err != nil {
		return err
	}
	end := offset + uint32(len(bytes))
	if end > uint32(len(seg.Data)) {
		return fmt.Errorf("image of %d bytes at 0x%08x overruns segment %q", len(bytes), address, seg.Name)
	}
	copy(seg.Data[offset:end], bytes)
	return nil
}
