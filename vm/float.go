package vm

import "math"

// F-extension: single-precision floating point. Rounding-mode operands
// are accepted but ignored — every op rounds using Go's native float32
// semantics (round-to-nearest-even), matching the simulator's
// rm-is-advisory stance rather than modeling the other six IEEE
// rounding modes.

// Flw loads a float: rd <- f32frombits(m32(rs1 + iimm)).
func (c *CPU) Flw(rd, rs1 Reg, iimm uint32) struct{} {
	addr := c.Rx(rs1) + iimm
	w, err := c.Mem.Read32(addr)
	if err != nil {
		c.HandleTrap(TrapCause{Kind: LoadAccessFault, Addr: addr})
		return struct{}{}
	}
	c.Wf(rd, math.Float32frombits(w))
	return struct{}{}
}

// Fsw stores a float: m32(rs1 + simm) <- f32bits(rs2).
func (c *CPU) Fsw(rs1, rs2 Reg, simm uint32) struct{} {
	addr := c.Rx(rs1) + simm
	if err := c.Mem.Write32(addr, math.Float32bits(c.Rf(rs2))); err != nil {
		c.HandleTrap(TrapCause{Kind: StoreAccessFault, Addr: addr})
	}
	return struct{}{}
}

// FsqrtS computes rd <- sqrt(rs1).
func (c *CPU) FsqrtS(rd, rs1 Reg, rm uint32) struct{} {
	c.Wf(rd, float32(math.Sqrt(float64(c.Rf(rs1)))))
	return struct{}{}
}

// FcvtWS converts rd <- int32(rs1).
func (c *CPU) FcvtWS(rd, rs1 Reg, rm uint32) struct{} {
	c.Wx(rd, uint32(int32(c.Rf(rs1))))
	return struct{}{}
}

// FcvtWuS converts rd <- uint32(rs1).
func (c *CPU) FcvtWuS(rd, rs1 Reg, rm uint32) struct{} {
	c.Wx(rd, uint32(c.Rf(rs1)))
	return struct{}{}
}

// FcvtSW converts rd <- float32(int32(rs1)).
func (c *CPU) FcvtSW(rd, rs1 Reg, rm uint32) struct{} {
	c.Wf(rd, float32(int32(c.Rx(rs1))))
	return struct{}{}
}

// FcvtSWu converts rd <- float32(rs1).
func (c *CPU) FcvtSWu(rd, rs1 Reg, rm uint32) struct{} {
	c.Wf(rd, float32(c.Rx(rs1)))
	return struct{}{}
}

// FaddS computes rd <- rs1 + rs2.
func (c *CPU) FaddS(rd, rs1, rs2 Reg, rm uint32) struct{} {
	c.Wf(rd, c.Rf(rs1)+c.Rf(rs2))
	return struct{}{}
}

// FsubS computes rd <- rs1 - rs2.
func (c *CPU) FsubS(rd, rs1, rs2 Reg, rm uint32) struct{} {
	c.Wf(rd, c.Rf(rs1)-c.Rf(rs2))
	return struct{}{}
}

// FmulS computes rd <- rs1 * rs2.
func (c *CPU) FmulS(rd, rs1, rs2 Reg, rm uint32) struct{} {
	c.Wf(rd, c.Rf(rs1)*c.Rf(rs2))
	return struct{}{}
}

// FdivS computes rd <- rs1 / rs2.
func (c *CPU) FdivS(rd, rs1, rs2 Reg, rm uint32) struct{} {
	c.Wf(rd, c.Rf(rs1)/c.Rf(rs2))
	return struct{}{}
}

// FmaddS computes rd <- (rs1 * rs2) + rs3.
func (c *CPU) FmaddS(rd, rs1, rs2, rs3 Reg, rm uint32) struct{} {
	c.Wf(rd, (c.Rf(rs1)*c.Rf(rs2))+c.Rf(rs3))
	return struct{}{}
}

// FmsubS computes rd <- (rs1 * rs2) - rs3.
func (c *CPU) FmsubS(rd, rs1, rs2, rs3 Reg, rm uint32) struct{} {
	c.Wf(rd, (c.Rf(rs1)*c.Rf(rs2))-c.Rf(rs3))
	return struct{}{}
}

// FnmsubS computes rd <- -(rs1 * rs2) + rs3.
func (c *CPU) FnmsubS(rd, rs1, rs2, rs3 Reg, rm uint32) struct{} {
	c.Wf(rd, -(c.Rf(rs1)*c.Rf(rs2))+c.Rf(rs3))
	return struct{}{}
}

// FnmaddS computes rd <- -(rs1 * rs2) - rs3.
func (c *CPU) FnmaddS(rd, rs1, rs2, rs3 Reg, rm uint32) struct{} {
	c.Wf(rd, -(c.Rf(rs1)*c.Rf(rs2))-c.Rf(rs3))
	return struct{}{}
}

// FmvXW reinterprets rd <- bits(rs1), no conversion.
func (c *CPU) FmvXW(rd, rs1 Reg) struct{} {
	c.Wx(rd, math.Float32bits(c.Rf(rs1)))
	return struct{}{}
}

// FmvWX reinterprets rd <- bits(rs1), no conversion.
func (c *CPU) FmvWX(rd, rs1 Reg) struct{} {
	c.Wf(rd, math.Float32frombits(c.Rx(rs1)))
	return struct{}{}
}

// FclassS classifies rs1 into the one-hot fclass result: bit 0
// -inf, 1 negative normal, 2 negative subnormal, 3 -0, 4 +0,
// 5 positive subnormal, 6 positive normal, 7 +inf, 8 signaling NaN,
// 9 quiet NaN.
func (c *CPU) FclassS(rd, rs1 Reg) struct{} {
	v := c.Rf(rs1)
	bits := math.Float32bits(v)
	var result uint32
	switch {
	case v == float32(math.Inf(-1)):
		result = 1 << 0
	case v == float32(math.Inf(1)):
		result = 1 << 7
	case bits == 0x80000000:
		result = 1 << 3 // negative zero
	case v == 0.0:
		result = 1 << 4
	case bits&0x7f800000 == 0:
		if bits&0x80000000 != 0 {
			result = 1 << 2 // negative subnormal
		} else {
			result = 1 << 5 // positive subnormal
		}
	case bits&0x7f800000 == 0x7f800000 && bits&0x00400000 != 0:
		result = 1 << 9 // quiet NaN
	case bits&0x7f800000 == 0x7f800000 && bits&0x003fffff != 0:
		result = 1 << 8 // signaling NaN
	case v < 0.0:
		result = 1 << 1
	case v > 0.0:
		result = 1 << 6
	}
	c.Wx(rd, result)
	return struct{}{}
}

// FsgnjS computes rd <- |rs1| with the sign of rs2. The sign is the
// actual IEEE sign bit (math.Signbit), not a numeric rs2 < 0 test,
// since that test is false for -0.0.
func (c *CPU) FsgnjS(rd, rs1, rs2 Reg) struct{} {
	a, b := c.Rf(rs1), c.Rf(rs2)
	if math.Signbit(float64(b)) {
		c.Wf(rd, -float32(math.Abs(float64(a))))
	} else {
		c.Wf(rd, float32(math.Abs(float64(a))))
	}
	return struct{}{}
}

// FminS computes rd <- minNum(rs1, rs2), the IEEE 754-2008 minNum
// operation: if exactly one operand is NaN, the result is the other
// operand, not NaN. Both math.Min and a plain < comparison return NaN
// whenever either operand is NaN, which minNum does not permit.
func (c *CPU) FminS(rd, rs1, rs2 Reg) struct{} {
	c.Wf(rd, fminNum(c.Rf(rs1), c.Rf(rs2)))
	return struct{}{}
}

func fminNum(a, b float32) float32 {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return float32(math.NaN())
	case aNaN:
		return b
	case bNaN:
		return a
	default:
		return float32(math.Min(float64(a), float64(b)))
	}
}

// FleS computes rd <- (rs1 <= rs2) ? 1 : 0. Unordered (NaN) comparisons
// yield 0.
func (c *CPU) FleS(rd, rs1, rs2 Reg) struct{} {
	if c.Rf(rs1) <= c.Rf(rs2) {
		c.Wx(rd, 1)
	} else {
		c.Wx(rd, 0)
	}
	return struct{}{}
}

// FsgnjnS computes rd <- |rs1| with the negated sign of rs2, using
// rs2's actual sign bit (see FsgnjS).
func (c *CPU) FsgnjnS(rd, rs1, rs2 Reg) struct{} {
	a, b := c.Rf(rs1), c.Rf(rs2)
	if math.Signbit(float64(b)) {
		c.Wf(rd, float32(math.Abs(float64(a))))
	} else {
		c.Wf(rd, -float32(math.Abs(float64(a))))
	}
	return struct{}{}
}

// FmaxS computes rd <- maxNum(rs1, rs2); see FminS for the NaN rule.
func (c *CPU) FmaxS(rd, rs1, rs2 Reg) struct{} {
	c.Wf(rd, fmaxNum(c.Rf(rs1), c.Rf(rs2)))
	return struct{}{}
}

func fmaxNum(a, b float32) float32 {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return float32(math.NaN())
	case aNaN:
		return b
	case bNaN:
		return a
	default:
		return float32(math.Max(float64(a), float64(b)))
	}
}

// FltS computes rd <- (rs1 < rs2) ? 1 : 0. Unordered (NaN) comparisons
// yield 0.
func (c *CPU) FltS(rd, rs1, rs2 Reg) struct{} {
	if c.Rf(rs1) < c.Rf(rs2) {
		c.Wx(rd, 1)
	} else {
		c.Wx(rd, 0)
	}
	return struct{}{}
}

// FsgnjxS computes rd <- |rs1| with the XOR of rs1 and rs2's actual
// sign bits (see FsgnjS).
func (c *CPU) FsgnjxS(rd, rs1, rs2 Reg) struct{} {
	a, b := c.Rf(rs1), c.Rf(rs2)
	neg := math.Signbit(float64(a)) != math.Signbit(float64(b))
	if neg {
		c.Wf(rd, -float32(math.Abs(float64(a))))
	} else {
		c.Wf(rd, float32(math.Abs(float64(a))))
	}
	return struct{}{}
}

// FeqS computes rd <- (rs1 == rs2) ? 1 : 0.
func (c *CPU) FeqS(rd, rs1, rs2 Reg) struct{} {
	if c.Rf(rs1) == c.Rf(rs2) {
		c.Wx(rd, 1)
	} else {
		c.Wx(rd, 0)
	}
	return struct{}{}
}
