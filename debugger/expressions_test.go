package debugger

import (
	"testing"

	"github.com/rv32emu/rv32emu/vm"
)

func TestEvaluateNumericLiterals(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})

	cases := map[string]uint32{
		"42":    42,
		"0x2A":  0x2A,
		"0b101": 5,
		"010":   8,
		"-1":    0xFFFFFFFF,
	}
	for expr, want := range cases {
		got, err := e.EvaluateExpression(expr, machine, nil)
		if err != nil {
			t.Errorf("EvaluateExpression(%q): %v", expr, err)
			continue
		}
		if got != want {
			t.Errorf("EvaluateExpression(%q) = 0x%x, want 0x%x", expr, got, want)
		}
	}
}

func TestEvaluateRegisters(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})
	machine.CPU.Wx(vm.RegA0, 99)
	machine.SetEntryPoint(vm.RAMStart + 8)

	cases := map[string]uint32{
		"a0": 99,
		"x10": 99, // a0 is x10
		"pc":  vm.RAMStart + 8,
	}
	for expr, want := range cases {
		got, err := e.EvaluateExpression(expr, machine, nil)
		if err != nil {
			t.Errorf("EvaluateExpression(%q): %v", expr, err)
			continue
		}
		if got != want {
			t.Errorf("EvaluateExpression(%q) = 0x%x, want 0x%x", expr, got, want)
		}
	}
}

func TestEvaluateMemoryDereference(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})
	if err := machine.CPU.Mem.Write32(vm.RAMStart, 0xDEADBEEF); err != nil {
		t.Fatalf("Write32: %v", err)
	}

	for _, expr := range []string{"[0x4000]", "*0x4000"} {
		got, err := e.EvaluateExpression(expr, machine, nil)
		if err != nil {
			t.Fatalf("EvaluateExpression(%q): %v", expr, err)
		}
		if got != 0xDEADBEEF {
			t.Errorf("EvaluateExpression(%q) = 0x%08x, want 0xDEADBEEF", expr, got)
		}
	}
}

func TestEvaluateSymbolLookup(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})
	symbols := map[string]uint32{"main": 0x4010}

	got, err := e.EvaluateExpression("main", machine, symbols)
	if err != nil {
		t.Fatalf("EvaluateExpression(\"main\"): %v", err)
	}
	if got != 0x4010 {
		t.Errorf("EvaluateExpression(\"main\") = 0x%x, want 0x4010", got)
	}
}

func TestEvaluateBinaryOperators(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})

	cases := map[string]uint32{
		"2 + 3":    5,
		"5 - 2":    3,
		"3 * 4":    12,
		"10 / 2":   5,
		"0xF & 1":  1,
		"1 | 2":    3,
		"5 ^ 1":    4,
		"1 << 4":   16,
		"256 >> 4": 16,
	}
	for expr, want := range cases {
		got, err := e.EvaluateExpression(expr, machine, nil)
		if err != nil {
			t.Errorf("EvaluateExpression(%q): %v", expr, err)
			continue
		}
		if got != want {
			t.Errorf("EvaluateExpression(%q) = %d, want %d", expr, got, want)
		}
	}
}

func TestEvaluateDivisionByZeroErrors(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})

	if _, err := e.EvaluateExpression("1 / 0", machine, nil); err == nil {
		t.Error("EvaluateExpression(\"1 / 0\") did not error")
	}
}

func TestEvaluateBoolean(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})

	ok, err := e.Evaluate("1", machine, nil)
	if err != nil || !ok {
		t.Errorf("Evaluate(\"1\") = %v, %v, want true, nil", ok, err)
	}
	ok, err = e.Evaluate("0", machine, nil)
	if err != nil || ok {
		t.Errorf("Evaluate(\"0\") = %v, %v, want false, nil", ok, err)
	}
}

func TestValueHistoryReferences(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})

	if _, err := e.EvaluateExpression("10", machine, nil); err != nil {
		t.Fatalf("EvaluateExpression(\"10\"): %v", err)
	}
	if _, err := e.EvaluateExpression("20", machine, nil); err != nil {
		t.Fatalf("EvaluateExpression(\"20\"): %v", err)
	}
	if got := e.GetValueNumber(); got != 2 {
		t.Errorf("GetValueNumber() = %d, want 2", got)
	}

	got, err := e.EvaluateExpression("$1", machine, nil)
	if err != nil {
		t.Fatalf("EvaluateExpression(\"$1\"): %v", err)
	}
	if got != 10 {
		t.Errorf("EvaluateExpression(\"$1\") = %d, want 10", got)
	}

	if _, err := e.GetValue(99); err == nil {
		t.Error("GetValue(99) out of range did not error")
	}
}

func TestResetClearsValueHistory(t *testing.T) {
	e := NewExpressionEvaluator()
	machine := vm.NewVM(func(byte) {})

	e.EvaluateExpression("5", machine, nil)
	e.Reset()

	if got := e.GetValueNumber(); got != 0 {
		t.Errorf("GetValueNumber() after Reset() = %d, want 0", got)
	}
	if _, err := e.GetValue(1); err == nil {
		t.Error("GetValue(1) after Reset() should error")
	}
}
