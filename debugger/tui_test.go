package debugger

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rv32emu/rv32emu/vm"
)

func newSimulationTUI(t *testing.T) *TUI {
	t.Helper()
	machine := vm.NewVM(func(byte) {})
	dbg := NewDebugger(machine)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return NewTUIWithScreen(dbg, screen)
}

// executeCommand must never block the caller; on a real terminal it runs
// on the UI goroutine between redraws.
func TestExecuteCommandDoesNotBlock(t *testing.T) {
	tui := newSimulationTUI(t)

	done := make(chan bool, 1)
	go func() {
		tui.executeCommand("help")
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("executeCommand blocked for more than 2 seconds")
	}
}

func TestHandleCommandDoesNotBlock(t *testing.T) {
	tui := newSimulationTUI(t)
	tui.CommandInput.SetText("help")

	done := make(chan bool, 1)
	go func() {
		tui.handleCommand(tcell.KeyEnter)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("handleCommand blocked for more than 100ms")
	}
}

func TestHandleCommandIgnoresNonEnterKeys(t *testing.T) {
	tui := newSimulationTUI(t)
	tui.CommandInput.SetText("help")

	tui.handleCommand(tcell.KeyEscape)

	if got := tui.CommandInput.GetText(); got != "help" {
		t.Errorf("CommandInput text = %q after non-Enter key, want unchanged %q", got, "help")
	}
}

func TestExecuteCommandClearsInputAndWritesOutput(t *testing.T) {
	tui := newSimulationTUI(t)
	tui.CommandInput.SetText("help")

	tui.handleCommand(tcell.KeyEnter)

	if got := tui.CommandInput.GetText(); got != "" {
		t.Errorf("CommandInput text = %q after executing, want empty", got)
	}
	if tui.OutputView.GetText(true) == "" {
		t.Error("OutputView is empty after executing \"help\"")
	}
}

func TestExecuteCommandReportsError(t *testing.T) {
	tui := newSimulationTUI(t)

	tui.executeCommand("not-a-real-command")

	if got := tui.OutputView.GetText(true); got == "" {
		t.Error("OutputView is empty after an invalid command, want an error message")
	}
}

func TestFindSymbolForAddress(t *testing.T) {
	tui := newSimulationTUI(t)
	tui.Debugger.Symbols = map[string]uint32{"main": 0x4000, "loop": 0x4010}

	if got := tui.findSymbolForAddress(0x4010); got != "loop" {
		t.Errorf("findSymbolForAddress(0x4010) = %q, want %q", got, "loop")
	}
	if got := tui.findSymbolForAddress(0x9999); got != "" {
		t.Errorf("findSymbolForAddress(0x9999) = %q, want empty", got)
	}
}

func TestWriteOutputAppendsAndScrolls(t *testing.T) {
	tui := newSimulationTUI(t)

	tui.WriteOutput("first\n")
	tui.WriteOutput("second\n")

	got := tui.OutputView.GetText(true)
	if got != "first\nsecond\n" {
		t.Errorf("OutputView text = %q, want %q", got, "first\nsecond\n")
	}
}
