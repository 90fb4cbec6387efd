package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rv32emu/rv32emu/api"
	"github.com/rv32emu/rv32emu/config"
	"github.com/rv32emu/rv32emu/debugger"
	"github.com/rv32emu/rv32emu/disasm"
	"github.com/rv32emu/rv32emu/loader"
	"github.com/rv32emu/rv32emu/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	// Command-line flags
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start in debugger mode")
		tuiMode     = flag.Bool("tui", false, "Use TUI (Text User Interface) debugger")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 8080, "API server port (used with -api-server)")
		maxCycles   = flag.Uint64("max-cycles", 1_000_000, "Maximum CPU cycles before halt")
		loadAddr    = flag.String("load-addr", "0x0", "Image load address (hex or decimal)")
		entryPoint  = flag.String("entry", "", "Entry point address (hex or decimal, default: load address)")
		stackSize   = flag.Uint("stack-size", vm.RAMSize, "Stack size in bytes; the initial sp is the start of RAM plus this value")
		symbolsFile = flag.String("symbols", "", "Optional symbol map file (lines of \"name 0xADDR\")")
		verboseMode = flag.Bool("verbose", false, "Verbose output")

		// Tracing and statistics flags
		enableTrace    = flag.Bool("trace", false, "Enable execution trace")
		traceFile      = flag.String("trace-file", "", "Trace output file (default: trace.log in log dir)")
		traceFilter    = flag.String("trace-filter", "", "Filter trace by registers (comma-separated, e.g., a0,a1,pc)")
		enableMemTrace = flag.Bool("mem-trace", false, "Enable memory access trace")
		memTraceFile   = flag.String("mem-trace-file", "", "Memory trace output file (default: memtrace.log)")
		enableStats    = flag.Bool("stats", false, "Enable performance statistics")
		statsFile      = flag.String("stats-file", "", "Statistics output file (default: stats.json)")
		statsFormat    = flag.String("stats-format", "json", "Statistics format (json, csv, html)")

		enableCoverage      = flag.Bool("coverage", false, "Enable code coverage tracking")
		coverageFile        = flag.String("coverage-file", "", "Coverage output file (default: coverage.txt)")
		coverageFormat      = flag.String("coverage-format", "text", "Coverage format (text, json)")
		enableStackTrace    = flag.Bool("stack-trace", false, "Enable stack operation tracing")
		stackTraceFile      = flag.String("stack-trace-file", "", "Stack trace output file (default: stack_trace.txt)")
		stackTraceFormat    = flag.String("stack-trace-format", "text", "Stack trace format (text, json)")
		enableRegisterTrace = flag.Bool("register-trace", false, "Enable register access pattern tracing")
		registerTraceFile   = flag.String("register-trace-file", "", "Register trace output file (default: register_trace.txt)")
		registerTraceFormat = flag.String("register-trace-format", "text", "Register trace format (text, json)")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32emu %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *apiServer {
		server := api.NewServer(*apiPort)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		var shutdownOnce sync.Once
		performShutdown := func() {
			shutdownOnce.Do(func() {
				fmt.Println("\nShutting down API server...")

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(ctx); err != nil {
					fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
					os.Exit(1)
				}

				fmt.Println("API server stopped")
				os.Exit(0)
			})
		}

		go func() {
			if err := server.Start(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
				os.Exit(1)
			}
		}()

		<-sigChan
		performShutdown()
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	imagePath := flag.Arg(0)
	data, err := os.ReadFile(imagePath) // #nosec G304 -- user-specified image path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Loaded image: %s (%d bytes)\n", imagePath, len(data))
	}

	base, err := parseAddress(*loadAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid load address: %v\n", err)
		os.Exit(1)
	}

	entryAddr := base
	if *entryPoint != "" {
		entryAddr, err = parseAddress(*entryPoint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid entry point: %v\n", err)
			os.Exit(1)
		}
	}

	symbols := make(map[string]uint32)
	if *symbolsFile != "" {
		symbols, err = loadSymbolMap(*symbolsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading symbol map: %v\n", err)
			os.Exit(1)
		}
	}

	machine := vm.NewVM(func(b byte) {
		_, _ = os.Stdout.Write([]byte{b})
	})
	machine.CycleLimit = *maxCycles

	if err := loader.LoadRaw(machine, data, base); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}
	machine.EntryPoint = entryAddr
	machine.SetEntryPoint(entryAddr)

	const maxStackSize = 0x10000000 // 256MB reasonable maximum
	if uint64(*stackSize) > maxStackSize {
		fmt.Fprintf(os.Stderr, "Error: stack size %d exceeds maximum allowed %d\n", *stackSize, maxStackSize)
		os.Exit(1)
	}
	stackTop := vm.RAMStart + uint32(*stackSize) // #nosec G115 -- validated above
	machine.InitializeStack(stackTop)

	if *verboseMode {
		fmt.Printf("Load address: 0x%08X\n", base)
		fmt.Printf("Entry point: 0x%08X\n", entryAddr)
		fmt.Printf("Stack: 0x%08X - 0x%08X (%d bytes)\n", vm.RAMStart, stackTop, *stackSize)
		fmt.Printf("Symbols: %d entries\n", len(symbols))
	}

	if *enableTrace {
		tracePath := *traceFile
		if tracePath == "" {
			tracePath = filepath.Join(config.GetLogPath(), "trace.log")
		}

		traceWriter, err := os.Create(tracePath) // #nosec G304 -- user-specified trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating trace file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := traceWriter.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close trace file: %v\n", err)
			}
		}()

		machine.ExecutionTrace = vm.NewExecutionTrace(traceWriter)
		machine.ExecutionTrace.Start()

		if *traceFilter != "" {
			regs := strings.Split(*traceFilter, ",")
			machine.ExecutionTrace.SetFilterRegisters(regs)
		}

		if *verboseMode {
			fmt.Printf("Execution trace enabled: %s\n", tracePath)
		}
	}

	if *enableMemTrace {
		memTracePath := *memTraceFile
		if memTracePath == "" {
			memTracePath = filepath.Join(config.GetLogPath(), "memtrace.log")
		}

		memTraceWriter, err := os.Create(memTracePath) // #nosec G304 -- user-specified memory trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating memory trace file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := memTraceWriter.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close memory trace file: %v\n", err)
			}
		}()

		machine.MemoryTrace = vm.NewMemoryTrace(memTraceWriter)
		machine.MemoryTrace.Start()

		if *verboseMode {
			fmt.Printf("Memory trace enabled: %s\n", memTracePath)
		}
	}

	if *enableStats {
		machine.Statistics = vm.NewPerformanceStatistics()
		machine.Statistics.Start()

		if *verboseMode {
			fmt.Println("Performance statistics enabled")
		}
	}

	if *enableCoverage {
		covPath := *coverageFile
		if covPath == "" {
			ext := "txt"
			if *coverageFormat == "json" {
				ext = "json"
			}
			covPath = filepath.Join(config.GetLogPath(), "coverage."+ext)
		}

		covWriter, err := os.Create(covPath) // #nosec G304 -- user-specified coverage output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating coverage file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := covWriter.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close coverage file: %v\n", err)
			}
		}()

		machine.CodeCoverage = vm.NewCodeCoverage(covWriter)
		machine.CodeCoverage.SetCodeRange(base, base+uint32(len(data))) // #nosec G115 -- image size bounded by memory
		machine.CodeCoverage.LoadSymbols(symbols)
		machine.CodeCoverage.Start()

		if *verboseMode {
			fmt.Printf("Code coverage enabled: %s\n", covPath)
		}
	}

	if *enableStackTrace {
		stPath := *stackTraceFile
		if stPath == "" {
			ext := "txt"
			if *stackTraceFormat == "json" {
				ext = "json"
			}
			stPath = filepath.Join(config.GetLogPath(), "stack_trace."+ext)
		}

		stWriter, err := os.Create(stPath) // #nosec G304 -- user-specified stack trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating stack trace file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := stWriter.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close stack trace file: %v\n", err)
			}
		}()

		machine.StackTrace = vm.NewStackTrace(stWriter, vm.RAMStart, stackTop)
		machine.StackTrace.Start(stackTop)

		if *verboseMode {
			fmt.Printf("Stack trace enabled: %s\n", stPath)
		}
	}

	if *enableRegisterTrace {
		rtPath := *registerTraceFile
		if rtPath == "" {
			ext := "txt"
			if *registerTraceFormat == "json" {
				ext = "json"
			}
			rtPath = filepath.Join(config.GetLogPath(), "register_trace."+ext)
		}

		rtWriter, err := os.Create(rtPath) // #nosec G304 -- user-specified register trace output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating register trace file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := rtWriter.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close register trace file: %v\n", err)
			}
		}()

		machine.RegisterTrace = vm.NewRegisterTrace(rtWriter)
		machine.RegisterTrace.LoadSymbols(symbols)
		machine.RegisterTrace.Start()

		if *verboseMode {
			fmt.Printf("Register trace enabled: %s\n", rtPath)
		}
	}

	if *debugMode || *tuiMode {
		dbg := debugger.NewDebugger(machine)
		dbg.LoadSymbols(symbols)
		dbg.LoadSourceMap(buildMainSourceMap(data, base))

		if *tuiMode {
			if err := debugger.RunTUI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Println("rv32emu Debugger - Type 'help' for commands")
			fmt.Printf("Image loaded: %s\n", imagePath)
			fmt.Println()

			if err := debugger.RunCLI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
				os.Exit(1)
			}
		}
	} else {
		if *verboseMode {
			fmt.Println("\nStarting execution...")
			fmt.Println("----------------------------------------")
		}

		machine.State = vm.StateRunning
		for machine.State == vm.StateRunning {
			if err := machine.Step(); err != nil {
				if machine.State == vm.StateHalted {
					break
				}
				fmt.Fprintf(os.Stderr, "\nRuntime error at PC=0x%08X: %v\n", machine.CPU.PC(), err)
				os.Exit(1)
			}
		}

		if *verboseMode {
			fmt.Println("\n----------------------------------------")
			fmt.Println("Execution complete")
			fmt.Printf("Exit code: %d\n", machine.ExitCode)
			fmt.Printf("CPU cycles: %d\n", machine.CPU.Cycles)
			fmt.Printf("Instructions executed: %d\n", len(machine.InstructionLog))
		}

		if machine.ExecutionTrace != nil {
			if err := machine.ExecutionTrace.Flush(); err != nil {
				fmt.Fprintf(os.Stderr, "Error flushing execution trace: %v\n", err)
			}
			if *verboseMode {
				fmt.Printf("Execution trace written (%d entries)\n", len(machine.ExecutionTrace.GetEntries()))
			}
		}

		if machine.MemoryTrace != nil {
			if err := machine.MemoryTrace.Flush(); err != nil {
				fmt.Fprintf(os.Stderr, "Error flushing memory trace: %v\n", err)
			}
			if *verboseMode {
				fmt.Printf("Memory trace written (%d entries)\n", len(machine.MemoryTrace.GetEntries()))
			}
		}

		if machine.Statistics != nil {
			statPath := *statsFile
			if statPath == "" {
				ext := "json"
				if *statsFormat == "csv" {
					ext = "csv"
				} else if *statsFormat == "html" {
					ext = "html"
				}
				statPath = filepath.Join(config.GetLogPath(), "stats."+ext)
			}

			statsWriter, err := os.Create(statPath) // #nosec G304 -- user-specified stats output path
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating statistics file: %v\n", err)
			} else {
				defer func() {
					if err := statsWriter.Close(); err != nil {
						fmt.Fprintf(os.Stderr, "Warning: failed to close statistics file: %v\n", err)
					}
				}()

				switch *statsFormat {
				case "json":
					err = machine.Statistics.ExportJSON(statsWriter)
				case "csv":
					err = machine.Statistics.ExportCSV(statsWriter)
				case "html":
					err = machine.Statistics.ExportHTML(statsWriter)
				default:
					err = machine.Statistics.ExportJSON(statsWriter)
				}

				if err != nil {
					fmt.Fprintf(os.Stderr, "Error exporting statistics: %v\n", err)
				} else if *verboseMode {
					fmt.Printf("Statistics exported: %s\n", statPath)
				}
			}

			if *verboseMode {
				fmt.Println()
				fmt.Println(machine.Statistics.String())
			}
		}

		if machine.CodeCoverage != nil {
			switch *coverageFormat {
			case "json":
				if err := machine.CodeCoverage.ExportJSON(machine.CodeCoverage.Writer); err != nil {
					fmt.Fprintf(os.Stderr, "Error exporting coverage: %v\n", err)
				}
			default:
				if err := machine.CodeCoverage.Flush(); err != nil {
					fmt.Fprintf(os.Stderr, "Error flushing coverage: %v\n", err)
				}
			}
			if *verboseMode {
				fmt.Println()
				fmt.Println(machine.CodeCoverage.String())
			}
		}

		if machine.StackTrace != nil {
			switch *stackTraceFormat {
			case "json":
				if err := machine.StackTrace.ExportJSON(machine.StackTrace.Writer); err != nil {
					fmt.Fprintf(os.Stderr, "Error exporting stack trace: %v\n", err)
				}
			default:
				if err := machine.StackTrace.Flush(); err != nil {
					fmt.Fprintf(os.Stderr, "Error flushing stack trace: %v\n", err)
				}
			}
			if *verboseMode {
				fmt.Println()
				fmt.Println(machine.StackTrace.String())
			}
		}

		if machine.RegisterTrace != nil {
			switch *registerTraceFormat {
			case "json":
				if err := machine.RegisterTrace.ExportJSON(machine.RegisterTrace.Writer); err != nil {
					fmt.Fprintf(os.Stderr, "Error exporting register trace: %v\n", err)
				}
			default:
				if err := machine.RegisterTrace.Flush(); err != nil {
					fmt.Fprintf(os.Stderr, "Error flushing register trace: %v\n", err)
				}
			}
			if *verboseMode {
				fmt.Println()
				fmt.Println(machine.RegisterTrace.String())
			}
		}

		os.Exit(int(machine.ExitCode))
	}
}

// parseAddress parses a hex ("0x...") or decimal address string.
func parseAddress(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

// loadSymbolMap reads a sidecar symbol file: one "name 0xADDR" pair per
// line, blank lines and "#"-prefixed comments ignored.
func loadSymbolMap(path string) (map[string]uint32, error) {
	f, err := os.Open(path) // #nosec G304 -- user-specified symbol file path
	if err != nil {
		return nil, err
	}
	defer f.Close()

	symbols := make(map[string]uint32)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed symbol line: %q", line)
		}
		addr, err := parseAddress(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed address in line %q: %w", line, err)
		}
		symbols[fields[0]] = addr
	}
	return symbols, scanner.Err()
}

// buildMainSourceMap mirrors service.buildSourceMap for the CLI debugger
// path: it walks the loaded image and disassembles each instruction for
// display, stepping 2 or 4 bytes per entry depending on the quadrant
// CPU.Fetch would pick.
func buildMainSourceMap(data []byte, loadAddr uint32) map[uint32]string {
	d := disasm.New()
	sourceMap := make(map[uint32]string)
	offset := uint32(0)
	for offset < uint32(len(data)) {
		addr := loadAddr + offset
		quadrant := data[offset] & 0x3

		var word uint32
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

		sourceMap[addr] = vm.Decode[string](d, word)

		if quadrant != 0b11 {
			offset += 2
		} else {
			offset += 4
		}
	}
	return sourceMap
}

func printHelp() {
	fmt.Printf(`rv32emu %s

Usage: rv32emu [options] <image-file>
       rv32emu -api-server [-port N]

Options:
  -help              Show this help message
  -version           Show version information
  -api-server        Start HTTP API server mode (no image file required)
  -port N            API server port (default: 8080, used with -api-server)
  -debug             Start in debugger mode (CLI)
  -tui               Start in TUI debugger mode
  -max-cycles N      Set maximum CPU cycles (default: 1000000)
  -load-addr ADDR    Image load address (default: 0x0)
  -entry ADDR        Entry point address (default: load address)
  -stack-size N      Stack size in bytes; initial sp = RAM start + N (default: %d)
  -symbols FILE      Optional symbol map file ("name 0xADDR" per line)
  -verbose           Enable verbose output

Tracing & Performance Options:
  -trace             Enable execution trace
  -trace-file FILE   Trace output file (default: trace.log in log dir)
  -trace-filter REGS Filter trace by registers (e.g., a0,a1,pc)
  -mem-trace         Enable memory access trace
  -mem-trace-file F  Memory trace file (default: memtrace.log)
  -stats             Enable performance statistics
  -stats-file FILE   Statistics output file (default: stats.json)
  -stats-format FMT  Statistics format: json, csv, html (default: json)

Diagnostic Modes:
  -coverage          Enable code coverage tracking
  -coverage-file F   Coverage output file (default: coverage.txt)
  -coverage-format   Coverage format: text, json (default: text)
  -stack-trace       Enable stack operation tracing
  -stack-trace-file  Stack trace file (default: stack_trace.txt)
  -stack-trace-format Stack trace format: text, json (default: text)
  -register-trace    Enable register access pattern tracing
  -register-trace-file Register trace file (default: register_trace.txt)
  -register-trace-format Register trace format: text, json (default: text)

Examples:
  # Start API server for GUI frontends
  rv32emu -api-server
  rv32emu -api-server -port 3000

  # Run a raw image directly
  rv32emu firmware.bin

  # Run with debugger
  rv32emu -debug firmware.bin

  # Run with TUI debugger
  rv32emu -tui firmware.bin

  # Run with custom settings
  rv32emu -max-cycles 5000000 -entry 0x1000 firmware.bin

  # Run with execution trace
  rv32emu -trace -trace-filter "a0,a1,pc" firmware.bin

  # Run with performance statistics
  rv32emu -stats -stats-format html firmware.bin

Debugger Commands (when in -debug mode):
  run, r             Start/restart program execution
  continue, c        Continue execution
  step, s            Execute single instruction
  next, n            Step over function calls
  break ADDR         Set breakpoint at address/label
  info registers     Show all registers
  print EXPR         Evaluate and print expression
  help               Show debugger help

For the full debugger command list, type "help" at the debugger prompt.
`, Version, vm.RAMSize)
}
