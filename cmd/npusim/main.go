package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/npulab/npusim/api"
	"github.com/npulab/npusim/config"
	"github.com/npulab/npusim/npu"
	"github.com/npulab/npusim/workload"
)

var (
	workloadPath = flag.String("workload", "",
		"YAML file with the instruction stream to run")
	lanes = flag.Int("lanes", 16,
		"number of processing elements")
	memWords = flag.Int("mem-words", 1024,
		"memory stub size in 32-bit words")
	memLatency = flag.Int("mem-latency", 1,
		"memory stub latency in cycles")
	useMonitor = flag.Bool("monitor", false,
		"start the AkitaRTM monitoring server")
	trace = flag.Bool("trace", false,
		"log per-cycle simulator events")
)

func main() {
	flag.Parse()

	if *trace {
		slog.SetLogLoggerLevel(npu.LevelTrace)
	}

	w := loadWorkload()

	engine := sim.NewSerialEngine()

	var monitor *monitoring.Monitor
	if *useMonitor {
		monitor = monitoring.NewMonitor()
		monitor.RegisterEngine(engine)
	}

	driver := api.MakeDriverBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	deviceBuilder := config.MakeDeviceBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithLanes(*lanes).
		WithMemSize(*memWords).
		WithMemLatency(*memLatency)
	if monitor != nil {
		deviceBuilder = deviceBuilder.WithMonitor(monitor)
		monitor.RegisterComponent(driver)
	}
	device := deviceBuilder.Build("Device")

	driver.RegisterDevice(device)

	if monitor != nil {
		monitor.StartServer()
	}

	batch := driver.Submit(w.Instructions)
	driver.Run()

	fmt.Printf("Workload %q: %d instructions\n",
		w.Name, len(w.Instructions))
	for i, result := range batch.Results() {
		fmt.Printf("  [%3d] %s -> 0x%08X\n",
			i, w.Instructions[i].Opcode.Name(), result)
	}

	cycles, ops := driver.PerfCounters()
	fmt.Printf("Cycles: %d, Operations: %d, Status: 0x%X\n",
		cycles, ops, driver.Status())

	atexit.Exit(0)
}

func loadWorkload() *workload.Workload {
	if *workloadPath == "" {
		return defaultWorkload()
	}

	w, err := workload.LoadFile(*workloadPath)
	if err != nil {
		log.Fatalf("Failed to load workload: %v", err)
	}
	if len(w.Instructions) == 0 {
		fmt.Fprintln(os.Stderr, "Workload has no instructions")
		atexit.Exit(1)
	}

	return w
}

func defaultWorkload() *workload.Workload {
	return &workload.Workload{
		Name: "builtin-demo",
		Instructions: []npu.Instruction{
			{Opcode: npu.OpAdd, Src1: 100, Src2: 200, Dst: 0},
			{Opcode: npu.OpMac, Src1: 2, Src2: 3, Dst: 5},
			{Opcode: npu.OpMac, Src1: 4, Src2: 5, Dst: 5},
			{Opcode: npu.OpStore, Src1: 42, Dst: 7},
			{Opcode: npu.OpLoad, Src1: 7, Dst: 0},
		},
	}
}
