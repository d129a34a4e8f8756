// This file is part of Zedcycle.
//
// Zedcycle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zedcycle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zedcycle.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/allram"
	"github.com/zedcycle/zedcycle/hardware/allram/cpm"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/logger"
	"github.com/zedcycle/zedcycle/modalflag"
	"github.com/zedcycle/zedcycle/monitor"
	"github.com/zedcycle/zedcycle/monitor/easyterm"
	"github.com/zedcycle/zedcycle/statsview"
	"github.com/zedcycle/zedcycle/version"
	"github.com/zedcycle/zedcycle/wavwriter"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// replace the default ctrl-c handling. the main thread calls the
	// function instead of quitting.
	//
	// takes a func() argument.
	reqIntSig stateReq = "INTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. replaced with the reqIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	var intHandler func()

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			if intHandler != nil {
				intHandler()
			} else {
				fmt.Println("\r")
				done = true
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqIntSig:
				if f, ok := state.args.(func()); ok {
					intHandler = f
				} else {
					panic(fmt.Sprintf("%s requires a func() argument", reqIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "CPM", "MONITOR", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "CPM":
		err = runCPM(md, sync)

	case "MONITOR":
		err = runMonitor(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to all modes that run a machine.
type machineFlags struct {
	echo      *bool
	stats     *bool
	statsAddr *string
	statsRate *int
	busreq    *bool
	wait      *bool
	waitState *int
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		echo:      md.AddBool("log", false, "echo debugging log to stdout"),
		stats:     md.AddBool("statsview", false, "run stats server"),
		statsAddr: md.AddString("statsaddr", statsview.DefaultAddress, "stats server address"),
		statsRate: md.AddInt("statsrate", int(statsview.DefaultInterval.Milliseconds()), "stats sample interval in milliseconds"),
		busreq:    md.AddBool("busreq", false, "honour the bus request line"),
		wait:      md.AddBool("waitline", false, "honour the wait line"),
		waitState: md.AddInt("waitstates", 0, "half cycles added to every memory access"),
	}
}

// prepare the machine and ambient services described by the flags.
func (f machineFlags) machine() (*allram.Machine, error) {
	if *f.echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *f.stats {
		_, err := statsview.Launch(os.Stdout, statsview.Options{
			Address:  *f.statsAddr,
			Interval: time.Duration(*f.statsRate) * time.Millisecond,
		})
		if err != nil {
			if !curated.Is(err, statsview.NotAvailable) {
				return nil, err
			}
			fmt.Printf("* %s\n", err)
		}
	}

	if *f.waitState < 0 {
		return nil, curated.Errorf("wait states cannot be negative")
	}

	m := allram.NewMachine(microcode.Capabilities{
		BusRequest: *f.busreq,
		WaitLine:   *f.wait,
	})
	m.SetWaitStates(clocks.HalfCycles(*f.waitState))

	return m, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	mf := addMachineFlags(md)
	origin := md.AddAddress("origin", 0x0000, "load address")
	start := md.AddAddress("start", 0x0000, "start address")
	stack := md.AddAddress("sp", 0xffff, "initial stack pointer")
	limit := md.AddInt("limit", 0, "cycle limit (0 for no limit)")
	rate := md.AddFloat64("clock", clocks.ZXSpectrum, "clock rate in MHz")
	realtime := md.AddBool("realtime", false, "pace execution to the clock rate")
	wav := md.AddString("wav", "", "record beeper to wav file")
	beeperPort := md.AddAddress("beeper", 0xfe, "beeper port")
	beeperBit := md.AddInt("beeperbit", 4, "beeper bit of the port value")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	m, err := mf.machine()
	if err != nil {
		return err
	}

	err = m.LoadFile(md.GetArg(0), *origin)
	if err != nil {
		return err
	}

	m.CPU.PC.Load(*start)
	m.CPU.SP.Load(*stack)

	if *wav != "" {
		aw, err := wavwriter.New(*wav, m, *rate, uint8(*beeperPort), *beeperBit)
		if err != nil {
			return err
		}
		m.SetPortHandler(aw)
		defer func() {
			if err := aw.Close(); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	sync.state <- stateRequest{req: reqIntSig, args: m.Stop}

	e := executor{
		limit:      clocks.Cycles(*limit),
		rate:       *rate,
		realtime:   *realtime,
		stopOnHalt: true,
	}
	err = e.execute(m)
	fmt.Println(m.CPU.String())
	fmt.Printf("%d cycles (%v at %.4fMHz)\n", m.Elapsed().Cycles(), m.Elapsed().Duration(*rate), *rate)

	return err
}

func runCPM(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	mf := addMachineFlags(md)
	limit := md.AddInt("limit", 0, "cycle limit (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("COM file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	m, err := mf.machine()
	if err != nil {
		return err
	}

	c := cpm.Attach(m, os.Stdout)
	err = c.LoadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	sync.state <- stateRequest{req: reqIntSig, args: m.Stop}

	start := time.Now()
	err = m.RunUntilStopped(clocks.Cycles(*limit))
	fmt.Printf("\n%d cycles in %v\n", m.Elapsed().Cycles(), time.Since(start).Round(time.Millisecond))

	return err
}

func runMonitor(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	origin := md.AddAddress("origin", 0x0000, "load address")
	start := md.AddAddress("start", 0x0000, "start address")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := mf.machine()
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		err = m.LoadFile(md.GetArg(0), *origin)
		if err != nil {
			return err
		}
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	m.CPU.PC.Load(*start)

	// single key stepping is only possible on a terminal. the monitor works
	// without one
	var mt monitor.Terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		pt, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer pt.CleanUp()
		mt = pt
	} else {
		logger.Log(logger.Allow, "monitor", "input is not a terminal. single key stepping is unavailable")
	}

	return monitor.NewMonitor(m, os.Stdin, os.Stdout, mt).Run()
}

// executor runs a machine in slices of a millisecond of emulated time.
type executor struct {
	// zero for no limit
	limit clocks.Cycles

	// clock rate in MHz
	rate float64

	// sleep between slices so that emulated time matches real time
	realtime bool

	// the machine is stopped when the halt line is asserted
	stopOnHalt bool

	// used for pacing. replaced in tests
	sleep func(time.Duration)
}

func (e executor) execute(m *allram.Machine) error {
	slice := clocks.HalfCyclesIn(time.Millisecond, e.rate)
	if slice <= 0 {
		return curated.Errorf("clock rate too low (%fMHz)", e.rate)
	}

	sleep := e.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	limit := e.limit.HalfCycles()
	begin := m.Elapsed()
	deadline := time.Now()

	for !m.Stopped() {
		if limit > 0 && m.Elapsed()-begin >= limit {
			return curated.Errorf(allram.CycleLimitReached, e.limit)
		}

		m.RunForHalfCycles(slice)

		if err := m.CPU.Fault(); err != nil {
			return curated.Errorf(allram.ProcessorFault, err)
		}

		if e.stopOnHalt && m.CPU.HaltLine() {
			logger.Logf(logger.Allow, "run", "halted at %#04x", m.CPU.PC.Value())
			return nil
		}

		if e.realtime {
			deadline = deadline.Add(slice.Duration(e.rate))
			if d := time.Until(deadline); d > 0 {
				sleep(d)
			}
		}
	}

	return nil
}

