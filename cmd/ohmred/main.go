package main

import (
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/voltlane/ohmred/netlist"
	"github.com/voltlane/ohmred/reduce"
	"github.com/voltlane/ohmred/units"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	if len(os.Args) < 2 || os.Args[1] != "solve" {
		io.PfRed("usage: ohmred solve <file> <freq_hz>\n")
		os.Exit(1)
	}
	if len(os.Args) < 4 {
		chk.Panic("solve needs an input file and a frequency in Hz")
	}
	fname := os.Args[2]
	freqHz, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		chk.Panic("frequency must be a number: %v", err)
	}

	// message
	io.PfWhite("\nohmred -- linear circuit reducer\n\n")
	io.Pf("%v\n", io.ArgsTable("INPUT",
		"netlist file", "file", fname,
		"frequency [Hz]", "freq", freqHz,
	))

	// parse netlist
	graph, err := netlist.ParseFile(fname)
	if err != nil {
		chk.Panic("parse failed:\n%v", err)
	}
	omega, err := units.FromHz(freqHz)
	if err != nil {
		chk.Panic("bad frequency:\n%v", err)
	}
	io.Pf("parsed %d nodes, %d components (ω = %g rad/s)\n\n",
		graph.NodeCount(), graph.ComponentCount(), omega.Rad())

	// reduce
	steps, err := reduce.Reduce(graph, omega)
	if err != nil {
		chk.Panic("reduction failed:\n%v", err)
	}

	// report steps
	if len(steps) == 0 {
		io.Pf("no reductions apply\n")
	}
	for i, s := range steps {
		eq, _ := graph.Component(s.Equivalent)
		io.Pf("%3d: %-8s merged=%v  →  %s between (%d,%d)  Z = %v\n",
			i+1, s.Kind, s.Components, eq.ID, s.Endpoints[0], s.Endpoints[1], s.Impedance)
	}

	// report surviving branches
	io.Pf("\nactive components: %d\n", graph.ActiveComponentCount())
	for i := 0; i < graph.ComponentCount(); i++ {
		c, _ := graph.Component(i)
		if !c.Active {
			continue
		}
		z, _ := c.CachedImpedance()
		io.Pf("  %-8s (%d,%d)  Z = %v\n", c.ID, c.Nodes[0], c.Nodes[1], z)
	}
}
