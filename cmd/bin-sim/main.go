//go:build !(rp2040 || rp2350)

// bin-sim runs the bin control loop on simulated lines and a virtual clock,
// replaying a fixed pattern of sensor samples.
package main

import (
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"smartbin-go/bus"
	"smartbin-go/services/bin"
	"smartbin-go/services/hal"
	"smartbin-go/services/hal/platform"
	"smartbin-go/services/setup"
	"smartbin-go/types"
	"smartbin-go/x/logx"
)

// sample is one scripted pair of sensor readings.
type sample struct{ lid, fill hal.Level }

// parsePattern reads "lid:fill,lid:fill,..." with 1 for asserted, 0 for deasserted.
func parsePattern(s string) ([]sample, error) {
	var out []sample
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lid, fill, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, errors.New("bad sample " + tok + ": want lid:fill")
		}
		l, err := parseLevel(lid)
		if err != nil {
			return nil, err
		}
		f, err := parseLevel(fill)
		if err != nil {
			return nil, err
		}
		out = append(out, sample{lid: l, fill: f})
	}
	if len(out) == 0 {
		return nil, errors.New("empty pattern")
	}
	return out, nil
}

func parseLevel(s string) (hal.Level, error) {
	switch s {
	case "1":
		return hal.High, nil
	case "0":
		return hal.Low, nil
	}
	return hal.Low, errors.New("bad level " + s + ": want 0 or 1")
}

// monitor logs everything the loop reports.
func monitor(sub *bus.Subscription) {
	for m := range sub.Channel() {
		switch p := m.Payload.(type) {
		case types.LidValue:
			logx.Info("monitor", m.Topic.String(), "opened", p.Opened)
		case types.PresenceEvent:
			logx.Info("monitor", m.Topic.String(), "count", p.Count)
		case types.FillEvent:
			logx.Info("monitor", m.Topic.String(), "count", p.Count)
		case types.LoopValue:
			logx.Info("monitor", m.Topic.String(), "iterations", p.Iterations)
		}
	}
}

func main() {
	iterations := flag.Int("iterations", 40, "loop iterations to run (0 = forever)")
	scale := flag.Float64("scale", 0, "real-time factor for delays (0 = no sleeping)")
	pattern := flag.String("pattern", "0:1,1:1,1:1,1:1,0:1,0:0,0:1", "cyclic sensor samples lid:fill")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		logx.SetLevel(logx.LevelDebug)
	}
	samples, err := parsePattern(*pattern)
	if err != nil {
		logx.Warn("sim", "invalid pattern", "err", err)
		os.Exit(2)
	}

	s := setup.Selected
	if err := s.Validate(); err != nil {
		logx.Warn("sim", "setup invalid", "err", err)
		os.Exit(2)
	}

	b := bus.NewBus(32)
	mon := b.NewConnection("monitor")
	sub := mon.Subscribe(bus.T("bin", "#"))
	done := make(chan struct{})
	go func() {
		monitor(sub)
		close(done)
	}()

	io, clk := platform.NewHost()
	io.KeepLast(256)
	clk.Scale = *scale

	loop := bin.New(io, clk, s.Pins, bin.WithBus(b.NewConnection("bin")))
	if err := loop.Boot(); err != nil {
		logx.Warn("sim", "boot incomplete", "err", err)
	}

	for i := 0; *iterations == 0 || i < *iterations; i++ {
		smp := samples[i%len(samples)]
		io.SetInput(s.Pins.LidSensor, smp.lid)
		io.SetInput(s.Pins.FillSensor, smp.fill)
		loop.Step()
	}

	// let the monitor drain what is queued
	time.Sleep(50 * time.Millisecond)
	mon.Disconnect()
	<-done

	st := loop.State()
	logx.Info("sim", "done",
		"iterations", st.Iterations,
		"presences", st.Presences,
		"fills", st.Fills,
		"virtual_time", clk.Now().String())
}
