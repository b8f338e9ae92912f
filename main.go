package main

import (
	"time"

	"smartbin-go/errcode"
	"smartbin-go/services/bin"
	"smartbin-go/services/hal/platform"
	"smartbin-go/services/setup"
	"smartbin-go/x/logx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	s := setup.Selected
	if w := platform.OpenConsole(s.Console); w != nil {
		logx.SetOutput(w)
	}
	if err := s.Validate(); err != nil {
		logx.Warn("main", "setup invalid, continuing", "code", string(errcode.Of(err)), "err", err)
	}

	io, clk := platform.Default()
	loop := bin.New(io, clk, s.Pins)
	if err := loop.Boot(); err != nil {
		logx.Warn("main", "boot incomplete, continuing", "err", err)
	}
	logx.Info("main", "control loop running", "board", s.Board, "platform", platform.BoardName)

	loop.Run()
}
