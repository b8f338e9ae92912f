// Package logx is the firmware's structured logger. Host builds write through
// zerolog; MCU builds format a compact "[component] msg k=v" line.
package logx

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)
