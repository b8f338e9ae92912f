//go:build rp2040 || rp2350

package logx

import (
	"io"
	"strconv"
	"time"
)

var (
	out   io.Writer // nil => builtin print (USB CDC)
	level = LevelInfo
	line  []byte
)

// SetOutput mirrors log lines to w, typically a UART console.
func SetOutput(w io.Writer) { out = w }

func SetLevel(lvl Level) { level = lvl }

func Debug(component, msg string, kv ...any) { emit(LevelDebug, "DBG", component, msg, kv) }
func Info(component, msg string, kv ...any)  { emit(LevelInfo, "INF", component, msg, kv) }
func Warn(component, msg string, kv ...any)  { emit(LevelWarn, "WRN", component, msg, kv) }

func emit(lvl Level, tag, component, msg string, kv []any) {
	if lvl < level {
		return
	}
	line = append(line[:0], tag...)
	line = append(line, " ["...)
	line = append(line, component...)
	line = append(line, "] "...)
	line = append(line, msg...)
	for i := 0; i+1 < len(kv); i += 2 {
		line = append(line, ' ')
		if k, ok := kv[i].(string); ok {
			line = append(line, k...)
		}
		line = append(line, '=')
		line = appendValue(line, kv[i+1])
	}
	line = append(line, '\r', '\n')
	if out != nil {
		_, _ = out.Write(line)
		return
	}
	print(string(line))
}

// no fmt: keep the formatter to the handful of kinds the firmware logs
func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case bool:
		return strconv.AppendBool(b, x)
	case int:
		return strconv.AppendInt(b, int64(x), 10)
	case int64:
		return strconv.AppendInt(b, x, 10)
	case uint32:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(b, x, 10)
	case time.Duration:
		return append(strconv.AppendInt(b, x.Milliseconds(), 10), "ms"...)
	case error:
		return append(b, x.Error()...)
	default:
		return append(b, '?')
	}
}
