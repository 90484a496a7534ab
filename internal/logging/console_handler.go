package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	color  bool
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar, color bool) slog.Handler {
	return &consoleHandler{writer: w, level: lvl, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var buf bytes.Buffer
	buf.Grow(128)

	if h.color {
		buf.WriteString(ansiDim)
	}
	buf.WriteString(timestamp.Format("15:04:05"))
	if h.color {
		buf.WriteString(ansiReset)
	}
	buf.WriteByte(' ')
	h.writeLevel(&buf, record.Level)
	buf.WriteByte(' ')
	buf.WriteString(record.Message)

	for _, attr := range h.attrs {
		h.writeAttr(&buf, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&buf, attr)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, qualify(h.groups, attr))
	}
	return clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *consoleHandler) clone() *consoleHandler {
	return &consoleHandler{
		writer: h.writer,
		level:  h.level,
		color:  h.color,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *consoleHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	label := strings.ToUpper(level.String())
	if !h.color {
		buf.WriteString(label)
		return
	}
	switch {
	case level >= slog.LevelError:
		buf.WriteString(ansiRed)
	case level >= slog.LevelWarn:
		buf.WriteString(ansiYellow)
	case level < slog.LevelInfo:
		buf.WriteString(ansiCyan)
	}
	buf.WriteString(label)
	if level >= slog.LevelWarn || level < slog.LevelInfo {
		buf.WriteString(ansiReset)
	}
}

func (h *consoleHandler) writeAttr(buf *bytes.Buffer, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			member.Key = attr.Key + "." + member.Key
			h.writeAttr(buf, member)
		}
		return
	}
	buf.WriteByte(' ')
	if h.color {
		buf.WriteString(ansiDim)
	}
	buf.WriteString(attr.Key)
	buf.WriteByte('=')
	if h.color {
		buf.WriteString(ansiReset)
	}
	buf.WriteString(formatValue(attr.Value))
}

func qualify(groups []string, attr slog.Attr) slog.Attr {
	for i := len(groups) - 1; i >= 0; i-- {
		attr.Key = groups[i] + "." + attr.Key
	}
	return attr
}

func formatValue(value slog.Value) string {
	text := value.String()
	if text == "" || strings.ContainsAny(text, " \t\n\"") {
		return strconv.Quote(text)
	}
	return text
}
