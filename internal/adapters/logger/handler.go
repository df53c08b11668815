package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pkgraph/internal/ui/output"
	"go.trai.ch/pkgraph/internal/ui/style"
)

// levelStyle is how records at or above minLevel are drawn.
type levelStyle struct {
	minLevel slog.Level
	icon     string
	color    lipgloss.Color
	indent   bool
}

// Ordered from the most to the least severe. Debug records trace load phases and are
// indented under the line that started the phase.
var levelStyles = [...]levelStyle{
	{minLevel: slog.LevelError, icon: style.Cross, color: style.Red},
	{minLevel: slog.LevelWarn, icon: style.Warning, color: style.Yellow},
	{minLevel: slog.LevelInfo, color: style.Slate},
	{minLevel: slog.LevelDebug - 4, icon: style.Dot, color: style.Iris, indent: true},
}

func styleFor(level slog.Level) levelStyle {
	for _, s := range levelStyles {
		if level >= s.minLevel {
			return s
		}
	}
	return levelStyles[len(levelStyles)-1]
}

// PrettyHandler is a slog.Handler writing one colored line per record to a terminal.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
// A nil opts.Level means Info.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var sb strings.Builder
	if ls.indent {
		sb.WriteString("  ")
	}
	if ls.icon != "" {
		sb.WriteString(ls.icon + " ")
	}
	sb.WriteString(r.Message)

	parts := h.attrs
	if r.NumAttrs() > 0 {
		parts = append([]string(nil), h.attrs...)
		r.Attrs(func(attr slog.Attr) bool {
			parts = appendAttr(parts, h.prefix(), attr)
			return true
		})
	}
	for _, p := range parts {
		sb.WriteString(" " + p)
	}

	styled := h.out.String(sb.String()).Foreground(termenv.RGBColor(string(ls.color)))
	if ls.indent {
		styled = styled.Faint()
	}
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs implements slog.Handler. Attributes are rendered once, when attached.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix(), attr)
	}
	return next
}

// WithGroup implements slog.Handler. Nested groups join their names with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  append([]string(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *PrettyHandler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// appendAttr renders attr as key=value. Group values are flattened and empty attributes
// are dropped.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, prefix, a)
		}
		return parts
	}

	return append(parts, prefix+attr.Key+"="+quoteValue(attr.Value.String()))
}

// quoteValue quotes values that would not read back as a single key=value token, such as
// manifest paths with spaces.
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return strconv.Quote(v)
	}
	return v
}
