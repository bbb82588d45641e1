package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/pbwire/wire"
)

var (
	numberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// dumper prints a schema-free field tree of one encoded message.
type dumper struct {
	out      io.Writer
	log      *zap.Logger
	maxDepth int
	styled   bool
}

func (d *dumper) dump(data []byte) error {
	return d.dumpMessage(data, 0, 0)
}

func (d *dumper) style(s lipgloss.Style, text string) string {
	if !d.styled {
		return text
	}
	return s.Render(text)
}

func (d *dumper) dumpMessage(buf []byte, depth, base int) error {
	indent := strings.Repeat("  ", depth)
	it := wire.NewIterator(buf)
	for it.Next() {
		tag := it.Tag()
		offset := base + it.Position()
		v, err := it.Value()
		if err != nil {
			fmt.Fprintf(d.out, "%s%s\n", indent, d.style(errStyle, fmt.Sprintf("! %v", err)))
			return err
		}
		d.log.Debug("field",
			zap.Uint32("number", tag.Number),
			zap.String("type", tag.Type.String()),
			zap.Int("offset", offset))

		prefix := fmt.Sprintf("%s%s %s %s",
			indent,
			d.style(offsetStyle, fmt.Sprintf("%06x", offset)),
			d.style(numberStyle, fmt.Sprintf("#%d", tag.Number)),
			d.style(typeStyle, tag.Type.String()))

		switch tag.Type {
		case wire.TypeVarint:
			n, _ := v.Uint64()
			detail := fmt.Sprintf("%d", n)
			if s := wire.Zigzag64(n); s < 0 {
				detail += fmt.Sprintf(" (sint %d)", s)
			}
			fmt.Fprintf(d.out, "%s %s\n", prefix, d.style(valueStyle, detail))

		case wire.TypeFixed64:
			n, _ := v.Fixed64()
			f, _ := v.Double()
			fmt.Fprintf(d.out, "%s %s\n", prefix,
				d.style(valueStyle, fmt.Sprintf("0x%016x (double %g)", n, f)))

		case wire.TypeFixed32:
			n, _ := v.Fixed32()
			f, _ := v.Float()
			fmt.Fprintf(d.out, "%s %s\n", prefix,
				d.style(valueStyle, fmt.Sprintf("0x%08x (float %g)", n, f)))

		case wire.TypeLengthDelimited:
			raw, _ := v.Bytes()
			if depth < d.maxDepth && looksLikeMessage(raw) {
				fmt.Fprintf(d.out, "%s %s\n", prefix,
					d.style(valueStyle, fmt.Sprintf("message (%d bytes)", len(raw))))
				// Payload starts after the tag and length prefix.
				payloadBase := base + it.Position() - len(raw)
				if err := d.dumpMessage(raw, depth+1, payloadBase); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(d.out, "%s %s\n", prefix, d.style(valueStyle, previewBytes(raw)))
			}
		}
	}
	if err := it.Err(); err != nil {
		fmt.Fprintf(d.out, "%s%s\n", indent, d.style(errStyle, fmt.Sprintf("! %v", err)))
		return err
	}
	return nil
}

// looksLikeMessage reports whether buf parses cleanly as a non-empty message
// with every field consumable. Heuristic only: short byte blobs can collide
// with valid encodings.
func looksLikeMessage(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	it := wire.NewIterator(buf)
	fields := 0
	for it.Next() {
		if err := it.Skip(); err != nil {
			return false
		}
		fields++
	}
	return it.Err() == nil && fields > 0
}

func previewBytes(b []byte) string {
	if len(b) == 0 {
		return `"" (0 bytes)`
	}
	if utf8.Valid(b) && printable(b) {
		s := string(b)
		if len(s) > 64 {
			s = s[:64] + "…"
		}
		return fmt.Sprintf("%q (%d bytes)", s, len(b))
	}
	preview := b
	if len(preview) > 24 {
		preview = preview[:24]
	}
	return fmt.Sprintf("%x (%d bytes)", preview, len(b))
}

func printable(b []byte) bool {
	for _, c := range string(b) {
		if c < 0x20 && c != '\n' && c != '\t' {
			return false
		}
	}
	return true
}
