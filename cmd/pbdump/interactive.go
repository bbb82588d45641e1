package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/pbwire/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

type fieldEntry struct {
	val     wire.Value
	summary string
	offset  int
	tag     wire.Tag
	isMsg   bool
}

type frame struct {
	label   string
	fields  []fieldEntry
	openErr error
	cursor  int
}

type browseState int

const (
	stateBrowse browseState = iota
	stateDetail
)

type browseModel struct {
	vp     viewport.Model
	stack  []frame
	state  browseState
	width  int
	height int
	ready  bool
}

func runInteractive(data []byte) error {
	root := loadFrame("message", data)
	m := &browseModel{stack: []frame{root}}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// loadFrame decodes every field of one message level. A decode error stops
// the listing; the fields read before it remain browsable.
func loadFrame(label string, buf []byte) frame {
	f := frame{label: label}
	it := wire.NewIterator(buf)
	for it.Next() {
		tag := it.Tag()
		offset := it.Position()
		v, err := it.Value()
		if err != nil {
			f.openErr = err
			return f
		}
		e := fieldEntry{tag: tag, val: v, offset: offset}
		switch tag.Type {
		case wire.TypeVarint:
			n, _ := v.Uint64()
			e.summary = fmt.Sprintf("%d", n)
		case wire.TypeFixed64:
			n, _ := v.Fixed64()
			d, _ := v.Double()
			e.summary = fmt.Sprintf("0x%016x (double %g)", n, d)
		case wire.TypeFixed32:
			n, _ := v.Fixed32()
			fl, _ := v.Float()
			e.summary = fmt.Sprintf("0x%08x (float %g)", n, fl)
		case wire.TypeLengthDelimited:
			raw, _ := v.Bytes()
			if looksLikeMessage(raw) {
				e.isMsg = true
				e.summary = fmt.Sprintf("message (%d bytes)", len(raw))
			} else {
				e.summary = previewBytes(raw)
			}
		}
		f.fields = append(f.fields, e)
	}
	f.openErr = it.Err()
	return f
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) top() *frame {
	return &m.stack[len(m.stack)-1]
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "esc", "backspace":
			if m.state == stateDetail {
				m.state = stateBrowse
				return m, nil
			}
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
			}
			return m, nil

		case "up", "k":
			if m.state == stateBrowse {
				f := m.top()
				if f.cursor > 0 {
					f.cursor--
				}
				return m, nil
			}

		case "down", "j":
			if m.state == stateBrowse {
				f := m.top()
				if f.cursor < len(f.fields)-1 {
					f.cursor++
				}
				return m, nil
			}

		case "enter":
			if m.state != stateBrowse {
				return m, nil
			}
			f := m.top()
			if len(f.fields) == 0 {
				return m, nil
			}
			e := f.fields[f.cursor]
			if e.isMsg {
				raw, _ := e.val.Bytes()
				label := fmt.Sprintf("#%d", e.tag.Number)
				m.stack = append(m.stack, loadFrame(label, raw))
				return m, nil
			}
			if m.ready {
				m.vp.SetContent(detailView(e))
				m.vp.GotoTop()
				m.state = stateDetail
			}
			return m, nil
		}
	}

	// Remaining messages scroll the detail viewport.
	if m.state == stateDetail && m.ready {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pbdump"))
	b.WriteString("  ")
	crumbs := make([]string, len(m.stack))
	for i, f := range m.stack {
		crumbs[i] = f.label
	}
	b.WriteString(breadcrumbStyle.Render(strings.Join(crumbs, " > ")))
	b.WriteString("\n\n")

	if m.state == stateDetail {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll · esc back · q quit"))
		return b.String()
	}

	f := m.top()
	if len(f.fields) == 0 && f.openErr == nil {
		b.WriteString(helpStyle.Render("(empty message)"))
		b.WriteString("\n")
	}
	for i, e := range f.fields {
		line := fmt.Sprintf("%06x #%-4d %-16s %s", e.offset, e.tag.Number, e.tag.Type, e.summary)
		if i == f.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if f.openErr != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("! %v", f.openErr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter open · esc up · q quit"))
	return b.String()
}

// detailView renders every reinterpretation of one field the wire format
// admits.
func detailView(e fieldEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "field %d, wire type %s, at offset %#x\n\n", e.tag.Number, e.tag.Type, e.offset)

	switch e.tag.Type {
	case wire.TypeVarint:
		n, _ := e.val.Uint64()
		fmt.Fprintf(&b, "uint64:  %d\n", n)
		fmt.Fprintf(&b, "int64:   %d\n", int64(n))
		fmt.Fprintf(&b, "sint64:  %d (zigzag)\n", wire.Zigzag64(n))
		fmt.Fprintf(&b, "bool:    %v\n", n != 0)

	case wire.TypeFixed64:
		n, _ := e.val.Fixed64()
		d, _ := e.val.Double()
		fmt.Fprintf(&b, "fixed64:  %d\n", n)
		fmt.Fprintf(&b, "sfixed64: %d\n", int64(n))
		fmt.Fprintf(&b, "double:   %g\n", d)

	case wire.TypeFixed32:
		n, _ := e.val.Fixed32()
		fl, _ := e.val.Float()
		fmt.Fprintf(&b, "fixed32:  %d\n", n)
		fmt.Fprintf(&b, "sfixed32: %d\n", int32(n))
		fmt.Fprintf(&b, "float:    %g\n", fl)

	case wire.TypeLengthDelimited:
		raw, _ := e.val.Bytes()
		fmt.Fprintf(&b, "length: %d bytes\n\n", len(raw))
		if s, err := e.val.String(); err == nil {
			fmt.Fprintf(&b, "string: %q\n\n", s)
		}
		if p, err := e.val.Packed(wire.PackedVarint); err == nil {
			var elems []string
			for v, ok := p.Next(); ok && len(elems) < 32; v, ok = p.Next() {
				elems = append(elems, fmt.Sprintf("%d", v))
			}
			if p.Err() == nil && len(elems) > 0 {
				fmt.Fprintf(&b, "packed varint: [%s]\n\n", strings.Join(elems, " "))
			}
		}
		b.WriteString("hex:\n")
		b.WriteString(hexDump(raw))
	}
	return b.String()
}

func hexDump(b []byte) string {
	var sb strings.Builder
	for i := 0; i < len(b); i += 16 {
		end := i + 16
		if end > len(b) {
			end = len(b)
		}
		fmt.Fprintf(&sb, "%06x  % x\n", i, b[i:end])
	}
	return sb.String()
}
