package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	taskconv "github.com/alnah/go-taskconv"
	"github.com/alnah/go-taskconv/internal/fileutil"
)

// direction is one supported conversion route.
type direction struct {
	label  string
	from   taskconv.Format
	to     taskconv.Format
	outExt string
}

var directions = []direction{
	{"OneNote (.mht) → MLO (.opml)", taskconv.FormatMHT, taskconv.FormatOPML, ".opml"},
	{"MLO (.opml) → OneNote (.html)", taskconv.FormatOPML, taskconv.FormatHTML, ".html"},
	{"Plain text → MLO (.opml)", taskconv.FormatText, taskconv.FormatOPML, ".opml"},
	{"Markdown (.md) → MLO (.opml)", taskconv.FormatMarkdown, taskconv.FormatOPML, ".opml"},
}

type focusArea int

const (
	focusDirection focusArea = iota
	focusInput
	focusOutput
	focusText
	focusConvert
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(12)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// formModel is the interactive conversion form: direction selector,
// input/output paths, a direct text blob for the plain-text route, and a
// convert action.
type formModel struct {
	conv      *taskconv.Converter
	direction int
	focus     focusArea
	input     textinput.Model
	output    textinput.Model
	blob      textarea.Model
	status    string
	statusErr bool
}

func newFormModel(opts ...taskconv.Option) formModel {
	input := textinput.New()
	input.Placeholder = "path/to/input"
	input.Focus()

	output := textinput.New()
	output.Placeholder = "path/to/output (blank = input with new extension)"

	blob := textarea.New()
	blob.Placeholder = "…or type the task list here"
	blob.SetHeight(6)

	return formModel{
		conv:   taskconv.New(opts...),
		focus:  focusDirection,
		input:  input,
		output: output,
		blob:   blob,
	}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFields(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.setFocus(m.nextFocus(1))
		return m, nil

	case "shift+tab", "up":
		m.setFocus(m.nextFocus(-1))
		return m, nil

	case "left", "right":
		if m.focus == focusDirection {
			delta := 1
			if keyMsg.String() == "left" {
				delta = len(directions) - 1
			}
			m.direction = (m.direction + delta) % len(directions)
			return m, nil
		}

	case "enter":
		if m.focus == focusConvert {
			m.runConversion()
			return m, nil
		}
		if m.focus != focusText {
			m.setFocus(m.nextFocus(1))
			return m, nil
		}
	}

	return m.updateFields(msg)
}

// updateFields forwards messages to whichever field has focus.
func (m formModel) updateFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusOutput:
		m.output, cmd = m.output.Update(msg)
	case focusText:
		m.blob, cmd = m.blob.Update(msg)
	}
	return m, cmd
}

// nextFocus cycles focus, skipping the text blob unless the plain-text
// route is selected.
func (m formModel) nextFocus(delta int) focusArea {
	order := []focusArea{focusDirection, focusInput, focusOutput, focusText, focusConvert}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	for {
		idx = (idx + delta + len(order)) % len(order)
		next := order[idx]
		if next == focusText && directions[m.direction].from != taskconv.FormatText {
			continue
		}
		return next
	}
}

func (m *formModel) setFocus(f focusArea) {
	m.focus = f
	m.input.Blur()
	m.output.Blur()
	m.blob.Blur()
	switch f {
	case focusInput:
		m.input.Focus()
	case focusOutput:
		m.output.Focus()
	case focusText:
		m.blob.Focus()
	}
}

// runConversion performs the selected conversion and records the outcome
// in the status line.
func (m *formModel) runConversion() {
	dir := directions[m.direction]

	content := ""
	inputPath := strings.TrimSpace(m.input.Value())
	if dir.from == taskconv.FormatText && strings.TrimSpace(m.blob.Value()) != "" {
		content = m.blob.Value()
	} else {
		if inputPath == "" {
			m.setStatus("input path is required", true)
			return
		}
		read, err := fileutil.ReadTextFile(inputPath)
		if err != nil {
			m.setStatus(err.Error(), true)
			return
		}
		content = read
	}

	outputPath := strings.TrimSpace(m.output.Value())
	if outputPath == "" {
		if inputPath == "" {
			m.setStatus("output path is required", true)
			return
		}
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + dir.outExt
	}

	result, err := m.conv.Convert(context.Background(), taskconv.Input{
		Content: content,
		From:    dir.from,
		To:      dir.to,
	})
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if err := fileutil.AtomicWriteFile(outputPath, result.Output); err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	m.setStatus(fmt.Sprintf("created %s (%d top-level tasks)", outputPath, len(result.Tasks)), false)
}

func (m *formModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("taskconv — task list converter"))
	b.WriteString("\n")

	marker := "  "
	dirLabel := directions[m.direction].label
	if m.focus == focusDirection {
		marker = focusedStyle.Render("> ")
		dirLabel = focusedStyle.Render(dirLabel)
	}
	fmt.Fprintf(&b, "%s%s◂ %s ▸\n\n", labelStyle.Render("Direction"), marker, dirLabel)

	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Input"), m.input.View())
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("Output"), m.output.View())

	if directions[m.direction].from == taskconv.FormatText {
		fmt.Fprintf(&b, "\n%s\n%s\n", labelStyle.Render("Text"), m.blob.View())
	}

	convert := "[ Convert ]"
	if m.focus == focusConvert {
		convert = focusedStyle.Render("[ Convert ]")
	}
	fmt.Fprintf(&b, "\n%s\n", convert)

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		fmt.Fprintf(&b, "\n%s\n", style.Render(m.status))
	}

	b.WriteString(helpStyle.Render("tab: next field • ◂/▸: direction • enter: convert • esc: quit"))
	return b.String()
}

// runForm starts the interactive conversion form.
func runForm(opts []taskconv.Option) error {
	_, err := tea.NewProgram(newFormModel(opts...)).Run()
	return err
}
