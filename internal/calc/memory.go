package calc

import (
	"fmt"
	"sort"

	"github.com/yeeaiclub/fastpane"
	"github.com/yeeaiclub/fastpane/components"
)

// Registers is the named storage the calculator saves values into.
type Registers interface {
	Store(name rune, v float64) bool
	Recall(name rune) (float64, bool)
	Delete(name rune) bool
}

// Memory holds the named registers a to z and draws them as a list.
type Memory struct {
	values map[rune]float64
	title  string
	theme  Theme
}

func NewMemory(theme Theme) *Memory {
	return &Memory{
		values: make(map[rune]float64),
		title:  "Memory",
		theme:  theme,
	}
}

func validRegister(name rune) bool {
	return name >= 'a' && name <= 'z'
}

// Store saves v under name and reports whether name is a register.
func (m *Memory) Store(name rune, v float64) bool {
	if !validRegister(name) {
		return false
	}
	m.values[name] = v
	return true
}

func (m *Memory) Recall(name rune) (float64, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *Memory) Delete(name rune) bool {
	if _, ok := m.values[name]; !ok {
		return false
	}
	delete(m.values, name)
	return true
}

// Names returns the occupied registers in order.
func (m *Memory) Names() []rune {
	names := make([]rune, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (m *Memory) Render(size fastpane.Size) []fastpane.Action {
	lines := []fastpane.StyledText{fastpane.NewStyledText(m.title, fastpane.Fg(m.theme.Title))}
	for _, name := range m.Names() {
		line := fmt.Sprintf("%c: %s", name, formatCompact(m.values[name]))
		lines = append(lines, fastpane.NewStyledText(line, fastpane.Fg(m.theme.Memory)))
	}
	return components.NewText(0, 0, lines...).Render(size)
}
