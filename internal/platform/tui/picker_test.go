package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/config"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m PickerModel, msg tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update returned %T, expected PickerModel", next)
	}
	return pm, cmd
}

func newTestPicker(opts PickerOptions) (PickerModel, *[]string) {
	var copied []string
	opts.Theme = DefaultPickerTheme()
	opts.CopyFunc = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return NewPickerModel(opts, 120, 40), &copied
}

func TestPickerInitialState(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{})

	if m.Section() != colors.SectionRedsOranges {
		t.Errorf("Section() = %q, expected first section", m.Section())
	}
	if len(m.visible) != 15 {
		t.Errorf("len(Visible()) = %d, expected 15", len(m.visible))
	}
	c, ok := m.Current()
	if !ok || c.Name() != "LightSalmon" {
		t.Errorf("Current() = %v, %v, expected LightSalmon", c, ok)
	}

	m, _ = newTestPicker(PickerOptions{Section: colors.SectionGrays})
	if m.Section() != colors.SectionGrays || len(m.visible) != 10 {
		t.Errorf("initial section = %q with %d colors", m.Section(), len(m.visible))
	}
}

func TestPickerSectionNavigation(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Section() != colors.SectionYellows {
		t.Errorf("after tab Section() = %q, expected Yellows", m.Section())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Section() != colors.SectionBrowns {
		t.Errorf("shift+tab should wrap to last section, got %q", m.Section())
	}
}

func TestPickerCycleSort(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{Section: colors.SectionCyans})

	m, cmd := send(t, m, keyRunes("s"))
	if cmd == nil {
		t.Error("expected status timeout command")
	}
	if m.preset != config.PresetRainbow {
		t.Errorf("preset = %q, expected rainbow", m.preset)
	}
	if !strings.Contains(m.status, "rainbow") {
		t.Errorf("status = %q", m.status)
	}
	vis := m.visible
	for i := 1; i < len(vis); i++ {
		if vis[i-1].Hue() > vis[i].Hue() {
			t.Fatalf("rainbow sort not ascending by hue at %d", i)
		}
	}

	// catalog -> rainbow -> alphabetical -> rgb
	m, _ = send(t, m, keyRunes("s"))
	m, _ = send(t, m, keyRunes("s"))
	if m.preset != config.PresetRGB {
		t.Fatalf("preset = %q, expected rgb", m.preset)
	}
	if c, _ := m.Current(); c.Name() != "Teal" {
		t.Errorf("first color by rgb = %s, expected Teal", c.Name())
	}
}

func TestPickerExplicitSortKeys(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{SortKeys: []colors.SortKey{colors.KeyName}})
	if c, _ := m.Current(); c.Name() != "Coral" {
		t.Errorf("first color by name = %s, expected Coral", c.Name())
	}
}

func TestPickerCycleLevel(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{})

	tests := []struct {
		level    int
		expected int
	}{
		{2, 13},
		{3, 12},
		{4, 0},
		{1, 15},
	}

	for _, tc := range tests {
		m, _ = send(t, m, keyRunes("c"))
		if m.minLevel != tc.level {
			t.Fatalf("minLevel = %d, expected %d", m.minLevel, tc.level)
		}
		if len(m.visible) != tc.expected {
			t.Errorf("level %d: %d colors, expected %d", tc.level, len(m.visible), tc.expected)
		}
		if tc.expected == 0 {
			if _, ok := m.Current(); ok {
				t.Error("Current() should be empty when nothing is visible")
			}
			if !strings.Contains(m.View(), "No colors in this section") {
				t.Error("expected empty message in view")
			}
		}
	}
}

func TestPickerCopy(t *testing.T) {
	m, copied := newTestPicker(PickerOptions{})

	m, _ = send(t, m, keyRunes("y"))
	if len(*copied) != 1 || (*copied)[0] != "#FFA07A" {
		t.Errorf("copied = %v, expected [#FFA07A]", *copied)
	}
	if !strings.Contains(m.status, "Copied #FFA07A") {
		t.Errorf("status = %q", m.status)
	}

	m.copyFunc = func(string) error { return errors.New("no clipboard") }
	m, _ = send(t, m, keyRunes("y"))
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q, expected copy error", m.status)
	}
}

func TestPickerStatusClear(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{})

	m, _ = send(t, m, keyRunes("s"))
	first := m.statusSeq
	m, _ = send(t, m, keyRunes("c"))

	// An expired older status must not clear the newer one.
	m, _ = send(t, m, StatusClearMsg{Seq: first})
	if m.status == "" {
		t.Error("older timeout cleared newer status")
	}
	m, _ = send(t, m, StatusClearMsg{Seq: m.statusSeq})
	if m.status != "" {
		t.Errorf("status = %q, expected cleared", m.status)
	}
}

func TestPickerSelect(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected quit command after select")
	}
	c, ok := m.Selected()
	if !ok || c.Name() != "DarkSalmon" {
		t.Errorf("Selected() = %v, %v, expected DarkSalmon", c, ok)
	}
	if m.View() != "" {
		t.Error("view should be empty after selection")
	}
}

func TestPickerQuit(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{})

	m, cmd := send(t, m, keyRunes("q"))
	if cmd == nil || !m.quitting {
		t.Error("expected quit")
	}
	if _, ok := m.Selected(); ok {
		t.Error("quit should not select a color")
	}
}

func TestPickerView(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{ShowAliases: true, Section: colors.SectionCyans})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})

	view := m.View()
	for _, want := range []string{"NAMED COLORS - Cyans", "Sections", "LightCyan", "#E0FFFF", "Alias"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// Narrow terminals drop the sidebar.
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if m.showSidebar {
		t.Error("sidebar should be hidden at width 60")
	}
	if strings.Contains(m.View(), "Sections") {
		t.Error("narrow view should not render the sidebar")
	}

	m, _ = send(t, m, keyRunes("a"))
	if m.showAliases {
		t.Error("a should toggle aliases off")
	}
}

// maxLineWidth returns the widest rendered line of a view.
func maxLineWidth(view string) int {
	widest := 0
	for _, line := range strings.Split(view, "\n") {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

func TestPickerFitsTerminalWidth(t *testing.T) {
	tests := []struct {
		width       int
		sidebar     bool
		detail      bool
		aliasColumn bool
	}{
		{60, false, false, false},
		{80, false, false, true},
		{minWidthForSidebar, true, false, false},
		{100, true, false, true},
		{minWidthForDetail, true, true, false},
		{140, true, true, true},
		{200, true, true, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("width %d", tc.width), func(t *testing.T) {
			m := NewPickerModel(PickerOptions{ShowAliases: true, Theme: DefaultPickerTheme()}, tc.width, 30)

			if m.showSidebar != tc.sidebar || m.showDetail != tc.detail || m.aliasColumn != tc.aliasColumn {
				t.Errorf("sidebar=%v detail=%v alias=%v, expected %v %v %v",
					m.showSidebar, m.showDetail, m.aliasColumn, tc.sidebar, tc.detail, tc.aliasColumn)
			}
			if got := maxLineWidth(m.View()); got > tc.width {
				t.Errorf("widest line = %d, terminal is %d", got, tc.width)
			}
		})
	}
}

func TestPickerResizeFitsTerminalWidth(t *testing.T) {
	m, _ := newTestPicker(PickerOptions{ShowAliases: true})

	for _, width := range []int{140, 80, 100, 140, 90} {
		m, _ = send(t, m, tea.WindowSizeMsg{Width: width, Height: 30})
		if got := maxLineWidth(m.View()); got > width {
			t.Errorf("after resize to %d: widest line = %d", width, got)
		}
	}

	// Levels with no colors swap the table for a message.
	for i := 0; i < 3; i++ {
		m, _ = send(t, m, keyRunes("c"))
	}
	if got := maxLineWidth(m.View()); got > 90 {
		t.Errorf("empty section at width 90: widest line = %d", got)
	}
}
