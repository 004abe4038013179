package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/namedcolors/internal/colors"
	"github.com/vovakirdan/namedcolors/internal/config"
)

// Picker layout constants
const (
	sidebarWidth = 21 // Width of section sidebar, padding included
	detailWidth  = 28 // Width of selected color pane, padding included
	panelFrame   = 4  // Rounded border plus horizontal padding of a panel
	gapWidth     = 1  // Space between panels
	swatchHeight = 5  // Rows of the detail swatch
	chromeHeight = 9  // Title, borders, status and help

	// Table columns. Every cell carries one cell of padding on each side.
	cellPadding   = 2
	hexWidth      = 7
	rgbWidth      = 11
	hslWidth      = 14
	cssWidth      = 3
	nameMinWidth  = 12 // Below this the Alias column is dropped
	nameMaxWidth  = 20
	aliasMinWidth = 8
	aliasMaxWidth = 14
	nameFloor     = 4

	fixedColumnsWidth = hexWidth + rgbWidth + hslWidth + cssWidth + 4*cellPadding
	minTableWidth     = fixedColumnsWidth + nameMinWidth + cellPadding

	minWidthForSidebar = sidebarWidth + 2 + gapWidth + panelFrame + minTableWidth
	minWidthForDetail  = minWidthForSidebar + detailWidth + 2 + gapWidth
)

// PickerOptions configures the initial picker state.
type PickerOptions struct {
	Section     string             // Initial section, empty = first
	Preset      config.SortPreset  // Initial sort preset
	SortKeys    []colors.SortKey   // Explicit keys; replaced once the preset is cycled
	MinCSSLevel int                // Minimum CSS level filter, <=1 shows all
	ShowAliases bool               // Show alias column
	Theme       PickerTheme        // Visual styles
	CopyFunc    func(string) error // Clipboard writer, nil = system clipboard
}

// PickerModel is the Bubble Tea model for the color picker screen.
type PickerModel struct {
	groups        colors.Groups  // Catalog grouped by section
	sectionCursor int            // Currently selected section index
	visible       []colors.Color // Filtered and sorted colors of the section
	preset        config.SortPreset
	sortKeys      []colors.SortKey
	minLevel      int
	showAliases   bool
	copyFunc      func(string) error

	table  table.Model
	help   help.Model
	keys   PickerKeyMap
	theme  PickerTheme
	width  int
	height int

	status    string
	statusSeq int

	showSidebar bool
	showDetail  bool
	aliasColumn bool // Alias column fits and is enabled
	quitting    bool
	selected    *colors.Color // Set when user selects a color
}

// NewPickerModel creates a new picker model.
func NewPickerModel(opts PickerOptions, width, height int) PickerModel {
	copyFunc := opts.CopyFunc
	if copyFunc == nil {
		copyFunc = clipboard.WriteAll
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := PickerModel{
		groups:      colors.AllByCategory(),
		preset:      opts.Preset,
		sortKeys:    opts.SortKeys,
		minLevel:    max(opts.MinCSSLevel, 1),
		showAliases: opts.ShowAliases,
		copyFunc:    copyFunc,
		help:        h,
		keys:        DefaultPickerKeyMap(),
		theme:       opts.Theme,
		width:       width,
		height:      height,
	}
	m.setLayout()
	if m.preset == "" {
		m.preset = config.PresetCatalog
	}
	if m.sortKeys == nil {
		m.sortKeys, _ = config.KeysForPreset(m.preset)
	}
	for i, g := range m.groups {
		if g.Section == opts.Section {
			m.sectionCursor = i
		}
	}

	m.table = m.createTable()
	m.refresh()
	return m
}

// setLayout picks the panels that fit the terminal width.
func (m *PickerModel) setLayout() {
	m.showSidebar = m.width >= minWidthForSidebar
	m.showDetail = m.width >= minWidthForDetail
}

// tableSpace returns the cells left for the table after the sidebar,
// the detail pane and the table's own panel frame.
func (m PickerModel) tableSpace() int {
	space := m.width - panelFrame
	if m.showSidebar {
		space -= sidebarWidth + 2 + gapWidth
	}
	if m.showDetail {
		space -= detailWidth + 2 + gapWidth
	}
	return space
}

// createTable creates a new table with columns sized to the terminal.
// Name and Alias absorb the width changes; the Alias column is dropped
// when Name would shrink below nameMinWidth.
func (m *PickerModel) createTable() table.Model {
	spare := m.tableSpace() - fixedColumnsWidth - cellPadding

	aliasWidth := 0
	m.aliasColumn = m.showAliases && spare >= nameMinWidth+aliasMinWidth+cellPadding
	if m.aliasColumn {
		aliasWidth = aliasMinWidth
		spare -= aliasMinWidth + cellPadding
	}

	nameWidth := min(max(spare, nameFloor), nameMaxWidth)
	if m.aliasColumn && spare > nameWidth {
		aliasWidth += min(spare-nameWidth, aliasMaxWidth-aliasMinWidth)
	}

	columns := []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Hex", Width: hexWidth},
		{Title: "RGB", Width: rgbWidth},
		{Title: "HSL", Width: hslWidth},
		{Title: "CSS", Width: cssWidth},
	}
	if m.aliasColumn {
		columns = append(columns, table.Column{Title: "Alias", Width: aliasWidth})
	}

	tableWidth := 0
	for _, c := range columns {
		tableWidth += c.Width + cellPadding
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithWidth(tableWidth),
		table.WithHeight(max(m.height-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// refresh recomputes the visible colors and table rows.
func (m *PickerModel) refresh() {
	var section []colors.Color
	if len(m.groups) > 0 {
		section = m.groups[m.sectionCursor].Colors
	}
	visible := colors.FilterByMinCSSLevel(section, m.minLevel)
	if len(m.sortKeys) > 0 {
		if sorted, err := colors.SortByKeys(visible, m.sortKeys); err == nil {
			visible = sorted
		}
	}
	m.visible = visible

	rows := make([]table.Row, len(m.visible))
	for i, c := range m.visible {
		row := table.Row{
			c.Name(),
			c.Hex(),
			rgbText(c),
			hslText(c),
			fmt.Sprintf("%d", c.MinCSSLevel()),
		}
		if m.aliasColumn {
			row = append(row, c.Alias())
		}
		rows[i] = row
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// setStatus shows a transient message and schedules its removal.
func (m *PickerModel) setStatus(msg string) tea.Cmd {
	m.statusSeq++
	m.status = msg
	return clearStatusCmd(m.statusSeq, statusTimeout)
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if c, ok := m.Current(); ok {
				m.selected = &c
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextSection):
			if len(m.groups) > 0 {
				m.sectionCursor = (m.sectionCursor + 1) % len(m.groups)
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSection):
			if len(m.groups) > 0 {
				m.sectionCursor--
				if m.sectionCursor < 0 {
					m.sectionCursor = len(m.groups) - 1
				}
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.CycleSort):
			m.preset = config.NextPreset(m.preset)
			m.sortKeys, _ = config.KeysForPreset(m.preset)
			m.refresh()
			return m, m.setStatus(fmt.Sprintf("Sort: %s", m.preset))

		case key.Matches(msg, m.keys.CycleLevel):
			m.minLevel = m.minLevel%4 + 1
			m.refresh()
			return m, m.setStatus(fmt.Sprintf("Min CSS level: %d", m.minLevel))

		case key.Matches(msg, m.keys.Aliases):
			m.showAliases = !m.showAliases
			m.table = m.createTable()
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			c, ok := m.Current()
			if !ok {
				return m, nil
			}
			if err := m.copyFunc(c.Hex()); err != nil {
				return m, m.setStatus(fmt.Sprintf("Copy failed: %v", err))
			}
			return m, m.setStatus(fmt.Sprintf("Copied %s (%s)", c.Hex(), c.Name()))

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case StatusClearMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setLayout()
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.refresh()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("NAMED COLORS - %s", m.Section())
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n")
	info := fmt.Sprintf("%d colors  |  sort: %s  |  CSS level >= %d", len(m.visible), m.preset, m.minLevel)
	b.WriteString(m.theme.Help.Render(centerText(info, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		// Wide layout: sidebar + table, plus detail when it fits
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: section tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the picker with the section sidebar and detail pane.
func (m PickerModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Sections\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.groups {
		cursor := "  "
		style := m.theme.SectionItem
		if i == m.sectionCursor {
			cursor = "> "
			style = m.theme.SectionActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(g.Section, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	gap := strings.Repeat(" ", gapWidth)
	if !m.showDetail {
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			sidebarStyle.Render(sidebar.String()),
			gap,
			panel.Render(m.renderTableContent()),
		)
		return body + m.renderSwatchLine()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		gap,
		panel.Render(m.renderTableContent()),
		gap,
		panel.Width(detailWidth).Render(m.renderDetail()),
	)
}

// renderNarrowLayout renders the picker with section tabs above the table.
func (m PickerModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(m.groups))
	for i, g := range m.groups {
		name := truncate(g.Section, 10)
		if i == m.sectionCursor {
			tabs[i] = m.theme.SectionTab.Render(name)
		} else {
			tabs[i] = m.theme.SectionItem.Render(" " + name + " ")
		}
	}

	// Fall back to the current section with arrows when tabs do not fit
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.Section())
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	b.WriteString(panel.Render(m.renderTableContent()))
	b.WriteString(m.renderSwatchLine())

	return b.String()
}

// renderSwatchLine renders a one-row swatch for layouts without the
// detail pane.
func (m PickerModel) renderSwatchLine() string {
	c, ok := m.Current()
	if !ok {
		return ""
	}
	return "\n" + renderSwatch(c, min(m.width, detailWidth), 1)
}

// renderTableContent renders the table or empty message.
func (m PickerModel) renderTableContent() string {
	if len(m.visible) == 0 {
		return m.theme.Empty.Render(fmt.Sprintf("No colors in this section\nat CSS level %d or above.", m.minLevel))
	}
	return m.table.View()
}

// renderDetail renders the swatch and values of the highlighted color.
func (m PickerModel) renderDetail() string {
	c, ok := m.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderSwatch(c, detailWidth-2, swatchHeight))
	b.WriteString("\n\n")
	b.WriteString(m.theme.DetailName.Render(c.Name()))
	b.WriteString("\n")

	rows := [][2]string{
		{"Alias", c.Alias()},
		{"Hex", c.Hex()},
		{"RGB", fmt.Sprintf("rgb(%d, %d, %d)", c.Red(), c.Green(), c.Blue())},
		{"HSL", fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue(), c.Saturation(), c.Lightness())},
		{"CSS", fmt.Sprintf("level %d", c.MinCSSLevel())},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		b.WriteString(m.theme.DetailLabel.Render(fmt.Sprintf("%-6s", r[0])))
		b.WriteString(m.theme.DetailValue.Render(r[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// Current returns the highlighted color.
func (m PickerModel) Current() (colors.Color, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return colors.Color{}, false
	}
	return m.visible[i], true
}

// Section returns the name of the current section.
func (m PickerModel) Section() string {
	if len(m.groups) == 0 {
		return ""
	}
	return m.groups[m.sectionCursor].Section
}

// Selected returns the color chosen with enter.
func (m PickerModel) Selected() (colors.Color, bool) {
	if m.selected == nil {
		return colors.Color{}, false
	}
	return *m.selected, true
}

// RunPicker runs the picker screen.
// Returns the selected color, or false if the user quit.
func RunPicker(opts PickerOptions, width, height int) (colors.Color, bool, error) {
	model := NewPickerModel(opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return colors.Color{}, false, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return colors.Color{}, false, nil
	}

	c, ok := m.Selected()
	return c, ok, nil
}
