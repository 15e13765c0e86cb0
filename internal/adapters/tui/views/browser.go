package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cognet/internal/adapters/tui/styles"
	"cognet/internal/application/commands"
	"cognet/internal/domain"
	"cognet/internal/ports"
)

// BrowserKeyMap defines key bindings for the theme browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Yank   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/open"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserRow is one visible line: a theme header or a member note.
type browserRow struct {
	themeIdx int
	note     *domain.Note // nil for theme headers
}

// BrowserModel is the model for the theme browser view
type BrowserModel struct {
	ViewState

	repo   ports.CorpusRepository
	params commands.ClusterParams

	themes   []domain.Theme
	noise    int
	total    int
	expanded map[int]bool
	rows     []browserRow
	cursor   int
	loading  bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.CorpusRepository, params commands.ClusterParams) *BrowserModel {
	return &BrowserModel{
		repo:     repo,
		params:   params,
		expanded: make(map[int]bool),
		loading:  true,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadThemes
}

// Reload re-runs the clustering pipeline.
func (m *BrowserModel) Reload() tea.Cmd {
	m.loading = true
	return m.loadThemes
}

func (m *BrowserModel) loadThemes() tea.Msg {
	result, err := commands.NewThemesCommand(m.repo, m.params).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return themesLoadedMsg{
		themes: result.Themes,
		noise:  len(result.Noise),
		total:  len(result.Corpus.Notes),
	}
}

type themesLoadedMsg struct {
	themes []domain.Theme
	noise  int
	total  int
}

type errMsg struct {
	err error
}

// View switching messages handled by the app model.

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the app to open a file in the external editor.
type OpenEditorMsg struct {
	Path string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case themesLoadedMsg:
		m.loading = false
		m.themes = msg.themes
		m.noise = msg.noise
		m.total = msg.total
		m.refreshRows()
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if row, ok := m.selectedRow(); ok {
				if row.note == nil && m.expanded[row.themeIdx] {
					m.expanded[row.themeIdx] = false
					m.refreshRows()
				} else if row.note != nil {
					// Move to the theme header
					for i, r := range m.rows {
						if r.note == nil && r.themeIdx == row.themeIdx {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if row, ok := m.selectedRow(); ok && row.note == nil {
				m.expanded[row.themeIdx] = true
				m.refreshRows()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if row, ok := m.selectedRow(); ok {
				if row.note != nil {
					path := m.repo.AbsPath(row.note.Path)
					return m, func() tea.Msg {
						return OpenEditorMsg{Path: path}
					}
				}
				m.expanded[row.themeIdx] = !m.expanded[row.themeIdx]
				m.refreshRows()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if row, ok := m.selectedRow(); ok && row.note != nil {
				if err := clipboard.WriteAll(row.note.Path); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage("yanked "+row.note.Path, false)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) selectedRow() (browserRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return browserRow{}, false
	}
	return m.rows[m.cursor], true
}

// refreshRows rebuilds the flat row list from the themes and their
// expansion state, clamping the cursor.
func (m *BrowserModel) refreshRows() {
	m.rows = m.rows[:0]
	for i := range m.themes {
		m.rows = append(m.rows, browserRow{themeIdx: i})
		if !m.expanded[i] {
			continue
		}
		for j := range m.themes[i].Notes {
			m.rows = append(m.rows, browserRow{themeIdx: i, note: &m.themes[i].Notes[j]})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder()
	v.Title("cognet")

	if m.loading {
		v.Muted("Clustering notes...")
		return v.String()
	}

	v.Subtitle(fmt.Sprintf("%d notes, %d themes, %d unclustered", m.total, len(m.themes), m.noise))
	v.Message(m.Message, m.MessageErr)

	if len(m.rows) == 0 {
		v.Muted("No themes found. Add more notes or lower the similarity threshold.")
	}

	for i, row := range m.rows {
		v.Line(m.renderRow(i, row))
	}

	v.BlankLine()
	v.Help(BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Enter, BrowserKeys.Yank, BrowserKeys.Reload, BrowserKeys.Help, BrowserKeys.Quit)
	return v.String()
}

func (m *BrowserModel) renderRow(i int, row browserRow) string {
	selected := i == m.cursor

	if row.note != nil {
		label := fmt.Sprintf("    %s%s", styles.TreeLeaf, row.note.Title)
		if selected {
			return styles.NodeSelected.Render(label)
		}
		return styles.NodeNote.Render(label) + "  " + styles.MutedText.Render(row.note.Path)
	}

	theme := m.themes[row.themeIdx]
	indicator := styles.TreeCollapsed
	if m.expanded[row.themeIdx] {
		indicator = styles.TreeExpanded
	}
	label := fmt.Sprintf("%s%s (%d)", indicator, theme.Name, len(theme.Notes))
	if selected {
		return styles.NodeSelected.Render(label)
	}
	line := styles.NodeTheme.Render(label)
	if tags := topTagLine(theme); tags != "" {
		line += "  " + styles.NodeTag.Render(tags)
	}
	return line
}

func topTagLine(theme domain.Theme) string {
	top := theme.Tags.MostCommon(3)
	if len(top) == 0 {
		return ""
	}
	parts := make([]string, 0, len(top))
	for _, tc := range top {
		parts = append(parts, "#"+tc.Tag)
	}
	return strings.Join(parts, " ")
}
