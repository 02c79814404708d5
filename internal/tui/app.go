package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"fdk/internal/checkrun"
	"fdk/internal/model"
	"fdk/internal/store"
)

type page int

const (
	pageChecklist page = iota
	pageATC
	pageNotes
	pageCharts
	pageCount
)

func (p page) label() string {
	switch p {
	case pageATC:
		return "ATC"
	case pageNotes:
		return "Notes"
	case pageCharts:
		return "Charts"
	default:
		return "Checklist"
	}
}

const reloadInterval = 2 * time.Second

type reloadTickMsg time.Time

type appModel struct {
	store store.Store
	sess  *checkrun.Session

	aircraft   []string
	atc        model.ATCFile
	globalNote string
	stageNote  string
	charts     []string

	// layout is one of: wide|compact
	layout       string
	page         page
	cursor       int
	confirmReset bool

	side          viewport.Model
	width, height int
	status        string
}

// Run starts the interactive checklist runner over the given data root.
func Run(s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()

	m, err := newAppModel(s)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newAppModel(s store.Store) (*appModel, error) {
	names, err := s.ListAircraft()
	if err != nil {
		return nil, err
	}
	m := &appModel{
		store:    s,
		sess:     checkrun.NewSession(s),
		aircraft: names,
		layout:   "wide",
		side:     viewport.New(0, 0),
	}

	st, err := s.LoadUIState()
	if err != nil {
		return nil, err
	}
	if st.Layout == "compact" {
		m.layout = "compact"
	}
	target := ""
	if st.Aircraft != "" && indexOf(names, st.Aircraft) >= 0 {
		target = st.Aircraft
	} else if len(names) > 0 {
		target = names[0]
	}
	if target != "" {
		if err := m.sess.SelectAircraft(target); err != nil {
			return nil, err
		}
		if st.Stage > 0 && st.Stage < len(m.sess.StageNames()) {
			_ = m.sess.SelectStage(st.Stage)
		}
		if err := m.refreshSideData(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

func reloadTick() tea.Cmd {
	return tea.Tick(reloadInterval, func(t time.Time) tea.Msg {
		return reloadTickMsg(t)
	})
}

func (m *appModel) Init() tea.Cmd {
	return reloadTick()
}

// refreshSideData re-reads everything shown next to the checklist: ATC
// templates, the stage and global notes, and the chart listing.
func (m *appModel) refreshSideData() error {
	name := m.sess.Aircraft()
	if name == "" {
		return nil
	}
	atc, err := m.store.ReadATC(name)
	if err != nil {
		return err
	}
	m.atc = atc
	if m.stageNote, err = m.store.ReadStageNote(name, m.sess.StageName()); err != nil {
		return err
	}
	if m.globalNote, err = m.store.ReadGlobalNote(); err != nil {
		return err
	}
	if m.charts, err = m.store.ListCharts(name); err != nil {
		return err
	}
	m.syncSide()
	return nil
}

func (m *appModel) clampCursor() {
	if m.sess.Run() == nil {
		m.cursor = 0
		return
	}
	if m.cursor >= m.sess.Run().Len() {
		m.cursor = m.sess.Run().Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) saveUIState() {
	_ = m.store.SaveUIState(&store.UIState{
		Version:  1,
		Aircraft: m.sess.Aircraft(),
		Stage:    m.sess.StageIndex(),
		Layout:   m.layout,
	})
}

func (m *appModel) selectStageOffset(delta int) {
	if m.sess.Aircraft() == "" {
		return
	}
	i := m.sess.StageIndex() + delta
	if i < 0 || i >= len(m.sess.StageNames()) {
		return
	}
	if err := m.sess.SelectStage(i); err != nil {
		m.status = err.Error()
		return
	}
	m.cursor = 0
	if err := m.refreshSideData(); err != nil {
		m.status = err.Error()
	}
}

func (m *appModel) selectAircraftOffset(delta int) {
	if len(m.aircraft) == 0 {
		return
	}
	i := indexOf(m.aircraft, m.sess.Aircraft()) + delta
	if i < 0 || i >= len(m.aircraft) {
		return
	}
	if err := m.sess.SelectAircraft(m.aircraft[i]); err != nil {
		m.status = err.Error()
		return
	}
	m.cursor = 0
	if err := m.refreshSideData(); err != nil {
		m.status = err.Error()
	}
}

func (m *appModel) reload() {
	if m.sess.Aircraft() == "" {
		names, err := m.store.ListAircraft()
		if err == nil {
			m.aircraft = names
			if len(names) > 0 {
				_ = m.sess.SelectAircraft(names[0])
				_ = m.refreshSideData()
			}
		}
		return
	}
	names, err := m.store.ListAircraft()
	if err == nil {
		m.aircraft = names
	}
	if err := m.sess.Reload(); err != nil {
		m.status = err.Error()
		return
	}
	m.clampCursor()
	if err := m.refreshSideData(); err != nil {
		m.status = err.Error()
	}
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSide()
		m.syncSide()
		return m, nil

	case reloadTickMsg:
		if !m.confirmReset {
			m.reload()
		}
		return m, reloadTick()

	case tea.KeyMsg:
		if m.confirmReset {
			return m.updateConfirmReset(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *appModel) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.confirmReset = false
		if err := m.sess.Reset(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = 0
		if err := m.refreshSideData(); err != nil {
			m.status = err.Error()
		}
	case "esc", "n", "ctrl+g":
		m.confirmReset = false
	}
	return m, nil
}

func (m *appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	run := m.sess.Run()

	switch msg.String() {
	case "q", "ctrl+c":
		m.saveUIState()
		return m, tea.Quit

	case "up", "k":
		if m.checklistVisible() && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.checklistVisible() && run != nil && m.cursor < run.Len()-1 {
			m.cursor++
		}

	case " ", "x":
		if m.checklistVisible() && run != nil {
			if err := m.sess.Toggle(m.cursor); err != nil {
				m.status = err.Error()
			}
		}

	case "a":
		if run != nil {
			if err := m.sess.CompleteAll(); err != nil {
				m.status = err.Error()
			}
		}

	case "n", "enter":
		if run != nil {
			if err := m.sess.Advance(); err != nil {
				m.status = err.Error()
			} else {
				m.cursor = 0
				if err := m.refreshSideData(); err != nil {
					m.status = err.Error()
				}
			}
		}

	case "[":
		m.selectStageOffset(-1)
	case "]":
		m.selectStageOffset(1)
	case "{":
		m.selectAircraftOffset(-1)
	case "}":
		m.selectAircraftOffset(1)

	case "R":
		if m.sess.Aircraft() != "" {
			m.confirmReset = true
		}

	case "m":
		if m.layout == "wide" {
			m.layout = "compact"
		} else {
			m.layout = "wide"
		}
		m.resizeSide()
		m.syncSide()

	case "tab":
		if m.layout == "compact" {
			m.page = (m.page + 1) % pageCount
			m.syncSide()
		}

	case "r":
		m.reload()

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.side, cmd = m.side.Update(msg)
		return m, cmd
	}
	return m, nil
}

// checklistVisible reports whether cursor/toggle keys act on the checklist
// pane: always in wide layout, only on the checklist page in compact.
func (m *appModel) checklistVisible() bool {
	return m.layout == "wide" || m.page == pageChecklist
}
