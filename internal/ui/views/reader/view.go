package reader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	catalogdto "zenpod/internal/modules/catalog/dto"
	progressdomain "zenpod/internal/modules/progress/domain"
	progressdto "zenpod/internal/modules/progress/dto"
	speechdto "zenpod/internal/modules/speech/dto"
	"zenpod/internal/ui/components"
	"zenpod/internal/ui/theme"
)

const (
	saveInterval = 15 * time.Second
	excerptRunes = 120
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	List(ctx context.Context) ([]catalogdto.ScriptureOutput, error)
	Get(ctx context.Context, id int) (catalogdto.ScriptureDetailOutput, error)
}

type ProgressPort interface {
	Save(ctx context.Context, input progressdto.SaveInput) error
}

type SpeechPort interface {
	Speak(ctx context.Context, input speechdto.SpeakInput) error
	Stop(ctx context.Context) error
	Speaking(key string) bool
}

// ─── messages ────────────────────────────────────────────────────────────────

type ScripturesLoadedMsg struct {
	Scriptures []catalogdto.ScriptureOutput
	Err        error
}

type DetailLoadedMsg struct {
	Detail catalogdto.ScriptureDetailOutput
	Err    error
}

type saveTickMsg struct{}

type savedMsg struct{ err error }

type speakDoneMsg struct{ err error }

// ─── list item ───────────────────────────────────────────────────────────────

type scriptureItem struct {
	scripture catalogdto.ScriptureOutput
}

func (i scriptureItem) Title() string { return i.scripture.Title }
func (i scriptureItem) Description() string {
	return fmt.Sprintf("%s · %d chapters", i.scripture.Category, i.scripture.TotalChapters)
}
func (i scriptureItem) FilterValue() string { return i.scripture.Title }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the reading surface: scripture list, chapter viewport, countdown
// timer, speech toggle, and the assist overlay.
type Model struct {
	catalog  CatalogPort
	progress ProgressPort
	speech   SpeechPort

	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model
	assist   components.Assist
	timer    components.Timer
	renderer *glamour.TermRenderer

	detail     catalogdto.ScriptureDetailOutput
	chapterIdx int
	reading    bool
	loading    bool
	status     string

	token     string
	sessionID int
	resume    progressdto.RecordOutput
	hasResume bool

	width  int
	height int
}

func New(catalog CatalogPort, progress ProgressPort, speech SpeechPort, assist components.AssistPort, timer components.TimerPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.GoldSoft).BorderForeground(theme.Gold)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sand).BorderForeground(theme.Gold)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Scriptures"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Gold)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)

	return Model{
		catalog:  catalog,
		progress: progress,
		speech:   speech,
		list:     l,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		assist:   components.NewAssist(assist),
		timer:    components.NewTimer(timer),
		renderer: r,
		loading:  true,
	}
}

// Enter activates the view for a freshly purchased session. It starts the
// countdown poll, the periodic progress save, and the catalog load.
func (m *Model) Enter(sessionID int, token string, resume progressdto.RecordOutput, hasResume bool) tea.Cmd {
	m.sessionID = sessionID
	m.token = token
	m.resume = resume
	m.hasResume = hasResume
	m.reading = false
	m.loading = true
	m.detail = catalogdto.ScriptureDetailOutput{}
	m.status = ""
	return tea.Batch(
		m.loadScripturesCmd(),
		m.timer.Start(sessionID),
		m.spinner.Tick,
		m.saveTickCmd(),
	)
}

// Leave saves the position, then stops playback and polling when the app
// routes away from the reader. The snapshot happens before the state reset
// or there is nothing left to save.
func (m *Model) Leave() tea.Cmd {
	save := m.saveProgressCmd()
	m.timer.Stop()
	m.reading = false
	return tea.Batch(save, m.stopSpeechCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The assist overlay owns the keyboard while visible.
	if m.assist.Visible() {
		if key, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.assist, cmd = m.assist.Update(key)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.reading {
			m.setChapterContent(false)
		}

	case ScripturesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Scriptures — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Scriptures))
		for i, s := range msg.Scriptures {
			items[i] = scriptureItem{scripture: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		// Jump straight back into the last read scripture.
		if m.hasResume {
			cmds = append(cmds, m.loadDetailCmd(m.resume.ScriptureID))
		}

	case DetailLoadedMsg:
		if msg.Err != nil {
			m.status = "open failed: " + msg.Err.Error()
			return m, nil
		}
		m.detail = msg.Detail
		m.openResolvedChapter()

	case saveTickMsg:
		if m.sessionID == 0 {
			return m, nil
		}
		cmds = append(cmds, m.saveTickCmd())
		if cmd := m.saveProgressCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case savedMsg:
		if msg.err != nil {
			m.status = "progress save failed"
		}

	case speakDoneMsg:
		if msg.err != nil {
			m.status = "speech unavailable"
		}

	case components.AssistSpeakMsg:
		cmds = append(cmds, m.speakCmd("assist", msg.Text))

	case components.AssistClosedMsg:
		// Dismissing the panel silences its answer, not chapter narration.
		if m.speech.Speaking("assist") {
			cmds = append(cmds, m.stopSpeechCmd())
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		if handled {
			cmds = append(cmds, cmd)
			return m, tea.Batch(cmds...)
		}
	}

	var tCmd tea.Cmd
	m.timer, tCmd = m.timer.Update(msg)
	cmds = append(cmds, tCmd)

	var aCmd tea.Cmd
	m.assist, aCmd = m.assist.Update(msg)
	cmds = append(cmds, aCmd)

	if m.reading {
		var vCmd tea.Cmd
		m.viewport, vCmd = m.viewport.Update(msg)
		cmds = append(cmds, vCmd)
	} else if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

// Filtering reports whether the scripture list's search filter is active.
func (m Model) Filtering() bool {
	return !m.reading && m.list.FilterState() == list.Filtering
}

// Typing reports whether the assist overlay owns the keyboard.
func (m Model) Typing() bool {
	return m.assist.Typing()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.Filtering() {
		return nil, false
	}

	if !m.reading {
		if msg.String() == "enter" {
			if item, ok := m.list.SelectedItem().(scriptureItem); ok {
				m.hasResume = m.hasResume && item.scripture.ID == m.resume.ScriptureID
				return m.loadDetailCmd(item.scripture.ID), true
			}
		}
		return nil, false
	}

	switch msg.String() {
	case "esc":
		m.reading = false
		return tea.Batch(m.saveProgressCmd(), m.stopSpeechCmd()), true
	case "left", "[":
		return m.switchChapter(m.chapterIdx - 1), true
	case "right", "]":
		return m.switchChapter(m.chapterIdx + 1), true
	case "v":
		ch, ok := m.currentChapter()
		if !ok {
			return nil, true
		}
		return m.speakCmd(chapterKey(ch.ID), ch.Content), true
	case "e":
		ch, ok := m.currentChapter()
		if !ok {
			return nil, true
		}
		return m.assist.OpenExplain(excerpt(ch.Content, excerptRunes), m.detail.Title+" · "+ch.Title), true
	case "a":
		ch, ok := m.currentChapter()
		if !ok {
			return nil, true
		}
		return m.assist.OpenAsk(ch.Content), true
	}
	return nil, false
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Opening the library…")
	}

	if m.assist.Visible() {
		header := m.renderHeader()
		body := lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, m.assist.View())
		return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
	}

	if !m.reading {
		header := m.renderHeader()
		return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View(), m.renderFooter())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.list.SetSize(m.width, m.contentHeight())
	m.viewport.Width = m.width
	m.viewport.Height = m.contentHeight()
	m.assist.SetWidth(min(m.width-4, 72))
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.width-2),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// openResolvedChapter decides which chapter to show for the loaded
// scripture and restores the stored scroll position when it applies.
func (m *Model) openResolvedChapter() {
	ids := make([]int, len(m.detail.Chapters))
	for i, c := range m.detail.Chapters {
		ids[i] = c.ID
	}
	rec := progressdomain.Record{
		ScriptureID: m.resume.ScriptureID,
		ChapterID:   m.resume.ChapterID,
		Position:    m.resume.Position,
	}
	chapterID, restore := progressdomain.Resolve(rec, m.detail.ID, ids)
	if !m.hasResume {
		restore = false
	}
	m.chapterIdx = 0
	for i, id := range ids {
		if id == chapterID {
			m.chapterIdx = i
			break
		}
	}
	m.reading = true
	m.setChapterContent(restore)
	m.hasResume = false
}

func (m *Model) setChapterContent(restore bool) {
	ch, ok := m.currentChapter()
	if !ok {
		m.viewport.SetContent(theme.Muted.Render("(this scripture has no chapters)"))
		return
	}
	body := ch.Content
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(body); err == nil {
			body = rendered
		}
	}
	m.viewport.SetContent(body)
	if restore {
		m.viewport.SetYOffset(int(progressdomain.ClampPosition(m.resume.Position) * float64(m.viewport.TotalLineCount())))
	} else {
		m.viewport.GotoTop()
	}
}

func (m *Model) switchChapter(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.detail.Chapters) || idx == m.chapterIdx {
		return nil
	}
	save := m.saveProgressCmd()
	m.chapterIdx = idx
	m.setChapterContent(false)
	return tea.Batch(save, m.stopSpeechCmd())
}

func (m Model) currentChapter() (catalogdto.ChapterOutput, bool) {
	if m.chapterIdx < 0 || m.chapterIdx >= len(m.detail.Chapters) {
		return catalogdto.ChapterOutput{}, false
	}
	return m.detail.Chapters[m.chapterIdx], true
}

func (m Model) renderHeader() string {
	left := theme.Title.Render("ZenPod")
	if m.reading {
		ch, _ := m.currentChapter()
		left = theme.Title.Render(m.detail.Title) + "  " +
			theme.Muted.Render(fmt.Sprintf("%s (%d/%d)", ch.Title, m.chapterIdx+1, len(m.detail.Chapters)))
		if ch.ID != 0 && m.speech.Speaking(chapterKey(ch.ID)) {
			left += "  " + theme.Good.Render("▶ reading aloud")
		}
	}

	timerW := m.width / 3
	if timerW < 12 {
		timerW = 12
	}
	right := m.timer.View(timerW)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}

func (m Model) renderFooter() string {
	hints := "←/→: chapter  v: voice  e: explain  a: ask  esc: back"
	scroll := fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100)
	if m.status != "" {
		hints = m.status + "  " + hints
	}
	gap := m.width - lipgloss.Width(hints) - len(scroll)
	if gap < 1 {
		gap = 1
	}
	return theme.Muted.Render(hints) + strings.Repeat(" ", gap) + theme.Muted.Render(scroll)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadScripturesCmd() tea.Cmd {
	return func() tea.Msg {
		scriptures, err := m.catalog.List(context.Background())
		return ScripturesLoadedMsg{Scriptures: scriptures, Err: err}
	}
}

func (m Model) loadDetailCmd(id int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.Get(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) saveTickCmd() tea.Cmd {
	return tea.Tick(saveInterval, func(time.Time) tea.Msg {
		return saveTickMsg{}
	})
}

// saveProgressCmd snapshots the current position. Without a token there is
// nobody to save for, so the write is skipped entirely.
func (m Model) saveProgressCmd() tea.Cmd {
	if !m.reading || m.token == "" || m.detail.ID == 0 {
		return nil
	}
	ch, ok := m.currentChapter()
	if !ok {
		return nil
	}
	input := progressdto.SaveInput{
		Token:       m.token,
		ScriptureID: m.detail.ID,
		ChapterID:   ch.ID,
		Position:    progressdomain.Fraction(m.viewport.YOffset, m.viewport.TotalLineCount()),
	}
	return func() tea.Msg {
		err := m.progress.Save(context.Background(), input)
		return savedMsg{err: err}
	}
}

func (m Model) speakCmd(key, text string) tea.Cmd {
	return func() tea.Msg {
		err := m.speech.Speak(context.Background(), speechdto.SpeakInput{Key: key, Text: text})
		return speakDoneMsg{err: err}
	}
}

func (m Model) stopSpeechCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.speech.Stop(context.Background())
		return speakDoneMsg{err: err}
	}
}

func chapterKey(id int) string {
	return fmt.Sprintf("chapter:%d", id)
}

func excerpt(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:n]))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
