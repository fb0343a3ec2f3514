// Package tui provides the terminal user interface using Bubbletea.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"k8s.io/klog/v2"

	"citizen-dojo/pkg/engine"
	"citizen-dojo/pkg/game"
	"citizen-dojo/pkg/registry"
	"citizen-dojo/pkg/reward"
	"citizen-dojo/pkg/state"
	"citizen-dojo/pkg/tui/components"
)

// View represents the current TUI view.
type View int

const (
	ViewDashboard View = iota
	ViewPlaying
	ViewResult
	ViewConfirmReplay
	ViewConfirmQuit
)

// AppModel is the main Bubbletea model.
type AppModel struct {
	// Theme and styles
	styles Styles
	keymap KeyMap
	layout Layout

	// Current view
	view         View
	previousView View

	// Components
	header    components.HeaderModel
	sidebar   components.SidebarModel
	content   components.ContentModel
	progress  components.ProgressModel
	statusbar components.StatusBarModel
	result    components.ResultModel

	// Engine
	engineInstance *engine.Engine
	registry       *game.Registry

	// Progress
	completedGames map[string]bool
	bestScores     map[string]int
	coins          int

	// Dialogs
	confirmSelection int // 0: Yes, 1: No
	pendingGame      game.Game

	// Running game
	currentGame game.Game
	marks       map[int]components.Mark
	completion  *engine.Completion
	settling    bool
	shownIndex  int
	tickGen     int

	// Window size
	width  int
	height int

	// Quit flag
	quitting bool
}

// Messages
type progressLoadedMsg struct {
	progress *state.Progress
	err      error
}

type settledMsg struct {
	completion engine.Completion
	err        error
}

// tickMsg carries the generation of the chain that scheduled it.
type tickMsg struct {
	gen int
	at  time.Time
}

// NewAppModel creates a new TUI model around a configured engine.
func NewAppModel(eng *engine.Engine, reg *game.Registry) AppModel {
	m := AppModel{
		styles:         NewStyles(DefaultTheme()),
		keymap:         DefaultKeyMap(),
		layout:         NewLayout(MinWidth, MinHeight),
		view:           ViewDashboard,
		header:         components.NewHeaderModel(),
		sidebar:        components.NewSidebarModel(),
		content:        components.NewContentModel(),
		progress:       components.NewProgressModel(),
		statusbar:      components.NewStatusBarModel(),
		result:         components.NewResultModel(),
		engineInstance: eng,
		registry:       reg,
		completedGames: make(map[string]bool),
		bestScores:     make(map[string]int),
		marks:          make(map[int]components.Mark),
	}
	m.width, m.height = MinWidth, MinHeight
	m.updateComponentSizes()
	m.sidebar.SetFocus(true)
	m.buildSidebarItems()
	m.previewSelected()
	return m
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	// Note: Don't call tea.EnterAltScreen here since main.go uses tea.WithAltScreen()
	return tea.Batch(m.loadProgress(), m.progress.Init())
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) && m.view != ViewConfirmQuit && m.view != ViewConfirmReplay {
			m.previousView = m.view
			m.view = ViewConfirmQuit
			m.confirmSelection = 1 // Default to No
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = NewLayout(msg.Width, msg.Height)
		m.updateComponentSizes()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd

	case progressLoadedMsg:
		return m.handleProgressLoaded(msg)

	case SessionChangedMsg:
		if m.view != ViewPlaying || m.currentGame == nil || msg.Snapshot.GameID != m.currentGame.GetMetadata().ID {
			return m, nil
		}
		return m.syncSession()

	case tickMsg:
		if m.view != ViewPlaying || msg.gen != m.tickGen {
			return m, nil
		}
		m2, cmd := m.syncSession()
		return m2, tea.Batch(cmd, m2.(AppModel).tick())

	case settledMsg:
		return m.handleSettled(msg)
	}

	// Handle view-specific updates
	switch m.view {
	case ViewDashboard:
		return m.updateDashboard(msg)
	case ViewPlaying:
		return m.updatePlaying(msg)
	case ViewResult:
		return m.updateResult(msg)
	case ViewConfirmReplay:
		return m.updateConfirmReplay(msg)
	case ViewConfirmQuit:
		return m.updateConfirmQuit(msg)
	}

	return m, nil
}

func (m *AppModel) updateComponentSizes() {
	m.header.SetWidth(m.width)
	m.sidebar.SetSize(m.layout.SidebarWidth, m.layout.MainAreaHeight())
	m.content.SetSize(m.layout.ContentWidth, m.layout.MainAreaHeight())
	m.progress.SetWidth(m.layout.SidebarWidth)
	m.statusbar.SetWidth(m.width)
	m.result.SetSize(m.width, m.height-StatusBarHeight)
}

func (m AppModel) handleProgressLoaded(msg progressLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		klog.ErrorS(msg.err, "Failed to load progress")
		m.statusbar.SetMessage("Progress could not be loaded")
		return m, nil
	}
	if msg.progress == nil {
		return m, nil
	}
	m.coins = msg.progress.Coins
	for id, done := range msg.progress.CompletedGames {
		m.completedGames[id] = done
	}
	for id, best := range msg.progress.BestScores {
		m.bestScores[id] = best
	}
	m.header.SetCoins(m.coins)
	m.sidebar.SetCoins(m.coins)
	m.buildSidebarItems()
	if m.view == ViewDashboard {
		m.previewSelected()
	}
	return m, nil
}

func (m *AppModel) buildSidebarItems() {
	var items []components.SidebarItem
	for _, cat := range m.registry.Categories() {
		catItem := components.SidebarItem{
			ID:         string(cat),
			Title:      cat.Title(),
			Icon:       CategoryIcon(cat),
			IsCategory: true,
		}
		for _, g := range m.registry.InCategory(cat) {
			meta := g.GetMetadata()
			best, played := m.bestScores[meta.ID]
			if !played {
				best = -1
			}
			catItem.Children = append(catItem.Children, components.SidebarItem{
				ID:          meta.ID,
				Title:       meta.Name,
				Description: meta.Description,
				Category:    string(cat),
				Completed:   m.completedGames[meta.ID],
				BestScore:   best,
			})
		}
		items = append(items, catItem)
	}
	m.sidebar.SetItems(items)
}

// previewSelected shows the highlighted sidebar item in the content panel.
func (m *AppModel) previewSelected() {
	item := m.sidebar.SelectedItem()
	switch {
	case item == nil:
		m.content.SetGame("Citizen Dojo", "Select a game to begin")
	case item.IsCategory:
		done := 0
		for _, c := range item.Children {
			if c.Completed {
				done++
			}
		}
		m.content.SetGame(
			CategoryIcon(game.Category(item.ID))+" "+item.Title,
			fmt.Sprintf("%d games, %d completed", len(item.Children), done),
			"Use h/l to expand/collapse, j/k to navigate",
		)
	default:
		g := m.registry.Get(item.ID)
		if g == nil {
			return
		}
		meta := g.GetMetadata()
		details := []string{
			fmt.Sprintf("Difficulty: %s %s", DifficultyStars(meta.Difficulty), meta.Difficulty),
			fmt.Sprintf("Questions:  %d", len(g.Scenarios())),
			fmt.Sprintf("Reward:     🪙 %d", meta.Coins),
			ruleText(meta.Policy),
		}
		if meta.AnswerTimeout > 0 {
			details = append(details, fmt.Sprintf("⚡ Reflex round: %s per question", meta.AnswerTimeout))
		}
		if best := item.BestScore; best >= 0 {
			details = append(details, fmt.Sprintf("%s Best score: %d%%", StatusIndicator(item.Completed), best))
		}
		m.content.SetGame("🎮 "+meta.Name, meta.Description, details...)
		m.content.SetStatus("Press Enter to start")
	}
}

func (m AppModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keymap.Enter) {
			if item := m.sidebar.SelectedItem(); item != nil && !item.IsCategory {
				g := m.registry.Get(item.ID)
				if g == nil {
					return m, nil
				}
				if m.completedGames[item.ID] {
					m.pendingGame = g
					m.view = ViewConfirmReplay
					m.confirmSelection = 1 // Default to No (Safe)
					return m, nil
				}
				return m.startGame(item.ID, nil)
			}
		}
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	m.previewSelected()
	return m, cmd
}

func (m AppModel) startGame(id string, nav *registry.Target) (tea.Model, tea.Cmd) {
	if err := m.engineInstance.StartGame(context.Background(), id, nav); err != nil {
		klog.ErrorS(err, "Failed to start game", "game", id)
		m.statusbar.SetMessage(err.Error())
		return m, nil
	}
	return m.enterPlaying()
}

// enterPlaying switches to the play view for the engine's current game.
func (m AppModel) enterPlaying() (tea.Model, tea.Cmd) {
	g := m.engineInstance.GetCurrentGame()
	if g == nil {
		return m, nil
	}
	meta := g.GetMetadata()

	m.currentGame = g
	m.completion = nil
	m.settling = false
	m.marks = make(map[int]components.Mark)
	m.statusbar.SetMessage("")

	m.header.SetTitle("🦉 " + meta.Name)
	m.header.StartTimer()
	m.content.SetGame(CategoryIcon(meta.Category)+" "+meta.Name, meta.Description)
	m.content.SetFocus(true)
	m.progress.SetTitle(meta.Category.Title())

	m.view = ViewPlaying
	m.tickGen++
	m2, cmd := m.syncSession()
	return m2, tea.Batch(cmd, m.tick())
}

// syncSession copies the session snapshot into the play view and settles the
// game once it is over.
func (m AppModel) syncSession() (tea.Model, tea.Cmd) {
	session := m.engineInstance.Session()
	if session == nil {
		return m, nil
	}
	snap := session.Snapshot()
	scenarios := session.Scenarios()

	if snap.Answered && snap.Last != nil {
		m.marks[snap.Index] = markFor(snap.Last)
	}
	m.header.SetDeadline(snap.Deadline)
	m.updateProgress(snap)

	if snap.Phase == engine.PhaseCompleted {
		m.content.SetJudgement(nil)
		m.content.SetStatus("Tallying up...")
		if m.settling || m.completion != nil {
			return m, nil
		}
		m.settling = true
		return m, m.settle()
	}

	m.shownIndex = snap.Index
	current := scenarios[snap.Index]
	answers := current.Answers()
	labels := make([]string, len(answers))
	for i, a := range answers {
		labels[i] = a.Label
	}
	m.content.SetQuestion(snap.Index+1, snap.Total, current.Prompt, labels)

	if snap.Answered && snap.Last != nil {
		j := &components.Judgement{
			Chosen:      -1,
			Correct:     -1,
			Positive:    snap.Last.Verdict.IsCorrect(),
			TimedOut:    snap.Last.TimedOut,
			Explanation: current.Explanation,
		}
		solution, _ := current.Solution()
		for i, a := range answers {
			if a.Choice == snap.Last.Choice {
				j.Chosen = i
			}
			if a.Choice == solution {
				j.Correct = i
			}
		}
		m.content.SetJudgement(j)
		m.content.SetStatus("")
	} else {
		m.content.SetJudgement(nil)
		m.content.SetStatus(fmt.Sprintf("Score: %d", snap.Score))
	}
	return m, nil
}

func (m *AppModel) updateProgress(snap engine.Snapshot) {
	marks := make([]components.Mark, snap.Total)
	for i := range marks {
		if k, ok := m.marks[i]; ok && (i < snap.Index || snap.Answered || snap.Phase == engine.PhaseCompleted) {
			marks[i] = k
		} else if i == snap.Index && snap.Phase == engine.PhaseInProgress {
			marks[i] = components.MarkActive
		}
	}
	m.progress.SetMarks(marks, snap.Score)

	switch {
	case snap.Phase == engine.PhaseCompleted:
		m.progress.SetStatus("All done!")
	case snap.Answered:
		m.progress.SetStatus("Next question...")
	default:
		m.progress.SetStatus("")
	}
}

func markFor(r *engine.AnswerRecord) components.Mark {
	switch {
	case r.TimedOut:
		return components.MarkTimedOut
	case r.Verdict.IsCorrect():
		return components.MarkRight
	}
	return components.MarkWrong
}

func (m AppModel) updatePlaying(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.Up), key.Matches(keyMsg, m.keymap.Left), key.Matches(keyMsg, m.keymap.ShiftTab):
			m.content.MoveCursor(-1)
			return m, nil
		case key.Matches(keyMsg, m.keymap.Down), key.Matches(keyMsg, m.keymap.Right), key.Matches(keyMsg, m.keymap.Tab):
			m.content.MoveCursor(1)
			return m, nil
		case key.Matches(keyMsg, m.keymap.Answer):
			if !m.content.SetCursor(int(keyMsg.String()[0] - '1')) {
				return m, nil
			}
			return m.submit(m.content.Cursor())
		case key.Matches(keyMsg, m.keymap.Enter):
			return m.submit(m.content.Cursor())
		case key.Matches(keyMsg, m.keymap.Escape):
			return m.handleReturnToDashboard()
		case key.Matches(keyMsg, m.keymap.PageUp), key.Matches(keyMsg, m.keymap.PageDown):
			var cmd tea.Cmd
			m.content, cmd = m.content.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// submit answers the current question with answer i. Input while feedback is
// showing is ignored by the session.
func (m AppModel) submit(i int) (tea.Model, tea.Cmd) {
	session := m.engineInstance.Session()
	if session == nil {
		return m, nil
	}
	scenarios := session.Scenarios()
	if m.shownIndex >= len(scenarios) {
		return m, nil
	}
	answers := scenarios[m.shownIndex].Answers()
	if i < 0 || i >= len(answers) {
		return m, nil
	}
	// The answer belongs to the question on screen, not whatever the timer
	// has advanced to since.
	if _, ok := session.SubmitAt(m.shownIndex, answers[i].Choice); !ok {
		return m, nil
	}
	return m.syncSession()
}

func (m AppModel) settle() tea.Cmd {
	eng := m.engineInstance
	return func() tea.Msg {
		c, err := eng.Settle(context.Background())
		return settledMsg{completion: c, err: err}
	}
}

func (m AppModel) handleSettled(msg settledMsg) (tea.Model, tea.Cmd) {
	m.settling = false
	if msg.err != nil {
		klog.ErrorS(msg.err, "Failed to settle game")
		return m, nil
	}
	if m.currentGame == nil || msg.completion.GameID != m.currentGame.GetMetadata().ID {
		return m, nil
	}
	c := msg.completion
	m.completion = &c
	meta := m.currentGame.GetMetadata()

	m.header.SetDeadline(time.Time{})
	m.result.SetGame(meta.Name)
	m.result.SetScore(c.Score, c.Total, c.Outcome.Percent, c.Outcome.Earned, c.Outcome.Coins)
	m.result.SetRule(ruleText(meta.Policy))
	m.result.SetElapsedTime(c.Elapsed)

	var buttons []components.ResultButton
	m.result.SetNext("")
	if c.CanContinue() {
		buttons = append(buttons, components.ButtonNext)
		m.result.SetNext(m.gameName(c.Next))
	}
	if !meta.NoRetry {
		buttons = append(buttons, components.ButtonRetry)
	}
	buttons = append(buttons, components.ButtonMenu)
	m.result.SetButtons(buttons...)

	m.view = ViewResult
	return m, m.loadProgress()
}

func (m AppModel) gameName(t registry.Target) string {
	if g := m.registry.Get(t.ID); g != nil {
		return g.GetMetadata().Name
	}
	if t.ID != "" {
		return t.ID
	}
	return t.Path
}

func (m AppModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keymap.Left), key.Matches(keyMsg, m.keymap.ShiftTab), key.Matches(keyMsg, m.keymap.Up):
			m.result.PrevButton()
			return m, nil
		case key.Matches(keyMsg, m.keymap.Right), key.Matches(keyMsg, m.keymap.Tab), key.Matches(keyMsg, m.keymap.Down):
			m.result.NextButton()
			return m, nil

		case key.Matches(keyMsg, m.keymap.Enter):
			return m.activate(m.result.SelectedButton())
		case key.Matches(keyMsg, m.keymap.Next):
			return m.activate(components.ButtonNext)
		case key.Matches(keyMsg, m.keymap.Retry):
			return m.activate(components.ButtonRetry)
		case key.Matches(keyMsg, m.keymap.ReturnMenu), key.Matches(keyMsg, m.keymap.Escape):
			return m.activate(components.ButtonMenu)
		}
	}
	return m, nil
}

func (m AppModel) activate(b components.ResultButton) (tea.Model, tea.Cmd) {
	if !m.result.HasButton(b) {
		return m, nil
	}
	switch b {
	case components.ButtonNext:
		if err := m.engineInstance.Next(context.Background()); err != nil {
			klog.ErrorS(err, "Failed to start next game")
			m.statusbar.SetMessage(err.Error())
			return m, nil
		}
		return m.enterPlaying()
	case components.ButtonRetry:
		if !m.engineInstance.Restart() {
			return m, nil
		}
		return m.enterPlaying()
	default:
		return m.handleReturnToDashboard()
	}
}

func (m AppModel) handleReturnToDashboard() (tea.Model, tea.Cmd) {
	m.engineInstance.Leave()

	m.header.SetTitle(components.DefaultTitle)
	m.header.ResetTimer()
	m.content.SetFocus(false)

	m.view = ViewDashboard
	m.currentGame = nil
	m.completion = nil
	m.settling = false

	m.buildSidebarItems()
	m.previewSelected()
	return m, nil
}

// Commands

func (m AppModel) loadProgress() tea.Cmd {
	eng := m.engineInstance
	return func() tea.Msg {
		p, err := eng.Progress(context.Background())
		return progressLoadedMsg{progress: p, err: err}
	}
}

func (m AppModel) tick() tea.Cmd {
	interval := time.Second
	if m.currentGame != nil && m.currentGame.GetMetadata().AnswerTimeout > 0 {
		interval = 100 * time.Millisecond
	}
	gen := m.tickGen
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (m AppModel) cleanup() tea.Cmd {
	eng := m.engineInstance
	return func() tea.Msg {
		eng.Leave()
		return tea.Quit()
	}
}

func ruleText(p reward.Policy) string {
	switch p.Mode {
	case reward.ModePerfectOnly:
		return "Get every answer right to earn the badge"
	case reward.ModeThreshold:
		return fmt.Sprintf("Score %.0f%% or more to earn the badge", p.Threshold*100)
	case reward.ModeAnyCompletion:
		return "Finish to earn the badge"
	}
	return ""
}

// View renders the UI.
func (m AppModel) View() string {
	if m.quitting {
		return m.styles.TextMuted.Render("See you next time!") + "\n"
	}

	if m.width < MinWidth || m.height < MinHeight {
		return m.styles.Error.Render(fmt.Sprintf(
			"Terminal too small. Minimum: %dx%d, Current: %dx%d",
			MinWidth, MinHeight, m.width, m.height,
		))
	}

	switch m.view {
	case ViewDashboard:
		return m.viewDashboard()
	case ViewPlaying:
		return m.viewPlaying()
	case ViewResult:
		return m.viewResult()
	case ViewConfirmReplay:
		return m.viewConfirmReplay()
	case ViewConfirmQuit:
		return m.viewConfirmQuit()
	}

	return ""
}

func (m AppModel) viewDashboard() string {
	header := m.header.View()
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.content.View())

	m.statusbar.SetKeys(m.keymap.DashboardKeys())
	statusBar := m.statusbar.View()

	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, statusBar)
}

func (m AppModel) viewPlaying() string {
	header := m.header.View()

	progress := m.styles.Panel.
		Width(m.layout.SidebarWidth - 2).
		Height(m.layout.MainAreaHeight() - 2).
		Render(m.progress.View())

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, progress, m.content.View())

	m.statusbar.SetKeys(m.keymap.PlayingKeys())
	statusBar := m.statusbar.View()

	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, statusBar)
}

func (m AppModel) viewResult() string {
	canContinue := m.result.HasButton(components.ButtonNext)
	canRetry := m.result.HasButton(components.ButtonRetry)
	m.statusbar.SetKeys(m.keymap.ResultKeys(canContinue, canRetry))
	return lipgloss.JoinVertical(lipgloss.Left, m.result.View(), m.statusbar.View())
}

func (m AppModel) updateConfirmReplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		// Navigation
		case key.Matches(keyMsg, m.keymap.Left), key.Matches(keyMsg, m.keymap.ShiftTab), key.Matches(keyMsg, m.keymap.Up):
			m.confirmSelection = (m.confirmSelection - 1 + 2) % 2
			return m, nil
		case key.Matches(keyMsg, m.keymap.Right), key.Matches(keyMsg, m.keymap.Tab), key.Matches(keyMsg, m.keymap.Down):
			m.confirmSelection = (m.confirmSelection + 1) % 2
			return m, nil

		case key.Matches(keyMsg, m.keymap.Enter):
			if m.confirmSelection == 0 {
				return m.replayPending()
			}
			return m.cancelReplay()

		case key.Matches(keyMsg, m.keymap.Escape), key.Matches(keyMsg, m.keymap.Quit), key.Matches(keyMsg, m.keymap.No):
			return m.cancelReplay()
		case key.Matches(keyMsg, m.keymap.Yes):
			return m.replayPending()
		}
	}
	return m, nil
}

func (m AppModel) replayPending() (tea.Model, tea.Cmd) {
	g := m.pendingGame
	m.pendingGame = nil
	if g == nil {
		m.view = ViewDashboard
		return m, nil
	}
	return m.startGame(g.GetMetadata().ID, nil)
}

func (m AppModel) cancelReplay() (tea.Model, tea.Cmd) {
	m.view = ViewDashboard
	m.pendingGame = nil
	return m, nil
}

func (m AppModel) viewConfirmReplay() string {
	title := m.styles.Title.Render("🔁  Play Again?")

	name := ""
	if m.pendingGame != nil {
		name = m.pendingGame.GetMetadata().Name
	}
	msg := fmt.Sprintf("\nYou already earned the badge for\n'%s'.\n\nYou can practice again, but coins\nare only awarded once.\n", name)

	boxStyle := m.styles.Dialog.Width(m.layout.CenteredBoxWidth())
	boxContent := title + "\n" + m.styles.Text.Render(msg) + "\n" + m.confirmButtons()

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(boxContent))
}

func (m AppModel) updateConfirmQuit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		// Navigation
		case key.Matches(keyMsg, m.keymap.Left), key.Matches(keyMsg, m.keymap.ShiftTab), key.Matches(keyMsg, m.keymap.Up):
			m.confirmSelection = (m.confirmSelection - 1 + 2) % 2
			return m, nil
		case key.Matches(keyMsg, m.keymap.Right), key.Matches(keyMsg, m.keymap.Tab), key.Matches(keyMsg, m.keymap.Down):
			m.confirmSelection = (m.confirmSelection + 1) % 2
			return m, nil

		case key.Matches(keyMsg, m.keymap.Enter):
			if m.confirmSelection == 0 {
				m.quitting = true
				return m, m.cleanup()
			}
			m.view = m.previousView
			return m, nil

		case key.Matches(keyMsg, m.keymap.Escape), key.Matches(keyMsg, m.keymap.Quit), key.Matches(keyMsg, m.keymap.No):
			m.view = m.previousView
			return m, nil
		case key.Matches(keyMsg, m.keymap.Yes):
			m.quitting = true
			return m, m.cleanup()
		}
	}
	return m, nil
}

func (m AppModel) viewConfirmQuit() string {
	title := m.styles.Title.Render("👋  Quit Citizen Dojo?")

	msg := "\nAre you sure you want to exit?\n"
	if m.previousView == ViewPlaying {
		msg = "\nYour current game will not be saved.\nAre you sure you want to exit?\n"
	}

	boxStyle := m.styles.Dialog.Width(m.layout.CenteredBoxWidth())
	boxContent := title + "\n" + m.styles.Text.Render(msg) + "\n" + m.confirmButtons()

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(boxContent))
}

func (m AppModel) confirmButtons() string {
	yesBtn := "[ Yes (y) ]"
	noBtn := "[ No (n) ]"

	if m.confirmSelection == 0 {
		yesBtn = m.styles.ActiveButton.Render(yesBtn)
		noBtn = m.styles.TextMuted.Render(noBtn)
	} else {
		yesBtn = m.styles.TextMuted.Render(yesBtn)
		noBtn = m.styles.ActiveButton.Render(noBtn)
	}

	return yesBtn + "    " + noBtn
}
