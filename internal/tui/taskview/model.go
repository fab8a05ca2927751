// File: model.go
// Title: Task Detail View Model
// Description: Main Bubbletea model for the task detail view. Holds the
//              canonical task record (single writer: this update loop),
//              the field editors, the upload batch state, and the
//              translation overlay. A fetch generation counter guards
//              against a late response from a superseded fetch
//              overwriting newer state.

package taskview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fieldtask/internal/api"
	fterror "fieldtask/internal/core/error"
	"fieldtask/internal/core/i18n"
	"fieldtask/internal/core/log"
	"fieldtask/internal/journal"
	"fieldtask/internal/lang"
	"fieldtask/internal/task"
	"fieldtask/internal/translate"
	"fieldtask/internal/util/stringx"
	"fieldtask/internal/util/timex"
)

// savedIndicatorTimeout controls how long the saved checkmark stays up
const savedIndicatorTimeout = 2500 * time.Millisecond

// Backend is the surface of the API client the view depends on
type Backend interface {
	GetTask(ctx context.Context, taskID string) (*task.Task, error)
	UpdateTask(ctx context.Context, taskID string, payload task.UpdatePayload) (task.UpdateResult, error)
	UploadAttachment(ctx context.Context, taskID string, payload api.AttachmentUpload) (api.UploadedAttachment, error)
	Translate(ctx context.Context, texts []string) ([]string, error)
	PDFURL(taskID string) string
}

// Recorder writes events to the local journal
type Recorder interface {
	Record(ctx context.Context, event *journal.Event) error
}

// FocusArea represents which editor has focus
type FocusArea int

const (
	FocusArrival FocusArea = iota
	FocusStatus
	FocusNotes
	FocusAttach
)

// Config holds task view configuration
type Config struct {
	TaskID  string
	Backend Backend
	Logger  *log.Logger
	Langs   *lang.Store
	Journal Recorder
	Timeout time.Duration
}

// Model is the Bubbletea model for the task detail view
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	focus   FocusArea

	// Fetch generation guard
	fetchSeq int

	// Canonical record
	record  *task.Task
	loadErr string

	// Components
	arrivalInput textinput.Model
	notesArea    textarea.Model
	attachInput  textinput.Model
	viewport     viewport.Model
	spinner      spinner.Model

	// Status selector
	statusIndex    int
	showStatusList bool

	// Save state
	saving       bool
	savedVisible bool
	flashErr     string

	// Upload batch state
	uploading   bool
	uploadTotal int
	uploadDone  int

	// Translation state
	overlay     *translate.Overlay
	translating bool
	autoApplied bool

	// Configuration
	taskID  string
	backend Backend
	logger  *log.Logger
	langs   *lang.Store
	journal Recorder
	timeout time.Duration
}

// New creates a new task view model
func New(cfg Config) Model {
	ai := textinput.New()
	ai.CharLimit = 16
	ai.Width = 20

	ta := textarea.New()
	ta.CharLimit = 4000
	ta.SetWidth(60)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	fi := textinput.New()
	fi.CharLimit = 1024
	fi.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	logger := cfg.Logger
	if logger == nil {
		logger = log.Nop()
	}
	langs := cfg.Langs
	if langs == nil {
		langs = lang.NewStore(lang.DefaultDir())
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	m := Model{
		arrivalInput: ai,
		notesArea:    ta,
		attachInput:  fi,
		spinner:      sp,
		overlay:      translate.NewOverlay(),
		fetchSeq:     1,
		loading:      true,
		focus:        FocusArrival,
		taskID:       cfg.TaskID,
		backend:      cfg.Backend,
		logger:       logger.WithName("taskview"),
		langs:        langs,
		journal:      cfg.Journal,
		timeout:      timeout,
	}
	m.arrivalInput.Focus()
	m.syncPlaceholders()
	return m
}

// Run starts the task view program and blocks until it exits
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.fetchCmd(m.fetchSeq),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		footerHeight := 4 // status bar + help
		viewportHeight := msg.Height - footerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.notesArea.SetWidth(msg.Width - 8)
		m.attachInput.Width = msg.Width - 10
		m.refreshContent()

	case spinner.TickMsg:
		if m.loading || m.saving || m.uploading || m.translating {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case taskLoadedMsg:
		// A response from a superseded fetch is discarded wholesale.
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = fterror.UserMessage(msg.err, m.t("unableToLoad"))
			m.logger.ErrorWithErr("task fetch failed", msg.err, log.Fields{"task_id": m.taskID})
			m.refreshContent()
			return m, nil
		}
		m.loadErr = ""
		m.record = msg.record
		m.syncEditors()
		cmds = append(cmds, m.journalCmd(journal.EventTaskViewed, "task loaded", nil))

		// A flagged task switches the display language once, and only
		// when the technician has never chosen a language themselves.
		if m.record.TranslateFlag && !m.autoApplied && !m.langs.Explicit() {
			m.langs.SetAuto(i18n.LocaleZH)
			m.autoApplied = true
		}
		if translateCmd := m.ensureTranslation(); translateCmd != nil {
			cmds = append(cmds, translateCmd, m.spinner.Tick)
		}
		m.refreshContent()

	case saveResultMsg:
		m.saving = false
		if msg.err != nil {
			m.flashErr = fterror.UserMessage(msg.err, m.t("saveFailed"))
			m.logger.LogError(msg.err)
			cmds = append(cmds, m.journalCmd(journal.EventSaveFailed, m.flashErr, nil))
			m.refreshContent()
			return m, tea.Batch(cmds...)
		}
		if m.record != nil {
			m.record.MergeUpdate(msg.result)
		}
		m.flashErr = ""
		m.savedVisible = true
		m.syncEditors()
		cmds = append(cmds,
			m.journalCmd(journal.EventFieldSaved, savedFieldName(msg.field), map[string]string{"field": savedFieldName(msg.field)}),
			tea.Tick(savedIndicatorTimeout, func(time.Time) tea.Msg { return savedClearMsg{} }),
		)
		// The save produced a new snapshot version, so a translated view
		// needs a fresh batch for the new cache key.
		if translateCmd := m.ensureTranslation(); translateCmd != nil {
			cmds = append(cmds, translateCmd, m.spinner.Tick)
		}
		m.refreshContent()

	case savedClearMsg:
		m.savedVisible = false
		m.refreshContent()

	case uploadStepMsg:
		m.uploadDone++
		if msg.err != nil {
			m.flashErr = m.t("uploadFailed") + ": " + msg.filename
			m.logger.WarnWithErr("attachment upload failed", msg.err, log.Fields{"file": msg.filename})
			cmds = append(cmds, m.journalCmd(journal.EventUploadFailed, msg.filename, nil))
		} else {
			if m.record != nil {
				m.record.AppendAttachment(msg.uploaded.ToAttachment())
			}
			cmds = append(cmds, m.journalCmd(journal.EventUploadDone, msg.uploaded.Name, nil))
		}
		if len(msg.remaining) > 0 {
			cmds = append(cmds, m.uploadNextCmd(msg.remaining))
		} else {
			m.uploading = false
		}
		m.refreshContent()

	case translatedMsg:
		m.translating = false
		if msg.err != nil {
			// The view silently falls back to the untranslated record.
			m.logger.WarnWithErr("translation failed", msg.err, log.Fields{"task_id": m.taskID})
			m.refreshContent()
			return m, nil
		}
		if m.record == nil || msg.key != translate.CacheKey(m.record) {
			// Stale batch for a superseded snapshot. If the view still
			// wants a translation, request one for the current record.
			if translateCmd := m.ensureTranslation(); translateCmd != nil {
				return m, tea.Batch(translateCmd, m.spinner.Tick)
			}
			return m, nil
		}
		m.overlay.Store(m.record, msg.results)
		cmds = append(cmds, m.journalCmd(journal.EventTranslated, "translation cached", nil))
		m.refreshContent()

	case pdfOpenedMsg:
		if msg.err != nil {
			m.flashErr = fterror.UserMessage(msg.err, m.t("errorPrefix"))
			m.refreshContent()
		}
	}

	// Update the focused editor
	switch m.focus {
	case FocusArrival:
		m.arrivalInput, cmd = m.arrivalInput.Update(msg)
		cmds = append(cmds, cmd)
	case FocusNotes:
		m.notesArea, cmd = m.notesArea.Update(msg)
		cmds = append(cmds, cmd)
	case FocusAttach:
		m.attachInput, cmd = m.attachInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Status selector navigation - handle FIRST when the list is shown
	if m.showStatusList {
		options := task.StatusOptions()
		switch msg.Type {
		case tea.KeyUp:
			if m.statusIndex > 0 {
				m.statusIndex--
			}
			return m, nil

		case tea.KeyDown:
			if m.statusIndex < len(options)-1 {
				m.statusIndex++
			}
			return m, nil

		case tea.KeyEnter:
			m.showStatusList = false
			return m.selectStatus(options[m.statusIndex])

		case tea.KeyEsc:
			m.showStatusList = false
			m.syncEditors()
			m.refreshContent()
			return m, nil

		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "k":
				if m.statusIndex > 0 {
					m.statusIndex--
				}
				return m, nil
			case "j":
				if m.statusIndex < len(options)-1 {
					m.statusIndex++
				}
				return m, nil
			}
		}
		// Ignore all other keys while the list is open
		return m, nil
	}

	// Global shortcuts
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		return m.cycleFocus(1)

	case tea.KeyShiftTab:
		return m.cycleFocus(-1)
	}

	switch msg.String() {
	case "ctrl+t":
		return m.toggleLanguage()

	case "ctrl+p":
		if m.record != nil {
			return m, m.openPDFCmd()
		}
		return m, nil

	case "ctrl+r":
		m.fetchSeq++
		m.loading = true
		m.loadErr = ""
		m.refreshContent()
		return m, tea.Batch(m.fetchCmd(m.fetchSeq), m.spinner.Tick)
	}

	// Focused editor handling
	switch m.focus {
	case FocusArrival:
		if msg.Type == tea.KeyEnter {
			return m.saveArrival()
		}

	case FocusStatus:
		if msg.Type == tea.KeyEnter {
			m.showStatusList = true
			m.syncStatusIndex()
			return m, nil
		}

	case FocusAttach:
		if msg.Type == tea.KeyEnter {
			return m.startUploads()
		}
	}

	// Pass other keys to the focused editor
	var cmd tea.Cmd
	switch m.focus {
	case FocusArrival:
		m.arrivalInput, cmd = m.arrivalInput.Update(msg)
	case FocusNotes:
		m.notesArea, cmd = m.notesArea.Update(msg)
	case FocusAttach:
		m.attachInput, cmd = m.attachInput.Update(msg)
	}
	return m, cmd
}

// cycleFocus moves focus by delta, saving the notes draft when focus
// leaves the notes editor.
func (m Model) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.focus {
	case FocusNotes:
		if cmd := m.maybeSaveNotes(); cmd != nil {
			m.saving = true
			m.savedVisible = false
			cmds = append(cmds, cmd, m.spinner.Tick)
		}
	case FocusArrival:
		if cmd := m.maybeSaveArrival(); cmd != nil {
			m.saving = true
			m.savedVisible = false
			cmds = append(cmds, cmd, m.spinner.Tick)
		}
	}

	next := (int(m.focus) + delta + 4) % 4
	m.focus = FocusArea(next)

	m.arrivalInput.Blur()
	m.notesArea.Blur()
	m.attachInput.Blur()
	switch m.focus {
	case FocusArrival:
		m.arrivalInput.Focus()
	case FocusNotes:
		m.notesArea.Focus()
	case FocusAttach:
		m.attachInput.Focus()
	}
	m.refreshContent()
	return m, tea.Batch(cmds...)
}

// saveArrival validates the arrival editor value and submits it
func (m Model) saveArrival() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.arrivalInput.Value())
	if value == "" {
		return m, nil
	}

	iso := timex.DatetimeLocalToISO(value)
	if iso == "" {
		m.flashErr = m.t("tapToSetArrival")
		m.refreshContent()
		return m, nil
	}
	if m.record != nil && iso == m.record.ArrivalDateISO {
		return m, nil
	}

	m.saving = true
	m.savedVisible = false
	m.flashErr = ""
	m.refreshContent()
	return m, tea.Batch(m.updateCmd(fieldArrival, task.ArrivalPatch(iso)), m.spinner.Tick)
}

// maybeSaveArrival returns a save command when the arrival editor holds
// a parseable value that differs from the record, nil otherwise. Blur
// saves are silent; format errors only surface on an explicit submit.
func (m *Model) maybeSaveArrival() tea.Cmd {
	if m.record == nil || m.saving {
		return nil
	}
	value := strings.TrimSpace(m.arrivalInput.Value())
	if value == "" {
		return nil
	}
	iso := timex.DatetimeLocalToISO(value)
	if iso == "" || iso == m.record.ArrivalDateISO {
		return nil
	}
	return m.updateCmd(fieldArrival, task.ArrivalPatch(iso))
}

// selectStatus submits a status change. Re-selecting the current status
// sends nothing.
func (m Model) selectStatus(option task.StatusOption) (tea.Model, tea.Cmd) {
	if m.record != nil && option.UIValue == m.record.CompletionStatus {
		m.refreshContent()
		return m, nil
	}

	m.saving = true
	m.savedVisible = false
	m.flashErr = ""
	m.refreshContent()
	return m, tea.Batch(m.updateCmd(fieldStatus, task.StatusPatch(option)), m.spinner.Tick)
}

// maybeSaveNotes returns a save command when the notes draft differs
// from the record, nil otherwise.
func (m *Model) maybeSaveNotes() tea.Cmd {
	if m.record == nil || m.saving {
		return nil
	}
	value := m.notesArea.Value()
	if value == m.record.TechNotes {
		return nil
	}
	return m.updateCmd(fieldNotes, task.NotesPatch(value))
}

// startUploads parses the attach input into a path batch and begins the
// sequential upload.
func (m Model) startUploads() (tea.Model, tea.Cmd) {
	raw := strings.Split(m.attachInput.Value(), ",")
	var paths []string
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 || m.uploading {
		return m, nil
	}

	m.uploading = true
	m.uploadTotal = len(paths)
	m.uploadDone = 0
	m.flashErr = ""
	m.attachInput.Reset()
	m.refreshContent()
	return m, tea.Batch(m.uploadNextCmd(paths), m.spinner.Tick)
}

// toggleLanguage flips the display language as an explicit choice
func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	if _, err := m.langs.Toggle(); err != nil {
		m.logger.WarnWithErr("failed to persist language preference", err)
	}
	m.syncPlaceholders()

	var cmds []tea.Cmd
	if translateCmd := m.ensureTranslation(); translateCmd != nil {
		cmds = append(cmds, translateCmd, m.spinner.Tick)
	}
	m.refreshContent()
	return m, tea.Batch(cmds...)
}

// ensureTranslation returns a translation command when the current
// language needs field content the overlay does not have. The returned
// command is nil on the baseline language, on a cache hit, and while a
// batch is already in flight.
func (m *Model) ensureTranslation() tea.Cmd {
	if m.record == nil || m.langs.Current() == i18n.Baseline() || m.translating {
		return nil
	}
	if _, ok := m.overlay.Lookup(m.record); ok {
		return nil
	}
	m.translating = true
	return m.translateCmd(translate.CacheKey(m.record), translate.SourceTexts(m.record))
}

// displayRecord returns the record variant to render: the translated
// display clone when the alternate language is active and cached, the
// canonical record otherwise.
func (m Model) displayRecord() *task.Task {
	if m.record == nil {
		return nil
	}
	if m.langs.Current() != i18n.Baseline() {
		if display, ok := m.overlay.Lookup(m.record); ok {
			return display
		}
	}
	return m.record
}

// syncEditors re-seeds the editors from the record. A focused editor
// keeps its draft so a technician mid-edit is never interrupted.
func (m *Model) syncEditors() {
	if m.record == nil {
		return
	}
	if m.focus != FocusArrival || !m.arrivalInput.Focused() || m.arrivalInput.Value() == "" {
		m.arrivalInput.SetValue(timex.ISOToDatetimeLocal(m.record.ArrivalDateISO))
	}
	if m.focus != FocusNotes {
		m.notesArea.SetValue(m.record.TechNotes)
	}
	m.syncStatusIndex()
}

// syncStatusIndex points the selector at the record's current status
func (m *Model) syncStatusIndex() {
	if m.record == nil {
		return
	}
	for i, option := range task.StatusOptions() {
		if option.UIValue == m.record.CompletionStatus {
			m.statusIndex = i
			return
		}
	}
	m.statusIndex = 0
}

// syncPlaceholders applies locale-dependent placeholders
func (m *Model) syncPlaceholders() {
	m.arrivalInput.Placeholder = "YYYY-MM-DDTHH:MM"
	m.notesArea.Placeholder = m.t("notesPlaceholder")
	m.attachInput.Placeholder = m.t("attachPrompt")
}

// t looks up a UI label in the active display language
func (m Model) t(key string) string {
	return i18n.T(key, m.langs.Current())
}

func savedFieldName(field savedField) string {
	switch field {
	case fieldArrival:
		return "arrival_date_iso"
	case fieldStatus:
		return "completion_status"
	default:
		return "tech_notes"
	}
}

// --- Commands ---

// fetchCmd fetches the task record, tagging the result with the fetch
// generation it belongs to.
func (m Model) fetchCmd(seq int) tea.Cmd {
	backend := m.backend
	taskID := m.taskID
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := backend.GetTask(ctx, taskID)
		return taskLoadedMsg{seq: seq, record: record, err: err}
	}
}

// updateCmd submits a field patch
func (m Model) updateCmd(field savedField, payload task.UpdatePayload) tea.Cmd {
	backend := m.backend
	taskID := m.taskID
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := backend.UpdateTask(ctx, taskID, payload)
		return saveResultMsg{field: field, result: result, err: err}
	}
}

// uploadNextCmd encodes and uploads the first path of the batch; the
// rest travels in the step message so the batch continues one file at a
// time.
func (m Model) uploadNextCmd(paths []string) tea.Cmd {
	backend := m.backend
	taskID := m.taskID
	timeout := m.timeout
	path := paths[0]
	rest := paths[1:]
	return func() tea.Msg {
		payload, err := api.EncodeFile(path)
		if err != nil {
			return uploadStepMsg{filename: path, err: err, remaining: rest}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		uploaded, err := backend.UploadAttachment(ctx, taskID, payload)
		return uploadStepMsg{uploaded: uploaded, filename: payload.Filename, err: err, remaining: rest}
	}
}

// translateCmd submits one translation batch for the given cache key
func (m Model) translateCmd(key string, texts []string) tea.Cmd {
	backend := m.backend
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := backend.Translate(ctx, texts)
		return translatedMsg{key: key, results: results, err: err}
	}
}

// openPDFCmd opens the work-order PDF in the system browser
func (m Model) openPDFCmd() tea.Cmd {
	url := m.backend.PDFURL(m.taskID)
	return func() tea.Msg {
		return pdfOpenedMsg{err: openBrowser(url)}
	}
}

// journalCmd records an event in the local journal, if one is attached
func (m Model) journalCmd(eventType journal.EventType, message string, details map[string]string) tea.Cmd {
	if m.journal == nil {
		return nil
	}
	recorder := m.journal
	taskID := m.taskID
	return func() tea.Msg {
		_ = recorder.Record(context.Background(), &journal.Event{
			TaskID:  taskID,
			Type:    eventType,
			Message: message,
			Details: details,
		})
		return nil
	}
}

// --- View ---

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return m.t("maintenanceTask") + "..."
	}

	var b strings.Builder

	if m.showStatusList {
		b.WriteString(m.renderStatusList())
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.t("helpBar")))

	return b.String()
}

// refreshContent re-renders the scrollable content into the viewport
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
}

// renderContent renders the full task detail body
func (m Model) renderContent() string {
	var b strings.Builder

	if m.loading && m.record == nil {
		return SubTextStyle.Render(m.spinner.View() + " " + m.t("maintenanceTask") + "...")
	}
	if m.loadErr != "" && m.record == nil {
		return ErrorBannerStyle.Render(m.t("errorPrefix") + ": " + m.loadErr)
	}

	record := m.displayRecord()
	if record == nil {
		return ""
	}

	// Header
	b.WriteString(TitleStyle.Render(m.t("maintenanceTask")))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render(record.TaskName))
	b.WriteString("\n")
	if stringx.IsNotBlank(record.PropertyAddress) {
		b.WriteString(SubTextStyle.Render(record.PropertyAddress))
		b.WriteString("\n")
	}
	if stringx.IsNotBlank(record.TaskStatus) {
		b.WriteString(DimTextStyle.Render(m.t("clickupStatus") + " " + record.TaskStatus))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if record.CacheStale {
		b.WriteString(StaleBannerStyle.Render(m.t("cachedData")))
		b.WriteString("\n\n")
	}

	// Scheduled window
	if stringx.IsNotBlank(record.StartDateMS) {
		if start, end, err := timex.Window(record.StartDateMS, record.StartBufferHours); err == nil {
			b.WriteString(SectionLabelStyle.Render(m.t("scheduledWindow")))
			b.WriteString("\n")
			window := fmt.Sprintf("%s %s %s (%.0f %s)",
				timex.FormatDisplayTime(start), m.t("to"), timex.FormatDisplayTime(end),
				record.StartBufferHours, m.t("hrBuffer"))
			b.WriteString(SubTextStyle.Render(window))
			b.WriteString("\n\n")
		}
	}

	// Issue
	if stringx.IsNotBlank(record.IssueDescription) {
		b.WriteString(SectionLabelStyle.Render(m.t("issue")))
		b.WriteString("\n")
		b.WriteString(record.IssueDescription)
		b.WriteString("\n\n")
	}

	// Action items
	if len(record.ActionItems) > 0 {
		b.WriteString(SectionLabelStyle.Render(m.t("actionItems")))
		b.WriteString("\n")
		ordinal := 0
		for _, item := range record.ActionItems {
			switch item.Type {
			case task.ActionItemOrdered:
				ordinal++
				b.WriteString(fmt.Sprintf("%d. %s\n", ordinal, item.Text))
			case task.ActionItemBullet:
				b.WriteString("• " + item.Text + "\n")
			default:
				b.WriteString(item.Text + "\n")
			}
		}
		b.WriteString("\n")
	}

	// Arrival editor
	b.WriteString(m.renderSection(m.t("arrivalDateTime"), m.arrivalInput.View()+
		"  "+DimTextStyle.Render(timex.FormatDisplay(record.ArrivalDateISO)), FocusArrival))

	// Completion status
	option := task.StatusFor(string(record.CompletionStatus))
	b.WriteString(m.renderSection(m.t("completionStatus"),
		StatusBadge(m.t(option.LabelKey), option.Color), FocusStatus))

	// Notes
	b.WriteString(m.renderSection(m.t("technicianNotes"),
		m.notesArea.View()+"\n"+DimTextStyle.Render(m.t("autoSaved")), FocusNotes))

	// Attachments
	var attach strings.Builder
	for _, a := range record.Attachments {
		attach.WriteString("• " + a.Name)
		if stringx.IsNotBlank(a.URL) {
			attach.WriteString("  " + DimTextStyle.Render(a.URL))
		}
		attach.WriteString("\n")
	}
	if m.uploading {
		attach.WriteString(SavingStyle.Render(fmt.Sprintf("%s (%d/%d)", m.t("uploading"), m.uploadDone+1, m.uploadTotal)))
		attach.WriteString("\n")
	}
	attach.WriteString(m.attachInput.View())
	b.WriteString(m.renderSection(m.t("attachments"), attach.String(), FocusAttach))

	// PDF hint
	b.WriteString(DimTextStyle.Render(m.t("viewWorkOrderPdf") + " (ctrl+p) — " + m.t("opensInNewTab")))
	b.WriteString("\n")

	return b.String()
}

// renderSection renders one labeled panel, highlighted when focused
func (m Model) renderSection(label, content string, area FocusArea) string {
	style := PanelStyle
	if m.focus == area && !m.showStatusList {
		style = FocusedPanelStyle
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return SectionLabelStyle.Render(label) + "\n" +
		style.Width(width).Render(content) + "\n\n"
}

// renderStatusList renders the status selection dropdown
func (m Model) renderStatusList() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(m.t("completionStatus")))
	content.WriteString("\n\n")

	for i, option := range task.StatusOptions() {
		label := m.t(option.LabelKey)
		if i == m.statusIndex {
			content.WriteString(SelectedStatusItemStyle.Render(" ▶ " + label + " "))
		} else {
			content.WriteString(StatusItemStyle.Render("   " + label + " "))
		}
		if m.record != nil && option.UIValue == m.record.CompletionStatus {
			content.WriteString(SavedStyle.Render(" ✓"))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(HelpStyle.Render("↑/↓ • enter • esc"))

	width := m.width - 2
	if width < 30 {
		width = 30
	}
	return StatusListStyle.Width(width).Render(content.String())
}

// renderStatusBar renders the transient save/upload/translate state
func (m Model) renderStatusBar() string {
	var parts []string

	switch {
	case m.saving:
		parts = append(parts, SavingStyle.Render(m.spinner.View()+" "+m.t("saving")))
	case m.savedVisible:
		parts = append(parts, SavedStyle.Render(m.t("saved")))
	}
	if m.translating {
		parts = append(parts, SavingStyle.Render(m.t("translating")))
	}
	if m.uploading {
		parts = append(parts, SavingStyle.Render(fmt.Sprintf("%s %d/%d", m.t("uploading"), m.uploadDone+1, m.uploadTotal)))
	}
	if m.flashErr != "" {
		parts = append(parts, ErrorTextStyle.Render(m.t("errorPrefix")+": "+m.flashErr))
	}
	if m.loadErr != "" && m.record != nil {
		parts = append(parts, ErrorTextStyle.Render(m.loadErr))
	}
	if len(parts) == 0 {
		parts = append(parts, DimTextStyle.Render(string(m.langs.Current())))
	}

	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return StatusBarStyle.Width(width).Render(strings.Join(parts, "  "))
}
