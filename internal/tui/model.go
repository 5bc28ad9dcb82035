// Package tui is the terminal recorder: it drives one capture session for
// one text and saves the result.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/recitation/internal/capture"
	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/service/recording"
)

const tickInterval = 100 * time.Millisecond

// recorder is the capture session driven by the screen.
type recorder interface {
	Start(ctx context.Context) error
	Pause() error
	Resume() error
	Stop() (capture.Result, error)
	Abandon() error
	State() capture.State
	Err() error
	Duration() time.Duration
}

// recordingSaver persists a finished capture.
type recordingSaver interface {
	SaveRecording(ctx context.Context, input recording.SaveRecordingInput) (*domain.Recording, error)
}

type phase int

const (
	phaseConfirm phase = iota
	phaseStarting
	phaseRecording
	phaseStopping
	phaseSaving
	phaseSaveFailed
	phaseFailed
	phaseDone
	phaseAbandoned
)

// Options configures the recorder screen.
type Options struct {
	Text *domain.Text

	// Existing is the current recording of Text, if any. When set the user
	// must confirm before anything is captured.
	Existing *domain.Recording
	Session  recorder
	Saver    recordingSaver
	Now      func() time.Time
}

// Outcome is what the screen produced when it exited.
type Outcome struct {
	Recording *domain.Recording
	Abandoned bool
	Err       error
}

// Model is the bubbletea model of the recorder screen.
type Model struct {
	ctx     context.Context
	text    *domain.Text
	session recorder
	saver   recordingSaver
	now     func() time.Time

	phase    phase
	existing *domain.Recording
	elapsed  time.Duration
	paused   bool
	pending  *capture.Result
	saved    *domain.Recording
	err      error
	width    int
}

// New creates the recorder screen for opts.Text.
func New(ctx context.Context, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := Model{
		ctx:      ctx,
		text:     opts.Text,
		session:  opts.Session,
		saver:    opts.Saver,
		now:      now,
		existing: opts.Existing,
		phase:    phaseStarting,
	}
	if opts.Existing != nil {
		m.phase = phaseConfirm
	}
	return m
}

// Init starts capturing unless an overwrite has to be confirmed first.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseConfirm {
		return nil
	}
	return startCmd(m.ctx, m.session)
}

// Outcome reports the result once the program has exited.
func (m Model) Outcome() Outcome {
	switch m.phase {
	case phaseDone:
		return Outcome{Recording: m.saved}
	case phaseFailed, phaseSaveFailed:
		return Outcome{Abandoned: true, Err: m.err}
	default:
		return Outcome{Abandoned: true}
	}
}

func startCmd(ctx context.Context, s recorder) tea.Cmd {
	return func() tea.Msg {
		return startedMsg{err: s.Start(ctx)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func stopCmd(s recorder) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Stop()
		return stoppedMsg{result: res, err: err}
	}
}

func abandonCmd(s recorder) tea.Cmd {
	return func() tea.Msg {
		_ = s.Abandon()
		return abandonedMsg{}
	}
}

func saveCmd(ctx context.Context, saver recordingSaver, input recording.SaveRecordingInput) tea.Cmd {
	return func() tea.Msg {
		rec, err := saver.SaveRecording(ctx, input)
		return savedMsg{recording: rec, err: err}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case startedMsg:
		if m.phase != phaseStarting {
			return m, nil
		}
		if msg.err != nil {
			m.phase = phaseFailed
			m.err = msg.err
			return m, tea.Quit
		}
		m.phase = phaseRecording
		return m, tickCmd()

	case tickMsg:
		if m.phase != phaseRecording {
			return m, nil
		}
		m.elapsed = m.session.Duration()
		if m.session.State() == capture.Stopped {
			// The device failed under us; the session already released it.
			m.phase = phaseFailed
			m.err = m.session.Err()
			return m, tea.Quit
		}
		return m, tickCmd()

	case stoppedMsg:
		if msg.err != nil {
			m.phase = phaseFailed
			m.err = msg.err
			return m, tea.Quit
		}
		m.elapsed = msg.result.Duration
		m.pending = &msg.result
		return m.save()

	case savedMsg:
		if msg.err != nil {
			m.phase = phaseSaveFailed
			m.err = msg.err
			return m, nil
		}
		m.phase = phaseDone
		m.saved = msg.recording
		m.pending = nil
		return m, tea.Quit

	case abandonedMsg:
		m.phase = phaseAbandoned
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) save() (tea.Model, tea.Cmd) {
	m.phase = phaseSaving
	m.err = nil
	input := recording.SaveRecordingInput{
		TextID:     m.text.ID,
		Audio:      m.pending.Audio.Data,
		MimeType:   m.pending.Audio.MimeType,
		Duration:   m.pending.Seconds(),
		RecordedAt: m.now(),
	}
	return m, saveCmd(m.ctx, m.saver, input)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseConfirm:
		switch key {
		case keyYes, keyYesUp:
			m.phase = phaseStarting
			return m, startCmd(m.ctx, m.session)
		case keyNo, keyNoUpper, keyQuit, keyEsc, keyCtrlC:
			m.phase = phaseAbandoned
			return m, tea.Quit
		}
		return m, nil

	case phaseStarting:
		if key == keyCtrlC || key == keyQuit {
			m.phase = phaseStopping
			return m, abandonCmd(m.session)
		}
		return m, nil

	case phaseRecording:
		switch key {
		case keySpace:
			if m.paused {
				if err := m.session.Resume(); err != nil {
					m.err = err
					return m, nil
				}
				m.paused = false
			} else {
				if err := m.session.Pause(); err != nil {
					m.err = err
					return m, nil
				}
				m.paused = true
			}
			m.elapsed = m.session.Duration()
			return m, nil
		case keyEnter:
			m.phase = phaseStopping
			return m, stopCmd(m.session)
		case keyQuit, keyEsc, keyCtrlC:
			m.phase = phaseStopping
			return m, abandonCmd(m.session)
		}
		return m, nil

	case phaseSaveFailed:
		switch key {
		case keyEnter:
			return m.save()
		case keyQuit, keyEsc, keyCtrlC:
			m.phase = phaseAbandoned
			m.pending = nil
			return m, tea.Quit
		}
		return m, nil
	}

	// Stopping and saving ignore keys so a save is never started twice.
	return m, nil
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.text.Title))
	if m.text.Author != "" {
		b.WriteString("  ")
		b.WriteString(authorStyle.Render(m.text.Author))
	}
	b.WriteString("\n\n")
	b.WriteString(contentStyle.Width(m.contentWidth()).Render(m.text.Content))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseConfirm:
		b.WriteString(promptStyle.Render(fmt.Sprintf(
			"A %s recording from %s already exists. Overwrite it? [y/N]",
			FormatDuration(secondsToDuration(m.existing.Duration)),
			m.existing.RecordedAt.Local().Format("2006-01-02 15:04"),
		)))
	case phaseStarting:
		b.WriteString(helpStyle.Render("Opening microphone..."))
	case phaseRecording:
		if m.paused {
			b.WriteString(pausedStyle.Render("|| PAUSED"))
		} else {
			b.WriteString(recordingDotStyle.Render("● REC"))
		}
		b.WriteString("  ")
		b.WriteString(timerStyle.Render(FormatDuration(m.elapsed)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("space pause/resume · enter stop and save · q discard"))
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(domain.Message(m.err)))
		}
	case phaseStopping:
		b.WriteString(helpStyle.Render("Stopping..."))
	case phaseSaving:
		b.WriteString(helpStyle.Render(fmt.Sprintf("Saving %s...", FormatDuration(m.elapsed))))
	case phaseSaveFailed:
		b.WriteString(errorStyle.Render("Save failed: " + domain.Message(m.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter retry · q discard"))
	case phaseFailed:
		b.WriteString(errorStyle.Render(domain.Message(m.err)))
	case phaseDone:
		b.WriteString(savedStyle.Render("Saved " + FormatDuration(m.elapsed)))
	case phaseAbandoned:
		b.WriteString(helpStyle.Render("Discarded."))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 4 {
		return 76
	}
	return m.width - 4
}

// FormatDuration renders d as m:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, mins, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, s)
	}
	return fmt.Sprintf("%d:%02d", mins, s)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Run shows the recorder until the user saves or discards. The session is
// always released on return.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) (Outcome, error) {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	final, err := tea.NewProgram(New(ctx, opts), programOpts...).Run()
	// Abandon is a no-op once the session is stopped.
	_ = opts.Session.Abandon()

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Outcome{Abandoned: true}, ctx.Err()
		}
		return Outcome{}, fmt.Errorf("run recorder: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Outcome{}, fmt.Errorf("run recorder: unexpected model %T", final)
	}
	out := m.Outcome()
	return out, out.Err
}
