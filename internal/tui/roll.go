package tui

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/marbles/internal/tui/styles"
)

// TickMsg advances the roll animation by one frame.
type TickMsg time.Time

// RollOptions configures the roll animation's presentation.
type RollOptions struct {
	// Duration is how long the animation plays before the reveal.
	Duration time.Duration
	// Tick is the interval between frames.
	Tick time.Duration
	// KillChance is the per-tick probability of shattering a preview row.
	KillChance float64
	// Rand drives the presentation shuffle. It is independent of the
	// draw itself, which happens before the animation starts.
	Rand *rand.Rand
}

// rollRow is one line of the animated preview.
type rollRow struct {
	title     string
	shattered bool
}

// Roll is the Bubble Tea model for the roll animation. The winning marble
// is decided before the model is created; the animation only shuffles a
// preview and never changes the outcome.
type Roll struct {
	winner  string
	rows    []rollRow
	opts    RollOptions
	spinner spinner.Model
	elapsed time.Duration
	done    bool
	skipped bool
}

// NewRoll creates a roll animation for the already-drawn winner and the
// remaining items. The preview starts shuffled.
func NewRoll(winner string, others []string, opts RollOptions) *Roll {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Tick <= 0 {
		opts.Tick = 120 * time.Millisecond
	}

	rows := make([]rollRow, 0, len(others)+1)
	rows = append(rows, rollRow{title: winner})
	for _, item := range others {
		rows = append(rows, rollRow{title: item})
	}
	opts.Rand.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)

	return &Roll{
		winner:  winner,
		rows:    rows,
		opts:    opts,
		spinner: s,
	}
}

// Winner returns the item the roll reveals.
func (m *Roll) Winner() string {
	return m.winner
}

// Done reports whether the animation ran to completion.
func (m *Roll) Done() bool {
	return m.done
}

// Skipped reports whether the user cut the animation short.
func (m *Roll) Skipped() bool {
	return m.skipped
}

// Rows returns the current preview titles, for tests.
func (m *Roll) Rows() []string {
	titles := make([]string, len(m.rows))
	for i, row := range m.rows {
		titles[i] = row.title
	}
	return titles
}

// tick schedules the next animation frame.
func (m *Roll) tick() tea.Cmd {
	return tea.Tick(m.opts.Tick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the spinner and the frame timer.
func (m *Roll) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

// Update handles animation frames and user interrupts.
func (m *Roll) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Skipping the animation reveals the result immediately;
			// the draw is already made.
			m.skipped = true
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		m.elapsed += m.opts.Tick
		if m.elapsed >= m.opts.Duration {
			m.done = true
			return m, tea.Quit
		}
		m.advance()
		return m, m.tick()
	}

	return m, nil
}

// advance mutates the preview by one frame: rows shattered last frame
// fall out, two rows swap, and occasionally a non-winner row shatters.
func (m *Roll) advance() {
	kept := m.rows[:0]
	for _, row := range m.rows {
		if !row.shattered {
			kept = append(kept, row)
		}
	}
	m.rows = kept

	rng := m.opts.Rand
	if len(m.rows) >= 2 {
		i := rng.IntN(len(m.rows))
		j := rng.IntN(len(m.rows))
		m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
	}

	if rng.Float64() < m.opts.KillChance {
		victims := make([]int, 0, len(m.rows))
		for i, row := range m.rows {
			if row.title != m.winner && !row.shattered {
				victims = append(victims, i)
			}
		}
		if len(victims) > 0 {
			m.rows[victims[rng.IntN(len(victims))]].shattered = true
		}
	}
}

// View renders the animation frame, or the reveal once done.
func (m *Roll) View() string {
	var sb strings.Builder

	if m.done {
		sb.WriteString(fmt.Sprintf("  rolled: %s\n", styles.RevealStyle.Render(m.winner)))
		return sb.String()
	}

	count := styles.RollCountStyle.Render(strconv.Itoa(len(m.rows)))
	title := styles.RollTitleStyle.Render("Rolling a marble for 1 of ") + count +
		styles.RollTitleStyle.Render(" choices")
	sb.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), title))

	rows := make([][]string, len(m.rows))
	for i, row := range m.rows {
		cell := row.title
		if row.shattered {
			cell = styles.ShatterStyle.Render(cell)
		}
		rows[i] = []string{strconv.Itoa(i + 1), cell}
	}
	sb.WriteString(RenderTable([]string{"#", "Title"}, rows))
	sb.WriteString("\n")

	return sb.String()
}

// RunRoll plays the animation for the already-drawn winner. It blocks
// until the animation finishes or the user skips it.
func RunRoll(winner string, others []string, opts RollOptions) error {
	p := tea.NewProgram(NewRoll(winner, others, opts))
	_, err := p.Run()
	return err
}
