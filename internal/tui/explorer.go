// Package tui provides an interactive explorer for iteration spaces.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/ndspace/internal/nd"
	"github.com/san-kum/ndspace/internal/viz"
)

// Explorer moves a cursor through a range and shows how it linearizes.
type Explorer[R nd.Rank] struct {
	rng           nd.Range[R]
	cursor        nd.ID[R]
	width, height int
}

func NewExplorer[R nd.Rank](r nd.Range[R]) Explorer[R] {
	return Explorer[R]{rng: r, width: 80, height: 24}
}

func (m Explorer[R]) Cursor() nd.ID[R] { return m.cursor }

func (m Explorer[R]) Init() tea.Cmd { return nil }

func (m Explorer[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Explorer[R]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.rng.Dims()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l":
		m.move(n-1, 1)
	case "left", "h":
		m.move(n-1, -1)
	case "down", "j":
		m.move(n-2, 1)
	case "up", "k":
		m.move(n-2, -1)
	case "]":
		m.move(n-3, 1)
	case "[":
		m.move(n-3, -1)
	case "n":
		if flat := nd.Linear(m.rng, m.cursor); flat+1 < m.rng.Size() {
			m.cursor = nd.Delinearize(m.rng, flat+1)
		}
	case "p":
		if flat := nd.Linear(m.rng, m.cursor); flat > 0 {
			m.cursor = nd.Delinearize(m.rng, flat-1)
		}
	case "home", "g":
		m.cursor = nd.ID[R]{}
	case "end", "G":
		m.cursor = nd.Delinearize(m.rng, m.rng.Size()-1)
	}
	return m, nil
}

// move steps the cursor along dim, staying inside the range. Negative
// dims do not exist at this rank and are ignored.
func (m *Explorer[R]) move(dim, delta int) {
	if dim < 0 {
		return
	}
	v := m.cursor.Get(dim)
	switch {
	case delta < 0 && v > 0:
		m.cursor.Set(dim, v-1)
	case delta > 0 && v+1 < m.rng.Get(dim):
		m.cursor.Set(dim, v+1)
	}
}

func (m Explorer[R]) View() string {
	flat := nd.Linear(m.rng, m.cursor)
	back := nd.Delinearize(m.rng, flat)

	status := viz.StatusOK.Render("ok")
	if back != m.cursor {
		status = viz.StatusBad.Render("mismatch")
	}

	var sb strings.Builder
	sb.WriteString(viz.RenderGrid(m.rng, &m.cursor))
	sb.WriteString("\n\n")
	sb.WriteString(viz.KeyValues(
		[2]string{"id", m.cursor.String()},
		[2]string{"flat", strconv.FormatUint(uint64(flat), 10)},
		[2]string{"delinearized", back.String()},
		[2]string{"round trip", status},
	))
	sb.WriteString("\n\n")

	hints := "←/→ x" + strconv.Itoa(m.rng.Dims()-1)
	if m.rng.Dims() >= 2 {
		hints += "  ↑/↓ x" + strconv.Itoa(m.rng.Dims()-2)
	}
	if m.rng.Dims() == 3 {
		hints += "  [/] x0"
	}
	hints += "  n/p flat±1  g/G first/last  q quit"
	sb.WriteString(viz.KeyHint.Render(hints))
	return sb.String()
}

// Run starts the explorer on the terminal and blocks until it quits.
func Run[R nd.Rank](r nd.Range[R]) error {
	size, ok := r.SizeChecked()
	if !ok {
		return fmt.Errorf("tui: %w: range %s is too large", nd.ErrOutOfRange, r)
	}
	if size == 0 {
		return errors.New("tui: cannot explore an empty range")
	}
	if _, err := tea.NewProgram(NewExplorer(r), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
