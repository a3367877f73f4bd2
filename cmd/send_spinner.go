package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
)

type deliveryStageMsg struct {
	stage domain.DeliveryStage
}

type deliveryDoneMsg struct {
	err error
}

// deliveryModel follows one sent command until the bridge has consumed it.
type deliveryModel struct {
	spinner spinner.Model
	command string
	file    string
	stage   domain.DeliveryStage
	started time.Time
	now     func() time.Time
	wait    tea.Cmd
	err     error
	done    bool
	styles  deliveryStyles
}

type deliveryStyles struct {
	command lipgloss.Style
	stage   lipgloss.Style
	muted   lipgloss.Style
}

func newDeliveryModel(command, file string, now func() time.Time, wait tea.Cmd) deliveryModel {
	return deliveryModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		command: command,
		file:    file,
		stage:   domain.DeliveryQueued,
		started: now(),
		now:     now,
		wait:    wait,
		styles: deliveryStyles{
			command: lipgloss.NewStyle().Bold(true),
			stage:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

func (m deliveryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m deliveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case deliveryStageMsg:
		m.stage = msg.stage
		return m, nil
	case deliveryDoneMsg:
		m.done = true
		m.err = msg.err
		if msg.err == nil {
			m.stage = domain.DeliveryConsumed
		}
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m deliveryModel) View() string {
	if m.done {
		return ""
	}

	elapsed := m.now().Sub(m.started).Truncate(100 * time.Millisecond)
	return fmt.Sprintf("%s %s %s %s",
		m.spinner.View(),
		m.styles.command.Render(m.command),
		m.styles.stage.Render(m.stageLabel()),
		m.styles.muted.Render(elapsed.String()),
	)
}

func (m deliveryModel) stageLabel() string {
	switch m.stage {
	case domain.DeliveryClaimed:
		return "claimed by the bridge, dispatching"
	case domain.DeliveryConsumed:
		return "consumed"
	default:
		return "waiting in " + filepath.Base(m.file)
	}
}

// runDeliverySpinner renders delivery progress on output while wait polls the
// command file. Stage changes reported by wait are shown as they happen.
func runDeliverySpinner(ctx context.Context, output io.Writer, command, file string, wait deliveryWaiter) error {
	var p *tea.Program
	waitCmd := func() tea.Msg {
		return deliveryDoneMsg{err: wait(ctx, func(stage domain.DeliveryStage) {
			p.Send(deliveryStageMsg{stage: stage})
		})}
	}

	p = tea.NewProgram(
		newDeliveryModel(command, file, time.Now, waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(deliveryModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
