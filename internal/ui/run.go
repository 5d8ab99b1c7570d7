package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"wireweave/internal/driver"
)

// RunLint lints files while rendering progress to out. lintFn receives a
// sink that feeds the TUI; the channel is closed once lintFn returns.
func RunLint(ctx context.Context, out io.Writer, title string, files []string, lintFn func(driver.ProgressSink) error) error {
	events := make(chan driver.Event, 64)
	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))

	errc := make(chan error, 1)
	go func() {
		defer close(events)
		errc <- lintFn(driver.ChannelSink{Ch: events})
	}()

	if _, err := program.Run(); err != nil {
		// дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
		<-errc
		return err
	}
	return <-errc
}
