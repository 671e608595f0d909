package tmux

import (
	"fmt"
	"os"
	"strings"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// Manager handles tmux operations
type Manager struct {
	tmux *gotmux.Tmux
}

// New creates a tmux manager
func New() (*Manager, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, err
	}
	return &Manager{tmux: t}, nil
}

// IsInsideTmux checks if we're running inside tmux
func IsInsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentSession returns the name of the session the client is attached to
func (m *Manager) CurrentSession() (string, error) {
	out, err := m.tmux.Command("display-message", "-p", "#S")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "", fmt.Errorf("could not determine current tmux session")
	}
	return name, nil
}

// OpenInWindow runs command in a new window of the current session,
// starting in dir, and selects it. An existing window with the same name is
// reused.
func (m *Manager) OpenInWindow(windowName, dir, command string) error {
	sessionName, err := m.CurrentSession()
	if err != nil {
		return err
	}

	sess, err := m.tmux.GetSessionByName(sessionName)
	if err != nil {
		return err
	}

	w, err := sess.GetWindowByName(windowName)
	if err != nil || w == nil {
		w, err = sess.NewWindow(&gotmux.NewWindowOptions{
			WindowName:     windowName,
			StartDirectory: dir,
		})
		if err != nil {
			return fmt.Errorf("creating window %s: %w", windowName, err)
		}
	}

	wrapped := fmt.Sprintf("cd %s && %s", ShellQuote(dir), command)
	if err := m.RespawnWindow(sessionName, windowName, wrapped); err != nil {
		return err
	}
	return w.Select()
}

// RespawnWindow kills the current process in a window and runs a new command
// This runs the command directly without visible typing
func (m *Manager) RespawnWindow(sessionName, windowName, command string) error {
	target := Target(sessionName, windowName)
	_, err := m.tmux.Command("respawn-pane", "-k", "-t", target, command)
	return err
}

// Target formats a session:window target for tmux commands
func Target(sessionName, windowName string) string {
	return fmt.Sprintf("%s:%s", sessionName, windowName)
}

// EditorCommand builds the shell command that opens file in editor
func EditorCommand(editor, file string) string {
	return fmt.Sprintf("%s %s", editor, ShellQuote(file))
}

// ShellQuote wraps s in single quotes so sh passes it through literally
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
