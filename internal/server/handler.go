package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"prlinks/internal/adapters/browser"
	"prlinks/internal/adapters/clipboard"
	"prlinks/internal/logging"
	"prlinks/internal/ui"
)

// sessionModel wraps ui.Model to log the session lifecycle and release
// the model's view state subscription
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.Model.Close()
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session. Sessions share
// the fetch service but each owns its view state.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	if s.model.Service == nil {
		return errorModel{fmt.Errorf("server has no pull request service")}, nil
	}

	// The host clipboard and browser are not the user's; OSC 52 reaches
	// the client's terminal through the session
	clip := clipboard.NewOSC52Writer(sess)

	cfg := s.model
	cfg.Clipboard = clip
	cfg.DevMode = false
	cfg.Opener = browser.NewCopyOpener(clip)

	return &sessionModel{
			Model:     ui.NewModel(cfg),
			sessionID: sessionID,
			startTime: time.Now(),
		}, []tea.ProgramOption{
			tea.WithAltScreen(),
		}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
