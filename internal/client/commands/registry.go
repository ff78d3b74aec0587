package commands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"checkers/internal/client/api"
	"checkers/internal/client/display"
	"checkers/internal/core"
)

// ErrExit is returned by Execute when the user asks to leave
var ErrExit = errors.New("exit requested")

// Backend is the game API, served over HTTP or in-process
type Backend interface {
	CreateGame(req core.CreateGameRequest) (*core.GameResponse, error)
	GetGame(gameID string) (*core.GameResponse, error)
	WaitGame(gameID string, version int) (*core.GameResponse, error)
	SubmitAction(gameID string, position int) (*core.ActionResponse, error)
	GetBoard(gameID string) (*core.BoardResponse, error)
	DeleteGame(gameID string) error
}

// Session is the client state shared by all commands
type Session struct {
	Backend Backend
	Display *display.Display
	GameID  string
	Game    *core.GameResponse // last known state of GameID
}

func (s *Session) requireGame() (string, error) {
	if s.GameID == "" {
		return "", fmt.Errorf("no current game, use 'new' or 'join <gameId>'")
	}
	return s.GameID, nil
}

// Command defines a client command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(*Session, []string) error
}

// Registry manages command registration and execution
type Registry struct {
	session  *Session
	commands map[string]*Command
	names    []string
}

func NewRegistry(session *Session) *Registry {
	r := &Registry{
		session:  session,
		commands: make(map[string]*Command),
	}

	r.registerGameCommands()
	if c, ok := session.Backend.(*api.Client); ok {
		r.registerServerCommands(c)
	}

	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     r.helpHandler,
	})

	r.Register(&Command{
		Name:        "exit",
		ShortName:   "x",
		Description: "Exit the client",
		Usage:       "exit",
		Handler: func(*Session, []string) error {
			return ErrExit
		},
	})

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.names = append(r.names, cmd.Name)
}

// Execute runs one input line. A bare position number is shorthand for
// "click <position>". Command errors are printed; only ErrExit is returned.
func (r *Registry) Execute(input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	if _, err := strconv.Atoi(parts[0]); err == nil {
		parts = append([]string{"click"}, parts...)
	}

	cmd, exists := r.commands[parts[0]]
	if !exists {
		r.session.Display.Error(fmt.Errorf("unknown command: %s (type 'help' for available commands)", parts[0]))
		return nil
	}

	if err := cmd.Handler(r.session, parts[1:]); err != nil {
		if errors.Is(err, ErrExit) {
			return err
		}
		r.session.Display.Error(err)
	}
	return nil
}

func (r *Registry) helpHandler(s *Session, args []string) error {
	if len(args) > 0 {
		cmd, exists := r.commands[args[0]]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		s.Display.Info("%s - %s", cmd.Name, cmd.Description)
		s.Display.Info("Usage: %s", cmd.Usage)
		return nil
	}

	names := append([]string(nil), r.names...)
	sort.Strings(names)

	s.Display.Info("Available commands:")
	for _, name := range names {
		cmd := r.commands[name]
		short := ""
		if cmd.ShortName != "" {
			short = "[" + cmd.ShortName + "]"
		}
		s.Display.Info("  %-4s %-8s %s", short, cmd.Name, cmd.Description)
	}
	s.Display.Info("Type a position number (1-32) to click that square")
	return nil
}
