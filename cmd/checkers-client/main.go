// Package main implements an interactive terminal client for the checkers server API.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"checkers/internal/client/api"
	"checkers/internal/client/commands"
	"checkers/internal/client/display"
	"checkers/internal/config"

	"github.com/chzyer/readline"
)

func main() {
	var (
		apiURL  = flag.String("api", "", "API base URL (overrides config)")
		noColor = flag.Bool("no-color", false, "Disable colored output")
		trace   = flag.Bool("v", false, "Print each API request")
		save    = flag.Bool("save-config", false, "Write the effective config to the XDG config path and continue")
	)
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.Client.APIURL = *apiURL
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *save {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config saved to %s\n", path)
	}

	client := api.New(cfg.Client.APIURL)
	if *trace {
		client.Trace = os.Stdout
	}

	pal := display.Palette{}
	if cfg.Theme.UseColor && !*noColor && display.ColorEnabled(os.Stdout) {
		pal = display.NewPalette(cfg.Theme.Black, cfg.Theme.Red, cfg.Theme.Highlight, cfg.Theme.Dim)
	}

	s := &commands.Session{
		Backend: client,
		Display: display.New(os.Stdout, pal),
	}
	registry := commands.NewRegistry(s)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          pal.PromptText("checkers"),
		HistoryFile:     historyFile(".checkers_client_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	s.Display.Info("Checkers Client")
	s.Display.Info("API: %s", client.BaseURL)
	fmt.Printf("Type 'help' for commands\n\n")

	for {
		rl.SetPrompt(s.Display.Palette().PromptText(buildPrompt(s)))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		if err := registry.Execute(strings.TrimSpace(line)); errors.Is(err, commands.ErrExit) {
			break
		}
	}
}

func buildPrompt(s *commands.Session) string {
	prompt := "checkers"
	if s.GameID == "" {
		return prompt
	}

	id := s.GameID
	if len(id) > 8 {
		id = id[:8]
	}
	prompt += " [" + id + "]"

	if g := s.Game; g != nil {
		if g.GameOver {
			prompt += " " + g.State
		} else {
			prompt += " " + g.Turn
		}
	}
	return prompt
}

// historyFile places readline history in the user's home directory when known
func historyFile(name string) string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, name)
	}
	return name
}
