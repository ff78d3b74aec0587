// Package main runs a two-player hotseat checkers game in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"checkers/internal/client/commands"
	"checkers/internal/client/display"
	"checkers/internal/client/local"
	"checkers/internal/config"

	"github.com/chzyer/readline"
)

func main() {
	var (
		noColor = flag.Bool("no-color", false, "Disable colored output")
		layout  = flag.String("layout", "", "Start from a 32-square layout, optionally followed by \" b\" or \" r\"")
	)
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	pal := display.Palette{}
	if cfg.Theme.UseColor && !*noColor && display.ColorEnabled(os.Stdout) {
		pal = display.NewPalette(cfg.Theme.Black, cfg.Theme.Red, cfg.Theme.Highlight, cfg.Theme.Dim)
	}

	backend := local.New()
	defer backend.Close()

	s := &commands.Session{
		Backend: backend,
		Display: display.New(os.Stdout, pal),
	}
	registry := commands.NewRegistry(s)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          pal.PromptText("checkers"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	s.Display.Info("Checkers: black moves first. Type a square number to select, again to move.")
	s.Display.Info("Type 'help' for commands, 'new' to restart.")

	if err := registry.Execute(strings.TrimSpace("new " + *layout)); err != nil {
		return
	}

	for {
		prompt := "checkers"
		if g := s.Game; g != nil && !g.GameOver {
			prompt = g.Turn
		}
		rl.SetPrompt(s.Display.Palette().PromptText(prompt))

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
