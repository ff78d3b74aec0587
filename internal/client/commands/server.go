package commands

import (
	"fmt"
	"strings"
	"time"

	"checkers/internal/client/api"
)

func (r *Registry) registerServerCommands(c *api.Client) {
	r.Register(&Command{
		Name:        "health",
		ShortName:   ".",
		Description: "Check server health",
		Usage:       "health",
		Handler: func(s *Session, args []string) error {
			return healthHandler(s, c)
		},
	})

	r.Register(&Command{
		Name:        "url",
		ShortName:   "/",
		Description: "Show or set API base URL",
		Usage:       "url [apiUrl]",
		Handler: func(s *Session, args []string) error {
			return urlHandler(s, c, args)
		},
	})
}

func healthHandler(s *Session, c *api.Client) error {
	resp, err := c.Health()
	if err != nil {
		return err
	}

	s.Display.Info("Server health: %v", resp["status"])
	if ts, ok := resp["time"].(float64); ok {
		s.Display.Info("  Time:  %s", time.Unix(int64(ts), 0).Format("2006-01-02 15:04:05"))
	}
	if games, ok := resp["games"].(float64); ok {
		s.Display.Info("  Games: %d", int(games))
	}
	return nil
}

func urlHandler(s *Session, c *api.Client, args []string) error {
	if len(args) == 0 {
		s.Display.Info("Current API URL: %s", c.BaseURL)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("usage: url [apiUrl]")
	}

	url := args[0]
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	c.SetBaseURL(url)

	// Game IDs are local to a server
	s.GameID = ""
	s.Game = nil
	s.Display.Info("API URL set to: %s", c.BaseURL)
	return nil
}
