package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "checkers/config.json"
)

// MaxLongPollSeconds keeps a server long poll shorter than the HTTP client's
// request timeout (api.RequestTimeout).
const MaxLongPollSeconds = 30

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	DevMode         bool   `json:"dev"`
	RateLimit       int    `json:"rate_limit"`   // requests per second per client
	QueueBuffer     int    `json:"queue_buffer"` // pending commands before rejecting
	LongPollSeconds int    `json:"long_poll_seconds"`
}

type ClientConfig struct {
	APIURL string `json:"api_url"`
}

// Theme holds 256-color palette indexes for the terminal board
type Theme struct {
	UseColor  bool `json:"use_color"`
	Black     int  `json:"black"`
	Red       int  `json:"red"`
	Highlight int  `json:"highlight"`
	Dim       int  `json:"dim"`
}

type Config struct {
	Server ServerConfig `json:"server"`
	Client ClientConfig `json:"client"`
	Theme  Theme        `json:"theme"`
}

// InitConfig starts from DefaultConfig and overlays the first
// checkers/config.json found in the XDG config directories
func InitConfig() (*Config, error) {
	config := DefaultConfig
	if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads a config file on top of DefaultConfig
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &InvalidConfig{fmt.Sprintf("server port %d out of range", c.Server.Port)}
	}
	if c.Server.RateLimit < 1 {
		return &InvalidConfig{"rate_limit must be positive"}
	}
	if c.Server.QueueBuffer < 1 {
		return &InvalidConfig{"queue_buffer must be positive"}
	}
	if c.Server.LongPollSeconds < 1 || c.Server.LongPollSeconds > MaxLongPollSeconds {
		return &InvalidConfig{fmt.Sprintf("long_poll_seconds must be between 1 and %d", MaxLongPollSeconds)}
	}

	u, err := url.Parse(c.Client.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &InvalidConfig{fmt.Sprintf("api_url %q is not an http(s) URL", c.Client.APIURL)}
	}

	for _, v := range []int{c.Theme.Black, c.Theme.Red, c.Theme.Highlight, c.Theme.Dim} {
		if v < 0 || v > 255 {
			return &InvalidConfig{"theme colors must be 256-color indexes (0-255)"}
		}
	}
	return nil
}

// Addr returns the server listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func (c *Config) LongPollTimeout() time.Duration {
	return time.Duration(c.Server.LongPollSeconds) * time.Second
}

// Save writes the config to the user's XDG config directory
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(absPath, jsonData, 0664); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return absPath, nil
}

func readCfgFile(filePath string, c *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", filePath, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
