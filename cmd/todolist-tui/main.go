// Package main is the entry point for the todo list TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todolist-tui/internal/api"
	"github.com/hy4ri/todolist-tui/internal/config"
	"github.com/hy4ri/todolist-tui/internal/logging"
	"github.com/hy4ri/todolist-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `todolist-tui - Terminal client for a remote todo list

USAGE:
    todolist-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --api-url URL       Use this todo API instead of the configured one
    --log-file PATH     Write logs to PATH

CONFIGURATION:
    Config file: ~/.config/todolist-tui/config.yaml (or config.toml)
    Environment: TODOLIST_API_URL overrides api.base_url

KEYBINDINGS:
    Form:
        Tab/Shift+Tab   Next/previous field
        Enter           Add item
        Esc             Go to the list

    List:
        j/k             Move down/up
        gg/G            Go to top/bottom
        e               Edit item (Enter updates, Esc cancels)
        dd              Delete item (asks for confirmation)
        yy              Copy item to clipboard
        a               Add item
        r               Reload
        ?               Show help
        q               Quit
`

const configTemplate = `# todolist-tui configuration
# Location: ~/.config/todolist-tui/config.yaml

api:
  # Root of the todo collection; the client calls {base_url}/todos
  base_url: "https://todo-backend-awza.onrender.com"

  # Per-request timeout, e.g. "10s". Empty or 0 means no timeout.
  # timeout: 10s

ui:
  # How long success messages stay on screen
  feedback_timeout: 3s

  # Also show success messages as desktop notifications
  notifications: false

log:
  # Defaults to ~/.config/todolist-tui/todolist-tui.log
  # file: ""
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		apiURL      string
		logFile     string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&apiURL, "api-url", "", "Todo API base URL")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("todolist-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config) error {
	logPath := cfg.Log.File
	if logPath == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return err
		}
		logPath = p
	}

	logger, closer, err := logging.Open(logging.Options{
		Path:   logPath,
		Level:  cfg.Log.Level,
		Prefix: "todolist",
	})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	logger.Info("starting", "version", version, "api", cfg.API.BaseURL)

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger.WithPrefix("api")),
	)

	app := tui.NewApp(client, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("exiting")
	return nil
}

