package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andareed/siftly-welllog/analysis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	sessionFlag := flag.String("session", "", "session file to restore once the log data loads")
	configFlag := flag.String("config", "", "config file (default "+defaultConfigPath()+")")
	analysisFlag := flag.String("analysis-url", "", "analysis service base URL")
	storeFlag := flag.String("session-store", "", "where sessions are saved: file or clipboard")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("%s %s: started", appName, Version)

	configPath, explicit := *configFlag, *configFlag != ""
	if !explicit {
		configPath = defaultConfigPath()
	}
	cfg, err := loadConfig(configPath, explicit)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *analysisFlag != "" {
		cfg.AnalysisURL = *analysisFlag
	}
	if *storeFlag != "" {
		cfg.SessionStore = *storeFlag
	}
	if len(cfg.LithologyPalette) > 0 {
		lithology.Palette = cfg.LithologyPalette
	}

	store, err := session.Select(cfg.SessionStore, *sessionFlag, os.Getenv)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: sfwell [--debug debug.log] [--session s.json] [file.json|file.csv]")
		os.Exit(1)
	}

	m := newModel(cfg, analysis.New(cfg.AnalysisURL), store)
	m.sessionPath = *sessionFlag
	if len(args) == 1 {
		m.InitialPath = args[0]
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
