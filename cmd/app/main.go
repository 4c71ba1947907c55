package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ganttui/internal/config"
	"ganttui/internal/database"
	"ganttui/internal/tui"
	"ganttui/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	// 1. Initialize Database
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)

	// Bubbletea owns the terminal, so the default logger goes to a file.
	logFile, err := os.OpenFile(filepath.Join(dataRoot, "ganttui.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	ctx := context.Background()
	store, err := database.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	projectID, err := store.EnsureDefaultProject(ctx)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	// "ganttui import plan.yaml" loads a YAML export and exits.
	if len(os.Args) > 2 && os.Args[1] == "import" {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		n, err := tui.ImportProject(ctx, store, projectID, data)
		if err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d tasks from %s\n", n, os.Args[2])
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ganttui needs an interactive terminal")
		os.Exit(1)
	}

	// 2. Initialize the Main Model
	model := tui.NewMainModel(store, projectID)

	// 3. Enable Mouse Support & Start Program
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
