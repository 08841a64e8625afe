package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/daybook-dev/daybook/adapter/cli"
	"github.com/daybook-dev/daybook/adapter/cli/day"
	"github.com/daybook-dev/daybook/adapter/cli/note"
	"github.com/daybook-dev/daybook/adapter/cli/pomo"
	"github.com/daybook-dev/daybook/adapter/cli/task"
	"github.com/daybook-dev/daybook/internal/app"
	sharedPersistence "github.com/daybook-dev/daybook/internal/shared/infrastructure/persistence"
	"github.com/daybook-dev/daybook/pkg/config"
	"github.com/daybook-dev/daybook/pkg/observability"
)

func main() {
	os.Exit(run())
}

// run exists so deferred cleanup (the state flush) happens before exit.
func run() int {
	// Config and logging are needed before cobra parses flags, so the
	// global flags are pre-scanned here.
	if hasFlag(os.Args[1:], "-v", "--verbose") {
		os.Setenv("DAYBOOK_LOG_LEVEL", "debug")
	}
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfgPath := flagValue(os.Args[1:], "-c", "--config")
	if cfgPath == "" {
		cfgPath = os.Getenv("DAYBOOK_CONFIG")
	}
	if cfgPath == "" {
		cfgPath = filepath.Join(config.DefaultDir(), config.DefaultConfigFileName)
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "path", cfgPath, "error", err)
		return 1
	}
	if os.Getenv("DAYBOOK_LOG_LEVEL") == "" && cfg.LogLevel != "" {
		logCfg := observability.DefaultLogConfig()
		logCfg.Level = observability.LogLevel(cfg.LogLevel)
		logger = observability.NewLogger(logCfg)
	}

	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, sharedPersistence.ErrAlreadyLocked) {
			fmt.Fprintln(os.Stderr, "another daybook instance is already running")
			return 1
		}
		logger.Error("failed to initialize", "error", err)
		return 1
	}
	defer func() {
		if err := container.Close(context.Background()); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	cli.SetApp(&cli.App{
		Session:     container.Session,
		DefaultView: cfg.DefaultView,

		CaptureNoteHandler: container.CaptureNoteHandler,
		AttachFileHandler:  container.AttachFileHandler,
		DeleteNoteHandler:  container.DeleteNoteHandler,
		PromoteNoteHandler: container.PromoteNoteHandler,
		RotateDayHandler:   container.RotateDayHandler,
		OpenDayHandler:     container.OpenDayHandler,
		ClearDayHandler:    container.ClearDayHandler,

		GetDayHandler:    container.GetDayHandler,
		ListDaysHandler:  container.ListDaysHandler,
		ListNotesHandler: container.ListNotesHandler,

		AddTaskHandler:      container.AddTaskHandler,
		UpdateTaskHandler:   container.UpdateTaskHandler,
		SetPriorityHandler:  container.SetPriorityHandler,
		CompleteTaskHandler: container.CompleteTaskHandler,
		ReopenTaskHandler:   container.ReopenTaskHandler,
		DeleteTaskHandler:   container.DeleteTaskHandler,
		SubtaskHandler:      container.SubtaskHandler,

		ListTasksHandler: container.ListTasksHandler,
	})

	cli.AddCommand(note.Cmd)
	cli.AddCommand(task.Cmd)
	cli.AddCommand(day.Cmd)
	cli.AddCommand(pomo.Cmd)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// flagValue scans args for a value flag ahead of cobra's own parsing.
func flagValue(args []string, names ...string) string {
	for i, arg := range args {
		for _, name := range names {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"=")
			}
		}
	}
	return ""
}

func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}
