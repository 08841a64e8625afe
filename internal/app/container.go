// Package app assembles the daybook dependency graph: storage, session, and
// every command and query handler the CLI uses.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	journalApp "github.com/daybook-dev/daybook/internal/journal/application"
	journalCommands "github.com/daybook-dev/daybook/internal/journal/application/commands"
	journalQueries "github.com/daybook-dev/daybook/internal/journal/application/queries"
	journalDomain "github.com/daybook-dev/daybook/internal/journal/domain"
	"github.com/daybook-dev/daybook/internal/journal/infrastructure/capture"
	journalPersistence "github.com/daybook-dev/daybook/internal/journal/infrastructure/persistence"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/daybook-dev/daybook/internal/productivity/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	sharedDomain "github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/daybook-dev/daybook/internal/shared/infrastructure/eventbus"
	sharedPersistence "github.com/daybook-dev/daybook/internal/shared/infrastructure/persistence"
	"github.com/daybook-dev/daybook/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config config.Config
	Logger *slog.Logger

	DB   *sql.DB
	Lock *sharedPersistence.InstanceLock
	Bus  *eventbus.Bus

	Session        *journalApp.Session
	PriorityEngine *services.PriorityEngine

	// Journal command handlers
	CaptureNoteHandler *journalCommands.CaptureNoteHandler
	AttachFileHandler  *journalCommands.AttachFileHandler
	DeleteNoteHandler  *journalCommands.DeleteNoteHandler
	PromoteNoteHandler *journalCommands.PromoteNoteHandler
	RotateDayHandler   *journalCommands.RotateDayHandler
	OpenDayHandler     *journalCommands.OpenDayHandler
	ClearDayHandler    *journalCommands.ClearDayHandler

	// Journal query handlers
	GetDayHandler    *journalQueries.GetDayHandler
	ListDaysHandler  *journalQueries.ListDaysHandler
	ListNotesHandler *journalQueries.ListNotesHandler

	// Task command handlers
	AddTaskHandler      *commands.AddTaskHandler
	UpdateTaskHandler   *commands.UpdateTaskHandler
	SetPriorityHandler  *commands.SetPriorityHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	ReopenTaskHandler   *commands.ReopenTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler
	SubtaskHandler      *commands.SubtaskHandler

	// Task query handlers
	ListTasksHandler *queries.ListTasksHandler
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lock, err := sharedPersistence.AcquireInstanceLock(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	db, err := sharedPersistence.OpenSQLite(ctx, cfg.StatePath)
	if err != nil {
		lock.Release()
		return nil, err
	}

	stateRepo, err := journalPersistence.NewSQLiteStateRepository(ctx, db)
	if err != nil {
		db.Close()
		lock.Release()
		return nil, fmt.Errorf("failed to initialize state repository: %w", err)
	}
	blobStore, err := journalPersistence.NewSQLiteBlobStore(ctx, db)
	if err != nil {
		db.Close()
		lock.Release()
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	bus := eventbus.New(logger)
	bus.Subscribe("task.*", func(_ context.Context, event sharedDomain.DomainEvent) error {
		logger.Debug("task event", "routing_key", event.RoutingKey(), "aggregate_id", event.AggregateID())
		return nil
	})
	bus.Subscribe("note.*", func(_ context.Context, event sharedDomain.DomainEvent) error {
		logger.Debug("note event", "routing_key", event.RoutingKey(), "aggregate_id", event.AggregateID())
		return nil
	})

	session, err := journalApp.NewSession(ctx, stateRepo, blobStore, bus, logger, journalApp.SessionOptions{
		FlushQuietPeriod: cfg.FlushQuietPeriod,
		PomodoroWork:     cfg.Pomodoro.WorkDuration,
		PomodoroBreak:    cfg.Pomodoro.BreakDuration,
	})
	if err != nil {
		db.Close()
		lock.Release()
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	engine := services.NewPriorityEngine(services.DefaultPriorityEngineConfig(), nil)
	recorderFor := func(source string) journalDomain.Recorder {
		return capture.NewFileRecorder(source)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Lock:   lock,
		Bus:    bus,

		Session:        session,
		PriorityEngine: engine,

		CaptureNoteHandler: journalCommands.NewCaptureNoteHandler(session, recorderFor),
		AttachFileHandler:  journalCommands.NewAttachFileHandler(session),
		DeleteNoteHandler:  journalCommands.NewDeleteNoteHandler(session),
		PromoteNoteHandler: journalCommands.NewPromoteNoteHandler(session, engine),
		RotateDayHandler:   journalCommands.NewRotateDayHandler(session),
		OpenDayHandler:     journalCommands.NewOpenDayHandler(session),
		ClearDayHandler:    journalCommands.NewClearDayHandler(session),

		GetDayHandler:    journalQueries.NewGetDayHandler(session),
		ListDaysHandler:  journalQueries.NewListDaysHandler(session),
		ListNotesHandler: journalQueries.NewListNotesHandler(session),

		AddTaskHandler:      commands.NewAddTaskHandler(session, engine),
		UpdateTaskHandler:   commands.NewUpdateTaskHandler(session, engine),
		SetPriorityHandler:  commands.NewSetPriorityHandler(session),
		CompleteTaskHandler: commands.NewCompleteTaskHandler(session, engine),
		ReopenTaskHandler:   commands.NewReopenTaskHandler(session),
		DeleteTaskHandler:   commands.NewDeleteTaskHandler(session),
		SubtaskHandler:      commands.NewSubtaskHandler(session),

		ListTasksHandler: queries.NewListTasksHandler(session),
	}
	return c, nil
}

// Close flushes pending state and releases every resource.
func (c *Container) Close(ctx context.Context) error {
	var firstErr error
	if err := c.Session.Close(ctx); err != nil {
		firstErr = err
		c.Logger.Error("failed to flush state on shutdown", "error", err)
	}
	if err := c.DB.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := c.Lock.Release(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
