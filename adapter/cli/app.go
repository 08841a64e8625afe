package cli

import (
	journalApp "github.com/daybook-dev/daybook/internal/journal/application"
	journalCommands "github.com/daybook-dev/daybook/internal/journal/application/commands"
	journalQueries "github.com/daybook-dev/daybook/internal/journal/application/queries"
	"github.com/daybook-dev/daybook/internal/productivity/application/commands"
	"github.com/daybook-dev/daybook/internal/productivity/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	Session *journalApp.Session

	// DefaultView is the task view used when --view is not given.
	DefaultView string

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

var app *App

// SetApp sets the CLI application.
func SetApp(a *App) {
	app = a
}

// GetApp returns the CLI application.
func GetApp() *App {
	return app
}
