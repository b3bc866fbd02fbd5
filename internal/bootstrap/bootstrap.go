package bootstrap

import (
	"fmt"

	"tasksync/config"
	"tasksync/internal/session"
	sessionDiskv "tasksync/internal/session/repository/diskv"
	sessionRepo "tasksync/internal/session/repository/taskapi"
	sessionUC "tasksync/internal/session/usecase"
	"tasksync/internal/task"
	taskRepo "tasksync/internal/task/repository/taskapi"
	taskUC "tasksync/internal/task/usecase"
	"tasksync/pkg/log"
	"tasksync/pkg/taskapi"
)

// App is the wired client: one session manager and the task store bound to it.
type App struct {
	Config  *config.Config
	Logger  log.Logger
	Session session.UseCase
	Tasks   task.UseCase
}

// NewLogger builds the logger described by cfg.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// New wires the backend client, the credential slot, the session manager and
// the task store. The store drops its state whenever the session ends.
func New(cfg *config.Config, l log.Logger) *App {
	client := taskapi.New(cfg.Backend.URL, cfg.Backend.Timeout)

	creds := sessionDiskv.New(cfg.Credential.Path, cfg.Credential.Slot)
	sess := sessionUC.New(l, creds, sessionRepo.New(client, cfg.Backend.ProbeLimit, l))

	tasks := taskUC.New(l, taskRepo.New(client, l), sess)
	sess.Subscribe(tasks.OnSessionEvent)

	return &App{
		Config:  cfg,
		Logger:  l,
		Session: sess,
		Tasks:   tasks,
	}
}

// Load reads the configuration and wires the App from it.
func Load() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(cfg, NewLogger(cfg.Logger)), nil
}
