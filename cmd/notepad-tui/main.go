package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"notepad-tui/internal/app"
	"notepad-tui/internal/config"
	"notepad-tui/internal/editor"
	"notepad-tui/internal/fs"
	"notepad-tui/internal/logging"
	"notepad-tui/internal/settings"
)

func main() {
	// Загружаем конфигурацию; при ошибке работаем с настройками по умолчанию
	cfg, cfgErr := config.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	logger, logFile, err := logging.Setup(cfg.Logging.FilePath, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		logger.Warnf("config: %v", cfgErr)
	}

	// Пользовательские настройки: отсутствующий файл дает значения по умолчанию
	settingsPath, err := settings.DefaultPath()
	if err != nil {
		logger.Warnf("settings path: %v", err)
	}
	userSettings, err := settings.Load(settingsPath)
	if err != nil {
		logger.Infof("settings: %v", err)
	}

	// Создаем контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обрабатываем сигналы для graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	watcher, err := fs.NewFileWatcher(ctx)
	if err != nil {
		logger.Warnf("file watcher disabled: %v", err)
		watcher = nil
	}

	// Создаем и запускаем приложение
	application := app.New(app.Options{
		Config:    cfg,
		Settings:  userSettings,
		Logger:    logger,
		Clipboard: &editor.SystemClipboard{},
		Watcher:   watcher,
		Files:     os.Args[1:],
	})

	program := tea.NewProgram(
		application,
		tea.WithAltScreen(),       // Используем альтернативный экран
		tea.WithMouseCellMotion(), // Поддержка мыши
	)

	// Запускаем в отдельной горутине для обработки контекста
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	_, runErr := program.Run()

	if watcher != nil {
		watcher.Close()
	}
	if settingsPath != "" {
		if err := userSettings.SaveTo(settingsPath); err != nil {
			logger.Errorf("save settings: %v", err)
		}
	}

	if runErr != nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
}
