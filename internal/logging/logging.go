package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Environment variables inherited by spawned commands.
const (
	EnvDebug       = "SPACERUN_DEBUG"
	EnvDebugFile   = "SPACERUN_DEBUG_FILE"
	EnvMaxLogFiles = "SPACERUN_MAX_LOG_FILES"
)

// DefaultMaxLogFiles bounds the log directory when no limit is given.
const DefaultMaxLogFiles = 100

// Logger is shared by all packages. It discards everything until Initialize enables debugging.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls Initialize.
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
	// Announce receives the log file location; nil keeps it silent.
	Announce io.Writer
}

// Initialize sets up Logger. Logs never go to stdout: the terminal belongs to the launcher UI.
func Initialize(opts Options) (string, error) {
	if os.Getenv(EnvDebug) == "1" {
		opts.Debug = true
	}
	if envDebugFile := os.Getenv(EnvDebugFile); envDebugFile != "" && opts.DebugFile == "" {
		opts.DebugFile = envDebugFile
	}
	if envMax := os.Getenv(EnvMaxLogFiles); envMax != "" && opts.MaxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(envMax); err == nil {
			opts.MaxLogFiles = parsed
		}
	}

	if !opts.Debug && opts.DebugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath := opts.DebugFile
	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
	} else {
		logDir, err := LogDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}

		if opts.MaxLogFiles > 0 {
			if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}

		logFilePath = filepath.Join(logDir, uuid.New().String()+".log")
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Inherited settings stay quiet so spawned commands do not repeat the banner.
	if os.Getenv(EnvDebug) == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		if opts.Announce != nil {
			fmt.Fprintf(opts.Announce, "Debug mode enabled. Logs: %s\n", logFilePath)
		}
	}

	return logFilePath, nil
}

// ExportEnv publishes the active settings so spawned commands log to the same place.
func ExportEnv(debug bool, logFilePath string, maxLogFiles int) {
	if !debug && logFilePath == "" {
		return
	}
	os.Setenv(EnvDebug, "1")
	if logFilePath != "" {
		os.Setenv(EnvDebugFile, logFilePath)
	}
	os.Setenv(EnvMaxLogFiles, strconv.Itoa(maxLogFiles))
}

// rotateLogs removes the oldest .log files so that a new one fits under maxLogFiles.
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// LogDir returns the per-OS log directory.
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "spacerun"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "spacerun", "logs"), nil
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "spacerun"), nil
	}
}
