package utils

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	LogToFile  bool
	Filename   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	LogLevel   string
	IncludeSrc bool
}

// InitLogger configura el logger global (slog, salida JSON). Con
// LogToFile activo escribe a stdout y a un archivo con rotación.
func InitLogger(cfg LoggerConfig) {
	opts := &slog.HandlerOptions{
		Level:     logLevelFromString(cfg.LogLevel),
		AddSource: cfg.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}

	var w io.Writer = os.Stdout
	if cfg.LogToFile && cfg.Filename != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		})
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
