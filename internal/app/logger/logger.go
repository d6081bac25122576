package logger

import (
	"time"

	"ussurochki/internal/app/config"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup настраивает logrus: уровень, формат и ротацию файла (если задан путь)
func Setup(conf config.LogConfig) {
	if conf.Path != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	switch conf.Level {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		PadLevelText:    true,
		DisableColors:   true,
		TimestampFormat: time.DateTime,
	})
}
