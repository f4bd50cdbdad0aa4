package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init настраивает логгер по переменным окружения LOG_LEVEL и LOG_FORMAT.
// Используется в тестах и как значение по умолчанию до разбора конфига.
func Init() {
	Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Setup пересоздаёт глобальный логгер.
// level - уровень logrus (по умолчанию "info"), format - "json" или "text".
func Setup(level, format string, out io.Writer) {
	Log = logrus.New()

	// 1. Уровень. Нераспознанное значение даёт info.
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// 2. Форматтер: json для сбора логов, text для разработки.
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать.
	Log.SetOutput(out)
}
