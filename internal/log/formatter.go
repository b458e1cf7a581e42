package log

import (
	"github.com/sirupsen/logrus"
)

// Formatter is the text formatter used for stderr and text file logs
type Formatter struct {
	logrus.TextFormatter
}

func newFormatter(disableColors bool) *Formatter {
	return &Formatter{
		TextFormatter: logrus.TextFormatter{
			DisableColors:   disableColors,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		},
	}
}
