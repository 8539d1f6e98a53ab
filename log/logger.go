package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)
import l "log"

type Level int
type Loggerf func(string, ...interface{})
type Loggerln func(...interface{})

const (
	FatalLevel = Level(iota)
	Error
	Info
	Debug
)

var levelNames = map[Level]string{
	FatalLevel: "fatal",
	Error:      "error",
	Info:       "info",
	Debug:      "debug",
}

func (lv Level) String() string {
	if s, ok := levelNames[lv]; ok {
		return s
	}
	return fmt.Sprintf("level(%d)", int(lv))
}

// ParseLevel maps a level name (case-insensitive) to its Level.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for lv, name := range levelNames {
		if name == s {
			return lv, nil
		}
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

var (
	level  Level = Info
	logger *l.Logger
	exit         = os.Exit

	Debugf  = GenLoggerf(Debug)
	Debugln = GenLoggerln(Debug)
	Printf  = GenLoggerf(Debug)
	Println = GenLoggerln(Debug)
	Infof   = GenLoggerf(Info)
	Infoln  = GenLoggerln(Info)
	Errorf  = GenLoggerf(Error)
	Errorln = GenLoggerln(Error)
	Fatalf  = GenLoggerf(FatalLevel)
	Fatal   = GenLoggerln(FatalLevel)
)

func init() {
	logger = l.New(os.Stderr, "", l.LstdFlags|l.Lshortfile)
}

func SetLevel(lv Level) {
	level = lv
}

func GetLevel() Level {
	return level
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Enabled reports whether messages at lv are currently written.
func Enabled(lv Level) bool {
	return level >= lv
}

func GenLoggerf(lv Level) Loggerf {
	n := lv
	return func(format string, v ...interface{}) {
		if level >= n {
			logger.Output(2, "["+n.String()+"] "+fmt.Sprintf(format, v...))
		}
		if n == FatalLevel {
			exit(1)
		}
	}
}

func GenLoggerln(lv Level) Loggerln {
	n := lv
	return func(v ...interface{}) {
		if level >= n {
			logger.Output(2, "["+n.String()+"] "+fmt.Sprint(v...))
		}
		if n == FatalLevel {
			exit(1)
		}
	}
}
