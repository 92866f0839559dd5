package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

/*
	Log rotation schedule

	"0 30 * * * *"             Every hour on the half hour
	"@hourly"                  Every hour
	"@every 1h30m"             Every hour thirty

	@daily
	@midnight
*/

type Config struct {
	Console              bool          `yaml:"console"`
	Filename             string        `yaml:"filename"`
	Append               bool          `yaml:"append"`
	RotateSchedule       string        `yaml:"rotateSchedule"`
	MaxSize              int           `yaml:"maxSize"`
	MaxBackups           int           `yaml:"maxBackups"`
	MaxAge               int           `yaml:"maxAge"`
	Compress             bool          `yaml:"compress"`
	Levels               []LevelConfig `yaml:"levels"`
	UTC                  bool          `yaml:"utc"`
	DefaultPrefixWidth   int           `yaml:"defaultPrefixWidth"`
	DefaultEnableSrcLoc  bool          `yaml:"defaultEnableSourceLocation"`
	DefaultLevel         string        `yaml:"defaultLevel"`
}

type LevelConfig struct {
	Pattern string `yaml:"pattern"`
	Level   string `yaml:"level"`
}

var rotateCron = cron.New()

var defaultWriter []*logWriter

func Configure(cfg *Config) {
	for _, c := range cfg.Levels {
		levelConfig[c.Pattern] = ParseLogLevel(c.Level)
	}
	SetDefaultPrefixWidth(cfg.DefaultPrefixWidth)
	SetDefaultLevel(ParseLogLevel(cfg.DefaultLevel))
	SetDefaultEnableSourceLocation(cfg.DefaultEnableSrcLoc)

	if cfg.Filename == "." {
		defaultWriter = []*logWriter{}
	} else if cfg.Filename == "-" || cfg.Filename == "" {
		defaultWriter = []*logWriter{{Writer: os.Stdout, isTerm: true}}
	} else {
		lj := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  !cfg.UTC,
		}
		if !cfg.Append {
			lj.Rotate()
		}
		if len(cfg.RotateSchedule) > 0 {
			_, err := rotateCron.AddFunc(cfg.RotateSchedule, func() {
				lj.Rotate()
			})
			if err == nil {
				go rotateCron.Run()
			} else {
				fmt.Fprintf(os.Stderr, "ERR logger rotate schedule %s", err.Error())
			}
		}
		if cfg.Console {
			defaultWriter = []*logWriter{
				{Writer: lj, isTerm: false},
				{Writer: os.Stdout, isTerm: true},
			}
		} else {
			defaultWriter = []*logWriter{{Writer: lj, isTerm: false}}
		}
	}
}

func GetLog(name string) Log {
	return &levelLogger{
		name:         name,
		level:        GetLevel(name),
		underlying:   defaultWriter,
		prefixWidth:  prefixWidthDefault,
		enableSrcLoc: enableSourceLocationDefault,
	}
}

func NewLog(name string, writer io.Writer) Log {
	return &levelLogger{
		name:         name,
		level:        GetLevel(name),
		underlying:   []*logWriter{{Writer: writer, isTerm: false}},
		prefixWidth:  prefixWidthDefault,
		enableSrcLoc: enableSourceLocationDefault,
	}
}

type logWriter struct {
	io.Writer
	isTerm bool
}

func (l *levelLogger) Write(buff []byte) (n int, err error) {
	ts := fmt.Sprintf("%s -     ", time.Now().Format("2006/01/02 15:04:05.000"))
	for _, w := range l.underlying {
		w.Write([]byte(ts))
		n, err = w.Write(buff)
	}
	return
}
