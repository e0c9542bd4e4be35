package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotate "github.com/lestrrat-go/file-rotatelogs"
	"github.com/oqtopus-team/entcap/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFilePattern = "entcap-%Y-%m-%d.log"

func level(l string) zap.AtomicLevel {
	switch l {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// NewZapLogger tees a rotating file sink and standard error as conf asks.
// Standard output is left to the report.
func NewZapLogger(conf *core.Conf) (*zap.Logger, error) {
	var encoder zapcore.Encoder
	if conf.DevMode {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		c := zap.NewProductionEncoderConfig()
		c.EncodeTime = zapcore.ISO8601TimeEncoder
		c.TimeKey = "timestamp"
		encoder = zapcore.NewJSONEncoder(c)
	}
	lv := level(conf.LogLevel)

	cores := []zapcore.Core{}
	if conf.EnableFileLog {
		rotator, err := makeRotator(conf.LogDir, conf.LogRotationMaxDays)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), lv))
	}
	if !conf.DisableStdoutLog {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lv))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func makeRotator(dirPath string, rotationMaxDays int) (*rotate.RotateLogs, error) {
	info, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("directory:%s is not found", dirPath)
	}
	if !info.IsDir() || info.Mode().Perm()&(1<<uint(7)) == 0 {
		return nil, fmt.Errorf("%s is not a writable directory", dirPath)
	}
	return rotate.New(
		filepath.Join(dirPath, logFilePattern),
		rotate.WithMaxAge(time.Duration(rotationMaxDays)*24*time.Hour),
		rotate.WithRotationTime(time.Hour))
}

// SetZap installs the logger built from conf as the global one.
func SetZap(conf *core.Conf) (*zap.Logger, error) {
	logger, err := NewZapLogger(conf)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	zap.L().Debug(fmt.Sprintf("DevMode is %t", conf.DevMode))
	if conf.EnableFileLog {
		zap.L().Debug(fmt.Sprintf("Log rotation max days is %d", conf.LogRotationMaxDays))
	}
	return logger, nil
}
