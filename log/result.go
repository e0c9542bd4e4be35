package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oqtopus-team/entcap/common"
	"github.com/oqtopus-team/entcap/report"
	"go.uber.org/zap"
)

const resultMessage = "Result"

// ResultLog appends one JSON record per estimated circuit to results-YYYY-MM-DD.log.
type ResultLog struct {
	dl     *dailyLogger
	logger *slog.Logger
}

func NewResultLog(fileDir, runID string) (*ResultLog, error) {
	if err := common.IsDirWritable(fileDir); err != nil {
		return nil, fmt.Errorf("failed to write to %s: %w", fileDir, err)
	}
	dl := newDailyLogger(fileDir)
	return &ResultLog{
		dl:     dl,
		logger: slog.New(slog.NewJSONHandler(dl, nil)).With(slog.String("run_id", runID)),
	}, nil
}

func (r *ResultLog) Record(res report.Result) {
	r.logger.Info(
		resultMessage,
		slog.String("name", res.Name),
		slog.Int("qubits", res.Qubits),
		slog.Int("parameters", res.Parameters),
		slog.Float64("capability", res.Capability),
		slog.Float64("std_err", res.StdErr),
		slog.Int("samples", res.Samples),
		slog.Uint64("seed", res.Seed),
	)
}

func (r *ResultLog) Close() error {
	if err := r.dl.Close(); err != nil {
		zap.L().Warn("failed to close result log", zap.Error(err))
		return err
	}
	return nil
}

type dailyLogger struct {
	mu              sync.Mutex
	fileDir         string
	currentFileName string
	file            *os.File
	now             func() time.Time
}

func newDailyLogger(fileDir string) *dailyLogger {
	return &dailyLogger{
		fileDir: fileDir,
		now:     time.Now,
	}
}

func (dl *dailyLogger) Write(p []byte) (n int, err error) {
	dl.mu.Lock()
	defer dl.mu.Unlock()

	fileName := fmt.Sprintf("results-%s.log", dl.now().Format("2006-01-02"))
	if dl.file == nil || dl.currentFileName != fileName {
		if dl.file != nil {
			dl.file.Close()
		}
		var err error
		dl.file, err = os.OpenFile(filepath.Join(dl.fileDir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, err
		}
		dl.currentFileName = fileName
	}
	return dl.file.Write(p)
}

func (dl *dailyLogger) Close() error {
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file == nil {
		return nil
	}
	err := dl.file.Close()
	dl.file = nil
	return err
}
