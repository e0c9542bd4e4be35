package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

func ReadFile(filepath string) (string, error) {
	bytes, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// NormalizeName folds case and drops "_", "-" and blanks so that "CNOT", "c-not"
// and "cnot" compare equal.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func ContainsName(s string, list []string) bool {
	s = NormalizeName(s)
	for _, c := range list {
		if s == NormalizeName(c) {
			return true
		}
	}
	return false
}

func IsDirWritable(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dirPath)
	}
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dirPath)
	}

	tempFile, err := os.CreateTemp(dirPath, "test-write-*.tmp")
	if err != nil {
		return fmt.Errorf("write permission denied for directory: %s", dirPath)
	}
	fileName := tempFile.Name()
	tempFile.Close()

	if err := os.Remove(fileName); err != nil {
		return fmt.Errorf("failed to remove temporary file: %s", err)
	}

	return nil
}

func ReadSettingsFile(settingsPath string) (string, error) {
	s, err := ReadFile(settingsPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read settings file/path:%s/reason:%s",
			settingsPath, err))
		if absolutePath, err := filepath.Abs(settingsPath); err != nil {
			zap.L().Error(fmt.Sprintf("failed to get absolute path of %s/reason:%s",
				settingsPath, err))
		} else {
			zap.L().Debug(fmt.Sprintf("absolute path:%s", absolutePath))
		}
		return "", err
	}
	return s, nil
}
