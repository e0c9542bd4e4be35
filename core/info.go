package core

import (
	"fmt"

	"go.uber.org/zap"
)

// NonSecretConf is the part of Conf that is safe to print.
type NonSecretConf struct {
	DevMode            bool
	EnableFileLog      bool
	LogDir             string
	LogLevel           string
	LogRotationMaxDays int
	ResultsDir         string
	SettingPath        string
	CatalogPath        string
}

type Info struct {
	Version string
	Conf    *NonSecretConf
}

var CurrentInfo *Info

func SetInfo(c *Conf) *Info {
	CurrentInfo = &Info{
		Version: Version,
		Conf: &NonSecretConf{
			DevMode:            c.DevMode,
			EnableFileLog:      c.EnableFileLog,
			LogDir:             c.LogDir,
			LogLevel:           c.LogLevel,
			LogRotationMaxDays: c.LogRotationMaxDays,
			ResultsDir:         c.ResultsDir,
			SettingPath:        c.SettingPath,
			CatalogPath:        c.CatalogPath,
		},
	}
	zap.L().Debug(fmt.Sprintf("Info is %+v", *CurrentInfo.Conf))
	return CurrentInfo
}
