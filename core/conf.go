package core

type Conf struct {
	Version            string `long:"version" description:"version of entcap" env:"ENTCAP_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"ENTCAP_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard error" env:"ENTCAP_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"ENTCAP_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./logs" env:"ENTCAP_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"ENTCAP_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"ENTCAP_LOG_ROTATION_MAX_DAYS"`
	ResultsDir         string `long:"results-dir" description:"directory of the daily JSON-lines result log, disabled when empty" env:"ENTCAP_RESULTS_DIR"`
	SettingPath        string `long:"setting-path" description:"setting file path, defaults are used when empty" env:"ENTCAP_SETTING_PATH"`
	CatalogPath        string `long:"catalog-path" description:"circuit catalog file path, the built-in catalog is used when empty" env:"ENTCAP_CATALOG_PATH"`
	Samples            int    `long:"samples" description:"Monte Carlo samples per circuit, overrides the setting file" env:"ENTCAP_SAMPLES"`
	Workers            int    `long:"workers" description:"number of worker goroutines, overrides the setting file" env:"ENTCAP_WORKERS"`
	BatchSize          int    `long:"batch-size" description:"trials per random stream, overrides the setting file" env:"ENTCAP_BATCH_SIZE"`
	Seed               uint64 `long:"seed" description:"random seed, a fresh seed is drawn when zero" env:"ENTCAP_SEED"`
	Format             string `long:"format" description:"output format" choice:"text" choice:"json" env:"ENTCAP_FORMAT"`
}
