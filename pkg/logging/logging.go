package logging

import (
	"go.uber.org/zap"
)

// Setup builds the process-wide zap logger and installs it as the global
// logger. Debug mode switches to the development config with console output
// and DEBUG-level verbosity. Callers hold on to the returned logger; the
// global install only serves code reaching for zap.L().
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewExample(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
