package config

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/juancwu/quiz-cli/shared/env"
)

const (
	PRODUCTION_ENV = "production"

	DEV_PYTHON_API_URL  = "http://localhost:5001"
	PROD_PYTHON_API_URL = "http://quiz-app-python-env.eba-jeuj3kxz.ap-northeast-2.elasticbeanstalk.com"
)

// logger writes to stdout so the resolved url shows up next to the command output.
var logger = log.NewWithOptions(os.Stdout, log.Options{Prefix: "config"})

var (
	pythonAPIURL     string
	pythonAPIURLOnce sync.Once

	lookupNodeEnv = func() string { return env.Values().NODE_ENV }
)

// ResolvePythonAPIURL returns the Python API base url for the given NODE_ENV value.
// Only an exact "production" selects the production url.
func ResolvePythonAPIURL(nodeEnv string) string {
	if nodeEnv != PRODUCTION_ENV {
		return DEV_PYTHON_API_URL
	}
	return PROD_PYTHON_API_URL
}

// GetPythonAPIURL returns the Python API base url based on the running environment.
// For precise control, change the env NODE_ENV.
// The first call logs the resolved url and the raw NODE_ENV, later calls are silent.
func GetPythonAPIURL() string {
	pythonAPIURLOnce.Do(func() {
		nodeEnv := lookupNodeEnv()
		pythonAPIURL = ResolvePythonAPIURL(nodeEnv)
		logger.Info("Python API url", "url", pythonAPIURL)
		logger.Info("Running environment", "NODE_ENV", nodeEnv)
	})
	return pythonAPIURL
}
