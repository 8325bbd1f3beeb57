package config

import (
	"os"
	"strconv"
	"sync"
)

// Runtime describes where the process is running. Inside Lambda the
// function name, region and memory come from the reserved AWS variables.
type Runtime struct {
	Lambda       bool
	FunctionName string
	Region       string
	Stage        string
	MemoryMB     int
}

var (
	detected    Runtime
	runtimeOnce sync.Once
)

// CurrentRuntime detects the runtime from the process environment once
func CurrentRuntime() Runtime {
	runtimeOnce.Do(func() {
		detected = DetectRuntime(os.Getenv)
	})
	return detected
}

// DetectRuntime builds a Runtime from an environment lookup
func DetectRuntime(getenv func(string) string) Runtime {
	rt := Runtime{
		FunctionName: getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       getenv("AWS_REGION"),
		Stage:        getenv("STAGE"),
	}
	rt.Lambda = rt.FunctionName != ""
	if rt.Stage == "" {
		rt.Stage = "dev"
	}
	if mb, err := strconv.Atoi(getenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE")); err == nil {
		rt.MemoryMB = mb
	}
	return rt
}

// Mode names the deployment mode for logs
func (r Runtime) Mode() string {
	if r.Lambda {
		return "lambda"
	}
	return "server"
}

// Apply tunes cfg for the runtime. Outside Lambda cfg is left as loaded.
func (r Runtime) Apply(cfg *Config) *Config {
	if !r.Lambda {
		return cfg
	}

	// CloudWatch is easier to query with one JSON object per line
	if os.Getenv("LOG_FORMAT") == "" {
		cfg.Log.Format = "json"
	}
	if r.Stage == "prod" && cfg.Environment == "development" {
		cfg.Environment = "production"
	}
	return cfg
}

// GetOptimizedConfig loads configuration and applies the detected runtime
func GetOptimizedConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return CurrentRuntime().Apply(cfg), nil
}
