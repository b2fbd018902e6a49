package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

// GetServerlessConfig reads the serverless configuration from the Lambda environment
func GetServerlessConfig() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return isRunningInLambda()
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment.
// CloudWatch ingests structured lines, so Lambda always logs JSON.
func AdaptConfigForServerless(cfg *Config) *Config {
	if !IsServerlessMode() {
		return cfg
	}

	cfg.Logging.Format = LogFormatJSON
	if stage := GetServerlessConfig().Stage; stage == "prod" || stage == "production" {
		cfg.Environment = EnvProduction
	}

	return cfg
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(cfg), nil
}
