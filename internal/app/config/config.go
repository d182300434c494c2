package config

import (
	"slotfinder/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:     utils.GetEnvString("APP_ENV", "development"),
			Version: utils.GetEnvString("APP_VERSION", "v1.0"),
		},
		Provider: Provider{
			BaseUrl:          utils.GetEnvString("PROVIDER_BASE_URL", "https://ofc-test-01.tspb.su/test-task/"),
			TimeoutInSeconds: utils.GetEnvInt("PROVIDER_TIMEOUT_IN_SECONDS", 5),
		},
	}
}
