package config

type (
	InternalConfig struct {
		App      App
		Provider Provider
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env     string
		Version string
	}

	Provider struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
