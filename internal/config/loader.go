package config

import (
	"fmt"
	"log/slog"

	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// readConfig locates and reads a configuration file using Viper. It searches
// for a file named "{name}.{ext}" in each of the given directories in order;
// the first found file is read. The returned Viper instance contains the
// parsed config and can be used for further unmarshaling.
//
// Parameters:
//   - logger: Logger for config load messages (success and failure).
//   - name: Config file base name without extension (e.g., "superbenchmark").
//   - ext: Config file extension/type (e.g., "yaml"); used by Viper as config type.
//   - dirs: One or more directories to search for the file; first match wins.
//
// Returns:
//   - *viper.Viper: Viper instance with the config loaded.
//   - error: Non-nil if no config file was found in any dir or if reading failed.
func readConfig(logger *slog.Logger, name string, ext string, dirs ...string) (*viper.Viper, error) {
	logger.Info("Reading the configuration file", "file", fmt.Sprintf("%s.%s", name, ext), "dirs", fmt.Sprintf("%v", dirs))

	configValues := viper.New()

	configValues.SetConfigName(name) // name of config file (without extension)
	configValues.SetConfigType(ext)  // REQUIRED if the config file does not have the extension in the name
	for _, dir := range dirs {
		configValues.AddConfigPath(dir)
	}
	err := configValues.ReadInConfig() // Find and read the config file

	if err != nil {
		logger.Error("Failed to read the configuration file", "file", fmt.Sprintf("%s.%s", name, ext), "dirs", fmt.Sprintf("%v", dirs), "error", err.Error())
	} else {
		logger.Info("Read the configuration file", "file", configValues.ConfigFileUsed())
	}

	return configValues, err
}

// LoadRunnerConfig loads the benchmark runner configuration. When path is
// empty the file "superbenchmark.yaml" is searched for in the working
// directory and its config/ subdirectory; otherwise path is used directly.
// The loaded config is validated before it is returned.
func LoadRunnerConfig(logger *slog.Logger, path string) (*RunnerConfig, error) {
	var configValues *viper.Viper
	var err error

	if path != "" {
		configValues = viper.New()
		configValues.SetConfigFile(path)
		if err = configValues.ReadInConfig(); err != nil {
			logger.Error("Failed to read the configuration file", "file", path, "error", err.Error())
			return nil, err
		}
		logger.Info("Read the configuration file", "file", configValues.ConfigFileUsed())
	} else {
		configValues, err = readConfig(logger, "superbenchmark", "yaml", ".", "./config")
		if err != nil {
			return nil, err
		}
	}

	conf := RunnerConfig{}
	if err := configValues.Unmarshal(&conf); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&conf); err != nil {
		logger.Error("Invalid runner configuration", "file", configValues.ConfigFileUsed(), "error", err.Error())
		return nil, err
	}

	return &conf, nil
}
