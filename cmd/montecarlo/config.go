package main

import (
	"fmt"

	"github.com/aasmall/montecarlo/lib/envreader"
)

type envConfig struct {
	projectID   string
	logName     string
	credentials string
	debug       bool
	color       bool
	faces       []string
	weights     []string
	dice        int
	rolls       int
	seed        int64
	form        string
	top         int
	plotHeight  int
	showResults bool
	plot        bool
}

func defaultConfig() *envConfig {
	return &envConfig{
		logName:    "montecarlo",
		faces:      []string{"1", "2", "3", "4", "5", "6"},
		dice:       2,
		rolls:      1000,
		form:       "wide",
		top:        10,
		plotHeight: 10,
	}
}

// getEnvironmentalConfig reads MONTECARLO_* variables, on top of an optional config file.
func getEnvironmentalConfig(opts ...envreader.Option) (*envConfig, error) {
	configReader := envreader.New(append([]envreader.Option{envreader.WithPrefix("MONTECARLO")}, opts...)...)
	config := defaultConfig()
	config.projectID = configReader.GetEnvOpt("PROJECT_ID")
	if logName := configReader.GetEnvOpt("LOG_NAME"); logName != "" {
		config.logName = logName
	}
	config.credentials = configReader.GetEnvOpt("CREDENTIALS_FILE")
	config.debug = configReader.GetEnvBoolOpt("DEBUG")
	config.color = configReader.GetEnvBoolOpt("COLOR")
	if faces := configReader.GetEnvStringSliceOpt("FACES"); len(faces) > 0 {
		config.faces = faces
	}
	config.weights = configReader.GetEnvStringSliceOpt("WEIGHTS")
	config.dice = configReader.GetEnvIntOpt("DICE", config.dice)
	config.rolls = configReader.GetEnvIntOpt("ROLLS", config.rolls)
	config.seed = int64(configReader.GetEnvIntOpt("SEED", 0))
	if form := configReader.GetEnvOpt("FORM"); form != "" {
		config.form = form
	}
	config.top = configReader.GetEnvIntOpt("TOP", config.top)
	config.plotHeight = configReader.GetEnvIntOpt("PLOT_HEIGHT", config.plotHeight)
	config.showResults = configReader.GetEnvBoolOpt("SHOW_RESULTS")
	config.plot = configReader.GetEnvBoolOpt("PLOT")
	if configReader.Errors {
		return nil, fmt.Errorf("could not gather config. Failed variables: %v", configReader.MissingKeys)
	}
	return config, nil
}
