package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aasmall/montecarlo/lib/envreader"
	"github.com/davecgh/go-spew/spew"
	"github.com/gobuffalo/envy"
)

func Test_getEnvironmentalConfig(t *testing.T) {
	envy.Temp(func() {
		defaults := struct {
			name    string
			want    *envConfig
			wantErr bool
		}{
			name: "getEnvConfigDefaults",
			want: defaultConfig(),
		}
		t.Run(defaults.name, func(t *testing.T) {
			got, err := getEnvironmentalConfig()
			if (err != nil) != defaults.wantErr {
				t.Errorf("getEnvironmentalConfig() error = %v, wantErr %v", err, defaults.wantErr)
				return
			}
			if !reflect.DeepEqual(got, defaults.want) {
				t.Errorf("getEnvironmentalConfig() = %+v, want %+v", spew.Sdump(got), spew.Sdump(defaults.want))
			}
		})

		tempOSVariables := map[string]string{
			"MONTECARLO_PROJECT_ID":   "test_project",
			"MONTECARLO_LOG_NAME":     "test_log_name",
			"MONTECARLO_DEBUG":        "true",
			"MONTECARLO_FACES":        "heads,tails",
			"MONTECARLO_WEIGHTS":      "heads=3",
			"MONTECARLO_DICE":         "3",
			"MONTECARLO_ROLLS":        "50",
			"MONTECARLO_SEED":         "42",
			"MONTECARLO_FORM":         "Narrow",
			"MONTECARLO_TOP":          "5",
			"MONTECARLO_SHOW_RESULTS": "true",
		}
		for key, value := range tempOSVariables {
			envy.MustSet(key, value)
		}
		defer func() {
			for key := range tempOSVariables {
				os.Unsetenv(key)
			}
		}()
		happyTest := struct {
			name    string
			want    *envConfig
			wantErr bool
		}{
			name: "getEnvConfig",
			want: &envConfig{
				projectID:   "test_project",
				logName:     "test_log_name",
				debug:       true,
				faces:       []string{"heads", "tails"},
				weights:     []string{"heads=3"},
				dice:        3,
				rolls:       50,
				seed:        42,
				form:        "Narrow",
				top:         5,
				plotHeight:  10,
				showResults: true,
			},
		}
		t.Run(happyTest.name, func(t *testing.T) {
			got, err := getEnvironmentalConfig()
			if (err != nil) != happyTest.wantErr {
				t.Errorf("getEnvironmentalConfig() error = %v, wantErr %v", err, happyTest.wantErr)
				return
			}
			if !reflect.DeepEqual(got, happyTest.want) {
				t.Errorf("getEnvironmentalConfig() = %+v, want %+v", spew.Sdump(got), spew.Sdump(happyTest.want))
			}
		})
	})
}

func Test_getEnvironmentalConfig_missingFile(t *testing.T) {
	got, err := getEnvironmentalConfig(envreader.WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil {
		t.Errorf("getEnvironmentalConfig() = %+v, want error for a missing config file", got)
	}
}
