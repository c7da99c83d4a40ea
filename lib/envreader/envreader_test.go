package envreader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gobuffalo/envy"
)

func setenv(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		if err := envy.MustSet(key, value); err != nil {
			t.Fatalf("envy.MustSet(%q) error = %v", key, err)
		}
		key := key
		t.Cleanup(func() { os.Unsetenv(key) })
	}
}

type readResult struct {
	Project string
	Debug   bool
	Rolls   int
	Weight  float64
	Faces   []string
	Missing []string
	Errors  bool
}

func read(r *EnvReader) readResult {
	return readResult{
		Project: r.GetEnv("PROJECT_ID"),
		Debug:   r.GetEnvBoolOpt("DEBUG"),
		Rolls:   r.GetEnvIntOpt("ROLLS", 100),
		Weight:  r.GetEnvFloat("WEIGHT"),
		Faces:   r.GetEnvStringSliceOpt("FACES"),
		Missing: r.MissingKeys,
		Errors:  r.Errors,
	}
}

func TestEnvReader(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want readResult
	}{
		{
			name: "everything set",
			vars: map[string]string{
				"MCTEST_PROJECT_ID": "test_project",
				"MCTEST_DEBUG":      "true",
				"MCTEST_ROLLS":      "250",
				"MCTEST_WEIGHT":     "2.5",
				"MCTEST_FACES":      "1, 2,3,,4",
			},
			want: readResult{
				Project: "test_project",
				Debug:   true,
				Rolls:   250,
				Weight:  2.5,
				Faces:   []string{"1", "2", "3", "4"},
			},
		},
		{
			name: "required keys missing",
			vars: map[string]string{
				"MCTEST_ROLLS": "many",
			},
			want: readResult{
				Rolls:   100,
				Missing: []string{"PROJECT_ID", "WEIGHT"},
				Errors:  true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envy.Temp(func() {
				setenv(t, tt.vars)
				got := read(New(WithPrefix("MCTEST")))
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("read() = %v, want %v", spew.Sdump(got), spew.Sdump(tt.want))
				}
			})
		})
	}
}

func TestEnvReader_configFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "montecarlo.yaml")
	config := []byte("project_id: from_file\nrolls: 40\nweight: 0.5\nfaces:\n  - heads\n  - tails\n")
	if err := os.WriteFile(path, config, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	envy.Temp(func() {
		setenv(t, map[string]string{"MCFILE_ROLLS": "80"})
		got := read(New(WithPrefix("MCFILE"), WithConfigFile(path)))
		want := readResult{
			Project: "from_file",
			Rolls:   80,
			Weight:  0.5,
			Faces:   []string{"heads", "tails"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("read() = %v, want %v", spew.Sdump(got), spew.Sdump(want))
		}
	})
}

func TestEnvReader_missingConfigFile(t *testing.T) {
	r := New(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
	if !r.Errors || len(r.MissingKeys) != 1 {
		t.Errorf("missing config file: Errors = %v, MissingKeys = %v", r.Errors, r.MissingKeys)
	}
}
