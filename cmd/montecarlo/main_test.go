package main

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/aasmall/montecarlo/lib/logger"
)

func testConfig() *envConfig {
	config := defaultConfig()
	config.seed = 7
	config.rolls = 200
	return config
}

func Test_dispatch(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*envConfig)
		want    []string
		wantErr bool
	}{
		{
			name: "fair d6",
			want: []string{"Die state", "Jackpots:", "Combos", "Permutations", "Die 1: chi2=", "Die 2: chi2="},
		},
		{
			name: "string faces with results",
			edit: func(c *envConfig) {
				c.faces = []string{"heads", "tails"}
				c.weights = []string{"heads=3"}
				c.showResults = true
				c.form = "NARROW"
			},
			want: []string{"heads  3", "Results (narrow)", "Roll Number", "Face counts"},
		},
		{
			name: "plot",
			edit: func(c *envConfig) { c.plot = true },
			want: []string{"running jackpot rate"},
		},
		{
			name:    "bad weight",
			edit:    func(c *envConfig) { c.weights = []string{"6=lots"} },
			wantErr: true,
		},
		{
			name:    "weight for a missing face",
			edit:    func(c *envConfig) { c.weights = []string{"7=2"} },
			wantErr: true,
		},
		{
			name:    "malformed weight",
			edit:    func(c *envConfig) { c.weights = []string{"6"} },
			wantErr: true,
		},
		{
			name:    "no dice",
			edit:    func(c *envConfig) { c.dice = 0 },
			wantErr: true,
		},
		{
			name:    "no rolls",
			edit:    func(c *envConfig) { c.rolls = 0 },
			wantErr: true,
		},
		{
			name:    "duplicate faces",
			edit:    func(c *envConfig) { c.faces = []string{"1", "1"} },
			wantErr: true,
		},
		{
			name: "bad form",
			edit: func(c *envConfig) {
				c.showResults = true
				c.form = "tall"
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			if tt.edit != nil {
				tt.edit(config)
			}
			var out, logs bytes.Buffer
			err := dispatch(config, log.New("", log.WithWriter(&logs)), &out)
			if (err != nil) != tt.wantErr {
				t.Errorf("dispatch() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("dispatch() output does not contain %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func Test_splitList(t *testing.T) {
	got := splitList(" 1, 2,,3 ")
	if strings.Join(got, "|") != "1|2|3" {
		t.Errorf("splitList() = %q, want [1 2 3]", got)
	}
}
