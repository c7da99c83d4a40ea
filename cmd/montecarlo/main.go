package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/aasmall/montecarlo/lib/envreader"
	log "github.com/aasmall/montecarlo/lib/logger"
	"github.com/aasmall/montecarlo/lib/montecarlo"
	"github.com/aasmall/montecarlo/lib/report"
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/rand"
)

// listFlag collects comma separated values from one or more uses of a flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }
func (l *listFlag) Set(value string) error {
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

func main() {
	var configPath, faces, form string
	var dice, rolls, top, plotHeight int
	var seed int64
	var weights listFlag
	var verbose, showResults, plot bool
	flag.StringVar(&configPath, "config", "", "Path to a config file. MONTECARLO_* variables override it.")
	flag.StringVar(&faces, "faces", "", "Comma separated faces shared by every die, e.g. 1,2,3,4,5,6")
	flag.IntVar(&dice, "dice", 0, "Number of dice")
	flag.IntVar(&rolls, "rolls", 0, "Number of rolls to play")
	flag.Var(&weights, "weight", "face=weight, repeatable or comma separated. Applied to every die.")
	flag.StringVar(&form, "form", "", "Result table form: wide or narrow")
	flag.Int64Var(&seed, "seed", 0, "Random seed. 0 picks one.")
	flag.IntVar(&top, "top", 0, "Rows to print per table, 0 for all")
	flag.IntVar(&plotHeight, "plot-height", 0, "Height of the running jackpot rate plot")
	flag.BoolVar(&showResults, "show-results", false, "Print the result table and face counts")
	flag.BoolVar(&plot, "plot", false, "Plot the running jackpot rate")
	flag.BoolVar(&verbose, "v", false, "Debug logging, including die state dumps")
	flag.Parse()

	config, err := getEnvironmentalConfig(envreader.WithConfigFile(configPath))
	if err != nil {
		log.Fatalf("ERROR OCCURED BEFORE LOGGING: %s", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "faces":
			config.faces = splitList(faces)
		case "dice":
			config.dice = dice
		case "rolls":
			config.rolls = rolls
		case "weight":
			config.weights = weights
		case "form":
			config.form = form
		case "seed":
			config.seed = seed
		case "top":
			config.top = top
		case "plot-height":
			config.plotHeight = plotHeight
		case "show-results":
			config.showResults = showResults
		case "plot":
			config.plot = plot
		case "v":
			config.debug = verbose
		}
	})

	opts := []log.Option{
		log.WithDebug(config.debug),
		log.WithDefaultSeverity(logging.Info),
		log.WithLogName(config.logName),
		log.WithColor(config.color),
	}
	if config.credentials != "" {
		opts = append(opts, log.WithCredentialsFile(config.credentials))
	}
	logger := log.New(config.projectID, opts...)
	defer logger.Close()
	logger.Debugf("config: %s", spew.Sdump(config))

	if err := dispatch(config, logger, os.Stdout); err != nil {
		logger.Errorf("%v", err)
		logger.Close()
		os.Exit(1)
	}
}

func splitList(value string) []string {
	var l listFlag
	l.Set(value)
	return l
}

// dispatch plays with integer faces when every face is an integer, string faces otherwise.
func dispatch(config *envConfig, logger *log.Logger, out io.Writer) error {
	ints := make([]int64, 0, len(config.faces))
	for _, f := range config.faces {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return run(config, config.faces, func(s string) (string, error) { return s, nil }, logger, out)
		}
		ints = append(ints, n)
	}
	return run(config, ints, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }, logger, out)
}

func run[T montecarlo.Face](config *envConfig, faces []T, parseFace func(string) (T, error), logger *log.Logger, out io.Writer) error {
	if config.dice < 1 {
		return fmt.Errorf("need at least one die, got %d", config.dice)
	}
	seed := config.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("seed: %d", seed)
	src := rand.NewSource(uint64(seed))

	dice := make([]*montecarlo.Die[T], config.dice)
	for i := range dice {
		d, err := montecarlo.NewDie(faces, montecarlo.WithSource(src))
		if err != nil {
			return fmt.Errorf("could not make die %d: %w", i+1, err)
		}
		for _, w := range config.weights {
			parts := strings.SplitN(w, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("weight %q is not face=weight", w)
			}
			face, err := parseFace(strings.TrimSpace(parts[0]))
			if err != nil {
				return fmt.Errorf("weight %q: %w", w, err)
			}
			if err := d.ChangeWeight(face, parts[1]); err != nil {
				return fmt.Errorf("weight %q: %w", w, err)
			}
		}
		logger.Debugf("die %d state: %s", i+1, spew.Sdump(d.ShowState()))
		dice[i] = d
	}

	game := montecarlo.NewGame(dice)
	if err := game.Play(config.rolls); err != nil {
		return fmt.Errorf("could not play: %w", err)
	}
	logger.Infof("played %d rolls of %d dice", config.rolls, len(dice))
	analyzer, err := montecarlo.NewAnalyzer(game)
	if err != nil {
		return err
	}

	p := report.NewPrinter(out, config.color, config.top)
	if err := p.Table("Die state", dice[0].ShowState()); err != nil {
		return err
	}
	if config.showResults {
		results, err := game.ShowResults(config.form)
		if err != nil {
			return err
		}
		if err := p.Table("Results ("+strings.ToLower(config.form)+")", results); err != nil {
			return err
		}
		faceCounts, err := analyzer.FaceCounts()
		if err != nil {
			return err
		}
		if err := p.Table("Face counts", faceCounts); err != nil {
			return err
		}
	}

	probability, err := game.JackpotProbability()
	if err != nil {
		return err
	}
	if err := p.Jackpots(analyzer.Jackpot(), config.rolls, probability); err != nil {
		return err
	}
	combos, err := analyzer.ComboCounts()
	if err != nil {
		return err
	}
	if err := p.Table("Combos", combos); err != nil {
		return err
	}
	permutations, err := analyzer.PermutationCounts()
	if err != nil {
		return err
	}
	if err := p.Table("Permutations", permutations); err != nil {
		return err
	}
	for i := range dice {
		fit, err := analyzer.GoodnessOfFit(i + 1)
		if err != nil {
			return err
		}
		if err := report.Fit(p, fit); err != nil {
			return err
		}
	}

	if config.plot {
		wide, err := game.Wide()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, report.Plot(report.RunningJackpotRate(wide), config.plotHeight, 72, "running jackpot rate"))
	}
	return nil
}
