package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0xCarti/numinput"
	"github.com/0xCarti/numinput/units"
)

var (
	// Global flags
	verbose    bool
	configPath string
	step       string
	costConv   bool

	cfg    *Config
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "numinput [value ...]",
	Short: "Resolve the arithmetic people type into quantity fields",
	Long: `numinput resolves field values the way quantity inputs do on blur:
a leading "=" always means an expression over +, -, *, / and parentheses,
arithmetic characters usually do, and anything else is a plain number with
digit grouping stripped. Results are formatted to the precision the step
implies.

Run without arguments to resolve lines from standard input.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = LoadConfig(configPath)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return resolveArgs(cmd, args)
		}
		return resolveLines(cmd, os.Stdin)
	},
}

// resolveCmd resolves raw field values, same as the root command.
var resolveCmd = &cobra.Command{
	Use:   "resolve [value ...]",
	Short: "Resolve raw field values to canonical numbers",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return resolveArgs(cmd, args)
		}
		return resolveLines(cmd, os.Stdin)
	},
}

// evalCmd evaluates bare expressions with no prefix or plain-number
// detection.
var evalCmd = &cobra.Command{
	Use:   "eval [expression ...]",
	Short: "Evaluate bare arithmetic expressions",
	Args:  cobra.ArbitraryArgs,
	RunE:  runEval,
}

// convertCmd converts between base units.
var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a quantity or per-unit cost between base units",
	Long: `Converts a value between base units. The value may itself be an
expression or a plain number, exactly like a field value. Quantities
multiply by the conversion factor; pass --cost to divide instead, the way
per-unit costs convert.`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

// unitsCmd lists base units and the configured reporting mapping.
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List base units and the configured reporting units",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&step, "step", "", `Step attribute results are formatted against, e.g. "0.01"`)

	convertCmd.Flags().BoolVar(&costConv, "cost", false, "Convert a per-unit cost instead of a quantity")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newResolver builds the resolver all commands share, honoring the config
// file and logging flags.
func newResolver() *numinput.Resolver {
	return numinput.NewResolver(
		numinput.Prefix(cfg.Prefix),
		numinput.MaxDecimals(cfg.MaxDecimals),
		numinput.Logger(logger),
	)
}

// effStep returns the step in effect: the --step flag when set, otherwise
// the config file's.
func effStep(cmd *cobra.Command) string {
	if cmd.Flags().Changed("step") {
		return step
	}
	return cfg.Step
}

func resolveArgs(cmd *cobra.Command, args []string) error {
	r := newResolver()
	st := effStep(cmd)
	for _, arg := range args {
		f := numinput.NewTextField(st)
		f.Type(arg)
		if _, err := r.Resolve(f); err != nil {
			return err
		}
		fmt.Println(f.Value())
	}
	return nil
}

// resolveLines resolves values from in, one per line, reporting failures
// without stopping.
func resolveLines(cmd *cobra.Command, in io.Reader) error {
	r := newResolver()
	st := effStep(cmd)
	return eachLine(in, func(line string) {
		f := numinput.NewTextField(st)
		f.Type(line)
		if _, err := r.Resolve(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(f.Value())
	})
}

func runEval(cmd *cobra.Command, args []string) error {
	st := effStep(cmd)
	if len(args) == 0 {
		return eachLine(os.Stdin, func(line string) {
			v, err := numinput.EvalString(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(numinput.FormatValue(v, st))
		})
	}
	for _, expr := range args {
		v, err := numinput.EvalString(expr)
		if err != nil {
			return err
		}
		fmt.Println(numinput.FormatValue(v, st))
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := numinput.ParseValue(args[0], numinput.Prefix(cfg.Prefix))
	if err != nil {
		return err
	}
	from, to := args[1], args[2]
	var out float64
	if costConv {
		out, err = units.ConvertUnitCost(v, from, to)
	} else {
		out, err = units.ConvertQuantity(v, from, to)
	}
	if err != nil {
		return err
	}
	fmt.Println(numinput.FormatValue(out, effStep(cmd)))
	return nil
}

func runUnits(cmd *cobra.Command, args []string) error {
	for _, u := range units.BaseUnits {
		fmt.Printf("%-12s %-12s reports as %-12s allowed: %s\n",
			u, units.Label(u), cfg.Conversions[u],
			strings.Join(units.AllowedTargets(u), ", "))
	}
	return nil
}

// eachLine calls fn for every non-blank line of in, trimmed.
func eachLine(in io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	return sc.Err()
}
