// Package cmd implements the formpath CLI: translate a property-access
// expression into the form-field name a model binder expects, optionally
// resolving index arguments against a loaded model document.
package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/formpath/pkg/form"
	"github.com/oakwood-commons/formpath/pkg/loader"
	"github.com/oakwood-commons/formpath/pkg/logger"
	"github.com/oakwood-commons/formpath/pkg/settings"
)

var runParams = settings.NewCliParams()

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [flags] EXPRESSION",
	Short: "Generate model-binding form-field names from access expressions",
	Long: `formpath translates a property-access expression into the dotted,
bracketed field name a model binder parses back out of a submitted form.

The model object is referenced as "_" (or elided entirely):

  formpath '_.Attendance[2].Name'          -> Attendance[2].Name
  formpath 'Attendance[2].Name'            -> Attendance[2].Name
  formpath --var i=3 'Attendance[i].Name'  -> Attendance[3].Name

Index arguments may also read through a model document:

  formpath --model state.yaml 'Attendance[_.cursor].Name'`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = settings.VersionInformation.BuildVersion
	rootCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})
	rootCmd.Flags().StringVarP(&runParams.ModelPath, "model", "m", "", "model document (YAML, JSON, or TOML) index reads resolve against")
	rootCmd.Flags().StringArrayVar(&runParams.Vars, "var", nil, "bind a captured variable as name=value (repeatable)")
	rootCmd.Flags().Int8Var(&runParams.MinLogLevel, "log-level", 0, "minimum log level (negative enables debug output)")
	rootCmd.Flags().BoolVarP(&runParams.IsQuiet, "quiet", "q", false, "suppress all log output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	lgr := logger.GetNoopLogger()
	if !runParams.IsQuiet {
		lgr = logger.Get(runParams.MinLogLevel)
	}

	vars, err := parseVars(runParams.Vars)
	if err != nil {
		return err
	}

	var root any
	if runParams.ModelPath != "" {
		root, err = loader.LoadFile(runParams.ModelPath)
		if err != nil {
			lgr.Error(err, "failed to load model", "path", runParams.ModelPath)
			return err
		}
	}

	engine, err := form.New(form.WithVars(vars), form.WithLogger(*lgr))
	if err != nil {
		return err
	}

	name, err := engine.NameFor(root, args[0])
	if err != nil {
		lgr.Error(err, "translation failed", "expr", args[0])
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

// parseVars turns repeated name=value flags into a variable map. Integer
// values are bound as ints so they can serve directly as index arguments;
// anything else is bound as a string.
func parseVars(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.New("invalid --var binding " + strconv.Quote(pair) + ", expected name=value")
		}
		if n, err := strconv.Atoi(value); err == nil {
			vars[name] = n
		} else {
			vars[name] = value
		}
	}
	return vars, nil
}
