package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"arxml-viewer/internal/app"
)

type validateOptions struct {
	Jobs           int
	RequireAutosar bool
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Probe XML documents for well-formedness",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 0, "Max concurrent probes (0 uses the default)")
	cmd.Flags().BoolVar(&opts.RequireAutosar, "require-autosar", false, "Count well-formed non-AUTOSAR files as failed")
	_ = viper.BindPFlag("jobs", cmd.Flags().Lookup("jobs"))
	_ = viper.BindPFlag("require_autosar", cmd.Flags().Lookup("require-autosar"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions, paths []string) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		Paths:          paths,
		RequireAutosar: resolveBool(cmd, opts.RequireAutosar, "require_autosar", "require-autosar"),
		Jobs:           resolveInt(cmd, opts.Jobs, "jobs", "jobs"),
	})
	if err != nil {
		return err
	}

	for _, report := range result.Reports {
		printFileReport(report)
	}
	if result.Failed > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d of %d documents failed validation", result.Failed, len(result.Reports)))
	}
	fmt.Printf("validated: %d documents\n", len(result.Reports))
	return nil
}

func printFileReport(report app.FileReport) {
	switch {
	case !report.Valid:
		fmt.Printf("invalid  %s: %s\n", report.Path, report.Error)
	case report.Autosar:
		fmt.Printf("ok       %s (AUTOSAR, %d elements)\n", report.Path, report.ElementCount)
	default:
		fmt.Printf("ok       %s (%s, %d elements)\n", report.Path, report.RootElement, report.ElementCount)
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
