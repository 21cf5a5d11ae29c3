package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"arxml-viewer/internal/app"
)

type exportOptions struct {
	Output string
	Format string
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Parse an ARXML document and write a model snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output path (defaults to the input name with the format extension)")
	cmd.Flags().StringVar(&opts.Format, "format", app.ExportFormatJSON, "Output format: json or yaml")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts exportOptions, path string) error {
	format := resolveString(cmd, opts.Format, "format", "format")
	output := resolveString(cmd, opts.Output, "output", "output")
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + "." + strings.ToLower(format)
	}

	service := newAppService()
	result, err := service.Export(ctx, app.ExportRequest{
		Path:   path,
		Output: output,
		Format: format,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote model: %s (%d components, %d connections)\n",
		result.OutputPath, result.Components, result.Connections)
	return nil
}
