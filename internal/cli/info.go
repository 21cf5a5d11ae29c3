package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arxml-viewer/internal/app"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print document facts from the well-formedness probe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runInfo(ctx context.Context, path string) error {
	service := newAppService()
	result, err := service.Info(ctx, app.InfoRequest{Path: path})
	if err != nil {
		return err
	}

	info := result.Info
	if !info.Valid {
		fmt.Printf("invalid: %s\n", info.Error)
		return nil
	}
	fmt.Printf("root element:  %s\n", info.RootElement)
	fmt.Printf("namespace:     %s\n", info.Namespace)
	fmt.Printf("encoding:      %s\n", info.Encoding)
	fmt.Printf("xml version:   %s\n", info.XMLVersion)
	fmt.Printf("element count: %d\n", info.ElementCount)
	return nil
}
