package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nerrad567/estate-core/internal/openapi"
)

func newOpenAPICmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := openapi.Build(version)

			var (
				data []byte
				err  error
			)
			switch format {
			case "json":
				data, err = openapi.MarshalJSON(doc)
			case "yaml", "yml":
				data, err = openapi.MarshalYAML(doc)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
