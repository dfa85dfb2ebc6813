/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/qlmock/qlmock/pkg/mock"
	"github.com/qlmock/qlmock/pkg/render"
	"github.com/spf13/cobra"
)

func formatGeneratorText(g GeneratorInfo) string {
	return g.Namespace + "." + g.Function
}

func formatGeneratorsPretty(generators []GeneratorInfo) string {
	tbl := makeTable()
	for _, g := range generators {
		tbl.Row(g.Namespace, g.Function, g.Namespace+"."+g.Function)
	}
	tbl.Headers("namespace", "function", "reference")
	return tbl.String()
}

func NewGeneratorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generators",
		Short: "List generator references usable in field descriptions",
		Long: `Lists every generator the registry knows, as "namespace.function"
references. Putting one of these in a field's description string binds the
field to that generator during 'qlmock run' and in the playground:

  type Student {
    """name.firstName"""
    name: String!
  }`,
		Example: `  # Pretty table of all generators
  qlmock generators

  # Pipe-friendly list
  qlmock generators -f text

  # All namespaces
  qlmock generators -f json | jq -r '.[].namespace' | sort -u`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := mock.Faker()

			var generators []GeneratorInfo
			for _, namespace := range registry.Namespaces() {
				for _, function := range registry.Functions(namespace) {
					generators = append(generators, GeneratorInfo{Namespace: namespace, Function: function})
				}
			}

			renderer := render.Renderer[GeneratorInfo]{
				Data:         generators,
				TextFormat:   formatGeneratorText,
				PrettyFormat: formatGeneratorsPretty,
			}
			output, err := renderer.Render(outputFormat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	return cmd
}
