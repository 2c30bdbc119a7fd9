package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umlforge/javauml/generators"
)

var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List the registered diagram generators",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range generators.DefaultRegistry().Available() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generatorsCmd)
}
