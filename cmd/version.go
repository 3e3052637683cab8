package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/canoecalc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of canoecalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("canoecalc v%s\n", version.Version)
		fmt.Printf("Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Println("Concrete Canoe Hull Compliance Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
