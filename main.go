package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bvisness/nonnull/lint"
	"github.com/bvisness/nonnull/utils"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd *cobra.Command
	rootCmd = &cobra.Command{
		Use:   "nnlint <path>...",
		Short: "Report nn wrappers built without their nil check",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				rootCmd.Usage()
				os.Exit(1)
			}

			format, err := lint.ParseFormat(utils.Must1(rootCmd.PersistentFlags().GetString("format")))
			if err != nil {
				exitWithError("%v", err)
			}

			logOut := io.Discard
			if utils.Must1(rootCmd.PersistentFlags().GetBool("verbose")) {
				logOut = os.Stderr
			}
			logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

			cfg := lint.Config{
				Package: utils.Or(utils.Must1(rootCmd.PersistentFlags().GetString("package")), lint.DefaultPackage),
				Logger:  logger,
			}
			diags, err := lint.CheckPaths(args, cfg)
			if err != nil {
				exitWithError("%v", err)
			}
			logger.Info("done", "paths", len(args), "findings", len(diags))

			if err := lint.Write(os.Stdout, format, diags); err != nil {
				exitWithError("could not write output: %v", err)
			}
			if len(diags) > 0 {
				os.Exit(1)
			}
		},
	}
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json or yaml.")
	rootCmd.PersistentFlags().StringP("package", "p", lint.DefaultPackage, "Import path of the nn package.")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each file checked to stderr.")
	utils.Must(rootCmd.Execute())
}

func exitWithError(msg string, args ...any) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	os.Exit(1)
}
