package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qadeck/logger"
)

// defaultOutputFile is the fixed artifact name, written to the current
// working directory when no -o flag is given.
const defaultOutputFile = "Tissue_QA_Dashboard_Presentation.pptx"

var (
	outputPath string
	logDir     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qadeck",
		Short: "Generate the Tissue QA Dashboard presentation",
		Long: `qadeck builds the Tissue Manufacturing QA Dashboard slide deck
and writes it as a PowerPoint (.pptx) file.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutputFile, "Output file path")
	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "Directory for run logs (logging disabled when empty)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	appLog := logger.NewLogger()
	if logDir != "" {
		if err := appLog.Init(logDir); err != nil {
			return WrapOperationError("initialize logging", err)
		}
		defer appLog.Close()
	}

	path, err := buildPresentation(outputPath, appLog)
	if err != nil {
		appLog.Logf("build failed: %v", err)
		return err
	}

	fmt.Printf("Presentation saved as %s\n", path)
	return nil
}
