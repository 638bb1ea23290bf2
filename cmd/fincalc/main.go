package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/config"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Personal finance calculator CLI",
	Long:  "Loan, home equity, retirement and RMD calculators driven by a YAML input document",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the calculations in an input document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		doc, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
		}

		results, err := engine.RunDocument(doc)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unsupported format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
		}
		data, err := formatter.Format(results)
		if err != nil {
			log.Fatal(err)
		}

		if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", outFile)
			return
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input document and report soft-validation findings",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		doc, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		failed := false
		for name, vr := range parser.SoftValidate(doc) {
			for _, e := range vr.Errors {
				fmt.Printf("%s: error: %s\n", name, e)
				failed = true
			}
			for _, w := range vr.Warnings {
				fmt.Printf("%s: warning: %s\n", name, w)
			}
		}
		if failed {
			os.Exit(1)
		}
		fmt.Printf("Input document %s is valid\n", args[0])
	},
}

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Print an amortization schedule for a single loan",
	Run: func(cmd *cobra.Command, args []string) {
		principal, err := decimalFlag(cmd, "principal")
		if err != nil {
			log.Fatal(err)
		}
		rate, err := decimalFlag(cmd, "rate")
		if err != nil {
			log.Fatal(err)
		}
		months, _ := cmd.Flags().GetInt("months")

		result, err := calculation.Amortize(domain.LoanTerms{
			Principal:         principal,
			AnnualRatePercent: rate,
			TermMonths:        months,
		})
		if err != nil {
			log.Fatal(err)
		}

		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			data, err := output.ScheduleCSV(result.Schedule)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(string(data))
			return
		}

		fmt.Printf("Monthly Payment: %s\n", output.FormatCurrency(result.Payment))
		fmt.Printf("Total Interest:  %s\n", output.FormatCurrency(result.TotalInterest))
		fmt.Printf("Total Paid:      %s\n", output.FormatCurrency(result.TotalPaid))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "fincalc %s (commit %s, built %s)\n", version, commit, date)
	},
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return d, nil
}

func init() {
	calculateCmd.Flags().String("format", "console", "output format: "+strings.Join(output.FormatterNames(), ", "))
	calculateCmd.Flags().String("output", "", "write the report to a file instead of stdout")
	calculateCmd.Flags().Bool("debug", false, "enable debug logging")

	amortizeCmd.Flags().String("principal", "0", "loan amount")
	amortizeCmd.Flags().String("rate", "0", "annual interest rate percent")
	amortizeCmd.Flags().Int("months", 0, "number of monthly payments")
	amortizeCmd.Flags().Bool("csv", false, "print the full schedule as CSV")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(amortizeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
