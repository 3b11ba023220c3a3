package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/carrier-sim/carrier-sim/sim"
	"github.com/carrier-sim/carrier-sim/sim/dataset"
	"github.com/carrier-sim/carrier-sim/sim/trace"
	"github.com/carrier-sim/carrier-sim/sim/workload"
)

var (
	// CLI flags for the simulation run
	seed        int64  // Master seed for the partitioned RNG
	logLevel    string // Log verbosity level
	startDate   string // First pickup date (YYYY-MM-DD)
	endDate     string // Last pickup date (YYYY-MM-DD)
	loadsPerDay int    // Offers generated per weekday

	// CLI flags for configuration files and outputs
	workloadConfigPath string // YAML generation spec (optional)
	policyConfigPath   string // YAML lane policy table (optional)
	datasetPath        string // CSV output of labeled loads (optional)
	traceSummary       bool   // Log a decision-trace summary after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "carrier-sim",
	Short: "Carrier load-acceptance simulator producing labeled synthetic data",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the carrier acceptance simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := workload.DefaultGenerationSpec()
		if workloadConfigPath != "" {
			loaded, err := workload.LoadGenerationSpec(workloadConfigPath)
			if err != nil {
				logrus.Fatalf("Unable to read generation spec: %v", err)
			}
			spec = *loaded
		}

		// Flags override the spec where explicitly set
		if cmd.Flags().Changed("seed") {
			spec.Seed = seed
		}
		if cmd.Flags().Changed("start-date") {
			spec.StartDate = startDate
		}
		if cmd.Flags().Changed("end-date") {
			spec.EndDate = endDate
		}
		if cmd.Flags().Changed("loads-per-day") {
			spec.LoadsPerDay = loadsPerDay
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid run parameters: %v", err)
		}

		policies := sim.DefaultPolicyTable()
		if policyConfigPath != "" {
			policies, err = GetPolicyTable(policyConfigPath)
			if err != nil {
				logrus.Fatalf("Unable to read policy table: %v", err)
			}
		}

		start, _ := spec.Start()
		end, _ := spec.End()
		cfg := sim.RunConfig{
			StartDate:   start,
			EndDate:     end,
			LoadsPerDay: spec.LoadsPerDay,
			Seed:        spec.Seed,
		}

		logrus.Infof("Starting simulation with seed=%d, %d lane policies, range %s..%s",
			cfg.Seed, len(policies.Policies), spec.StartDate, spec.EndDate)

		startTime := time.Now()

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
		generator := workload.NewGenerator(spec, rng.ForSubsystem(sim.SubsystemWorkload))

		s := sim.NewSimulator(cfg, policies, generator, rng)
		s.Run()
		s.Metrics.Print(startTime)

		if traceSummary {
			summary := trace.Summarize(s.Trace)
			logrus.Infof("Trace: %d decisions, %d accepted, %d rejected across %d lanes",
				summary.TotalDecisions, summary.AcceptedCount, summary.RejectedCount, summary.UniqueLanes)
			for reason, count := range summary.ReasonCounts {
				logrus.Infof("Trace: rejected %d by %s", count, reason)
			}
		}

		if datasetPath != "" {
			if err := dataset.WriteFile(datasetPath, s.Processed); err != nil {
				logrus.Fatalf("Unable to write dataset: %v", err)
			}
			logrus.Infof("Wrote %d labeled loads to %s", len(s.Processed), datasetPath)
		}

		logrus.Info("Simulation complete.")
	},
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for deterministic runs")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	runCmd.Flags().StringVar(&startDate, "start-date", "2025-02-01", "First pickup date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&endDate, "end-date", "2025-05-31", "Last pickup date (YYYY-MM-DD)")
	runCmd.Flags().IntVar(&loadsPerDay, "loads-per-day", 500, "Offers generated per weekday")
	runCmd.Flags().StringVar(&workloadConfigPath, "workload-config", "", "YAML generation spec path")
	runCmd.Flags().StringVar(&policyConfigPath, "policy-config", "", "YAML lane policy table path")
	runCmd.Flags().StringVar(&datasetPath, "dataset-out", "", "CSV output path for labeled loads")
	runCmd.Flags().BoolVar(&traceSummary, "trace-summary", false, "Log a decision-trace summary after the run")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
