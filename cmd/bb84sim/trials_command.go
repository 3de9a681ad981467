package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"bb84sim/bb84"
	"bb84sim/internal/results"
)

func newTrialsCommand(ctx *commandContext) *cobra.Command {
	var flags roundFlags
	var trials int
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Run many BB84 rounds and aggregate their statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.cfg
			flags.apply(cmd.Flags(), cfg)
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if cfg.Trials < 1 {
				return fmt.Errorf("trials must be positive, got %d", cfg.Trials)
			}

			var store *results.Store
			if cfg.ResultsDB != "" {
				var err error
				store, err = results.Open(cfg.ResultsDB)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			var (
				qbers    []float64
				keyBits  []float64
				accepted int
				short    int
			)
			for i := 0; i < cfg.Trials; i++ {
				seed := cfg.Seed + int64(i)
				sim, err := bb84.NewSimulation(bb84.SimulationOpts{
					QubitCount: cfg.Qubits,
					Intercept:  cfg.Intercept,
					SampleSize: cfg.SampleSize,
					Seed:       seed,
					Logger:     ctx.logger,
				})
				if err != nil {
					return err
				}
				res, err := sim.Run()
				if errors.Is(err, bb84.ErrInsufficientKeyMaterial) {
					// The sifted key came up shorter than the sample; tally
					// and move on rather than killing the whole batch.
					short++
					continue
				}
				if err != nil {
					return err
				}
				qbers = append(qbers, res.Stats.QBER)
				keyBits = append(keyBits, float64(res.Stats.KeyBits))
				if res.Accepted {
					accepted++
				}
				if store != nil {
					if _, err := store.Add(cmd.Context(), results.Record{
						Qubits:      res.Stats.QubitCount,
						Intercepted: res.Stats.Intercepted,
						SampleSize:  cfg.SampleSize,
						Seed:        seed,
						Accepted:    res.Accepted,
						QBER:        res.Stats.QBER,
						SiftedBits:  res.Stats.SiftedBits,
						KeyBits:     res.Stats.KeyBits,
						Key:         res.FinalKey.String(),
					}); err != nil {
						return err
					}
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"trials", "accepted", "aborted", "short", "mean QBER", "QBER stddev", "mean key bits"},
				[][]string{summaryRow(cfg.Trials, accepted, short, qbers, keyBits)},
			))
			return nil
		},
	}
	addRoundFlags(cmd.Flags(), &flags)
	cmd.Flags().IntVar(&trials, "trials", 0, "Number of rounds to run")
	return cmd
}

func summaryRow(trials, accepted, short int, qbers, keyBits []float64) []string {
	aborted := trials - short - accepted
	meanQBER, sdQBER, meanKey := 0.0, 0.0, 0.0
	if len(qbers) > 0 {
		meanQBER = stat.Mean(qbers, nil)
		meanKey = stat.Mean(keyBits, nil)
	}
	if len(qbers) > 1 {
		sdQBER = stat.StdDev(qbers, nil)
	}
	return []string{
		strconv.Itoa(trials),
		strconv.Itoa(accepted),
		strconv.Itoa(aborted),
		strconv.Itoa(short),
		fmt.Sprintf("%.4f", meanQBER),
		fmt.Sprintf("%.4f", sdQBER),
		fmt.Sprintf("%.1f", meanKey),
	}
}
