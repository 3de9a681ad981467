package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bb84sim/bb84"
	"bb84sim/internal/config"
	"bb84sim/internal/results"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags roundFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single BB84 round and print its transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.cfg
			flags.apply(cmd.Flags(), cfg)

			sim, err := bb84.NewSimulation(bb84.SimulationOpts{
				QubitCount: cfg.Qubits,
				Intercept:  cfg.Intercept,
				SampleSize: cfg.SampleSize,
				Seed:       cfg.Seed,
				Logger:     ctx.logger,
			})
			if err != nil {
				return err
			}
			res, err := sim.Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(transcriptHeaders(cfg.Intercept), transcriptRows(res)))
			if res.Accepted {
				fmt.Fprintf(out, "accepted: %d-bit key %s\n", res.FinalKey.Size(), res.FinalKey)
			} else {
				fmt.Fprintf(out, "aborted: mismatches at %v\n", res.MismatchIndices)
			}

			return recordRound(cmd.Context(), cfg, res)
		},
	}
	addRoundFlags(cmd.Flags(), &flags)
	return cmd
}

func transcriptHeaders(intercepted bool) []string {
	if intercepted {
		return []string{"#", "alice bit", "alice basis", "eve basis", "eve bit", "bob basis", "bob bit", "fate"}
	}
	return []string{"#", "alice bit", "alice basis", "bob basis", "bob bit", "fate"}
}

// transcriptRows renders one row per qubit: what Alice sent, what each
// measuring party chose and saw, and whether the position was dropped during
// sifting, revealed as a verification sample, or kept for the key.
func transcriptRows(res bb84.Result) [][]string {
	sifted := make(map[int]bool, len(res.SiftedIndices))
	for _, i := range res.SiftedIndices {
		sifted[i] = true
	}
	sampled := make(map[int]bool, len(res.SampleIndices))
	for _, i := range res.SampleIndices {
		sampled[i] = true
	}

	tr := res.Transcript
	intercepted := tr.EveBases.Size() > 0
	rows := make([][]string, 0, tr.AliceBits.Size())
	for i := 0; i < tr.AliceBits.Size(); i++ {
		row := []string{
			strconv.Itoa(i),
			bitLabel(tr.AliceBits.Get(i)),
			basisLabel(tr.AliceBases.Get(i)),
		}
		if intercepted {
			row = append(row, basisLabel(tr.EveBases.Get(i)), bitLabel(tr.EveBits.Get(i)))
		}
		fate := "dropped"
		switch {
		case sampled[i]:
			fate = "sampled"
		case sifted[i]:
			fate = "key"
		}
		row = append(row,
			basisLabel(tr.BobBases.Get(i)),
			bitLabel(tr.BobBits.Get(i)),
			fate,
		)
		rows = append(rows, row)
	}
	return rows
}

func bitLabel(bit bool) string {
	if bit {
		return "1"
	}
	return "0"
}

func basisLabel(isX bool) string {
	if isX {
		return "X"
	}
	return "Z"
}

// recordRound persists the outcome when a results database is configured.
func recordRound(ctx context.Context, cfg *config.Config, res bb84.Result) error {
	if cfg.ResultsDB == "" {
		return nil
	}
	store, err := results.Open(cfg.ResultsDB)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Add(ctx, results.Record{
		Qubits:      res.Stats.QubitCount,
		Intercepted: res.Stats.Intercepted,
		SampleSize:  cfg.SampleSize,
		Seed:        cfg.Seed,
		Accepted:    res.Accepted,
		QBER:        res.Stats.QBER,
		SiftedBits:  res.Stats.SiftedBits,
		KeyBits:     res.Stats.KeyBits,
		Key:         res.FinalKey.String(),
	})
	return err
}
