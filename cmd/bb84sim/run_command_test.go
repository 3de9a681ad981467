package main

import (
	"strconv"
	"testing"

	"bb84sim/bb84"
)

func TestTranscriptRows(t *testing.T) {
	sim, err := bb84.NewSimulation(bb84.SimulationOpts{QubitCount: 8, SampleSize: 2, Seed: 42})
	if err != nil {
		t.Fatalf("building simulation: %v", err)
	}
	res, err := sim.Run()
	if err != nil {
		t.Fatalf("running round: %v", err)
	}

	rows := transcriptRows(res)
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(rows))
	}
	// No interception: index, alice bit, alice basis, bob basis, bob bit, fate.
	if len(rows[0]) != 6 {
		t.Fatalf("got %d columns, want 6", len(rows[0]))
	}

	fates := make(map[string]int)
	for i, row := range rows {
		if row[0] != strconv.Itoa(i) {
			t.Errorf("row %d index column == %q", i, row[0])
		}
		fates[row[5]]++
	}
	if fates["sampled"] != len(res.SampleIndices) {
		t.Errorf("got %d sampled rows, want %d", fates["sampled"], len(res.SampleIndices))
	}
	if fates["key"] != res.FinalKey.Size() {
		t.Errorf("got %d key rows, want %d", fates["key"], res.FinalKey.Size())
	}
	if fates["dropped"] != 8-len(res.SiftedIndices) {
		t.Errorf("got %d dropped rows, want %d", fates["dropped"], 8-len(res.SiftedIndices))
	}
}

func TestSummaryRow(t *testing.T) {
	row := summaryRow(4, 2, 1, []float64{0.0, 0.5}, []float64{6, 4})
	want := []string{"4", "2", "1", "1", "0.2500", "0.3536", "5.0"}
	if len(row) != len(want) {
		t.Fatalf("got %d cells, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %d == %q, want %q", i, row[i], want[i])
		}
	}
}
