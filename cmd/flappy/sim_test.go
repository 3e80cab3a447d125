package main

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func defaultSimOptions() simOptions {
	return simOptions{
		Ticks:     3000,
		FlapEvery: 18,
		FlapHold:  2,
		TickRate:  60,
		Seed:      42,
		Game:      config.DefaultFlappyConfig(),
	}
}

func TestRunSimulationIsDeterministic(t *testing.T) {
	a, err := runSimulation(defaultSimOptions())
	if err != nil {
		t.Fatalf("runSimulation: %v", err)
	}
	b, err := runSimulation(defaultSimOptions())
	if err != nil {
		t.Fatalf("runSimulation: %v", err)
	}

	if a.RunID == b.RunID {
		t.Error("run ids should be unique")
	}
	a.RunID, b.RunID = "", ""
	if a != b {
		t.Errorf("summaries differ:\n%+v\n%+v", a, b)
	}
}

func TestRunSimulationCountsRuns(t *testing.T) {
	s, err := runSimulation(defaultSimOptions())
	if err != nil {
		t.Fatalf("runSimulation: %v", err)
	}
	if s.Ticks != 3000 {
		t.Errorf("Ticks = %d, want 3000", s.Ticks)
	}
	if s.Runs < 1 {
		t.Errorf("Runs = %d, want at least 1", s.Runs)
	}
	if s.Flaps < s.Runs {
		t.Errorf("Flaps = %d, want at least one per run (%d)", s.Flaps, s.Runs)
	}
	if s.Crashes > s.Runs {
		t.Errorf("Crashes = %d, more than runs %d", s.Crashes, s.Runs)
	}
	if s.Points < s.Best {
		t.Errorf("Points = %d, below best score %d", s.Points, s.Best)
	}
	if s.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", s.Skipped)
	}
}

func TestRunSimulationSingleFlap(t *testing.T) {
	opts := defaultSimOptions()
	opts.FlapEvery = opts.Ticks + 1
	opts.FlapHold = 1
	opts.Ticks = 100
	s, err := runSimulation(opts)
	if err != nil {
		t.Fatalf("runSimulation: %v", err)
	}
	// tick 0 is the only flap, which starts the first run
	if s.Runs != 1 || s.Final.Mode == flappy.ModeAwaitingStart {
		t.Errorf("runs = %d, final mode %v; want one started run", s.Runs, s.Final.Mode)
	}
}

func TestRunSimulationRejectsBadOptions(t *testing.T) {
	opts := defaultSimOptions()
	opts.FlapEvery = 0
	if _, err := runSimulation(opts); err == nil {
		t.Error("expected error for flap-every 0")
	}
}

func TestProfileOption(t *testing.T) {
	tests := []struct {
		name    string
		wantNil bool
		wantErr bool
	}{
		{"", true, false},
		{"cpu", false, false},
		{"mem", false, false},
		{"block", true, true},
	}
	for _, tt := range tests {
		mode, err := profileOption(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("profileOption(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if (mode == nil) != tt.wantNil {
			t.Errorf("profileOption(%q) mode nil = %v, want %v", tt.name, mode == nil, tt.wantNil)
		}
	}
}

func TestRunSimReturnsErrorForUnknownProfile(t *testing.T) {
	prev := flagProfile
	flagProfile = "block"
	t.Cleanup(func() { flagProfile = prev })

	var out bytes.Buffer
	simCmd.SetOut(&out)
	t.Cleanup(func() { simCmd.SetOut(nil) })

	if err := runSim(simCmd, nil); err == nil {
		t.Fatal("runSim accepted an unknown profile")
	}
	if out.Len() != 0 {
		t.Errorf("runSim printed a summary before failing:\n%s", out.String())
	}
}
