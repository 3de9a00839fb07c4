package storage

import (
	"math"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	points := []Point{
		{JD: 2455013.5, DPsi: 14.7823, DEps: 4.3391},
		{JD: 2455014.5, DPsi: 14.7901, DEps: 4.3402},
	}
	meta := RunMetadata{Method: "iau2000", FromJD: 2455013.5, ToJD: 2455014.5, StepDays: 1}

	id, err := s.Save(meta, points)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty run id")
	}

	loaded, err := s.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Method != "iau2000" || loaded.Points != 2 {
		t.Errorf("metadata mismatch: %+v", loaded)
	}

	series, err := s.LoadSeries(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(series))
	}
	for i := range points {
		if series[i].JD != points[i].JD {
			t.Errorf("point %d JD %f, want %f", i, series[i].JD, points[i].JD)
		}
		if math.Abs(series[i].DPsi-points[i].DPsi) > 1e-9 {
			t.Errorf("point %d dPsi %f, want %f", i, series[i].DPsi, points[i].DPsi)
		}
	}
}

func TestListEmpty(t *testing.T) {
	s := New(t.TempDir() + "/does-not-exist")
	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save(RunMetadata{Method: "iau1976"}, []Point{{JD: 1}}); err != nil {
		t.Fatal(err)
	}
	runs, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Method != "iau1976" {
		t.Errorf("unexpected listing: %+v", runs)
	}
}

func TestLoadMissingRun(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := s.LoadSeries("nope"); err == nil {
		t.Error("expected error for missing series")
	}
}
