package circuit

import (
	"slices"
	"testing"
)

func reportSymbols(list []*Receiver) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Symbol()
	}
	return out
}

func TestReportOrdering(t *testing.T) {
	c := New(5, 5)
	specs := []struct {
		sym    string
		tick   int
		energy []int
	}{
		{"R3", 2, []int{10}},
		{"R1", 2, []int{4, 6}},
		{"R0", 1, []int{3}},
		{"R2", 5, []int{40}},
		{"R4", 0, nil},
	}
	for i, s := range specs {
		r := NewReceiver(s.sym, i, 0)
		mustPlace(t, c, r)
		for _, f := range s.energy {
			r.absorb(NewPhoton(r.Position(), East, f), s.tick)
		}
	}

	rep := c.Report()
	if got := reportSymbols(rep.Activation); !slices.Equal(got, []string{"R0", "R1", "R3", "R2"}) {
		t.Fatalf("activation order = %v", got)
	}
	if got := reportSymbols(rep.Energy); !slices.Equal(got, []string{"R2", "R1", "R3", "R0"}) {
		t.Fatalf("energy order = %v", got)
	}
	if c.ActivatedCount() != 4 {
		t.Fatalf("activated = %d, want 4", c.ActivatedCount())
	}
}

func TestDemoReport(t *testing.T) {
	c, err := Scenario("demo", DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	rep, err := c.Run(RunOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := reportSymbols(rep.Activation); !slices.Equal(got, []string{"R1", "R0", "R2"}) {
		t.Fatalf("activation order = %v", got)
	}
	if got := reportSymbols(rep.Energy); !slices.Equal(got, []string{"R0", "R1", "R2"}) {
		t.Fatalf("energy order = %v", got)
	}
	want := map[string][2]int{"R0": {11, 650}, "R1": {8, 500}, "R2": {15, 430}}
	for _, r := range rep.Energy {
		w := want[r.Symbol()]
		if r.ActivationTime() != w[0] || r.Energy() != w[1] {
			t.Fatalf("%s: time=%d energy=%d, want %v", r.Symbol(), r.ActivationTime(), r.Energy(), w)
		}
	}
}
