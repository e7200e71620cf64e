package core

import "strconv"

// Stat is a single labelled value shown on a viewer status panel.
type Stat struct {
	Key   string
	Label string
	Value string
}

// StatGroup clusters related stats for presentation purposes.
type StatGroup struct {
	Name  string
	Stats []Stat
}

// StatusSnapshot captures what a viewer shows next to the board.
type StatusSnapshot struct {
	Groups []StatGroup
}

// StatusProvider is implemented by sims that expose a status panel.
type StatusProvider interface {
	Status() StatusSnapshot
}

// IntStat formats an integer stat.
func IntStat(key, label string, value int) Stat {
	return Stat{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// TextStat wraps a preformatted stat.
func TextStat(key, label, value string) Stat {
	return Stat{Key: key, Label: label, Value: value}
}

// Lines flattens the snapshot into "Label: value" lines, with each group
// introduced by its name.
func (s StatusSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name != "" {
			lines = append(lines, g.Name)
		}
		for _, st := range g.Stats {
			lines = append(lines, "  "+st.Label+": "+st.Value)
		}
	}
	return lines
}
