package runner

import "github.com/retroenv/retrochip8/internal/machine"

// mockRenderer records the last rendered frame.
type mockRenderer struct {
	points []machine.Point
	count  int
	err    error
}

func (r *mockRenderer) Render(display [machine.DisplayHeight][machine.DisplayWidth]bool) error {
	r.count++
	r.points = r.points[:0]
	for row := range machine.DisplayHeight {
		for col := range machine.DisplayWidth {
			if display[row][col] {
				r.points = append(r.points, machine.Point{Row: row, Column: col})
			}
		}
	}
	return r.err
}
