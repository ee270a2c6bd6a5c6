package machine

// Point is the position of a set pixel.
type Point struct {
	Row    int
	Column int
}

// Display returns a copy of the display buffer, indexed by row and column.
func (m *Machine) Display() [DisplayHeight][DisplayWidth]bool {
	return m.display
}

// Points returns the positions of all set pixels in row major order.
func (m *Machine) Points() []Point {
	var points []Point
	for row := range DisplayHeight {
		for col := range DisplayWidth {
			if m.display[row][col] {
				points = append(points, Point{Row: row, Column: col})
			}
		}
	}
	return points
}

// ConsumeDisplayUpdate returns whether the display was cleared or drawn to
// since the last call and resets the indicator.
func (m *Machine) ConsumeDisplayUpdate() bool {
	drawn := m.drawn
	m.drawn = false
	return drawn
}

func (m *Machine) clearDisplay() {
	m.display = [DisplayHeight][DisplayWidth]bool{}
	m.drawn = true
}

// drawSprite draws height rows of the sprite at the index register with the
// top left corner at (x, y). The origin wraps around the display edges,
// the sprite itself is clipped. It returns whether a set pixel was cleared.
func (m *Machine) drawSprite(x, y uint8, height uint8) bool {
	originX := int(x % DisplayWidth)
	originY := int(y % DisplayHeight)
	collision := false

	for row := range int(height) {
		py := originY + row
		if py >= DisplayHeight {
			break
		}

		data, _ := m.read(int(m.index) + row)
		for col := range 8 {
			px := originX + col
			if px >= DisplayWidth {
				break
			}
			if data&(0x80>>col) == 0 {
				continue
			}
			if m.display[py][px] {
				collision = true
			}
			m.display[py][px] = !m.display[py][px]
		}
	}

	m.drawn = true
	return collision
}
