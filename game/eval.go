package game

// Eval counts the lines Max can still complete minus the lines Min can
// still complete. The result lies in [-(2n+2), 2n+2].
func (b Board) Eval() float64 {
	openMax, openMin := b.openLines()
	return float64(openMax - openMin)
}

// openLines tallies, per player, the lines holding no opponent stone.
func (b Board) openLines() (openMax, openMin int) {
	for _, line := range b.lines() {
		if line.count(b, minCell) == 0 {
			openMax++
		}
		if line.count(b, maxCell) == 0 {
			openMin++
		}
	}
	return openMax, openMin
}
