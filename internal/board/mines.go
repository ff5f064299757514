package board

// placeMines lays out mineCount mines uniformly at random over every cell
// except exclude, using a partial Fisher-Yates shuffle of the candidates.
func (b *Board) placeMines(exclude int) {
	candidates := make([]int, 0, len(b.mines)-1)
	for i := range b.mines {
		if i != exclude {
			candidates = append(candidates, i)
		}
	}

	for k := 0; k < b.mineCount; k++ {
		j := k + b.rng.Intn(len(candidates)-k)
		candidates[k], candidates[j] = candidates[j], candidates[k]
		b.mines[candidates[k]] = true
	}
}

// Mines returns the positions of every mine, in row-major order.
// Empty before the first reveal.
func (b *Board) Mines() []Position {
	positions := make([]Position, 0, b.mineCount)
	for i, mine := range b.mines {
		if mine {
			row, col := b.position(i)
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}
