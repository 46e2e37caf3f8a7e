package canvas

// CharacterMerger handles the merging of two characters at the same position
type CharacterMerger struct {
	mergeMap map[mergePair]rune
}

type mergePair struct {
	existing rune
	new      rune
}

// NewCharacterMerger creates a merger with standard box-drawing merge rules
func NewCharacterMerger() *CharacterMerger {
	m := &CharacterMerger{
		mergeMap: make(map[mergePair]rune),
	}
	m.initializeMergeRules()
	return m
}

// Merge combines two characters according to box-drawing rules
func (m *CharacterMerger) Merge(existing, new rune) rune {
	if existing == ' ' || existing == '\x00' {
		return new
	}
	if existing == new {
		return existing
	}

	// Arrows are never overwritten
	if isArrow(existing) {
		return existing
	}
	if isArrow(new) {
		return new
	}

	if merged, ok := m.mergeMap[mergePair{existing, new}]; ok {
		return merged
	}
	if merged, ok := m.mergeMap[mergePair{new, existing}]; ok {
		return merged
	}

	return existing
}

func isArrow(r rune) bool {
	switch r {
	case '▶', '◀', '▲', '▼', '>', '<', '^', 'v':
		return true
	}
	return false
}

func (m *CharacterMerger) initializeMergeRules() {
	m.mergeMap[mergePair{'─', '│'}] = '┼'

	// Corner + line = T-junction
	m.mergeMap[mergePair{'╭', '─'}] = '┬'
	m.mergeMap[mergePair{'╭', '│'}] = '├'
	m.mergeMap[mergePair{'╮', '─'}] = '┬'
	m.mergeMap[mergePair{'╮', '│'}] = '┤'
	m.mergeMap[mergePair{'╰', '─'}] = '┴'
	m.mergeMap[mergePair{'╰', '│'}] = '├'
	m.mergeMap[mergePair{'╯', '─'}] = '┴'
	m.mergeMap[mergePair{'╯', '│'}] = '┤'

	// T-junction crossed by a perpendicular line
	m.mergeMap[mergePair{'┬', '│'}] = '┼'
	m.mergeMap[mergePair{'┴', '│'}] = '┼'
	m.mergeMap[mergePair{'├', '─'}] = '┼'
	m.mergeMap[mergePair{'┤', '─'}] = '┼'

	// Opposite corners
	m.mergeMap[mergePair{'╭', '╯'}] = '┼'
	m.mergeMap[mergePair{'╮', '╰'}] = '┼'
	m.mergeMap[mergePair{'╭', '╮'}] = '┬'
	m.mergeMap[mergePair{'╰', '╯'}] = '┴'
	m.mergeMap[mergePair{'╭', '╰'}] = '├'
	m.mergeMap[mergePair{'╮', '╯'}] = '┤'

	// ASCII fallbacks
	m.mergeMap[mergePair{'-', '|'}] = '+'
	m.mergeMap[mergePair{'+', '-'}] = '+'
	m.mergeMap[mergePair{'+', '|'}] = '+'
}
