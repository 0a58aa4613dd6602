package evaluator

// Category is a tactical classification of one line through one stone.
type Category int

const (
	Win5 Category = iota
	Live4
	Open4
	Live3
	Open3
	Self2
	Enemy2
	NumCategories
)

var categoryNames = [NumCategories]string{"win5", "live4", "open4", "live3", "open3", "self2", "enemy2"}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Weights converts a tally into points. Self2 and Enemy2 are never counted
// by the classifier.
var Weights = [NumCategories]float64{
	Win5:   1000000,
	Live4:  2000,
	Open4:  1400,
	Live3:  1000,
	Open3:  400,
	Self2:  200,
	Enemy2: 50,
}

// Window symbols.
const (
	symEmpty   = '.'
	symOwn     = 'O'
	symBlocked = 'X'
)

// The windows are read along a direction. A five window spans offsets
// -2..+2, a six window -2..+3, and a seven window -3..+3, so the stone
// being classified always sits at index 2 (five, six) or 3 (seven).
var (
	fivePatterns = map[string]Category{
		"OOOOO": Win5,
	}

	sixPatterns = map[string]Category{
		".OOOO.": Live4,

		"XOOOO.": Open4,
		".OOOOX": Open4,
		"OOO.O.": Open4,
		"OOO.OX": Open4,
		"O.OOO.": Open4,
		"O.OOOX": Open4,
		".OOO.O": Open4,
		"XOOO.O": Open4,
		".OO.OO": Open4,
		"XOO.OO": Open4,
	}

	sevenPatterns = map[string]Category{
		"..OOO..": Live3,
		".OOO...": Live3,
		"...OOO.": Live3,
		"X.OOO..": Live3,
		"..OOO.X": Live3,
		".O.OO..": Live3,
		"..OO.O.": Live3,

		"XOOO...": Open3,
		"...OOOX": Open3,
		".XOOO..": Open3,
		"..OOOX.": Open3,
		"XXOOO..": Open3,
		"..OOOXX": Open3,
		"OXOOO..": Open3,
		"..OOOXO": Open3,
		"XO.OO..": Open3,
		"..OO.OX": Open3,
	}
)
