package config

// SheetLayout describes how the actor sprite sheet is packed.
// Walk rows come first, one per facing; the idle rows repeat the same
// order IdleRowOffset rows further down.
type SheetLayout struct {
	WalkRows      [4]int
	IdleRowOffset int
}

// Rows returns the total number of rows in the sheet.
func (l SheetLayout) Rows() int {
	return l.IdleRowOffset + len(l.WalkRows)
}

// WalkRow returns the walking row for f.
func (l SheetLayout) WalkRow(f Facing) int {
	return l.WalkRows[f]
}

// IdleRow returns the standing row for f.
func (l SheetLayout) IdleRow(f Facing) int {
	return l.IdleRowOffset + l.WalkRows[f]
}

// Sheet is the layout used by the generated actor sheet.
var Sheet = SheetLayout{
	WalkRows: [4]int{
		North: 0,
		West:  1,
		South: 2,
		East:  3,
	},
	IdleRowOffset: 4,
}
