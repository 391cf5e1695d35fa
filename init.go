package chess

// init performs the one-time attack-table setup the rest of the package
// depends on (spec.md §6): leaper tables first since they are pure lookups,
// then the magic-number search for sliding pieces. Nothing in this package
// generates a move before this has run.
func init() {
	initLeaperAttacks()
	initMagics()
}
