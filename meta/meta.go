// meta/meta.go
package meta

// BOARD_SIZE defines the default board dimension.
const BOARD_SIZE = 3

// GO_ROUTINES defines the number of goroutines for root-parallel search.
const GO_ROUTINES = 1

// DEPTH defines the default ply budget of depth-limited search.
const DEPTH = 3

// STRATEGY defines the default search strategy of the computer player.
const STRATEGY = "alphabeta"
