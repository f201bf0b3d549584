// meta/meta.go
package meta

// NUM_OF_GAMES defines the number of games each match plays.
const NUM_OF_GAMES = 20

// MAX_MOVES caps the placements of a single game. Every placement fills an
// empty cell, so a game never exceeds the 60 free cells of the opening.
const MAX_MOVES = 60

// GO_ROUTINES defines the number of games a match plays in parallel.
const GO_ROUTINES = 8

// OUTPUT_DIR is where tournament results are written.
const OUTPUT_DIR = "results"
