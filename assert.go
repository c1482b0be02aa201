package main

// assert aborts on err. Puzzle inputs are trusted local files, so there
// is nothing to recover from.
func assert(err error) {
	if err != nil {
		panic(err)
	}
}
