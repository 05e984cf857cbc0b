//go:build !darwin && !windows

package clip

// nativeBoard reports that this platform has no unconditional native
// clipboard; the resolver falls through to environment probing.
func nativeBoard() (Board, bool) { return Board{}, false }
