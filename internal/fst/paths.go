package fst

// EnumeratePaths walks every accepting path of f (depth-first, with cycle
// detection) and returns each as a Path whose Weight is the final weight
// of the state the path ends in; arc weights are not added (callers
// that need full path weights should use ShortestPath instead; this is for finite,
// small lookup machines such as digit tables and rune classes, where the
// spec's cdrewrite and difference need to inspect the literal (input,
// output) pairs a machine encodes rather than search it).
//
// Returns ok=false if f contains a cycle or has more than limit distinct
// paths, since then it is not the small literal machine this helper is
// meant for.
func EnumeratePaths(f *Fst, limit int) ([]Path, bool) {
	type frame struct {
		state  int
		input  string
		output string
	}
	var results []Path
	onPath := make(map[int]bool)

	var walk func(fr frame) bool
	walk = func(fr frame) bool {
		if onPath[fr.state] {
			return false
		}
		onPath[fr.state] = true
		defer func() { onPath[fr.state] = false }()

		if fa, w := f.IsFinal(fr.state); fa {
			results = append(results, Path{Input: fr.input, Output: fr.output, Weight: w})
			if len(results) > limit {
				return false
			}
		}
		for _, arc := range f.ArcsFrom(fr.state) {
			next := frame{state: arc.To, input: fr.input, output: fr.output}
			if arc.In != Epsilon && arc.In != Any {
				next.input += string(arc.In)
			}
			if arc.Out != Epsilon && arc.Out != Any {
				next.output += string(arc.Out)
			}
			if !walk(next) {
				return false
			}
		}
		return true
	}

	if !walk(frame{state: f.Start}) {
		return nil, false
	}
	return results, true
}
