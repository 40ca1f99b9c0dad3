package game

// Score compares guess against target and returns one mark per letter.
//
// Two passes over a shared letter budget built from target:
//   Pass 1: exact positions are Correct and use up one of their letter.
//   Pass 2: remaining positions, left to right, are Present while that
//           letter still has budget (using one up), Absent otherwise.
//
// Exact matches therefore always win over misplaced ones, and each letter
// of the target is credited at most once. When the guess repeats a letter
// more often than the target has it, earlier positions get the Present.
//
// Score is pure. It returns nil when the lengths differ; callers validate
// guesses first.
func Score(guess, target string) Feedback {
	n := len(target)
	if len(guess) != n {
		return nil
	}
	out := make(Feedback, n)

	remaining := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		remaining[target[i]]++
	}

	// Pass 1: exact positions.
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			out[i] = MarkCorrect
			remaining[guess[i]]--
		}
	}

	// Pass 2: misplaced or absent, in original order.
	for i := 0; i < n; i++ {
		if out[i] == MarkCorrect {
			continue
		}
		c := guess[i]
		if remaining[c] > 0 {
			out[i] = MarkPresent
			remaining[c]--
		} else {
			out[i] = MarkAbsent
		}
	}
	return out
}
