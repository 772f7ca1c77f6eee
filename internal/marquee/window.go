package marquee

// Pad is the number of blank cells placed before and after the text while
// scrolling, so repetitions of the text are separated by a visible gap.
const Pad = 3

// Period is the number of ticks after which a scrolling window repeats.
func Period(text []rune) int {
	return len(text) + 2*Pad
}

// Advance returns the offset that follows offset for text.
func Advance(offset int, text []rune) int {
	return mod(offset+1, Period(text))
}

// Window returns exactly digits characters to show for the current frame.
//
// Without scrolling the text is right padded with spaces and truncated.
// With scrolling the window is a circular view over "   "+text+"   "
// starting at offset.
func Window(text []rune, digits, offset int, scrolling bool) []rune {
	if digits <= 0 {
		return []rune{}
	}
	out := make([]rune, digits)
	if !scrolling {
		for i := range out {
			if i < len(text) {
				out[i] = text[i]
			} else {
				out[i] = ' '
			}
		}
		return out
	}

	n := Period(text)
	for i := range out {
		j := mod(offset+i, n)
		if j < Pad || j >= Pad+len(text) {
			out[i] = ' '
			continue
		}
		out[i] = text[j-Pad]
	}
	return out
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
