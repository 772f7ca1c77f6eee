package glyph

// table maps characters to lit segments. Letters that a 7-segment digit
// cannot draw faithfully (K, M, V, W, X, Z) use a recognisable approximation.
// B and D deliberately use the lower case shapes so they are not confused
// with 8 and 0.
var table = map[rune]Set{
	'0': NewSet(A, B, C, D, E, F),
	'1': NewSet(B, C),
	'2': NewSet(A, B, D, E, G),
	'3': NewSet(A, B, C, D, G),
	'4': NewSet(B, C, F, G),
	'5': NewSet(A, C, D, F, G),
	'6': NewSet(A, C, D, E, F, G),
	'7': NewSet(A, B, C),
	'8': All,
	'9': NewSet(A, B, C, D, F, G),

	'A': NewSet(A, B, C, E, F, G),
	'B': NewSet(C, D, E, F, G),
	'C': NewSet(A, D, E, F),
	'D': NewSet(B, C, D, E, G),
	'E': NewSet(A, D, E, F, G),
	'F': NewSet(A, E, F, G),
	'G': NewSet(A, C, D, E, F),
	'H': NewSet(B, C, E, F, G),
	'I': NewSet(B, C),
	'J': NewSet(B, C, D, E),
	'K': NewSet(B, C, E, F, G), // approximate
	'L': NewSet(D, E, F),
	'M': NewSet(A, C, E), // approximate
	'N': NewSet(C, E, G),
	'O': NewSet(A, B, C, D, E, F),
	'P': NewSet(A, B, E, F, G),
	'Q': NewSet(A, B, C, F, G),
	'R': NewSet(E, G),
	'S': NewSet(A, C, D, F, G),
	'T': NewSet(D, E, F, G),
	'U': NewSet(B, C, D, E, F),
	'V': NewSet(C, D, E),       // approximate
	'W': NewSet(B, D, F),       // approximate
	'X': NewSet(B, C, E, F, G), // approximate
	'Y': NewSet(B, C, D, F, G),
	'Z': NewSet(A, B, D, E), // approximate

	// Lower case shapes that differ from their upper case entry.
	// Everything else falls through to the upper case glyph.
	'b': NewSet(C, D, E, F, G),
	'c': NewSet(D, E, G),
	'd': NewSet(B, C, D, E, G),
	'h': NewSet(C, E, F, G),
	'i': NewSet(C),
	'n': NewSet(C, E, G),
	'o': NewSet(C, D, E, G),
	'r': NewSet(E, G),
	't': NewSet(D, E, F, G),
	'u': NewSet(C, D, E),
	'y': NewSet(B, C, D, F, G),

	' ':  0,
	'-':  NewSet(G),
	'_':  NewSet(D),
	'=':  NewSet(D, G),
	'°':  NewSet(A, B, F, G),
	'"':  NewSet(B, F),
	'\'': NewSet(F),
	'[':  NewSet(A, D, E, F),
	']':  NewSet(A, B, C, D),
	'(':  NewSet(A, D, E, F),
	')':  NewSet(A, B, C, D),
	'*':  All,
	'!':  NewSet(B, C), // approximate
	'?':  NewSet(A, B, E, G),
	'.':  0, // no decimal point segment
	',':  0,

	'/':  NewSet(B, E, G),
	'\\': NewSet(C, F, G),
	'|':  NewSet(E, F),
	'^':  NewSet(A, B, F),
	'~':  NewSet(A),
}
