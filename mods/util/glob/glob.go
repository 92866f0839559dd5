package glob

// Match returns true when str matches pattern. The pattern syntax is the
// usual wildcard form: '*' matches any sequence (including empty),
// '?' matches exactly one character.
func Match(pattern, str string) (bool, error) {
	var px, sx int
	var starPx, starSx = -1, 0
	for sx < len(str) {
		switch {
		case px < len(pattern) && (pattern[px] == '?' || pattern[px] == str[sx]):
			px++
			sx++
		case px < len(pattern) && pattern[px] == '*':
			starPx = px
			starSx = sx
			px++
		case starPx >= 0:
			px = starPx + 1
			starSx++
			sx = starSx
		default:
			return false, nil
		}
	}
	for px < len(pattern) && pattern[px] == '*' {
		px++
	}
	return px == len(pattern), nil
}

// IsGlob returns true when the pattern contains wildcard characters.
func IsGlob(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?':
			return true
		}
	}
	return false
}
