package session

import "fmt"

// pathPrefix labels every generated session entry
const pathPrefix = "sesi"

// Generate returns the session numbers 1..n
func Generate(n int) (Sequence, error) {
	c, err := NewCount(n)
	if err != nil {
		return nil, err
	}
	return c.Sequence(), nil
}

// Path builds the content reference for one session of a category
func Path(category string, n int) string {
	return fmt.Sprintf("%s/%s%d", category, pathPrefix, n)
}

// Paths maps every session number of c into a path under category
func Paths(category string, c Count) []string {
	seq := c.Sequence()
	paths := make([]string, len(seq))
	for i, n := range seq {
		paths[i] = Path(category, n)
	}
	return paths
}
