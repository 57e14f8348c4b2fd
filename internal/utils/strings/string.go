package strings

import "fmt"

// Pluralize picks the word form that agrees with count.
func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count formats count followed by the agreeing word form, e.g. "1 error", "3 errors".
func Count(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(singular, plural, count))
}
