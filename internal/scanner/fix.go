// Package scanner holds bufio helpers shared by the parsers in this module.
package scanner

import "bufio"

// SkipEmpty wraps a bufio.SplitFunc so that a split step which consumes input
// without producing a token is retried on the remaining data rather than
// handed back to the bufio.Scanner.
//
// A plain bufio.Scanner stops at EOF as soon as the SplitFunc returns a nil
// token, even if plenty of data remains. With this wrapper, the scan stops
// only when:
//
//   - a token is returned,
//   - the split function returns an error,
//   - the split function asks for more data (advance == 0), or
//   - all the data has been consumed.
//
// Advances from each inner pass are summed so the outer scanner moves past
// everything the split function consumed.
func SkipEmpty(split bufio.SplitFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		total := 0
		for {
			advance, token, err := split(data, atEOF)
			if token != nil || err != nil || advance == 0 || len(data)-advance <= 0 {
				return total + advance, token, err
			}

			data = data[advance:]
			total += advance
		}
	}
}
