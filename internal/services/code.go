package services

import (
	"fmt"
	"strconv"
	"strings"
)

const codePrefix = "JOB-"

// NextJobCode derives the next sequential job code from the code of the
// most recently inserted job. With no prior job it starts at "JOB-01". The
// numeric suffix is zero-padded to two digits but keeps growing past 99
// ("JOB-99" -> "JOB-100").
//
// A stored code that does not look like JOB-<number> means the table has
// been corrupted; that is reported as an error, never papered over with a
// fresh default.
func NextJobCode(lastCode string) (string, error) {
	if lastCode == "" {
		return codePrefix + "01", nil
	}
	if !strings.HasPrefix(lastCode, codePrefix) {
		return "", fmt.Errorf("malformed job code %q", lastCode)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(lastCode, codePrefix))
	if err != nil {
		return "", fmt.Errorf("malformed job code %q: %w", lastCode, err)
	}
	return fmt.Sprintf("%s%02d", codePrefix, n+1), nil
}
