package service

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// A number optionally followed by "km" wins; any bare number is the
	// fallback. The collaborator replies in free text, so both are needed.
	kmPattern     = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s*km`)
	numberPattern = regexp.MustCompile(`\d+[.,]?\d*`)
)

// ExtractDistance pulls a distance out of the collaborator's free-form
// reply and formats it as "<number> km", normalizing a comma decimal
// separator to a period. A reply without any number fails with
// ErrNoValidResponse.
func ExtractDistance(reply string) (string, error) {
	var num string
	if m := kmPattern.FindStringSubmatch(reply); m != nil {
		num = m[1]
	} else if m := numberPattern.FindString(reply); m != "" {
		num = m
	} else {
		return "", WrapError(ErrNoValidResponse, "no distance in reply")
	}

	num = strings.ReplaceAll(num, ",", ".")
	return fmt.Sprintf("%s km", num), nil
}
