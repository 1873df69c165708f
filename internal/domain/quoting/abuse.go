package quoting

import (
	"strings"
	"unicode"
)

var abuseStems = []string{"fuck", "shit", "cunt", "bitch", "asshole"}

var weakGreetings = map[string]bool{
	"hi": true, "hello": true, "hey": true, "oi": true, "yo": true, "hiya": true, "g'day": true, "gday": true,
}

// innocentWords contain an abusive stem but are not abuse.
var innocentWords = map[string]bool{"scunthorpe": true, "shitake": true}

// ContainsAbuse reports whether any word of message contains a known abusive
// stem, case-insensitively. Words in innocentWords never match.
func ContainsAbuse(message string) bool {
	for _, word := range words(message) {
		if innocentWords[word] {
			continue
		}
		for _, stem := range abuseStems {
			if strings.Contains(word, stem) {
				return true
			}
		}
	}
	return false
}

// IsWeakGreeting reports whether message is a bare greeting with nothing to extract.
func IsWeakGreeting(message string) bool {
	s := strings.ToLower(strings.TrimSpace(message))
	s = strings.TrimRight(s, "!.?, ")
	return weakGreetings[s]
}

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
