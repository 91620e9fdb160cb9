package util

import "github.com/kballard/go-shellquote"

// ShellQuote joins the arguments into a single string, quoting each so
// the result can be passed to a shell unchanged.
func ShellQuote(args ...string) string {
	return shellquote.Join(args...)
}

// ShellUnquote splits a string into words using shell quoting rules.
func ShellUnquote(s string) ([]string, error) {
	return shellquote.Split(s)
}

// ShellUnquoteFirst returns the first word of a shell-quoted string.
func ShellUnquoteFirst(s string) (string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", nil
	}
	return words[0], nil
}
