package utils

import (
	"errors"
	"regexp"

	nurl "net/url"
)

var (
	ErrInvalidUrl = errors.New("invalid url")

	urlRe = regexp.MustCompile(`(?m)(https?:\/\/[^\s]+)`)
)

// ExtractURL pulls the first http(s) url out of free-form input, pasted
// command lines tend to carry extra text around the link.
func ExtractURL(str string) (u *nurl.URL, err error) {
	raw := urlRe.FindString(str)
	if raw == "" {
		err = ErrInvalidUrl
		return
	}
	u, errp := nurl.ParseRequestURI(raw)
	if errp != nil {
		err = ErrInvalidUrl
		return
	}
	return
}
