// Package callback packs navigation intent into compact callback data and
// parses it back. The token is the only state carried between screen
// renders.
package callback

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	prefix = "menu"
	sep    = ":"
)

// MenuCallback is the navigation token attached to every inline button.
// MenuName must not contain the ":" separator.
type MenuCallback struct {
	Level     int
	MenuName  string
	Category  int64
	Page      int
	ProductID int64
}

// Pack encodes the token as menu:<level>:<name>:<category>:<page>:<product>.
// Unset optionals are encoded empty, Page defaults to 1.
func (cd MenuCallback) Pack() string {
	page := cd.Page
	if page == 0 {
		page = 1
	}

	category := ""
	if cd.Category != 0 {
		category = strconv.FormatInt(cd.Category, 10)
	}
	product := ""
	if cd.ProductID != 0 {
		product = strconv.FormatInt(cd.ProductID, 10)
	}

	return strings.Join([]string{
		prefix,
		strconv.Itoa(cd.Level),
		cd.MenuName,
		category,
		strconv.Itoa(page),
		product,
	}, sep)
}

// Unpack parses callback data produced by Pack.
func Unpack(data string) (MenuCallback, error) {
	parts := strings.Split(data, sep)
	if len(parts) != 6 || parts[0] != prefix {
		return MenuCallback{}, fmt.Errorf("callback: not a menu token: %q", data)
	}

	level, err := strconv.Atoi(parts[1])
	if err != nil {
		return MenuCallback{}, fmt.Errorf("callback: bad level %q: %w", parts[1], err)
	}

	cd := MenuCallback{
		Level:    level,
		MenuName: parts[2],
		Page:     1,
	}

	if parts[3] != "" {
		cd.Category, err = strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return MenuCallback{}, fmt.Errorf("callback: bad category %q: %w", parts[3], err)
		}
	}
	if parts[4] != "" {
		cd.Page, err = strconv.Atoi(parts[4])
		if err != nil {
			return MenuCallback{}, fmt.Errorf("callback: bad page %q: %w", parts[4], err)
		}
	}
	if parts[5] != "" {
		cd.ProductID, err = strconv.ParseInt(parts[5], 10, 64)
		if err != nil {
			return MenuCallback{}, fmt.Errorf("callback: bad product %q: %w", parts[5], err)
		}
	}

	return cd, nil
}

// IsMenu reports whether callback data carries a menu navigation token.
func IsMenu(data string) bool {
	return strings.HasPrefix(data, prefix+sep)
}
