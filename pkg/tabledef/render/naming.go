package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// NamePolicy decides what happens when two sheets end up with the same title.
type NamePolicy string

const (
	// NameError rejects a colliding sheet title.
	NameError NamePolicy = "error"
	// NameSuffix appends "~2", "~3", ... to a colliding title.
	NameSuffix NamePolicy = "suffix"
)

// ErrSheetNameCollision indicates two sheets resolve to the same title.
var ErrSheetNameCollision = errors.New("sheet name collision")

// ParseNamePolicy validates a policy name.
func ParseNamePolicy(s string) (NamePolicy, error) {
	switch NamePolicy(s) {
	case NameError, NameSuffix:
		return NamePolicy(s), nil
	case "":
		return NameError, nil
	}
	return "", fmt.Errorf("invalid sheet name policy: %s (must be error or suffix)", s)
}

// SheetName builds the "<N>.<identifier>" title of a table sheet, cut to the
// worksheet name limit.
func SheetName(number, name string) string {
	return Truncate(number+"."+name, excelize.MaxSheetNameLength)
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// sheetNamer tracks titles already used in a workbook. Titles compare
// case-insensitively, as they do in Excel.
type sheetNamer struct {
	policy NamePolicy
	used   map[string]string
}

func newSheetNamer(policy NamePolicy) *sheetNamer {
	return &sheetNamer{policy: policy, used: make(map[string]string)}
}

func (n *sheetNamer) reserve(name string) (string, error) {
	if _, taken := n.used[strings.ToLower(name)]; !taken {
		n.used[strings.ToLower(name)] = name
		return name, nil
	}
	if n.policy != NameSuffix {
		return "", fmt.Errorf("%w: %q is already used by %q", ErrSheetNameCollision, name, n.used[strings.ToLower(name)])
	}

	for i := 2; ; i++ {
		suffix := fmt.Sprintf("~%d", i)
		candidate := Truncate(name, excelize.MaxSheetNameLength-len(suffix)) + suffix
		if _, taken := n.used[strings.ToLower(candidate)]; !taken {
			n.used[strings.ToLower(candidate)] = candidate
			return candidate, nil
		}
	}
}
