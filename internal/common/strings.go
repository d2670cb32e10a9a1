package common

import "strings"

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// SplitQualified splits "Owner.Member" at the last dot. Owner may itself be
// qualified, e.g. "uuid.UUID" or "main.Person".
func SplitQualified(name string) (owner, member string, ok bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", "", false
	}

	return name[:idx], name[idx+1:], true
}
