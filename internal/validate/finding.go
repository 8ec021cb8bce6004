// finding.go defines the structured result type for validation failures.
//
// Separated from name.go to isolate the closed variant set and its display
// rendering from the rule engine. Findings carry kind-specific payloads so
// callers can branch on structure; Message is for humans only.

package validate

import (
	"fmt"
	"strings"
)

// Kind identifies one validation rule. The set is closed: every Finding
// carries exactly one Kind and consumers are expected to handle all of them.
type Kind int

const (
	// KindEmpty reports a zero-length name.
	KindEmpty Kind = iota + 1
	// KindTooLong reports a name longer than MaxNameLength code points.
	KindTooLong
	// KindReserved reports the reserved names "." and "..".
	KindReserved
	// KindPathSeparator reports a "/" inside the name.
	KindPathSeparator
	// KindNullByte reports a NUL (U+0000) inside the name.
	KindNullByte
	// KindInvalidChar reports characters rejected by FAT32/exFAT/NTFS.
	KindInvalidChar
	// KindControlChar reports the first control character (0x00-0x1F) found.
	KindControlChar
	// KindUTF8TooLong reports a UTF-8 encoding longer than MaxNameBytes bytes.
	KindUTF8TooLong
)

// String returns the stable identifier for a kind, used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTooLong:
		return "too_long"
	case KindReserved:
		return "reserved"
	case KindPathSeparator:
		return "path_separator"
	case KindNullByte:
		return "null_byte"
	case KindInvalidChar:
		return "invalid_char"
	case KindControlChar:
		return "control_char"
	case KindUTF8TooLong:
		return "utf8_too_long"
	default:
		panic(fmt.Sprintf("validate: unhandled finding kind %d", int(k)))
	}
}

// Finding is one validation failure. Kind selects which payload fields are
// meaningful; all others are zero.
type Finding struct {
	Kind Kind

	// Max and Actual are set for KindTooLong (code points) and
	// KindUTF8TooLong (bytes).
	Max    int
	Actual int

	// Name is set for KindReserved: the reserved name itself.
	Name string

	// Chars and Filesystem are set for KindInvalidChar. Chars lists the
	// offending characters in the canonical set order, not the order they
	// appear in the name.
	Chars      []string
	Filesystem string

	// Code is set for KindControlChar: the first control code point found.
	Code rune
}

// Message renders a human-readable description of the finding.
func (f Finding) Message() string {
	switch f.Kind {
	case KindEmpty:
		return "name is empty"
	case KindTooLong:
		return fmt.Sprintf("name is %d characters, maximum is %d", f.Actual, f.Max)
	case KindReserved:
		return fmt.Sprintf("%q is a reserved name", f.Name)
	case KindPathSeparator:
		return "name contains a path separator '/'"
	case KindNullByte:
		return "name contains a null byte"
	case KindInvalidChar:
		return fmt.Sprintf("name contains characters not allowed on %s: %s",
			f.Filesystem, strings.Join(f.Chars, " "))
	case KindControlChar:
		return fmt.Sprintf("name contains control character 0x%02X", f.Code)
	case KindUTF8TooLong:
		return fmt.Sprintf("name encodes to %d bytes of UTF-8, maximum is %d", f.Actual, f.Max)
	default:
		panic(fmt.Sprintf("validate: unhandled finding kind %d", int(f.Kind)))
	}
}

// Error aggregates every finding for one name. It is returned by Check so
// callers can treat validation failure as an ordinary error while still
// reaching the structured findings via errors.As.
type Error struct {
	Name     string
	Findings []Finding
}

// Error joins the per-finding messages. Display formatting only - callers
// must branch on Findings, not on this string.
func (e *Error) Error() string {
	msgs := make([]string, len(e.Findings))
	for i, f := range e.Findings {
		msgs[i] = f.Message()
	}
	return fmt.Sprintf("invalid name %q: %s", e.Name, strings.Join(msgs, "; "))
}
