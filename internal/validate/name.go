// name.go implements the ordered rule engine.
//
// Design: rules accumulate into a slice rather than short-circuiting, so a
// single pass reports everything wrong with a name. The only truncation is
// inside the control-character rule, which reports the first hit and stops
// scanning - one control character is enough to act on and names are
// typically pasted binary garbage when this rule fires at all.

package validate

import (
	"strings"
	"unicode/utf8"
)

// Length limits shared by the character-count and byte-count rules.
// 255 is the common ceiling across POSIX filesystems (NAME_MAX) and the
// FAT32/exFAT/NTFS family.
const (
	MaxNameLength = 255
	MaxNameBytes  = 255
)

// invalidFilesystem tags which filesystems reject the invalidChars set.
const invalidFilesystem = "FAT32/exFAT/NTFS"

// invalidChars is the canonical ordered set of characters rejected by the
// FAT32/exFAT/NTFS family. Findings list offenders in this order regardless
// of where they appear in the name.
var invalidChars = []string{`"`, "*", ":", "<", ">", "?", `\`, "|"}

// Name validates a single path component and returns every rule violation
// in rule order. A nil result means the name is valid. The name is never
// modified or normalised; repair is the caller's business.
func Name(name string) []Finding {
	var findings []Finding

	length := utf8.RuneCountInString(name)

	if length == 0 {
		findings = append(findings, Finding{Kind: KindEmpty})
	}

	if length > MaxNameLength {
		findings = append(findings, Finding{
			Kind:   KindTooLong,
			Max:    MaxNameLength,
			Actual: length,
		})
	}

	if name == "." || name == ".." {
		findings = append(findings, Finding{Kind: KindReserved, Name: name})
	}

	if strings.Contains(name, "/") {
		findings = append(findings, Finding{Kind: KindPathSeparator})
	}

	if strings.ContainsRune(name, 0) {
		findings = append(findings, Finding{Kind: KindNullByte})
	}

	var present []string
	for _, c := range invalidChars {
		if strings.Contains(name, c) {
			present = append(present, c)
		}
	}
	if len(present) > 0 {
		findings = append(findings, Finding{
			Kind:       KindInvalidChar,
			Chars:      present,
			Filesystem: invalidFilesystem,
		})
	}

	for _, r := range name {
		if r <= 0x1F {
			findings = append(findings, Finding{Kind: KindControlChar, Code: r})
			break
		}
	}

	if len(name) > MaxNameBytes {
		findings = append(findings, Finding{
			Kind:   KindUTF8TooLong,
			Max:    MaxNameBytes,
			Actual: len(name),
		})
	}

	return findings
}

// Check validates a name and returns an *Error aggregating the findings,
// or nil if the name is valid.
func Check(name string) error {
	findings := Name(name)
	if len(findings) == 0 {
		return nil
	}
	return &Error{Name: name, Findings: findings}
}
