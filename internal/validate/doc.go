// Package validate checks names for cross-filesystem safety.
//
// A name is a single path component (no separators). Validation applies a
// fixed, ordered list of rules and reports every rule a name violates, not
// just the first. This matters for tooling that surfaces problems to users:
// a name like "file/name*test\x00" has three independent defects and fixing
// one at a time because the validator stopped early is a poor experience.
//
// # Rules
//
// Rules run in a fixed order and findings are appended in that order:
//
//  1. Empty name
//  2. More than 255 characters (Unicode code points)
//  3. Reserved name ("." or "..")
//  4. Contains a path separator ("/")
//  5. Contains a NUL byte
//  6. Contains characters forbidden on FAT32/exFAT/NTFS
//  7. Contains a control character (only the first is reported)
//  8. UTF-8 encoding longer than 255 bytes
//
// Rules 2 and 8 are independent: 256 ASCII characters trip both, while 64
// four-byte code points (64 characters, 256 bytes) trip only rule 8.
//
// # Error Handling
//
// Name returns the structured findings; Check wraps them in an *Error for
// callers that just want an error value. The rendered strings are display
// formatting only - branch on Finding.Kind, never on message text.
package validate
