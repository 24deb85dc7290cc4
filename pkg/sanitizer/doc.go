// Package sanitizer turns HTML email bodies into plain text.
//
// PlainText is what the mailer uses to derive the text alternative of an
// email; StripHTML removes markup without adding line structure.
package sanitizer
