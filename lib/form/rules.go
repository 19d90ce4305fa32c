// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package form

import (
	"fmt"
	"regexp"
	"time"
)

// Rule checks a single field value and returns a message describing the
// violation, or "" when the value passes. Rules other than Required
// pass on empty values: emptiness is only an error when the field is
// required, so optional fields validate their format without becoming
// mandatory.
type Rule func(value string) string

var (
	lettersPattern = regexp.MustCompile(`^[A-Za-z]+$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	addressPattern = regexp.MustCompile(`^[A-Za-z0-9,.\-/#\s]+$`)
)

// Required fails on an empty value.
func Required() Rule {
	return func(value string) string {
		if value == "" {
			return "This field is required"
		}
		return ""
	}
}

// MinLen fails on non-empty values shorter than n characters.
func MinLen(n int) Rule {
	return func(value string) string {
		if value != "" && len([]rune(value)) < n {
			return fmt.Sprintf("Must be at least %d characters", n)
		}
		return ""
	}
}

// MaxLen fails on values longer than n characters.
func MaxLen(n int) Rule {
	return func(value string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("Must be at most %d characters", n)
		}
		return ""
	}
}

// Pattern fails on non-empty values not matching the expression.
func Pattern(pattern *regexp.Regexp, message string) Rule {
	return func(value string) string {
		if value != "" && !pattern.MatchString(value) {
			return message
		}
		return ""
	}
}

// LettersOnly allows alphabetic characters only.
func LettersOnly() Rule {
	return Pattern(lettersPattern, "Letters only")
}

// Email requires the standard local@domain.tld shape.
func Email() Rule {
	return Pattern(emailPattern, "Enter a valid email address")
}

// Mobile requires exactly ten digits with a leading digit of 6-9.
func Mobile() Rule {
	return Pattern(mobilePattern, "Enter a valid 10-digit mobile number")
}

// Address allows alphanumerics, whitespace, and the , . - / # set.
func Address() Rule {
	return Pattern(addressPattern, "Only letters, numbers, spaces, and , . - / # are allowed")
}

// Date requires an ISO calendar date (YYYY-MM-DD).
func Date() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return "Enter a date as YYYY-MM-DD"
		}
		return ""
	}
}
