// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestAge(t *testing.T) {
	today := date("2026-08-28")

	tests := []struct {
		name        string
		dateOfBirth string
		want        int
	}{
		{"exact anniversary", "1996-08-28", 30},
		{"day after anniversary", "1996-08-27", 30},
		{"day before anniversary", "1996-08-29", 29},
		{"earlier month", "1996-03-15", 30},
		{"later month", "1996-11-02", 29},
		{"born today", "2026-08-28", 0},
		{"future date clamps to zero", "2027-01-01", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Age(date(test.dateOfBirth), today); got != test.want {
				t.Errorf("Age(%s as of %s) = %d, want %d",
					test.dateOfBirth, today.Format(DateLayout), got, test.want)
			}
		})
	}
}

func TestAgeOn(t *testing.T) {
	customer := Customer{DateOfBirth: "2000-01-15"}

	got, err := customer.AgeOn(date("2026-08-28"))
	if err != nil {
		t.Fatalf("AgeOn failed: %v", err)
	}
	if got != 26 {
		t.Errorf("AgeOn = %d, want 26", got)
	}

	if _, err := (Customer{DateOfBirth: "15/01/2000"}).AgeOn(date("2026-08-28")); err == nil {
		t.Error("expected error for unparseable date of birth")
	}
}
