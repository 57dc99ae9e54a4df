// Package idgen derives the next gate-pass identifier and fresh application
// numbers from the record set currently on file.
package idgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// GatePassPrefix and GatePassDigits fix the SP###### identifier format.
	GatePassPrefix = "SP"
	GatePassDigits = 6

	appNoAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	appNoLength   = 6

	// maxDrawsPerLength bounds the collision retry loop. Once exceeded the
	// draw length grows by one so the generator stays total even against a
	// pathologically full code space.
	maxDrawsPerLength = 10000

	groupIDLength = 7
)

// NextGatePassID scans the existing ids for the SP###### format, takes the
// highest numeric suffix and returns the next id in sequence. Ids in any
// other shape are not part of the sequence and are skipped. An empty snapshot
// yields SP000001.
//
// Uniqueness holds only relative to the snapshot passed in; the record store's
// duplicate check is the backstop for concurrent submissions.
func NextGatePassID(existingIDs []string) string {
	last := 0
	for _, id := range existingIDs {
		id = strings.ToUpper(strings.TrimSpace(id))
		if !strings.HasPrefix(id, GatePassPrefix) || len(id) != len(GatePassPrefix)+GatePassDigits {
			continue
		}
		n, err := strconv.Atoi(id[len(GatePassPrefix):])
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s%0*d", GatePassPrefix, GatePassDigits, last+1)
}

// NextApplicationNo draws an alphanumeric application number that does not
// collide with any existing number, comparing case-insensitively.
func NextApplicationNo(existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, no := range existing {
		taken[strings.ToUpper(no)] = struct{}{}
	}

	length := appNoLength
	for {
		for i := 0; i < maxDrawsPerLength; i++ {
			candidate := draw(length)
			if _, ok := taken[candidate]; !ok {
				return candidate
			}
		}
		length++
	}
}

// NewGroupID mints the opaque token linking records of one batch submission.
func NewGroupID() string {
	return draw(groupIDLength)
}

func draw(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(appNoAlphabet[rand.Intn(len(appNoAlphabet))])
	}
	return b.String()
}
