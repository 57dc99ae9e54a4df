package idgen

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextGatePassID_EmptySnapshot(t *testing.T) {
	assert.Equal(t, "SP000001", NextGatePassID(nil))
	assert.Equal(t, "SP000001", NextGatePassID([]string{}))
}

func TestNextGatePassID_SkipsGaps(t *testing.T) {
	got := NextGatePassID([]string{"SP000001", "SP000003"})
	assert.Equal(t, "SP000004", got)
}

func TestNextGatePassID_IgnoresForeignFormats(t *testing.T) {
	ids := []string{"SP000007", "GP000099", "SPABCDEF", "SP12", "", "visitor-42"}
	assert.Equal(t, "SP000008", NextGatePassID(ids))

	// nothing parseable at all restarts the sequence
	assert.Equal(t, "SP000001", NextGatePassID([]string{"GP000099", "junk"}))
}

func TestNextGatePassID_CaseAndWhitespace(t *testing.T) {
	assert.Equal(t, "SP000013", NextGatePassID([]string{" sp000012 "}))
}

func TestNextGatePassID_StrictlyGreater(t *testing.T) {
	ids := []string{"SP000120", "SP000003", "SP000077"}
	next := NextGatePassID(ids)
	assert.Len(t, next, len(GatePassPrefix)+GatePassDigits)
	n, err := strconv.Atoi(next[len(GatePassPrefix):])
	assert.NoError(t, err)
	for _, id := range ids {
		m, _ := strconv.Atoi(id[len(GatePassPrefix):])
		assert.Greater(t, n, m)
	}
}

func TestNextApplicationNo_NeverRepeats(t *testing.T) {
	existing := []string{}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		no := NextApplicationNo(existing)
		assert.Len(t, no, 6)
		assert.False(t, seen[no], "application number %q repeated", no)
		seen[no] = true
		existing = append(existing, no)
	}
}

func TestNextApplicationNo_CaseInsensitiveCollision(t *testing.T) {
	for i := 0; i < 50; i++ {
		no := NextApplicationNo([]string{"a1b2c3"})
		assert.NotEqual(t, "A1B2C3", no)
	}
}

func TestNewGroupID(t *testing.T) {
	a, b := NewGroupID(), NewGroupID()
	assert.Len(t, a, 7)
	assert.Len(t, b, 7)
	assert.NotEqual(t, a, b)
}
