package game

import (
	"fmt"
	"strings"
)

// EndRule decides what happens when the player due to move is stuck
type EndRule uint8

const (
	// RulePass passes the turn back while the mover can still play and ends
	// the game only when neither side has a legal move
	RulePass EndRule = iota

	// RuleStrict ends the game as soon as the player due to move is stuck
	RuleStrict
)

func (r EndRule) String() string {
	switch r {
	case RulePass:
		return "pass"
	case RuleStrict:
		return "strict"
	}
	return fmt.Sprintf("EndRule(%d)", r)
}

// ParseEndRule accepts the names produced by EndRule.String
func ParseEndRule(s string) (EndRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass", "":
		return RulePass, nil
	case "strict":
		return RuleStrict, nil
	}
	return RulePass, fmt.Errorf("unknown end rule %q (want pass or strict)", s)
}
