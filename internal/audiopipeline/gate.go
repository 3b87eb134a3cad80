package audiopipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// GateMode selects whether a Gate's rule list is an allow-list or a
// block-list.
type GateMode int

const (
	GateAllow GateMode = iota
	GateBlock
)

func (m GateMode) String() string {
	switch m {
	case GateAllow:
		return "ALLOW"
	case GateBlock:
		return "BLOCK"
	default:
		return "UNKNOWN"
	}
}

// gateRuleKind distinguishes a single talkgroup, a range, the
// match-everything rule, and the explicit "DE" (lockout) rule string.
type gateRuleKind int

const (
	gateRuleAll gateRuleKind = iota
	gateRuleSingle
	gateRuleRange
	gateRuleLockout
)

// GateRule is one clause of a Gate's rule list.
type GateRule struct {
	Kind  gateRuleKind
	TG    uint32
	Start uint32
	End   uint32
}

func (r GateRule) matches(tg uint32) bool {
	switch r.Kind {
	case gateRuleAll:
		return true
	case gateRuleSingle:
		return r.TG == tg
	case gateRuleRange:
		return tg >= r.Start && tg <= r.End
	case gateRuleLockout:
		return r.TG == tg
	default:
		return false
	}
}

// Gate is a per-group mute decision policy: an allow-list or
// block-list of talkgroup rules, plus an explicit "DE" lockout list
// (groups that are always muted regardless of mode) and an active
// TG-hold that force-unmutes the held talkgroup and mutes every other
// talkgroup. The hold is keyed by talkgroup only; no slot is recorded.
type Gate struct {
	Mode    GateMode
	Rules   []GateRule
	Lockout []uint32

	holdActive bool
	holdTG     uint32
}

// NewGate builds a Gate with the given mode and rules.
func NewGate(mode GateMode, rules []GateRule) *Gate {
	return &Gate{Mode: mode, Rules: rules}
}

// SetHold activates a TG-hold: until ClearHold, any slot carrying tg is
// force-unmuted and any slot carrying another talkgroup is muted.
func (g *Gate) SetHold(tg uint32) {
	g.holdActive = true
	g.holdTG = tg
}

// ClearHold releases any active TG-hold.
func (g *Gate) ClearHold() {
	g.holdActive = false
	g.holdTG = 0
}

func (g *Gate) isLockedOut(tg uint32) bool {
	for _, l := range g.Lockout {
		if l == tg {
			return true
		}
	}
	return false
}

func (g *Gate) listMatch(tg uint32) bool {
	matched := false
	for _, r := range g.Rules {
		if r.matches(tg) {
			matched = true
			break
		}
	}
	if g.Mode == GateAllow {
		return matched
	}
	return !matched
}

// Muted reports whether the given talkgroup on the given slot should
// be muted: an explicit lockout always mutes; a TG-hold force-unmutes
// the held talkgroup and mutes every other talkgroup; otherwise the
// allow/block-list decision applies. The slot argument is not consulted.
func (g *Gate) Muted(tg uint32, slot int) bool {
	if g.isLockedOut(tg) {
		return true
	}
	if g.holdActive {
		return tg != g.holdTG
	}
	return !g.listMatch(tg)
}

// ParseGateRules parses a comma-separated rule list in the same
// "ALL" / single-ID / "start-end" shape, with an added "DE" token
// meaning an explicit lockout entry rather than a list rule.
func ParseGateRules(spec string) ([]GateRule, []uint32, error) {
	var rules []GateRule
	var lockout []uint32

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		upper := strings.ToUpper(tok)
		switch {
		case upper == "ALL":
			rules = append(rules, GateRule{Kind: gateRuleAll})
		case strings.HasPrefix(upper, "DE:"):
			id, err := strconv.ParseUint(strings.TrimPrefix(tok, tok[:3]), 10, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid DE lockout id: %s", tok)
			}
			lockout = append(lockout, uint32(id))
		case strings.Contains(tok, "-"):
			parts := strings.SplitN(tok, "-", 2)
			start, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid range start: %s", tok)
			}
			end, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid range end: %s", tok)
			}
			if start > end {
				return nil, nil, fmt.Errorf("invalid range: start (%d) > end (%d)", start, end)
			}
			rules = append(rules, GateRule{Kind: gateRuleRange, Start: uint32(start), End: uint32(end)})
		default:
			id, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid talkgroup id: %s", tok)
			}
			rules = append(rules, GateRule{Kind: gateRuleSingle, TG: uint32(id)})
		}
	}
	return rules, lockout, nil
}
