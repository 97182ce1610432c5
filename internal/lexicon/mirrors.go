package lexicon

import "fmt"

// MirrorIssueKind classifies a mirror-consistency finding.
type MirrorIssueKind string

const (
	MirrorMissing        MirrorIssueKind = "missing-mirror"
	MirrorReasonMismatch MirrorIssueKind = "reason-mismatch"
)

// MirrorIssue describes a pair whose reversed counterpart is absent or
// disagrees with it. Mirrors are an authoring convention, so issues are
// reported rather than rejected.
type MirrorIssue struct {
	Kind         MirrorIssueKind
	PairID       string
	MirrorID     string
	Reason       string
	MirrorReason string
}

func (i MirrorIssue) String() string {
	switch i.Kind {
	case MirrorMissing:
		return fmt.Sprintf("%s: no mirrored pair", i.PairID)
	default:
		return fmt.Sprintf("%s / %s: reason %q differs from %q", i.PairID, i.MirrorID, i.Reason, i.MirrorReason)
	}
}

// CheckMirrors reports pairs that lack a reversed counterpart and mirrored
// pairs whose reasons differ. Each mismatched couple is reported once.
func (l *Lexicon) CheckMirrors() []MirrorIssue {
	type key struct{ a, b string }
	byDirection := make(map[key]ConfusablePair, len(l.pairs))
	for _, p := range l.pairs {
		byDirection[key{p.WordID, p.ConfusableWordID}] = p
	}

	var issues []MirrorIssue
	seen := make(map[string]bool)
	for _, p := range l.pairs {
		m, ok := byDirection[key{p.ConfusableWordID, p.WordID}]
		if !ok {
			issues = append(issues, MirrorIssue{Kind: MirrorMissing, PairID: p.ID, Reason: p.Reason})
			continue
		}
		if p.Reason == m.Reason || seen[m.ID] {
			continue
		}
		seen[p.ID] = true
		issues = append(issues, MirrorIssue{
			Kind:         MirrorReasonMismatch,
			PairID:       p.ID,
			MirrorID:     m.ID,
			Reason:       p.Reason,
			MirrorReason: m.Reason,
		})
	}
	return issues
}
