package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// FoldCandidates collapses same-key candidates within one run. Groups are
// ordered canonically before folding so the result is a function of the
// candidate set, not of arrival order: largest title count first, then
// earliest first-seen time, then lexicographic hash of the sorted title id
// set. Survivors come back sorted by ef_key.
func FoldCandidates(candidates []*models.EventFamily, runID string, now time.Time) []*models.EventFamily {
	groups := make(map[string][]*models.EventFamily)
	for _, c := range candidates {
		groups[c.EFKey] = append(groups[c.EFKey], c)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	survivors := make([]*models.EventFamily, 0, len(groups))
	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool { return foldBefore(group[i], group[j]) })
		survivor := group[0]
		for _, source := range group[1:] {
			survivor = MergeInto(survivor, source, runID, now)
		}
		survivors = append(survivors, survivor)
	}
	return survivors
}

// foldBefore is the canonical candidate ordering used for fold and for
// picking a merge target among sibling store rows.
func foldBefore(a, b *models.EventFamily) bool {
	if a.TitleCount() != b.TitleCount() {
		return a.TitleCount() > b.TitleCount()
	}
	af, bf := effectiveFirstSeen(a), effectiveFirstSeen(b)
	if !af.Equal(bf) {
		if af.IsZero() {
			return false
		}
		if bf.IsZero() {
			return true
		}
		return af.Before(bf)
	}
	return titleSetHash(a.TitleIDs) < titleSetHash(b.TitleIDs)
}

// effectiveFirstSeen falls back to the earliest timeline timestamp when an
// EF carries no first-seen time of its own.
func effectiveFirstSeen(ef *models.EventFamily) time.Time {
	if !ef.FirstSeenAt.IsZero() {
		return ef.FirstSeenAt
	}
	if len(ef.Timeline) > 0 {
		return ef.Timeline[0].Timestamp
	}
	return time.Time{}
}

// titleSetHash hashes the sorted title id set, giving a stable identity for
// tie-breaking that ignores member order.
func titleSetHash(titleIDs []string) string {
	sorted := append([]string{}, titleIDs...)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}

// MergeInto folds source into survivor and returns the merged EF. Inputs
// are never mutated. Absorbing a source that contributes no new titles and
// no new timeline entries is a no-op: the survivor comes back unchanged,
// with no lineage entry and no updated-at bump.
func MergeInto(survivor, source *models.EventFamily, runID string, now time.Time) *models.EventFamily {
	if survivor.ID == source.ID {
		return survivor
	}

	gained := missingTitles(survivor, source)
	newEntries := countNewTimelineEntries(survivor.Timeline, source.Timeline)
	if len(gained) == 0 && newEntries == 0 {
		return survivor
	}

	survivorCount := survivor.TitleCount()
	sourceCount := source.TitleCount()

	merged := cloneEF(survivor)
	merged.TitleIDs = append(merged.TitleIDs, gained...)
	merged.Actors = stableUnion(merged.Actors, source.Actors)
	merged.Tags = stableUnion(merged.Tags, source.Tags)
	merged.Timeline = mergeTimelines(survivor.Timeline, source.Timeline)

	if total := survivorCount + sourceCount; total > 0 {
		merged.Confidence = (survivor.Confidence*float64(survivorCount) +
			source.Confidence*float64(sourceCount)) / float64(total)
	}

	// A singleton's prose was written from one title; a multi-title
	// source has seen more context, so its headline wins.
	if survivor.SingletonOrigin && !source.SingletonOrigin {
		merged.Headline = source.Headline
		merged.Summary = source.Summary
	}
	merged.SingletonOrigin = survivor.SingletonOrigin && source.SingletonOrigin

	if fs := effectiveFirstSeen(source); !fs.IsZero() {
		if merged.FirstSeenAt.IsZero() || fs.Before(merged.FirstSeenAt) {
			merged.FirstSeenAt = fs
		}
	}

	merged.Lineage = appendLineage(merged.Lineage, runID, now, models.AbsorbedRef{
		SourceID:    source.ID,
		SourceKind:  source.SourceKind(),
		TitleCount:  sourceCount,
		TitlesAdded: len(gained),
		Singleton:   source.SingletonOrigin,
	}, merged.TitleCount())

	merged.LastUpdatedAt = now
	merged.UpdatedByRunID = runID
	return merged
}

// appendLineage records an absorption, aggregating all sources absorbed in
// the same run into a single entry.
func appendLineage(lineage []models.LineageEntry, runID string, now time.Time, ref models.AbsorbedRef, countAfter int) []models.LineageEntry {
	if n := len(lineage); n > 0 && lineage[n-1].RunID == runID {
		last := &lineage[n-1]
		last.Absorbed = append(last.Absorbed, ref)
		last.TitleCountAfter = countAfter
		return lineage
	}
	return append(lineage, models.LineageEntry{
		RunID:           runID,
		MergedAt:        now,
		Absorbed:        []models.AbsorbedRef{ref},
		TitleCountAfter: countAfter,
	})
}

// ResolveAgainstStore decides how a folded candidate meets the persisted
// store. Zero hits make it a new EF owned by this run. A single hit absorbs
// the candidate, stored EF surviving, unless the two are siblings of the
// same split. Multiple hits are legal only for sibling splits sharing one
// parent, in which case the canonical target absorbs the candidate and the
// other siblings stay untouched; anything else is a key-uniqueness
// violation and fatal.
func ResolveAgainstStore(candidate *models.EventFamily, hits []*models.EventFamily, runID string, now time.Time) (*models.EventFamily, error) {
	switch len(hits) {
	case 0:
		return adoptAsNew(candidate, runID, now), nil
	case 1:
		if sameSplitSiblings(candidate, hits[0]) {
			return adoptAsNew(candidate, runID, now), nil
		}
		return MergeInto(hits[0], candidate, runID, now), nil
	}

	parent := commonParent(hits)
	if parent == nil {
		return nil, &InvariantViolationError{
			Invariant: InvariantActiveKeyUnique,
			Detail:    fmt.Sprintf("ef_key %s matches %d active store rows with no common parent", candidate.EFKey, len(hits)),
		}
	}

	targets := append([]*models.EventFamily{}, hits...)
	sort.SliceStable(targets, func(i, j int) bool { return storeTargetBefore(targets[i], targets[j]) })
	target := targets[0]
	if sameSplitSiblings(candidate, target) {
		return adoptAsNew(candidate, runID, now), nil
	}
	return MergeInto(target, candidate, runID, now), nil
}

// adoptAsNew stamps run ownership on a candidate that will persist as a
// fresh EF.
func adoptAsNew(candidate *models.EventFamily, runID string, now time.Time) *models.EventFamily {
	out := cloneEF(candidate)
	out.CreatedByRunID = runID
	out.UpdatedByRunID = runID
	out.LastUpdatedAt = now
	return out
}

// storeTargetBefore orders sibling store rows for deterministic target
// selection: largest title count, earliest first seen, lexicographic id.
func storeTargetBefore(a, b *models.EventFamily) bool {
	if a.TitleCount() != b.TitleCount() {
		return a.TitleCount() > b.TitleCount()
	}
	af, bf := effectiveFirstSeen(a), effectiveFirstSeen(b)
	if !af.Equal(bf) {
		if af.IsZero() {
			return false
		}
		if bf.IsZero() {
			return true
		}
		return af.Before(bf)
	}
	return a.ID < b.ID
}

// sameSplitSiblings reports whether two EFs descend from the same split
// parent. Siblings never merge, matching keys or not.
func sameSplitSiblings(a, b *models.EventFamily) bool {
	return a.ParentEFID != nil && b.ParentEFID != nil && *a.ParentEFID == *b.ParentEFID
}

// commonParent returns the one parent id shared by every hit, or nil when
// any hit lacks a parent or parents disagree.
func commonParent(hits []*models.EventFamily) *string {
	if len(hits) == 0 || hits[0].ParentEFID == nil {
		return nil
	}
	parent := *hits[0].ParentEFID
	for _, h := range hits[1:] {
		if h.ParentEFID == nil || *h.ParentEFID != parent {
			return nil
		}
	}
	return &parent
}

// VerifyDisjoint rejects a survivor set in which any title id belongs to
// more than one EF. Runs before persistence so a violation aborts the run
// with nothing written.
func VerifyDisjoint(survivors []*models.EventFamily) error {
	owner := make(map[string]string)
	for _, ef := range survivors {
		for _, titleID := range ef.TitleIDs {
			if prev, ok := owner[titleID]; ok && prev != ef.ID {
				return &InvariantViolationError{
					Invariant: InvariantSingleAssignment,
					Detail:    fmt.Sprintf("title %s assigned to both %s and %s", titleID, prev, ef.ID),
				}
			}
			owner[titleID] = ef.ID
		}
	}
	return nil
}

// missingTitles returns source title ids absent from the survivor,
// preserving source order.
func missingTitles(survivor, source *models.EventFamily) []string {
	have := make(map[string]struct{}, len(survivor.TitleIDs))
	for _, id := range survivor.TitleIDs {
		have[id] = struct{}{}
	}
	var gained []string
	for _, id := range source.TitleIDs {
		if _, ok := have[id]; ok {
			continue
		}
		have[id] = struct{}{}
		gained = append(gained, id)
	}
	return gained
}

// countNewTimelineEntries counts source entries with no same-event match in
// the survivor's timeline.
func countNewTimelineEntries(survivor, source []models.TimelineEntry) int {
	n := 0
	for _, e := range source {
		if !containsEvent(survivor, e) {
			n++
		}
	}
	return n
}

func containsEvent(entries []models.TimelineEntry, e models.TimelineEntry) bool {
	for _, have := range entries {
		if have.SameEvent(e) {
			return true
		}
	}
	return false
}

// mergeTimelines merges two sorted timelines, deduplicating entries with
// identical timestamp and description.
func mergeTimelines(a, b []models.TimelineEntry) []models.TimelineEntry {
	out := make([]models.TimelineEntry, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Before(b[j]):
			out = appendEntry(out, a[i])
			i++
		case b[j].Before(a[i]):
			out = appendEntry(out, b[j])
			j++
		default:
			out = appendEntry(out, a[i])
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = appendEntry(out, a[i])
	}
	for ; j < len(b); j++ {
		out = appendEntry(out, b[j])
	}
	return out
}

func appendEntry(out []models.TimelineEntry, e models.TimelineEntry) []models.TimelineEntry {
	if len(out) > 0 && out[len(out)-1].SameEvent(e) {
		return out
	}
	return append(out, e)
}

// stableUnion appends items from extra that base does not already contain,
// keeping base order first.
func stableUnion(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s] = struct{}{}
	}
	out := base
	for _, s := range extra {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// cloneEF deep-copies an EF so merge operations never alias or mutate
// their inputs.
func cloneEF(ef *models.EventFamily) *models.EventFamily {
	out := *ef
	out.TitleIDs = append([]string{}, ef.TitleIDs...)
	out.Actors = append([]string{}, ef.Actors...)
	out.Tags = append([]string{}, ef.Tags...)
	out.Timeline = append([]models.TimelineEntry{}, ef.Timeline...)
	out.Lineage = make([]models.LineageEntry, len(ef.Lineage))
	for i, entry := range ef.Lineage {
		entry.Absorbed = append([]models.AbsorbedRef{}, entry.Absorbed...)
		out.Lineage[i] = entry
	}
	if ef.ParentEFID != nil {
		parent := *ef.ParentEFID
		out.ParentEFID = &parent
	}
	return &out
}
