package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/title"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	"github.com/google/uuid"
)

// EventFamilyService is the persistence adapter for Event Families: merge
// lookups for the pipeline and the transactional survivor commit.
type EventFamilyService struct {
	client *ent.Client
}

// NewEventFamilyService creates a new EventFamilyService
func NewEventFamilyService(client *ent.Client) *EventFamilyService {
	return &EventFamilyService{client: client}
}

// ActiveByKey returns every active EF with the given ef_key, member title
// ids loaded, ordered by id for deterministic downstream handling. More
// than one row is only legal for sibling EFs produced by a split.
func (s *EventFamilyService) ActiveByKey(ctx context.Context, efKey string) ([]*models.EventFamily, error) {
	rows, err := s.client.EventFamily.Query().
		Where(
			eventfamily.EfKeyEQ(efKey),
			eventfamily.StatusEQ(eventfamily.StatusActive),
		).
		WithTitles().
		Order(ent.Asc(eventfamily.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active EFs for key %s: %w", efKey, err)
	}

	efs := make([]*models.EventFamily, 0, len(rows))
	for _, row := range rows {
		efs = append(efs, efFromEnt(row))
	}
	return efs, nil
}

// Get retrieves an EF row by id with its member titles loaded.
func (s *EventFamilyService) Get(ctx context.Context, efID string) (*ent.EventFamily, error) {
	row, err := s.client.EventFamily.Query().
		Where(eventfamily.IDEQ(efID)).
		WithTitles().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get EF: %w", err)
	}
	return row, nil
}

// ListActive lists active EFs newest-change first, optionally filtered by
// theater and event type.
func (s *EventFamilyService) ListActive(ctx context.Context, theater, eventType string, limit int) ([]*ent.EventFamily, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.client.EventFamily.Query().
		Where(eventfamily.StatusEQ(eventfamily.StatusActive))
	if theater != "" {
		query = query.Where(eventfamily.TheaterEQ(theater))
	}
	if eventType != "" {
		query = query.Where(eventfamily.EventTypeEQ(eventType))
	}

	rows, err := query.
		Order(ent.Desc(eventfamily.FieldLastUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active EFs: %w", err)
	}
	return rows, nil
}

// ResolveSurvivor follows a merged EF to the EF that absorbed it. Chains
// are single-hop at write time, so a second hop means something outside
// this service corrupted the forest.
func (s *EventFamilyService) ResolveSurvivor(ctx context.Context, efID string) (*ent.EventFamily, error) {
	row, err := s.Get(ctx, efID)
	if err != nil {
		return nil, err
	}
	if row.Status == eventfamily.StatusActive {
		return row, nil
	}
	if row.MergedIntoID == nil {
		return nil, &pipeline.InvariantViolationError{
			Invariant: pipeline.InvariantLineageSingleHop,
			Detail:    fmt.Sprintf("EF %s is merged but records no survivor", efID),
		}
	}

	target, err := s.Get(ctx, *row.MergedIntoID)
	if err != nil {
		return nil, err
	}
	if target.Status != eventfamily.StatusActive {
		return nil, &pipeline.InvariantViolationError{
			Invariant: pipeline.InvariantLineageSingleHop,
			Detail:    fmt.Sprintf("EF %s points at %s, which is itself merged", efID, target.ID),
		}
	}
	return target, nil
}

// CommitSurvivor atomically persists one merge survivor: upsert the EF row,
// assign member titles, retire absorbed stored EFs, and append merge audit
// rows. A member title already assigned to an unrelated EF fails the whole
// transaction with *pipeline.ConflictingAssignmentError so the orchestrator
// can re-merge against fresh store state. Re-committing an already
// committed survivor changes nothing.
func (s *EventFamilyService) CommitSurvivor(ctx context.Context, survivor *models.EventFamily, runID string) (*pipeline.CommitResult, error) {
	if survivor == nil {
		return nil, NewValidationError("survivor", "required")
	}
	if len(survivor.TitleIDs) == 0 {
		return nil, NewValidationError("survivor", "has no member titles")
	}
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	retired := retiredStoredIDs(survivor, runID)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	newIDs, err := checkAssignments(ctx, tx, survivor, retired)
	if err != nil {
		return nil, err
	}

	created, err := upsertEF(ctx, tx, survivor)
	if err != nil {
		return nil, err
	}

	assigned, err := assignTitles(ctx, tx, survivor, newIDs, retired)
	if err != nil {
		return nil, err
	}

	if err := retireAbsorbed(ctx, tx, survivor.ID, retired, runID); err != nil {
		return nil, err
	}

	if err := recordMergeEvents(ctx, tx, survivor, runID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit survivor %s: %w", survivor.ID, err)
	}

	return &pipeline.CommitResult{
		Created:        created,
		TitlesAssigned: assigned,
		RetiredEFIDs:   retired,
	}, nil
}

// retiredStoredIDs lists the stored EFs this run's merges folded into the
// survivor, per its lineage. Candidate sources never existed as rows and
// need no retirement.
func retiredStoredIDs(survivor *models.EventFamily, runID string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, entry := range survivor.Lineage {
		if entry.RunID != runID {
			continue
		}
		for _, ref := range entry.Absorbed {
			if ref.SourceKind != models.SourceKindStored || ref.SourceID == survivor.ID || seen[ref.SourceID] {
				continue
			}
			seen[ref.SourceID] = true
			ids = append(ids, ref.SourceID)
		}
	}
	sort.Strings(ids)
	return ids
}

// checkAssignments loads the survivor's member titles and verifies each is
// unassigned, already the survivor's, or owned by an EF this commit
// retires. Returns the ids that still need assignment.
func checkAssignments(ctx context.Context, tx *ent.Tx, survivor *models.EventFamily, retired []string) ([]string, error) {
	rows, err := tx.Title.Query().
		Where(title.IDIn(survivor.TitleIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load member titles: %w", err)
	}
	if len(rows) != len(survivor.TitleIDs) {
		return nil, fmt.Errorf("%w: EF %s references %d titles, store has %d",
			ErrInvalidInput, survivor.ID, len(survivor.TitleIDs), len(rows))
	}

	allowed := make(map[string]bool, len(retired)+1)
	allowed[survivor.ID] = true
	for _, id := range retired {
		allowed[id] = true
	}

	newIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case row.EventFamilyID == nil:
			newIDs = append(newIDs, row.ID)
		case allowed[*row.EventFamilyID]:
			// Already the survivor's, or moving over from an absorbed EF.
		default:
			return nil, &pipeline.ConflictingAssignmentError{
				TitleID:    row.ID,
				AssignedTo: *row.EventFamilyID,
				WantEF:     survivor.ID,
			}
		}
	}
	return newIDs, nil
}

// upsertEF inserts the survivor row or updates the existing one. Reports
// whether a new row was created.
func upsertEF(ctx context.Context, tx *ent.Tx, ef *models.EventFamily) (bool, error) {
	exists, err := tx.EventFamily.Query().
		Where(eventfamily.IDEQ(ef.ID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check EF %s: %w", ef.ID, err)
	}

	if !exists {
		builder := tx.EventFamily.Create().
			SetID(ef.ID).
			SetEfKey(ef.EFKey).
			SetTheater(ef.Theater).
			SetEventType(ef.EventType).
			SetHeadline(ef.Headline).
			SetSummary(ef.Summary).
			SetActors(ef.Actors).
			SetTags(ef.Tags).
			SetTimeline(ef.Timeline).
			SetConfidence(ef.Confidence).
			SetTitleCount(ef.TitleCount()).
			SetSingletonOrigin(ef.SingletonOrigin).
			SetLineage(ef.Lineage).
			SetStatus(eventfamily.StatusActive).
			SetFirstSeenAt(ef.FirstSeenAt).
			SetLastUpdatedAt(ef.LastUpdatedAt).
			SetCreatedByRunID(ef.CreatedByRunID).
			SetUpdatedByRunID(ef.UpdatedByRunID)
		if ef.ParentEFID != nil {
			builder.SetParentEfID(*ef.ParentEFID)
		}
		if err := builder.Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to insert EF %s: %w", ef.ID, err)
		}
		return true, nil
	}

	// ef_key, theater, and event_type never change across merges; the
	// candidate matched this row by key in the first place.
	err = tx.EventFamily.UpdateOneID(ef.ID).
		SetHeadline(ef.Headline).
		SetSummary(ef.Summary).
		SetActors(ef.Actors).
		SetTags(ef.Tags).
		SetTimeline(ef.Timeline).
		SetConfidence(ef.Confidence).
		SetTitleCount(ef.TitleCount()).
		SetSingletonOrigin(ef.SingletonOrigin).
		SetLineage(ef.Lineage).
		SetFirstSeenAt(ef.FirstSeenAt).
		SetLastUpdatedAt(ef.LastUpdatedAt).
		SetUpdatedByRunID(ef.UpdatedByRunID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update EF %s: %w", ef.ID, err)
	}
	return false, nil
}

// assignTitles sets event_family_id on new member titles with a NULL guard,
// so a commit racing this one loses cleanly, and moves titles off retired
// EFs. Returns the count of NULL-to-survivor assignments.
func assignTitles(ctx context.Context, tx *ent.Tx, survivor *models.EventFamily, newIDs, retired []string) (int, error) {
	assigned := 0
	if len(newIDs) > 0 {
		count, err := tx.Title.Update().
			Where(
				title.IDIn(newIDs...),
				title.EventFamilyIDIsNil(),
			).
			SetEventFamilyID(survivor.ID).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to assign titles to EF %s: %w", survivor.ID, err)
		}
		if count != len(newIDs) {
			return 0, lostAssignmentRace(ctx, tx, survivor, newIDs)
		}
		assigned = count
	}

	if len(retired) > 0 {
		// The survivor's member set already contains these via the merge
		// union; the rows just need to point at their new owner.
		if _, err := tx.Title.Update().
			Where(title.EventFamilyIDIn(retired...)).
			SetEventFamilyID(survivor.ID).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to move titles from absorbed EFs: %w", err)
		}
	}
	return assigned, nil
}

// lostAssignmentRace names the member title a concurrent commit claimed
// between this transaction's read and its guarded update.
func lostAssignmentRace(ctx context.Context, tx *ent.Tx, survivor *models.EventFamily, wantIDs []string) error {
	rows, err := tx.Title.Query().
		Where(
			title.IDIn(wantIDs...),
			title.EventFamilyIDNEQ(survivor.ID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to identify conflicting title: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: fewer titles assigned to EF %s than expected", ErrConcurrentModification, survivor.ID)
	}
	return &pipeline.ConflictingAssignmentError{
		TitleID:    rows[0].ID,
		AssignedTo: *rows[0].EventFamilyID,
		WantEF:     survivor.ID,
	}
}

// retireAbsorbed marks absorbed stored EFs merged into the survivor and
// re-points any rows merged into them, keeping merged_into chains
// single-hop.
func retireAbsorbed(ctx context.Context, tx *ent.Tx, survivorID string, retired []string, runID string) error {
	if len(retired) == 0 {
		return nil
	}

	count, err := tx.EventFamily.Update().
		Where(
			eventfamily.IDIn(retired...),
			eventfamily.StatusEQ(eventfamily.StatusActive),
		).
		SetStatus(eventfamily.StatusMerged).
		SetMergedIntoID(survivorID).
		SetUpdatedByRunID(runID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to retire absorbed EFs: %w", err)
	}

	if count != len(retired) {
		// Rows already merged into this survivor are a re-commit and fine;
		// merged anywhere else means two survivors claimed the same source.
		stray, err := tx.EventFamily.Query().
			Where(
				eventfamily.IDIn(retired...),
				eventfamily.StatusEQ(eventfamily.StatusMerged),
				eventfamily.MergedIntoIDNEQ(survivorID),
			).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to inspect retired EFs: %w", err)
		}
		if stray != nil {
			return &pipeline.InvariantViolationError{
				Invariant: pipeline.InvariantLineageSingleHop,
				Detail:    fmt.Sprintf("EF %s was already merged into %s, cannot retire into %s", stray.ID, *stray.MergedIntoID, survivorID),
			}
		}
	}

	if _, err := tx.EventFamily.Update().
		Where(eventfamily.MergedIntoIDIn(retired...)).
		SetMergedIntoID(survivorID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to re-point merged chains at %s: %w", survivorID, err)
	}
	return nil
}

// recordMergeEvents writes one audit row per source this run folded into
// the survivor. Skipped entirely when rows for (run, survivor) exist, so
// re-commits cannot inflate the audit trail.
func recordMergeEvents(ctx context.Context, tx *ent.Tx, survivor *models.EventFamily, runID string) error {
	var refs []models.AbsorbedRef
	for _, entry := range survivor.Lineage {
		if entry.RunID == runID {
			refs = append(refs, entry.Absorbed...)
		}
	}
	if len(refs) == 0 {
		return nil
	}

	exists, err := tx.MergeEvent.Query().
		Where(
			mergeevent.RunIDEQ(runID),
			mergeevent.SurvivorEfIDEQ(survivor.ID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check merge audit rows: %w", err)
	}
	if exists {
		return nil
	}

	builders := make([]*ent.MergeEventCreate, 0, len(refs))
	for _, ref := range refs {
		builders = append(builders, tx.MergeEvent.Create().
			SetID(uuid.New().String()).
			SetRunID(runID).
			SetSurvivorEfID(survivor.ID).
			SetSourceKind(mergeevent.SourceKind(ref.SourceKind)).
			SetSourceID(ref.SourceID).
			SetSourceTitleCount(ref.TitleCount).
			SetTitlesAdded(ref.TitlesAdded))
	}
	if err := tx.MergeEvent.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record merge audit rows: %w", err)
	}
	return nil
}

// efFromEnt converts a stored row (title edge loaded) into the in-memory
// state the merge engine works on.
func efFromEnt(row *ent.EventFamily) *models.EventFamily {
	titleIDs := make([]string, 0, len(row.Edges.Titles))
	for _, t := range row.Edges.Titles {
		titleIDs = append(titleIDs, t.ID)
	}
	sort.Strings(titleIDs)

	ef := &models.EventFamily{
		ID:              row.ID,
		EFKey:           row.EfKey,
		Theater:         row.Theater,
		EventType:       row.EventType,
		Headline:        row.Headline,
		Summary:         row.Summary,
		Actors:          row.Actors,
		Tags:            row.Tags,
		Timeline:        row.Timeline,
		Confidence:      row.Confidence,
		TitleIDs:        titleIDs,
		SingletonOrigin: row.SingletonOrigin,
		Lineage:         row.Lineage,
		FirstSeenAt:     row.FirstSeenAt,
		LastUpdatedAt:   row.LastUpdatedAt,
		Persisted:       true,
		CreatedByRunID:  row.CreatedByRunID,
		UpdatedByRunID:  row.UpdatedByRunID,
	}
	if row.ParentEfID != nil {
		parent := *row.ParentEfID
		ef.ParentEFID = &parent
	}
	return ef
}
