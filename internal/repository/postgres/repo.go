package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type txKey string

const keyTx = txKey("postgres_tx")

type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx, or the bare connection.
func (r *Repository) Chk(ctx context.Context) executor {
	if tx, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	ctx = context.WithValue(ctx, keyTx, tx)

	if err := cb(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// ----------------------------- streams -----------------------------

var streamColumns = []string{
	"id",
	"title",
	"description",
	"scheduled_start",
	"scheduled_end",
	"timezone",
	"visibility",
	"status",
	"source",
	"external_id",
	"stream_link",
	"organizer_id",
	"total_attendees",
	"total_speakers",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateStream(ctx context.Context, stream *model.Stream) (string, error) {
	query, args, err := sq.Insert("streams").
		Columns("title", "description", "scheduled_start", "scheduled_end", "timezone",
			"visibility", "status", "source", "organizer_id").
		Values(stream.Title, stream.Description, stream.ScheduledStart, stream.ScheduledEnd, stream.Timezone,
			stream.Visibility, stream.Status, stream.Source, stream.OrganizerID).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var streamID string
	err = r.Chk(ctx).GetContext(ctx, &streamID, query, args...)
	if err != nil {
		return "", err
	}

	return streamID, nil
}

func (r *Repository) GetStream(ctx context.Context, streamID string) (*model.Stream, error) {
	return r.getStream(ctx, streamID, false)
}

// GetStreamForUpdate locks the stream row for the rest of the transaction.
func (r *Repository) GetStreamForUpdate(ctx context.Context, streamID string) (*model.Stream, error) {
	return r.getStream(ctx, streamID, true)
}

func (r *Repository) getStream(ctx context.Context, streamID string, forUpdate bool) (*model.Stream, error) {
	queryBuilder := sq.Select(streamColumns...).
		From("streams").
		Where(sq.Eq{"id": streamID})

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.Chk(ctx).GetContext(ctx, &stream, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &stream, nil
}

func (r *Repository) UpdateStreamDetails(ctx context.Context, streamID, title, description string) error {
	query, args, err := sq.Update("streams").
		Set("title", title).
		Set("description", description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) RescheduleStream(ctx context.Context, streamID string, start, end time.Time, timezone string) error {
	query, args, err := sq.Update("streams").
		Set("scheduled_start", start).
		Set("scheduled_end", end).
		Set("timezone", timezone).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) SetStreamStatus(ctx context.Context, streamID string, status model.StreamStatus) error {
	query, args, err := sq.Update("streams").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) SetStreamVisibility(ctx context.Context, streamID string, visibility model.StreamVisibility) error {
	query, args, err := sq.Update("streams").
		Set("visibility", visibility).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// SetStreamExternal records the provider reference once the event is mirrored.
func (r *Repository) SetStreamExternal(ctx context.Context, streamID, externalID, streamLink string) error {
	query, args, err := sq.Update("streams").
		Set("external_id", externalID).
		Set("stream_link", streamLink).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// AddAttendeeCount moves the denormalized attendee counter atomically in SQL,
// never read-modify-write at the application layer.
func (r *Repository) AddAttendeeCount(ctx context.Context, streamID string, delta int64) error {
	query, args, err := sq.Update("streams").
		Set("total_attendees", sq.Expr("total_attendees + ?", delta)).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) AddSpeakerCount(ctx context.Context, streamID string, delta int64) error {
	query, args, err := sq.Update("streams").
		Set("total_speakers", sq.Expr("total_speakers + ?", delta)).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// ----------------------------- attendees -----------------------------

var attendeeColumns = []string{
	"id",
	"stream_id",
	"member_id",
	"request_to_join_status",
	"attending",
	"is_a_speaker",
	"is_organizer",
	"attendee_comment",
	"organizer_comment",
	"created_at",
	"updated_at",
}

func (r *Repository) CreateAttendee(ctx context.Context, attendee *model.StreamAttendee) (string, error) {
	query, args, err := sq.Insert("stream_attendees").
		Columns("stream_id", "member_id", "request_to_join_status", "attending",
			"is_a_speaker", "is_organizer", "attendee_comment").
		Values(attendee.StreamID, attendee.MemberID, attendee.RequestToJoinStatus, attendee.Attending,
			attendee.IsASpeaker, attendee.IsOrganizer, attendee.AttendeeComment).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendeeID string
	err = r.Chk(ctx).GetContext(ctx, &attendeeID, query, args...)
	if err != nil {
		return "", err
	}

	return attendeeID, nil
}

func (r *Repository) GetAttendee(ctx context.Context, streamID, memberID string) (*model.StreamAttendee, error) {
	return r.getAttendee(ctx, sq.And{
		sq.Eq{"stream_id": streamID},
		sq.Eq{"member_id": memberID},
	}, false)
}

// GetAttendeeForUpdate locks the (stream, member) row so concurrent
// transitions on the same pair serialize.
func (r *Repository) GetAttendeeForUpdate(ctx context.Context, streamID, memberID string) (*model.StreamAttendee, error) {
	return r.getAttendee(ctx, sq.And{
		sq.Eq{"stream_id": streamID},
		sq.Eq{"member_id": memberID},
	}, true)
}

func (r *Repository) GetAttendeeByID(ctx context.Context, streamID, attendeeID string) (*model.StreamAttendee, error) {
	return r.getAttendee(ctx, sq.And{
		sq.Eq{"id": attendeeID},
		sq.Eq{"stream_id": streamID},
	}, true)
}

func (r *Repository) getAttendee(ctx context.Context, where sq.And, forUpdate bool) (*model.StreamAttendee, error) {
	queryBuilder := sq.Select(attendeeColumns...).
		From("stream_attendees").
		Where(where)

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendee model.StreamAttendee
	err = r.Chk(ctx).GetContext(ctx, &attendee, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &attendee, nil
}

// ApproveAttendee flips the record to APPROVED + attending. The status guard
// makes reprocessing a no-op so the caller can count the transition exactly once.
func (r *Repository) ApproveAttendee(ctx context.Context, attendeeID string, organizerComment *string) (bool, error) {
	query, args, err := sq.Update("stream_attendees").
		Set("request_to_join_status", model.ApprovedRequestStatus).
		Set("attending", true).
		Set("organizer_comment", organizerComment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": attendeeID},
			sq.NotEq{"request_to_join_status": model.ApprovedRequestStatus},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) DisapproveAttendee(ctx context.Context, attendeeID string, organizerComment *string) (bool, error) {
	query, args, err := sq.Update("stream_attendees").
		Set("request_to_join_status", model.DisapprovedRequestStatus).
		Set("attending", false).
		Set("organizer_comment", organizerComment).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": attendeeID},
			sq.NotEq{"request_to_join_status": model.DisapprovedRequestStatus},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// SetAttending flips the attendance flag of an approved record. Returns false
// when the flag already had the requested value, so counters move at most once.
func (r *Repository) SetAttending(ctx context.Context, streamID, memberID string, attending bool) (bool, error) {
	query, args, err := sq.Update("stream_attendees").
		Set("attending", attending).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"member_id": memberID},
			sq.Eq{"request_to_join_status": model.ApprovedRequestStatus},
			sq.NotEq{"attending": attending},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) PromoteSpeaker(ctx context.Context, attendeeID string) (bool, error) {
	query, args, err := sq.Update("stream_attendees").
		Set("is_a_speaker", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": attendeeID},
			sq.Eq{"is_a_speaker": false},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteAttendee clears a member's record so they can re-request later.
// The organizer row is never deletable.
func (r *Repository) DeleteAttendee(ctx context.Context, streamID, memberID string) error {
	query, args, err := sq.Delete("stream_attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"member_id": memberID},
			sq.Eq{"is_organizer": false},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) ListAttendees(ctx context.Context, streamID string) (*model.StreamAttendeeList, error) {
	query, args, err := sq.Select(attendeeColumns...).
		From("stream_attendees").
		Where(sq.Eq{"stream_id": streamID}).
		OrderBy("request_to_join_status = 'PENDING' DESC", "created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendees model.StreamAttendeeList
	err = r.Chk(ctx).SelectContext(ctx, &attendees, query, args...)
	if err != nil {
		return nil, err
	}

	return &attendees, nil
}

// ----------------------------- members -----------------------------

func (r *Repository) AddKnownMember(ctx context.Context, memberInfo *model.MemberInfo) error {
	query, args, err := sq.Insert("members").
		Columns("id", "nickname", "email", "avatar_url").
		Values(memberInfo.MemberID, memberInfo.Nickname, memberInfo.Email, memberInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// GetMemberEmails resolves provider-invite emails from the members cache.
func (r *Repository) GetMemberEmails(ctx context.Context, memberIDs []string) ([]string, error) {
	query, args, err := sq.Select("email").
		From("members").
		Where(sq.Eq{"id": memberIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var emails []string
	err = r.Chk(ctx).SelectContext(ctx, &emails, query, args...)
	if err != nil {
		return nil, err
	}

	return emails, nil
}
