package vesting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type DbClient struct {
	Pool *pgxpool.Pool
}

func NewDbClient(dsn string, maxconns int, minconns int) (*DbClient, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if maxconns > 0 {
		config.MaxConns = int32(maxconns)
	}
	if minconns > 0 {
		config.MinConns = int32(minconns)
	}
	config.HealthCheckPeriod = 60 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(context.Background()); err != nil {
		return nil, err
	}
	return &DbClient{pool}, nil
}

func (db *DbClient) InitSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
	create table if not exists vesting_schedules (
		id bigserial primary key,
		beneficiary varchar not null unique,
		revocable boolean not null,
		total_amount bigint not null,
		start_time bigint not null,
		duration bigint not null,
		cliff bigint not null,
		released bigint not null,
		revoked boolean not null,
		revoked_at bigint not null
	);
	create table if not exists vesting_config (
		id int primary key,
		owner varchar not null,
		fee_recipient varchar not null,
		setup_fee_percentage bigint not null
	);
	create table if not exists vesting_events (
		id bigserial primary key,
		utime bigint not null,
		event_type varchar not null,
		beneficiary varchar not null,
		amount bigint,
		start_time bigint,
		duration bigint,
		cliff bigint
	);
	create index if not exists vesting_events_beneficiary_idx on vesting_events (beneficiary, utime);`)
	return err
}

func (db *DbClient) LoadConfig(ctx context.Context) (owner AccountAddress, feeRecipient AccountAddress, feePct uint64, found bool, err error) {
	row := db.Pool.QueryRow(ctx, `select owner, fee_recipient, setup_fee_percentage from vesting_config where id = 1`)
	err = row.Scan(&owner, &feeRecipient, &feePct)
	if err == pgx.ErrNoRows {
		return "", "", 0, false, nil
	}
	if err != nil {
		return "", "", 0, false, err
	}
	return owner, feeRecipient, feePct, true, nil
}

func (db *DbClient) SaveConfig(ctx context.Context, owner AccountAddress, feeRecipient AccountAddress, feePct uint64) error {
	_, err := db.Pool.Exec(ctx, `insert into vesting_config (id, owner, fee_recipient, setup_fee_percentage)
		values (1, $1, $2, $3)
		on conflict (id) do update set owner = $1, fee_recipient = $2, setup_fee_percentage = $3`,
		string(owner), string(feeRecipient), feePct)
	return err
}

// LoadSchedules returns all schedules in creation order. The serial id keeps
// the beneficiary enumeration index-stable across restarts.
func (db *DbClient) LoadSchedules(ctx context.Context) ([]ScheduleEntry, error) {
	rows, err := db.Pool.Query(ctx, `select beneficiary, revocable, total_amount, start_time,
		duration, cliff, released, revoked, revoked_at from vesting_schedules order by id asc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []ScheduleEntry{}
	for rows.Next() {
		var e ScheduleEntry
		err = rows.Scan(&e.Beneficiary, &e.Schedule.Revocable, &e.Schedule.TotalAmount,
			&e.Schedule.StartTime, &e.Schedule.Duration, &e.Schedule.Cliff,
			&e.Schedule.Released, &e.Schedule.Revoked, &e.Schedule.RevokedAt)
		if err != nil {
			return nil, err
		}
		e.Schedule.Initialized = true
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func insertEventTx(ctx context.Context, tx pgx.Tx, ev *EventRecord) error {
	_, err := tx.Exec(ctx, `insert into vesting_events (utime, event_type, beneficiary, amount, start_time, duration, cliff)
		values ($1, $2, $3, $4, $5, $6, $7)`,
		ev.Utime, ev.Type, string(ev.Beneficiary), ev.Amount, ev.StartTime, ev.Duration, ev.Cliff)
	return err
}

// InsertSchedule stages a new schedule row and the creation event, runs
// `during` (the fee transfer) inside the transaction scope, and commits only
// if everything succeeded.
func (db *DbClient) InsertSchedule(ctx context.Context, entry ScheduleEntry, ev *EventRecord, during func() error) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	s := entry.Schedule
	_, err = tx.Exec(ctx, `insert into vesting_schedules
		(beneficiary, revocable, total_amount, start_time, duration, cliff, released, revoked, revoked_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(entry.Beneficiary), s.Revocable, s.TotalAmount, s.StartTime, s.Duration,
		s.Cliff, s.Released, s.Revoked, s.RevokedAt)
	if err != nil {
		return err
	}
	if ev != nil {
		if err = insertEventTx(ctx, tx, ev); err != nil {
			return err
		}
	}
	if during != nil {
		if err = during(); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// UpdateSchedule persists a mutated schedule with the same all-or-nothing
// contract as InsertSchedule.
func (db *DbClient) UpdateSchedule(ctx context.Context, entry ScheduleEntry, ev *EventRecord, during func() error) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	s := entry.Schedule
	res, err := tx.Exec(ctx, `update vesting_schedules set released = $2, revoked = $3, revoked_at = $4
		where beneficiary = $1`,
		string(entry.Beneficiary), s.Released, s.Revoked, s.RevokedAt)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return VestingError{Code: 404, Kind: ErrNoSchedule, Message: "no vesting schedule found"}
	}
	if ev != nil {
		if err = insertEventTx(ctx, tx, ev); err != nil {
			return err
		}
	}
	if during != nil {
		if err = during(); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// query builder
func limitQuery(lim LimitRequest, settings RequestSettings) (string, error) {
	query := ``
	limit := settings.DefaultLimit
	if lim.Limit != nil {
		limit = int(*lim.Limit)
	}
	if settings.MaxLimit > 0 && limit > settings.MaxLimit {
		return "", VestingError{Code: 422, Message: fmt.Sprintf("limit is not allowed: %d > %d", limit, settings.MaxLimit)}
	}
	if limit > 0 {
		query += fmt.Sprintf(" limit %d", limit)
	}
	if lim.Offset != nil {
		query += fmt.Sprintf(" offset %d", *lim.Offset)
	}
	return query, nil
}

func buildEventsQuery(ev_req EventsRequest, lim_req LimitRequest, settings RequestSettings) (string, []interface{}, error) {
	limit_query, err := limitQuery(lim_req, settings)
	if err != nil {
		return "", nil, err
	}

	filter_list := []string{}
	args := []interface{}{}

	if len(ev_req.Beneficiary) > 0 {
		addr_list := []string{}
		for _, a := range ev_req.Beneficiary {
			addr_list = append(addr_list, string(a))
		}
		args = append(args, pq.Array(addr_list))
		filter_list = append(filter_list, fmt.Sprintf("E.beneficiary = any($%d)", len(args)))
	}
	if len(ev_req.EventType) > 0 {
		args = append(args, pq.Array(ev_req.EventType))
		filter_list = append(filter_list, fmt.Sprintf("E.event_type = any($%d)", len(args)))
	}
	if v := ev_req.StartUtime; v != nil {
		filter_list = append(filter_list, fmt.Sprintf("E.utime >= %d", uint64(*v)))
	}
	if v := ev_req.EndUtime; v != nil {
		filter_list = append(filter_list, fmt.Sprintf("E.utime <= %d", uint64(*v)))
	}

	sort_order := `desc`
	if lim_req.Sort != nil {
		switch *lim_req.Sort {
		case ASC, DESC:
			sort_order = string(*lim_req.Sort)
		default:
			return "", nil, VestingError{Code: 422, Message: fmt.Sprintf("wrong sort parameter: %s", *lim_req.Sort)}
		}
	}

	query := `select E.id, E.utime, E.event_type, E.beneficiary, E.amount, E.start_time, E.duration, E.cliff from vesting_events as E`
	if len(filter_list) > 0 {
		query += ` where ` + strings.Join(filter_list, " and ")
	}
	query += fmt.Sprintf(` order by E.id %s`, sort_order)
	query += limit_query
	return query, args, nil
}

func (db *DbClient) QueryEvents(ev_req EventsRequest, lim_req LimitRequest, settings RequestSettings) ([]EventRecord, error) {
	query, args, err := buildEventsQuery(ev_req, lim_req, settings)
	if err != nil {
		return nil, err
	}

	conn, err := db.Pool.Acquire(context.Background())
	if err != nil {
		return nil, VestingError{Code: 500, Message: err.Error()}
	}
	defer conn.Release()

	ctx, cancel_ctx := opCtx(settings)
	defer cancel_ctx()
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, VestingError{Code: 500, Message: err.Error()}
	}
	defer rows.Close()

	events := []EventRecord{}
	for rows.Next() {
		var ev EventRecord
		err = rows.Scan(&ev.Id, &ev.Utime, &ev.Type, &ev.Beneficiary,
			&ev.Amount, &ev.StartTime, &ev.Duration, &ev.Cliff)
		if err != nil {
			return nil, VestingError{Code: 500, Message: err.Error()}
		}
		events = append(events, ev)
	}
	if rows.Err() != nil {
		return nil, VestingError{Code: 500, Message: rows.Err().Error()}
	}
	return events, nil
}
