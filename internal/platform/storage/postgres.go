package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dealersync/dealersync/internal/platform"
	"github.com/dealersync/dealersync/internal/platform/models"
	"github.com/dealersync/dealersync/internal/platform/report"
	"github.com/dealersync/dealersync/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/dealersync/dealersync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for runs, listings and known fingerprints.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartRun creates new unfinished run in database and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context) (*models.Run, error) {
	run := &models.Run{}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx)

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := pgmodels.Run{}
		err = table.Run.INSERT(table.Run.ID).
			VALUES(pg.DEFAULT).
			RETURNING(table.Run.ID, table.Run.CreatedAt).
			QueryContext(ctx, tx, &newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished, updates run's statistics and persists the
// run's report error entries.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run, entries []report.Entry) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		columnList := table.Run.AllColumns.Except(table.Run.ID, table.Run.CreatedAt)

		result, err := table.Run.UPDATE(columnList).
			MODEL(toDBRun(run)).
			WHERE(table.Run.ID.EQ(pg.Int32(int32(run.ID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update run: %w", err)
		}

		if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
			return fmt.Errorf("can't update run: %w", err)
		}

		if err := insertRunErrors(ctx, tx, int32(run.ID), entries); err != nil {
			return fmt.Errorf("can't insert run errors: %w", err)
		}

		return nil
	})
}

// KnownFingerprints returns fingerprints of all previously ingested listings.
// It is queried once at run start to build the deduplication snapshot.
func (p Postgres) KnownFingerprints(ctx context.Context) ([]string, error) {
	var listings []pgmodels.Listing
	err := table.Listing.SELECT(table.Listing.Fingerprint).
		QueryContext(ctx, p.db, &listings)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get known fingerprints: %w", err)
	}

	fingerprints := make([]string, 0, len(listings))
	for ix := range listings {
		fingerprints = append(fingerprints, listings[ix].Fingerprint)
	}

	return fingerprints, nil
}

// InsertListing persists one listing and returns its assigned id. The insert
// is idempotent: a listing whose fingerprint already exists is left untouched
// and the stored row's id is returned.
func (p Postgres) InsertListing(ctx context.Context, listing *models.Listing) (int, error) {
	columnList := table.Listing.AllColumns.Except(table.Listing.ID, table.Listing.CreatedAt)

	_, err := table.Listing.INSERT(columnList).
		MODEL(ToDBListing(listing)).
		ON_CONFLICT(table.Listing.Fingerprint).
		DO_NOTHING().
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't insert listing into database: %w", err)
	}

	var stored pgmodels.Listing
	err = table.Listing.SELECT(table.Listing.ID).
		WHERE(table.Listing.Fingerprint.EQ(pg.String(listing.Fingerprint))).
		QueryContext(ctx, p.db, &stored)
	if err != nil {
		return 0, fmt.Errorf("can't get inserted listing id: %w", err)
	}

	return int(stored.ID), nil
}

func insertRunErrors(ctx context.Context, db qrm.DB, runID int32, entries []report.Entry) error {
	dbErrors := ToDBRunErrors(runID, entries)
	if len(dbErrors) == 0 {
		return nil
	}

	_, err := table.RunError.INSERT(table.RunError.AllColumns.Except(table.RunError.ID)).
		MODELS(dbErrors).
		ExecContext(ctx, db)

	return err
}

func getLastRun(ctx context.Context, db qrm.DB) (*pgmodels.Run, error) {
	var run pgmodels.Run
	err := table.Run.SELECT(
		table.Run.CreatedAt,
		table.Run.FinishedAt,
		table.Run.Success,
		table.Run.StatusMessage,
	).
		ORDER_BY(table.Run.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
