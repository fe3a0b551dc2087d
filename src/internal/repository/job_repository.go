package repository

import (
	"context"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/job"
	"fleet-service/src/pkg/databases/mysql"
)

type JobRepository struct {
	DB mysql.DBInterface
}

func NewJobRepository(db mysql.DBInterface) *JobRepository {
	return &JobRepository{
		DB: db,
	}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *entity.Job) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (job_id, owner_id, driver_id, route_id, route_name, status, assigned_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err = db.ExecContext(ctx, query,
		job.JobID, job.OwnerID, job.DriverID, job.RouteID,
		job.RouteName, job.Status, job.AssignedAt)
	return err
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*entity.Job, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var job entity.Job
	query := `
		SELECT job_id, owner_id, driver_id, route_id, route_name, status, assigned_at, created_at, updated_at
		FROM jobs
		WHERE job_id = ?
	`
	if err := db.GetContext(ctx, &job, query, id); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) ListJobs(ctx context.Context, filter entity.JobFilter) ([]entity.Job, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT job_id, owner_id, driver_id, route_id, route_name, status, assigned_at, created_at, updated_at
		FROM jobs
		WHERE 1 = 1
	`
	args := []interface{}{}
	if filter.OwnerID != nil {
		query += " AND owner_id = ?"
		args = append(args, *filter.OwnerID)
	}
	if filter.DriverID != nil {
		query += " AND driver_id = ?"
		args = append(args, *filter.DriverID)
	}
	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, *filter.Status)
	}
	query += " ORDER BY assigned_at DESC"

	var jobs []entity.Job
	if err := db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateStatus is the conditional transition write. It returns false when the
// job was no longer in fromStatus, which is how concurrent transition attempts
// lose: only one caller ever sees a row affected.
func (r *JobRepository) UpdateStatus(ctx context.Context, jobID, fromStatus, toStatus string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE jobs
		SET status = ?, updated_at = NOW()
		WHERE job_id = ? AND status = ?
	`
	res, err := db.ExecContext(ctx, query, toStatus, jobID, fromStatus)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// ApproveJob moves a driver-requested job to ASSIGNED and stamps the
// assignment time, which later becomes the trip's attribution date.
func (r *JobRepository) ApproveJob(ctx context.Context, jobID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE jobs
		SET status = ?, assigned_at = NOW(), updated_at = NOW()
		WHERE job_id = ? AND status = ?
	`
	res, err := db.ExecContext(ctx, query, job.StatusAssigned, jobID, job.StatusRequested)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *JobRepository) ListEvents(ctx context.Context, jobID string) ([]entity.JobEvent, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var events []entity.JobEvent
	query := `
		SELECT event_id, job_id, stop_name, action, label, notes, occurred_at
		FROM job_events
		WHERE job_id = ?
		ORDER BY event_id
	`
	if err := db.SelectContext(ctx, &events, query, jobID); err != nil {
		return nil, err
	}
	return events, nil
}

// AppendEvent inserts a timeline entry. ARRIVED/FULFILLED rows carry a dedup
// key covered by a unique index (NULL for notes, which may repeat), so a
// duplicate confirmation becomes an ignored insert, returned as false.
func (r *JobRepository) AppendEvent(ctx context.Context, event *entity.JobEvent) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var dedupKey *string
	if event.Action == job.ActionArrived || event.Action == job.ActionFulfilled {
		key := event.StopName + ":" + event.Action
		dedupKey = &key
	}

	query := `
		INSERT IGNORE INTO job_events (job_id, stop_name, action, label, notes, occurred_at, dedup_key)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := db.ExecContext(ctx, query,
		event.JobID, event.StopName, event.Action, event.Label, event.Notes, event.OccurredAt, dedupKey)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}
