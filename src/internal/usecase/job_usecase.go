package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/gateway/messaging"
	"fleet-service/src/internal/job"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/model/converter"
	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type JobUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	JobRepository    *repository.JobRepository
	RouteRepository  *repository.RouteRepository
	DriverRepository *repository.DriverRepository
	TripRepository   *repository.TripRepository
	Redis            redis.UniversalClient
	JobProducer      *messaging.JobProducer
}

func NewJobUseCase(
	logger log.Log,
	validate *validator.Validate,
	jobRepository *repository.JobRepository,
	routeRepository *repository.RouteRepository,
	driverRepository *repository.DriverRepository,
	tripRepository *repository.TripRepository,
	redisClient redis.UniversalClient,
	jobProducer *messaging.JobProducer,
) *JobUseCase {
	return &JobUseCase{
		Log:              logger,
		Validate:         validate,
		JobRepository:    jobRepository,
		RouteRepository:  routeRepository,
		DriverRepository: driverRepository,
		TripRepository:   tripRepository,
		Redis:            redisClient,
		JobProducer:      jobProducer,
	}
}

func (c *JobUseCase) AssignJob(ctx context.Context, request *model.AssignJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "AssignJob", utils.ConvertString(err))
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.DriverID)
	if err != nil || driver.OwnerID != request.OwnerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("driver with id %s not found", request.DriverID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "AssignJob", utils.ConvertString(err))
		return result
	}

	route, err := c.RouteRepository.FindByID(ctx, request.RouteID)
	if err != nil || route.OwnerID != request.OwnerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("route with id %s not found", request.RouteID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "AssignJob", utils.ConvertString(err))
		return result
	}

	newJob := &entity.Job{
		JobID:      uuid.NewString(),
		OwnerID:    request.OwnerID,
		DriverID:   request.DriverID,
		RouteID:    route.RouteID,
		RouteName:  route.Name,
		Status:     job.StatusAssigned,
		AssignedAt: time.Now(),
	}
	if err := c.JobRepository.CreateJob(ctx, newJob); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create job"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("create job: %v", err), "AssignJob", "")
		return result
	}

	c.publishStatus(newJob, "")
	c.Log.Info("job-usecase", "job assigned", "AssignJob", newJob.JobID)
	result.Data = converter.JobToResponse(newJob, nil, route.StopNames())
	return result
}

func (c *JobUseCase) RequestJob(ctx context.Context, request *model.RequestJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "RequestJob", utils.ConvertString(err))
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.DriverID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("driver with id %s not found", request.DriverID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "RequestJob", utils.ConvertString(err))
		return result
	}

	route, err := c.RouteRepository.FindByID(ctx, request.RouteID)
	if err != nil || route.OwnerID != driver.OwnerID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("route with id %s not found", request.RouteID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "RequestJob", utils.ConvertString(err))
		return result
	}

	newJob := &entity.Job{
		JobID:      uuid.NewString(),
		OwnerID:    driver.OwnerID,
		DriverID:   driver.DriverID,
		RouteID:    route.RouteID,
		RouteName:  route.Name,
		Status:     job.StatusRequested,
		AssignedAt: time.Now(), // re-stamped on owner approval
	}
	if err := c.JobRepository.CreateJob(ctx, newJob); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create job request"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("create job request: %v", err), "RequestJob", "")
		return result
	}

	c.publishStatus(newJob, "")
	result.Data = converter.JobToResponse(newJob, nil, route.StopNames())
	return result
}

// ApproveJob is the owner approving a driver-initiated request:
// REQUESTED -> ASSIGNED.
func (c *JobUseCase) ApproveJob(ctx context.Context, request *model.ApproveJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "ApproveJob", utils.ConvertString(err))
		return result
	}

	tankerJob, err := c.JobRepository.FindByID(ctx, request.JobID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("job with id %s not found", request.JobID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "ApproveJob", utils.ConvertString(err))
		return result
	}

	if tankerJob.OwnerID != request.OwnerID {
		errObj := httpError.NewForbidden()
		errObj.Message = "only the owning account can approve this request"
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "ApproveJob", "")
		return result
	}

	ok, err := c.JobRepository.ApproveJob(ctx, request.JobID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to approve job"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("approve job: %v", err), "ApproveJob", "")
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("job is no longer awaiting approval (status %s)", tankerJob.Status)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "ApproveJob", "")
		return result
	}

	oldStatus := tankerJob.Status
	tankerJob.Status = job.StatusAssigned
	c.publishStatus(tankerJob, oldStatus)
	result.Data = converter.JobToResponse(tankerJob, nil, nil)
	return result
}

// LogStopAction appends a timeline event at a route stop. The first action by
// the assigned driver moves the job to IN_PROGRESS; an already-logged
// confirmation is a no-op and leaves the timeline unchanged.
func (c *JobUseCase) LogStopAction(ctx context.Context, request *model.LogStopActionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "LogStopAction", utils.ConvertString(err))
		return result
	}

	tankerJob, route, errObj := c.loadJobForDriver(ctx, request.JobID, request.DriverID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	stop, found := route.StopByName(request.Stop)
	if !found {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("stop %q is not on route %s", request.Stop, route.Name)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "LogStopAction", "")
		return result
	}

	switch tankerJob.Status {
	case job.StatusCompleted:
		errObj := httpError.NewConflict()
		errObj.Message = "job is already completed; its timeline is closed"
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "LogStopAction", "")
		return result

	case job.StatusRequested:
		errObj := httpError.NewConflict()
		errObj.Message = "job request has not been approved yet"
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "LogStopAction", "")
		return result

	case job.StatusAssigned, job.StatusAccepted:
		// driver is acting on the job for the first time
		ok, err := c.JobRepository.UpdateStatus(ctx, tankerJob.JobID, tankerJob.Status, job.StatusInProgress)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "failed to start job"
			result.Error = errObj
			c.Log.Error("job-usecase", fmt.Sprintf("start job: %v", err), "LogStopAction", "")
			return result
		}
		if ok {
			oldStatus := tankerJob.Status
			tankerJob.Status = job.StatusInProgress
			c.publishStatus(tankerJob, oldStatus)
		} else {
			// lost a race against another action on the same job; re-read
			refreshed, err := c.JobRepository.FindByID(ctx, tankerJob.JobID)
			if err != nil || refreshed.Status != job.StatusInProgress {
				errObj := httpError.NewConflict()
				errObj.Message = "job is not in a state that accepts stop actions"
				result.Error = errObj
				c.Log.Error("job-usecase", errObj.Message, "LogStopAction", "")
				return result
			}
			tankerJob = refreshed
		}

	case job.StatusInProgress:
		// continue
	}

	events, err := c.JobRepository.ListEvents(ctx, tankerJob.JobID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load job timeline"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("list events: %v", err), "LogStopAction", "")
		return result
	}

	if request.Action != job.ActionNote && job.HasStopAction(events, stop.Name, request.Action) {
		// idempotent: the confirmation is already on the timeline
		result.Data = converter.JobToResponse(tankerJob, events, job.IncompleteStops(events, route.StopNames()))
		return result
	}

	event := &entity.JobEvent{
		JobID:      tankerJob.JobID,
		StopName:   stop.Name,
		Action:     request.Action,
		Label:      actionLabel(request.Action, stop),
		Notes:      request.Notes,
		OccurredAt: time.Now(),
	}
	if _, err := c.JobRepository.AppendEvent(ctx, event); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to append job event"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("append event: %v", err), "LogStopAction", "")
		return result
	}

	events, err = c.JobRepository.ListEvents(ctx, tankerJob.JobID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load job timeline"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("list events: %v", err), "LogStopAction", "")
		return result
	}

	result.Data = converter.JobToResponse(tankerJob, events, job.IncompleteStops(events, route.StopNames()))
	return result
}

// CompleteJob finishes a run. The precondition (every stop confirmed twice)
// is checked against the same event snapshot that authorizes the transition,
// and the conditional status update is the serialization point: only one
// completion attempt can ever win, so exactly one trip is recorded per job.
func (c *JobUseCase) CompleteJob(ctx context.Context, request *model.CompleteJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "CompleteJob", utils.ConvertString(err))
		return result
	}

	tankerJob, route, errObj := c.loadJobForDriver(ctx, request.JobID, request.DriverID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if tankerJob.Status != job.StatusInProgress {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("job cannot be completed from status %s", tankerJob.Status)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "CompleteJob", "")
		return result
	}

	events, err := c.JobRepository.ListEvents(ctx, tankerJob.JobID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load job timeline"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("list events: %v", err), "CompleteJob", "")
		return result
	}

	stopNames := route.StopNames()
	if !job.AllStopsComplete(events, stopNames) {
		missing := job.IncompleteStops(events, stopNames)
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("stops incomplete: %s", strings.Join(missing, ", "))
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "CompleteJob", tankerJob.JobID)
		return result
	}

	ok, err := c.JobRepository.UpdateStatus(ctx, tankerJob.JobID, job.StatusInProgress, job.StatusCompleted)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to complete job"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("complete job: %v", err), "CompleteJob", "")
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "job was completed by a concurrent request"
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "CompleteJob", tankerJob.JobID)
		return result
	}

	oldStatus := tankerJob.Status
	tankerJob.Status = job.StatusCompleted

	if lastStop, ok := job.FinalStop(stopNames); ok {
		finalEvent := &entity.JobEvent{
			JobID:      tankerJob.JobID,
			StopName:   lastStop,
			Action:     job.ActionNote,
			Label:      "Job Completed",
			OccurredAt: time.Now(),
		}
		if _, err := c.JobRepository.AppendEvent(ctx, finalEvent); err != nil {
			c.Log.Error("job-usecase", fmt.Sprintf("append completion event: %v", err), "CompleteJob", tankerJob.JobID)
		}
		events = append(events, *finalEvent)
	}

	trip := job.BuildTripFromJob(*tankerJob, events)
	if err := c.TripRepository.InsertTrip(ctx, &trip); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "job completed but trip recording failed"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("insert trip: %v", err), "CompleteJob", tankerJob.JobID)
		return result
	}

	c.publishStatus(tankerJob, oldStatus)
	if err := c.JobProducer.SendTripRecorded(converter.TripToEvent(&trip)); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("publish trip-recorded: %v", err), "CompleteJob", trip.TripID)
	}
	c.invalidateSummary(ctx, &trip)

	c.Log.Info("job-usecase", "job completed and trip recorded", "CompleteJob", tankerJob.JobID)
	result.Data = converter.JobToResponse(tankerJob, events, nil)
	return result
}

func (c *JobUseCase) GetJob(ctx context.Context, request *model.GetJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "GetJob", utils.ConvertString(err))
		return result
	}

	tankerJob, err := c.JobRepository.FindByID(ctx, request.JobID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("job with id %s not found", request.JobID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "GetJob", utils.ConvertString(err))
		return result
	}

	// jobs outside the caller's fleet are indistinguishable from missing ones
	if !jobVisibleTo(tankerJob, request.OwnerID, request.DriverID) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("job with id %s not found", request.JobID)
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "GetJob", "")
		return result
	}

	events, err := c.JobRepository.ListEvents(ctx, tankerJob.JobID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load job timeline"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("list events: %v", err), "GetJob", "")
		return result
	}

	var incomplete []string
	if tankerJob.Status != job.StatusCompleted {
		if route, err := c.RouteRepository.FindByID(ctx, tankerJob.RouteID); err == nil {
			incomplete = job.IncompleteStops(events, route.StopNames())
		}
	}

	result.Data = converter.JobToResponse(tankerJob, events, incomplete)
	return result
}

func (c *JobUseCase) ListJobs(ctx context.Context, request *model.ListJobsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "ListJobs", utils.ConvertString(err))
		return result
	}

	filter := entity.JobFilter{}
	if request.OwnerID != "" {
		filter.OwnerID = &request.OwnerID
	}
	if request.DriverID != "" {
		filter.DriverID = &request.DriverID
	}
	if request.Status != "" {
		filter.Status = &request.Status
	}

	jobs, err := c.JobRepository.ListJobs(ctx, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list jobs"
		result.Error = errObj
		c.Log.Error("job-usecase", fmt.Sprintf("list jobs: %v", err), "ListJobs", "")
		return result
	}

	responses := make([]model.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *converter.JobToResponse(&jobs[i], nil, nil))
	}
	result.Data = responses
	return result
}

// jobVisibleTo reports whether the caller, identified as either an owner or a
// driver, may read this job. Anyone else must not learn it exists.
func jobVisibleTo(j *entity.Job, ownerID, driverID string) bool {
	if ownerID != "" && j.OwnerID == ownerID {
		return true
	}
	if driverID != "" && j.DriverID == driverID {
		return true
	}
	return false
}

func (c *JobUseCase) loadJobForDriver(ctx context.Context, jobID, driverID string) (*entity.Job, *entity.Route, *httpError.CommonError) {
	tankerJob, err := c.JobRepository.FindByID(ctx, jobID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("job with id %s not found", jobID)
		c.Log.Error("job-usecase", errObj.Message, "loadJobForDriver", utils.ConvertString(err))
		return nil, nil, errObj
	}

	if tankerJob.DriverID != driverID {
		errObj := httpError.NewForbidden()
		errObj.Message = "you are not the assigned driver for this job"
		c.Log.Error("job-usecase", errObj.Message, "loadJobForDriver", jobID)
		return nil, nil, errObj
	}

	route, err := c.RouteRepository.FindByID(ctx, tankerJob.RouteID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load route for job"
		c.Log.Error("job-usecase", fmt.Sprintf("load route: %v", err), "loadJobForDriver", jobID)
		return nil, nil, errObj
	}

	return tankerJob, route, nil
}

func (c *JobUseCase) publishStatus(j *entity.Job, oldStatus string) {
	if err := c.JobProducer.SendStatusChanged(converter.JobToStatusEvent(j, oldStatus)); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("publish job-status-changed: %v", err), "publishStatus", j.JobID)
	}
}

func (c *JobUseCase) invalidateSummary(ctx context.Context, trip *entity.Trip) {
	key := summaryCacheKey(trip.OwnerID, trip.DriverID, trip.TripDate.Format("2006-01"))
	if err := c.Redis.Del(ctx, key).Err(); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("invalidate summary cache: %v", err), "invalidateSummary", key)
	}
}

func actionLabel(action string, stop entity.RouteStop) string {
	switch action {
	case job.ActionArrived:
		return job.ArriveLabel(stop.Name)
	case job.ActionFulfilled:
		return job.FulfillLabel(stop.Kind)
	default:
		return "Note"
	}
}
