package api

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	ClearProcesses(ctx *fiber.Ctx) error
	RunProcesses(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl serves one-shot scheduling requests and a single
// session registry shared by all clients.
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig

	mu       sync.Mutex
	registry *core.Registry
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, registry: core.NewRegistry()}
}

// NewApp wires the handlers under /api/v1.
func NewApp(config *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewSchedulerHandlerImpl(config)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/schedule/:algorithm", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Post("/processes", handler.AddProcess)
		v1.Get("/processes", handler.ListProcesses)
		v1.Delete("/processes", handler.ClearProcesses)
		v1.Post("/processes/run/:algorithm", handler.RunProcesses)
	}
	return app
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	registry, err := registryFromJobs(request.Jobs)
	if err != nil {
		return sendError(ctx, fiber.StatusBadRequest, err.Error())
	}

	response, err := s.run(ctx.Params("algorithm"), registry, s.options(request))
	if err != nil {
		return sendSchedulerError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	registry, err := registryFromJobs(request.Jobs)
	if err != nil {
		return sendError(ctx, fiber.StatusBadRequest, err.Error())
	}

	results, err := schedulers.Compare(registry, schedulers.Names, s.options(request))
	if err != nil {
		return sendSchedulerError(ctx, err)
	}
	all := make([]responses.ScheduleResponse, 0, len(results))
	for _, r := range results {
		all = append(all, schedulers.GenerateResponse(r.Algorithm, r.Processes, r.Timeline))
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, "invalid request format")
	}
	if err := workload.ProcessSpec(job).Validate(); err != nil {
		return sendError(ctx, fiber.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	id := s.registry.Add(job.ArrivalTime, job.BurstTime, job.Priority)
	s.mu.Unlock()

	logrus.Debugf("pid: %d added to session", id)
	return ctx.Status(fiber.StatusCreated).JSON(responses.AddProcessResponse{ProcessId: id})
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	s.mu.Lock()
	list := s.registry.List()
	s.mu.Unlock()
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) ClearProcesses(ctx *fiber.Ctx) error {
	s.mu.Lock()
	s.registry.Clear()
	s.mu.Unlock()
	return ctx.SendStatus(fiber.StatusNoContent)
}

// RunProcesses resets the session registry and schedules it in place, so a
// later ListProcesses shows the computed times.
func (s *SchedulerHandlerImpl) RunProcesses(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&request); err != nil {
			return sendError(ctx, fiber.StatusBadRequest, "invalid request format")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	response, err := s.run(ctx.Params("algorithm"), s.registry, s.options(request))
	if err != nil {
		return sendSchedulerError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(algorithm string, registry *core.Registry, opts schedulers.Options) (responses.ScheduleResponse, error) {
	registry.Reset()
	processes := registry.Processes()
	timeline, err := schedulers.Run(algorithm, processes, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if err := timeline.Validate(processes); err != nil {
		logrus.Errorf("%s produced an inconsistent timeline: %v", algorithm, err)
	}
	return schedulers.GenerateResponse(algorithm, processes, timeline), nil
}

// options falls back to the configured quanta for fields the request omits.
func (s *SchedulerHandlerImpl) options(request requests.ScheduleRequests) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:       request.TimeQuantum,
		LevelsTimeQuantum: request.LevelsTimeQuantum,
	}
	if opts.TimeQuantum == 0 {
		opts.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	if len(opts.LevelsTimeQuantum) == 0 {
		opts.LevelsTimeQuantum = s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return opts
}

func registryFromJobs(jobs []requests.Job) (*core.Registry, error) {
	spec := workload.Spec{Processes: make([]workload.ProcessSpec, 0, len(jobs))}
	for _, job := range jobs {
		spec.Processes = append(spec.Processes, workload.ProcessSpec(job))
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec.Registry(), nil
}

func sendSchedulerError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return sendError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, schedulers.ErrInvalidTimeQuantum):
		return sendError(ctx, fiber.StatusBadRequest, err.Error())
	}
	logrus.Errorf("can not process request: %v", err)
	return sendError(ctx, fiber.StatusInternalServerError, "can not process request")
}

func sendError(ctx *fiber.Ctx, status int, message string) error {
	logrus.Warnf("%s %s: %s", ctx.Method(), ctx.Path(), message)
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message})
}
