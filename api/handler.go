package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mlfq-sim/internal/metrics"
	"mlfq-sim/internal/requests"
	"mlfq-sim/internal/responses"
	"mlfq-sim/internal/schedulers"
)

type SchedulerHandler interface {
	Schemes(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllSchemes(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	registry *schedulers.Registry
	recorder *metrics.Recorder
}

// NewSchedulerHandlerImpl serves the schemes of registry. recorder may be
// nil to disable Prometheus recording.
func NewSchedulerHandlerImpl(registry *schedulers.Registry, recorder *metrics.Recorder) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{registry: registry, recorder: recorder}
}

func (s *SchedulerHandlerImpl) Schemes(ctx *fiber.Ctx) error {
	schemes := s.registry.Schemes()
	out := make([]responses.SchemeResponse, len(schemes))
	for i, scheme := range schemes {
		out[i] = schedulers.GenerateSchemeResponse(scheme)
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	schemeID, err := ctx.ParamsInt("scheme")
	if err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "scheme must be an integer")
	}
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}

	response, err := s.simulate(&request, schemeID)
	if err != nil {
		return writeError(ctx, statusFor(err), err.Error())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllSchemes(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}

	ids := s.registry.IDs()
	results := make([]responses.SchemeResult, 0, len(ids))
	for _, id := range ids {
		response, err := s.simulate(&request, id)
		if err != nil {
			logrus.Warnf("scheme %d: %v", id, err)
			results = append(results, responses.SchemeResult{Scheme: id, Error: err.Error()})
			continue
		}
		results = append(results, responses.SchemeResult{Scheme: id, Result: &response})
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) simulate(request *requests.ScheduleRequests, schemeID int) (responses.ScheduleResponse, error) {
	scheme, err := s.registry.Lookup(schemeID)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	processes := request.ToProcesses()
	if err := schedulers.ValidateProcesses(processes, scheme.Depth()); err != nil {
		return responses.ScheduleResponse{}, err
	}
	engine, err := schedulers.NewEngineFromScheme(processes, scheme)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	result := engine.Run()
	if s.recorder != nil {
		s.recorder.Observe(result)
	}
	return schedulers.GenerateResponse(result, request.Trace), nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, schedulers.ErrInvalidConfiguration):
		return fiber.StatusNotFound
	case errors.Is(err, schedulers.ErrInvalidInput):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func writeError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: message})
}
