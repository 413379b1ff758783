package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wfsim/heft-planner/internal/parser"
	"wfsim/heft-planner/internal/planner"
	"wfsim/heft-planner/pkg/types"
)

// PlanRequest is the body of POST /api/v1/plan. Tasks reference children by
// ID, the same shape the YAML definition files use.
type PlanRequest struct {
	WorkflowID string            `json:"workflow_id"`
	Tasks      []parser.TaskSpec `json:"tasks"`
	Machines   []types.Machine   `json:"machines"`
	Weights    *planner.Weights  `json:"weights,omitempty"`
}

// ErrorResponse carries an error message to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handlePlan(c *fiber.Ctx) error {
	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body: " + err.Error()})
	}

	wf, err := parser.BuildWorkflow(req.WorkflowID, "", req.Tasks)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := parser.ValidateMachines(req.Machines); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	weights := s.weights
	if req.Weights != nil {
		weights = *req.Weights
	}

	p, err := planner.New(s.estimator, weights)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	plan, err := p.Plan(wf, req.Machines)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, planner.ErrNoMachines) || errors.Is(err, planner.ErrMalformedGraph) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.JSON(plan)
}
