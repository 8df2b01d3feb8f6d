// Package mcpserver exposes the plant collection as read-only MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Config holds what the tools need. Plants are reloaded from Store on every
// call so the tools always see the last saved state.
type Config struct {
	Store            ops.Store
	ReminderTemplate string
	Version          string
	Logger           zerolog.Logger

	// Now returns the reference date when a call does not pass "today".
	Now func() time.Time
}

// DateArgs is the optional reference date shared by all tools.
type DateArgs struct {
	Today string `json:"today,omitempty" jsonschema:"description=Reference date (YYYY-MM-DD or a phrase like yesterday)"`
}

// ListPlantsArgs defines arguments for the list_plants tool.
type ListPlantsArgs struct {
	DateArgs
	Status     string `json:"status,omitempty" jsonschema:"description=Only plants with this status (overdue, due_today, healthy)"`
	NeedsWater bool   `json:"needs_water,omitempty" jsonschema:"description=Only plants that are overdue or due today"`
}

// PlantInfo is a plant with its derived watering state.
type PlantInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Water        int    `json:"water"`
	Sun          string `json:"sun"`
	Image        string `json:"image,omitempty"`
	LastWatered  string `json:"last_watered"`
	Due          string `json:"due"`
	Status       string `json:"status"`
	DaysUntilDue int    `json:"days_until_due"`
}

// ReminderResult is the payload of the watering_reminders tool.
type ReminderResult struct {
	Today   string   `json:"today"`
	Plants  []string `json:"plants"`
	Message string   `json:"message"`
}

// Handlers implements the tool handlers.
type Handlers struct {
	cfg    Config
	logger zerolog.Logger
}

// NewHandlers returns handlers for cfg.
func NewHandlers(cfg Config) *Handlers {
	if cfg.Now == nil {
		cfg.Now = model.Today
	}
	return &Handlers{
		cfg:    cfg,
		logger: logging.Component(cfg.Logger, "mcp"),
	}
}

// NewServer builds an MCP server with all plant tools registered.
func NewServer(cfg Config) *server.MCPServer {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	h := NewHandlers(cfg)

	s := server.NewMCPServer(
		"plantpal",
		cfg.Version,
	)

	listTool := mcp.NewTool("list_plants",
		mcp.WithDescription("List tracked houseplants with their watering interval, sunlight need, last watered date, next due date and status"),
		mcp.WithString("status",
			mcp.Description("Only plants with this status: overdue, due_today or healthy")),
		mcp.WithBoolean("needs_water",
			mcp.Description("If true, only plants that are overdue or due today")),
		mcp.WithString("today",
			mcp.Description("Reference date (YYYY-MM-DD or a phrase like 'yesterday'); defaults to the current date")),
	)
	s.AddTool(listTool, h.ListPlants)

	statsTool := mcp.NewTool("plant_stats",
		mcp.WithDescription("Count plants that are overdue, due today and healthy"),
		mcp.WithString("today",
			mcp.Description("Reference date (YYYY-MM-DD); defaults to the current date")),
	)
	s.AddTool(statsTool, h.PlantStats)

	remindTool := mcp.NewTool("watering_reminders",
		mcp.WithDescription("Names of plants that need water now (overdue or due today) and a ready-to-send reminder message"),
		mcp.WithString("today",
			mcp.Description("Reference date (YYYY-MM-DD); defaults to the current date")),
	)
	s.AddTool(remindTool, h.WateringReminders)

	return s
}

// Serve runs the server over stdio until stdin closes.
func Serve(cfg Config) error {
	return server.ServeStdio(NewServer(cfg))
}

func (h *Handlers) ListPlants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ListPlantsArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var status model.WaterStatus
	if args.Status != "" {
		s, err := cli.Match("status", args.Status, []string{
			string(model.StatusOverdue), string(model.StatusDueToday), string(model.StatusHealthy),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		status = model.WaterStatus(s)
	}

	today, plants, errResult := h.load(args.DateArgs)
	if errResult != nil {
		return errResult, nil
	}

	infos := []PlantInfo{}
	for i := range plants {
		p := &plants[i]
		st := model.ComputeStatus(p, today)
		if status != "" && st != status {
			continue
		}
		if args.NeedsWater && !model.NeedsWater(p, today) {
			continue
		}
		infos = append(infos, PlantInfo{
			ID:           p.ID,
			Name:         p.Name,
			Water:        p.WaterIntervalDays,
			Sun:          string(p.Sunlight),
			Image:        p.ImagePath,
			LastWatered:  p.LastWatered.Format(model.DateLayout),
			Due:          model.DueDate(p).Format(model.DateLayout),
			Status:       string(st),
			DaysUntilDue: model.DaysUntilDue(p, today),
		})
	}

	return jsonResult(map[string]interface{}{
		"today":  today.Format(model.DateLayout),
		"plants": infos,
	})
}

func (h *Handlers) PlantStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args DateArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	today, plants, errResult := h.load(args)
	if errResult != nil {
		return errResult, nil
	}

	return jsonResult(struct {
		Today string `json:"today"`
		model.Stats
	}{
		Today: today.Format(model.DateLayout),
		Stats: model.ComputeStats(plants, today),
	})
}

func (h *Handlers) WateringReminders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args DateArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	today, plants, errResult := h.load(args)
	if errResult != nil {
		return errResult, nil
	}

	names := ops.Reminders(plants, today)
	msg, err := ops.RenderReminder(h.cfg.ReminderTemplate, names, today)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if names == nil {
		names = []string{}
	}

	return jsonResult(ReminderResult{
		Today:   today.Format(model.DateLayout),
		Plants:  names,
		Message: msg,
	})
}

// load resolves the reference date and reads the current plants.
func (h *Handlers) load(args DateArgs) (time.Time, []model.Plant, *mcp.CallToolResult) {
	now := h.cfg.Now()
	today := model.Day(now)
	if args.Today != "" {
		t, err := cli.ParseDate(args.Today, now)
		if err != nil {
			return time.Time{}, nil, mcp.NewToolResultError(err.Error())
		}
		today = t
	}

	plants, err := h.cfg.Store.Load()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load plants")
		return time.Time{}, nil, mcp.NewToolResultError(err.Error())
	}
	h.logger.Debug().Int("plants", len(plants)).Str("today", today.Format(model.DateLayout)).Msg("loaded plants")
	return today, plants, nil
}

func decodeArgs(request mcp.CallToolRequest, v interface{}) error {
	if request.Params.Arguments == nil {
		return nil
	}
	argsBytes, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := json.Unmarshal(argsBytes, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
