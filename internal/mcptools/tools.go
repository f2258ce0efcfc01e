// Package mcptools exposes query classification, destination resolution and
// content synthesis as MCP tools.
package mcptools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/miyamo2/qilin"

	"github.com/neexbeast/travelsafe/internal/destination"
	"github.com/neexbeast/travelsafe/internal/query"
)

// ErrLocationRequired is returned when synthesize_environment gets a blank location.
var ErrLocationRequired = errors.New("location is required")

// ClassifyQueryRequest contains input parameters for the classify_query tool.
type ClassifyQueryRequest struct {
	Query string `json:"query" jsonschema:"description=Free-text search typed by a traveler"`
}

// ResolveDestinationsRequest contains input parameters for the resolve_destinations tool.
type ResolveDestinationsRequest struct {
	Query string `json:"query" jsonschema:"description=Destination name or keyword to search the catalog for"`
}

// SynthesizeEnvironmentRequest contains input parameters for the synthesize_environment tool.
type SynthesizeEnvironmentRequest struct {
	Location string `json:"location" jsonschema:"description=Place name to synthesize weather, alerts and tips for"`
}

// ClassifyResult is the classify_query response.
type ClassifyResult struct {
	query.Classification
	Reason  query.Reason `json:"reason,omitempty"`
	Message string       `json:"message,omitempty"`
}

// EnvironmentResult is the synthesize_environment response.
type EnvironmentResult struct {
	Location string              `json:"location"`
	Advice   *destination.Advice `json:"advice,omitempty"`
	destination.Environment
}

type environmentSynthesizer interface {
	Environment(name string) destination.Environment
}

// Tools binds the MCP tool handlers to a synthesizer.
type Tools struct {
	synth environmentSynthesizer
}

// New constructs Tools.
func New(synth environmentSynthesizer) *Tools {
	return &Tools{synth: synth}
}

// NewServer builds a qilin server with every tool registered.
func NewServer(name string, synth environmentSynthesizer) *qilin.Qilin {
	q := qilin.New(name,
		qilin.WithJSONMarshalFunc(json.Marshal),
		qilin.WithJSONUnmarshalFunc(json.Unmarshal))
	New(synth).Register(q)
	return q
}

// Register adds the tools to q.
func (t *Tools) Register(q *qilin.Qilin) {
	q.Tool("classify_query",
		(*ClassifyQueryRequest)(nil),
		t.ClassifyQuery,
		qilin.ToolWithDescription("Classify a search query as a destination search, a safety question, or invalid input"))

	q.Tool("resolve_destinations",
		(*ResolveDestinationsRequest)(nil),
		t.ResolveDestinations,
		qilin.ToolWithDescription("Find catalog destinations matching a query, or synthesize one when nothing matches"))

	q.Tool("synthesize_environment",
		(*SynthesizeEnvironmentRequest)(nil),
		t.SynthesizeEnvironment,
		qilin.ToolWithDescription("Synthesize current weather, safety alerts and travel tips for a location"))
}

func (t *Tools) ClassifyQuery(c qilin.ToolContext) error {
	var req ClassifyQueryRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("binding classify_query arguments: %w", err)
	}
	return c.JSON(Classify(req.Query))
}

func (t *Tools) ResolveDestinations(c qilin.ToolContext) error {
	var req ResolveDestinationsRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("binding resolve_destinations arguments: %w", err)
	}
	return c.JSON(destination.Resolve(strings.TrimSpace(req.Query)))
}

func (t *Tools) SynthesizeEnvironment(c qilin.ToolContext) error {
	var req SynthesizeEnvironmentRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("binding synthesize_environment arguments: %w", err)
	}
	res, err := t.Environment(req.Location)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Classify wraps query.Classify, folding a validation error into the result.
func Classify(raw string) ClassifyResult {
	c, err := query.Classify(raw)
	res := ClassifyResult{Classification: c}

	var ve *query.ValidationError
	if errors.As(err, &ve) {
		res.Reason = ve.Reason
		res.Message = ve.Error()
	}
	return res
}

// Environment synthesizes content for location. Catalog destinations also
// carry safety advice.
func (t *Tools) Environment(location string) (EnvironmentResult, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return EnvironmentResult{}, ErrLocationRequired
	}

	res := EnvironmentResult{
		Location:    location,
		Environment: t.synth.Environment(location),
	}
	for _, d := range destination.Resolve(location) {
		if !destination.IsSynthesized(d) {
			advice := destination.Advise(d)
			res.Advice = &advice
			break
		}
	}
	return res, nil
}
