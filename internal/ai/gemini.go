package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/napat/kanri/internal/model"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel  = "gemini-2.5-flash"
)

var (
	// ErrNoAPIKey means no credential was configured; surfaced before
	// any network call is attempted.
	ErrNoAPIKey = errors.New("GEMINI_API_KEY not set")

	// ErrEmptyResponse means the model returned no usable text
	ErrEmptyResponse = errors.New("no response from model")
)

// Client calls the Gemini generateContent API with a structured-output
// schema. The schema is the contract: responses that do not conform
// surface as errors rather than being coerced.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a Gemini client. An empty apiKey is allowed here; it
// fails on the first call instead, so the UI can start without a
// credential and report the problem when the feature is used.
func New(apiKey, modelName string) *Client {
	if modelName == "" {
		modelName = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   modelName,
		baseURL: geminiBaseURL,
		client:  &http.Client{},
	}
}

// schema is the subset of the Gemini response-schema language we use
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

var planSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"name":        {Type: "STRING", Description: "A short, catchy name for the project"},
		"description": {Type: "STRING", Description: "A brief executive summary of the project"},
		"category":    {Type: "STRING", Enum: []string{"INTERNAL", "EXTERNAL"}},
		"tasks": {
			Type: "ARRAY",
			Items: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"title":         {Type: "STRING"},
					"description":   {Type: "STRING"},
					"priority":      {Type: "STRING", Enum: []string{"LOW", "MEDIUM", "HIGH"}},
					"assignee":      {Type: "STRING", Description: "Role responsible for the task"},
					"estimatedDays": {Type: "INTEGER"},
				},
				Required: []string{"title", "priority"},
			},
		},
	},
	Required: []string{"name", "description", "category", "tasks"},
}

var breakdownSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"subtasks": {
			Type:  "ARRAY",
			Items: &schema{Type: "STRING"},
		},
	},
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeneratePlan asks the model for a structured project proposal built
// from the user's free-text goal.
func (c *Client) GeneratePlan(ctx context.Context, prompt string) (model.Proposal, error) {
	instruction := fmt.Sprintf(`Act as a senior project manager. Create a structured project plan based on this request: %q.
Classify the project as INTERNAL company work or EXTERNAL client work.
Break it down into actionable tasks with priorities, an assignee role and an estimate in days. Keep task descriptions concise.`, prompt)

	text, err := c.generate(ctx, instruction, planSchema)
	if err != nil {
		return model.Proposal{}, err
	}
	if text == "" {
		return model.Proposal{}, ErrEmptyResponse
	}

	var p model.Proposal
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return model.Proposal{}, fmt.Errorf("failed to parse plan response: %w", err)
	}
	if err := validatePlan(p); err != nil {
		return model.Proposal{}, fmt.Errorf("failed to parse plan response: %w", err)
	}
	return p, nil
}

// SuggestBreakdown asks the model for 3-5 sub-steps of a task. This is
// an advisory feature: an empty or malformed response degrades to an
// empty list rather than an error.
func (c *Client) SuggestBreakdown(ctx context.Context, taskTitle string) ([]string, error) {
	instruction := fmt.Sprintf("Break down the task %q into 3-5 smaller sub-steps or checklist items.", taskTitle)

	text, err := c.generate(ctx, instruction, breakdownSchema)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []string{}, nil
	}

	var out struct {
		Subtasks []string `json:"subtasks"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return []string{}, nil
	}
	return out.Subtasks, nil
}

// generate performs one generateContent call and returns the first
// candidate's text, or "" when the response carried none.
func (c *Client) generate(ctx context.Context, instruction string, s *schema) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: instruction}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   s,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

// validatePlan enforces the schema contract on the decoded payload:
// required fields present, enums within range.
func validatePlan(p model.Proposal) error {
	if p.Name == "" {
		return errors.New("missing project name")
	}
	if p.Description == "" {
		return errors.New("missing project description")
	}
	if p.Category != model.CategoryInternal && p.Category != model.CategoryExternal {
		return fmt.Errorf("invalid category %q", p.Category)
	}
	if p.Tasks == nil {
		return errors.New("missing tasks")
	}
	for i, t := range p.Tasks {
		if t.Title == "" {
			return fmt.Errorf("task %d: missing title", i)
		}
		switch t.Priority {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		default:
			return fmt.Errorf("task %d: invalid priority %q", i, t.Priority)
		}
	}
	return nil
}
