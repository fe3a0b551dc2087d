package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/log"

	"github.com/spf13/viper"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You are an assistant for a water-tanker fleet dashboard.
Given a driver's monthly trip numbers and payout slab position, reply with a
JSON array of at most 3 short, actionable suggestion strings. Reply with the
JSON array only.`

// Client wraps the generative collaborator. Every failure degrades to an
// empty suggestion list; nothing in payout calculation depends on it.
type Client struct {
	llm llms.Model
	log log.Log
}

// NewDisabledClient always suggests nothing, for deployments without a
// configured model.
func NewDisabledClient(logger log.Log) *Client {
	return &Client{log: logger}
}

func NewClient(v *viper.Viper, logger log.Log) (*Client, error) {
	if !v.GetBool("insight.enabled") {
		return &Client{log: logger}, nil
	}

	llm, err := openai.New(
		openai.WithToken(v.GetString("insight.api_key")),
		openai.WithModel(v.GetString("insight.model")),
	)
	if err != nil {
		return nil, fmt.Errorf("create insight model: %w", err)
	}
	return &Client{llm: llm, log: logger}, nil
}

// Suggest generates payout suggestions for the driver. Best effort only: a
// disabled client, transport failure, or malformed reply yields an empty list
// and a log line, never an error the caller has to handle.
func (c *Client) Suggest(ctx context.Context, payload model.InsightPayload) []string {
	if c.llm == nil {
		return []string{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("gateway/insight", fmt.Sprintf("marshal payload: %v", err), "Suggest", payload.DriverID)
		return []string{}
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, string(body)),
	}
	resp, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		c.log.Error("gateway/insight", fmt.Sprintf("generate: %v", err), "Suggest", payload.DriverID)
		return []string{}
	}
	if len(resp.Choices) == 0 {
		return []string{}
	}

	return parseSuggestions(resp.Choices[0].Content, c.log)
}

func parseSuggestions(content string, logger log.Log) []string {
	content = strings.TrimSpace(content)
	// models occasionally fence the array in markdown
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var suggestions []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &suggestions); err != nil {
		logger.Error("gateway/insight", fmt.Sprintf("unparseable reply: %v", err), "parseSuggestions", "")
		return []string{}
	}
	return suggestions
}
