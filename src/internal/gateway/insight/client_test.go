package insight

import (
	"context"
	"testing"

	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSuggestDisabledClientReturnsEmpty(t *testing.T) {
	c := &Client{}
	got := c.Suggest(context.Background(), model.InsightPayload{DriverID: "driver-1"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestParseSuggestions(t *testing.T) {
	logger := log.Log{Logger: logrus.New()}

	got := parseSuggestions(`["do 10 more trips", "log trips daily"]`, logger)
	assert.Equal(t, []string{"do 10 more trips", "log trips daily"}, got)

	got = parseSuggestions("```json\n[\"one\"]\n```", logger)
	assert.Equal(t, []string{"one"}, got)

	got = parseSuggestions("sorry, I cannot help with that", logger)
	assert.Empty(t, got)
}
