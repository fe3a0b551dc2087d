package usecase

import (
	"testing"

	"fleet-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestJobVisibleTo(t *testing.T) {
	j := &entity.Job{JobID: "job-1", OwnerID: "owner-a", DriverID: "driver-1"}

	assert.True(t, jobVisibleTo(j, "owner-a", ""))
	assert.True(t, jobVisibleTo(j, "", "driver-1"))

	// another fleet's owner or driver must not read the timeline
	assert.False(t, jobVisibleTo(j, "owner-b", ""))
	assert.False(t, jobVisibleTo(j, "", "driver-2"))
	assert.False(t, jobVisibleTo(j, "owner-b", "driver-2"))
	assert.False(t, jobVisibleTo(j, "", ""))
}

func TestCacheKeysAreTenantScoped(t *testing.T) {
	assert.NotEqual(t,
		summaryCacheKey("owner-a", "driver-1", "2026-03"),
		summaryCacheKey("owner-b", "driver-1", "2026-03"))
	assert.NotEqual(t,
		insightCacheKey("owner-a", "driver-1", "2026-03"),
		insightCacheKey("owner-b", "driver-1", "2026-03"))
}
