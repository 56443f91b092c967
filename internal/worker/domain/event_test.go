package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJobEvent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "created with job",
			body: `{"event_id":"5f0c6a0e-2b8a-4a5e-9a57-3f1c1b7f9d10","type":"job.created","job_id":7,"job":{"id":7,"title":"Engineer"},"occurred_at":"2026-03-01T10:00:00Z"}`,
		},
		{
			name: "deleted without job",
			body: `{"event_id":"5f0c6a0e-2b8a-4a5e-9a57-3f1c1b7f9d10","type":"job.deleted","job_id":7,"occurred_at":"2026-03-01T10:00:00Z"}`,
		},
		{
			name:    "malformed json",
			body:    `{"event_id":`,
			wantErr: "invalid job event",
		},
		{
			name:    "bad event id",
			body:    `{"event_id":"abc","type":"job.created","job_id":7,"occurred_at":"2026-03-01T10:00:00Z"}`,
			wantErr: "is not a UUID",
		},
		{
			name:    "unknown type",
			body:    `{"event_id":"5f0c6a0e-2b8a-4a5e-9a57-3f1c1b7f9d10","type":"job.archived","job_id":7,"occurred_at":"2026-03-01T10:00:00Z"}`,
			wantErr: "unknown type",
		},
		{
			name:    "missing job id",
			body:    `{"event_id":"5f0c6a0e-2b8a-4a5e-9a57-3f1c1b7f9d10","type":"job.created","occurred_at":"2026-03-01T10:00:00Z"}`,
			wantErr: "job_id must be positive",
		},
		{
			name:    "missing timestamp",
			body:    `{"event_id":"5f0c6a0e-2b8a-4a5e-9a57-3f1c1b7f9d10","type":"job.created","job_id":7}`,
			wantErr: "occurred_at is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeJobEvent([]byte(tt.body))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEvent)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, event)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 7, event.JobID)
		})
	}
}

func TestIsKnownEventType(t *testing.T) {
	for _, typ := range []string{EventJobCreated, EventJobUpdated, EventJobDeleted} {
		assert.True(t, IsKnownEventType(typ), typ)
	}
	assert.False(t, IsKnownEventType("job.archived"))
	assert.False(t, IsKnownEventType(""))
}
