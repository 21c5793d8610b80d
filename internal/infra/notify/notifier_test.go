//go:build unit

package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/infra/notify"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))
	entityID := uuid.New()

	err := n.Notify(context.Background(), notify.Message{
		Event:    shared.EventBookingCompleted,
		Party:    shared.PartyCustomer,
		Contact:  user.ContactInfo{Name: "Asha", Email: "asha@example.com"},
		EntityID: entityID,
		Payload:  map[string]string{"status": "completed"},
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "notification", line["msg"])
	assert.Equal(t, "booking.completed", line["event"])
	assert.Equal(t, "customer", line["party"])
	assert.Equal(t, "asha@example.com", line["email"])
	assert.Equal(t, entityID.String(), line["entity_id"])
}
