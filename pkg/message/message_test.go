package message

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneric(t *testing.T) {
	p := Generic("status", "ok")
	assert.Equal(t, Payload{"status": "ok"}, p)
	assert.Equal(t, "ok", p.Text())
}

func TestErrorAndMessage(t *testing.T) {
	assert.Equal(t, Payload{"error": "boom"}, Error("boom"))
	assert.Equal(t, Payload{"message": "done"}, Message("done"))
}

func TestPayloadMarshalsAsObject(t *testing.T) {
	raw, err := json.Marshal(Message("Gamesystem not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Gamesystem not found"}`, string(raw))
}

func TestTextOfEmptyPayload(t *testing.T) {
	assert.Equal(t, "", Payload{}.Text())
}
