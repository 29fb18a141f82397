package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	var s Session
	require.NoError(t, json.Unmarshal([]byte(`{"session_name":"sid","session_expires_in":"2030-01-01T12:00:00Z"}`), &s))

	assert.Equal(t, "sid", s.Name)
	assert.True(t, s.Expired(now), "expiry instant itself counts as expired")
	assert.False(t, s.Expired(now.Add(-time.Second)))
	assert.False(t, Session{}.Expired(now), "missing expiry never expires")
}

func TestLoginOutput_Decode(t *testing.T) {
	body := `{
		"session": {"session_name":"sid","session_value":"v","session_path":"/","session_expires_in":"2030-01-01T00:00:00Z","session_max_age":3600},
		"token": {"access_token":"a","token_type":"Bearer","expires_in":300,"scope":"player","refresh_token":"r"}
	}`

	var out LoginOutput
	require.NoError(t, json.Unmarshal([]byte(body), &out))

	assert.Equal(t, int64(3600), out.Session.MaxAge)
	assert.Equal(t, "a", out.Token.AccessToken)
	assert.Equal(t, "r", out.Token.RefreshToken)
	assert.Equal(t, 5*time.Minute, out.Token.Lifetime())
}

func TestValue_Constructors(t *testing.T) {
	assert.Equal(t, Value{Val: "42", Type: DataTypeInt}, IntValue(42))
	assert.Equal(t, Value{Val: "1.5", Type: DataTypeFloat}, FloatValue(1.5))
	assert.Equal(t, Value{Val: "bob", Type: DataTypeString}, StringValue("bob"))

	n, err := IntValue(-7).Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-7), n)

	f, err := IntValue(3).Float()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, f, 1e-9)

	_, err = StringValue("x").Int()
	require.ErrorIs(t, err, ErrValueType)
	_, err = StringValue("x").Float()
	require.ErrorIs(t, err, ErrValueType)
}

func TestDimensionNames(t *testing.T) {
	dims := []Dimension{IntDimension("score", 1), StringDimension("map", "dust"), FloatDimension("time", 2.25)}
	assert.Equal(t, []string{"score", "map", "time"}, DimensionNames(dims))

	empty := DimensionNames(nil)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGetLeaderboardStatsInput_Encode(t *testing.T) {
	in := GetLeaderboardStatsInput{
		Stats:   []Statistic{Max("score"), Avg("time")},
		Filters: []Filter{{Op: FilterGTE, Target: "score", Val: IntValue(10)}},
		Sort:    &Sort{Op: SortDesc, Target: "score"},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"stats":[{"dimension":"score","op":"MAX"},{"dimension":"time","op":"AVG"}],
		"filters":[{"op":"GTE","target":"score","val":{"val":"10","type":"INT"},"not":false}],
		"sort":{"op":"DESC","target":"score"}
	}`, string(b))
}

func TestClaimsPayload_Identity(t *testing.T) {
	var nilPayload *ClaimsPayload
	assert.Equal(t, "", nilPayload.Identity())
	assert.Equal(t, "", (&ClaimsPayload{}).Identity())
	assert.Equal(t, "Z", (&ClaimsPayload{Custom: map[string]any{"identity": "Z"}}).Identity())
}
