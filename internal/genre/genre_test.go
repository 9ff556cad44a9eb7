package genre

import (
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList_UnmarshalSingleString(t *testing.T) {
	var l List
	require.NoError(t, json.Unmarshal([]byte(`"Rock"`), &l))
	require.Equal(t, List{"Rock"}, l)
}

func TestList_UnmarshalArray(t *testing.T) {
	var l List
	require.NoError(t, json.Unmarshal([]byte(`["Rock","Jazz"]`), &l))
	require.Equal(t, List{"Rock", "Jazz"}, l)
}

func TestList_UnmarshalEmptyString(t *testing.T) {
	var l List
	require.NoError(t, json.Unmarshal([]byte(`""`), &l))
	require.Empty(t, l)
}

func TestList_UnmarshalRejectsNumbers(t *testing.T) {
	var l List
	require.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestList_MarshalNilAsEmptyArray(t *testing.T) {
	var l List
	data, err := json.Marshal(l)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))
}

func TestAllowed(t *testing.T) {
	require.True(t, Allowed("music", "Rock"))
	require.True(t, Allowed("series", "SF"))
	require.True(t, Allowed("movie", "SF"))
	require.True(t, Allowed("book", "SF"))
	require.False(t, Allowed("music", "SF"))
	require.False(t, Allowed("book", "Ballad"))
	require.False(t, Allowed("unknown", "Rock"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("music", List{"Rock", "Jazz"}))
	require.NoError(t, Validate("music", nil))
	require.Error(t, Validate("music", List{"Rock", "Polka"}))
}
