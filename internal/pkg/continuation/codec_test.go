package continuation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

var testParams = Params{ID: "rncSupplierId", Count: "numberOfRows", Labels: "inputsFromFirstColumn"}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	state := State{
		ParentID: 42,
		RowCount: 3,
		Labels:   []string{"BMW 320", "Fiat Panda", "VW Golf"},
	}

	values, err := testParams.Encode(state)
	require.NoError(t, err)

	// The encoded form survives a real URL round trip.
	parsed, err := url.ParseQuery(values.Encode())
	require.NoError(t, err)

	decoded, err := testParams.Decode(parsed)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestDecodeMissingParentID(t *testing.T) {
	values := url.Values{}
	values.Set("numberOfRows", "2")

	_, err := testParams.Decode(values)
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}

func TestDecodeNonNumericParentID(t *testing.T) {
	values := url.Values{}
	values.Set("rncSupplierId", "abc")
	values.Set("numberOfRows", "2")

	_, err := testParams.Decode(values)
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}

func TestDecodeZeroRowCount(t *testing.T) {
	values := url.Values{}
	values.Set("rncSupplierId", "7")
	values.Set("numberOfRows", "0")

	_, err := testParams.Decode(values)
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}

func TestDecodeBadLabelJSON(t *testing.T) {
	values := url.Values{}
	values.Set("rncSupplierId", "7")
	values.Set("numberOfRows", "2")
	values.Set("inputsFromFirstColumn", "{not an array}")

	_, err := testParams.Decode(values)
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}

func TestDecodeNullLabels(t *testing.T) {
	values := url.Values{}
	values.Set("rncSupplierId", "7")
	values.Set("numberOfRows", "2")
	values.Set("inputsFromFirstColumn", "null")

	_, err := testParams.Decode(values)
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}

func TestEncodeNilLabelsStaysDecodable(t *testing.T) {
	values, err := testParams.Encode(State{ParentID: 7, RowCount: 2})
	require.NoError(t, err)

	state, err := testParams.Decode(values)
	require.NoError(t, err)
	assert.Equal(t, int64(7), state.ParentID)
	assert.Empty(t, state.Labels)
	assert.NotNil(t, state.Labels)
}

func TestDecodeLabelNotArray(t *testing.T) {
	values := url.Values{}
	values.Set("rncSupplierId", "7")
	values.Set("numberOfRows", "2")
	values.Set("inputsFromFirstColumn", `{"a":1}`)

	_, err := testParams.Decode(values)
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}

func TestDecodeAbsentLabelsIsFine(t *testing.T) {
	values := url.Values{}
	values.Set("rncSupplierId", "7")
	values.Set("numberOfRows", "2")

	state, err := testParams.Decode(values)
	require.NoError(t, err)
	assert.Equal(t, int64(7), state.ParentID)
	assert.Equal(t, 2, state.RowCount)
	assert.Nil(t, state.Labels)
}

func TestDecodeID(t *testing.T) {
	values := url.Values{}
	values.Set("hotelId", "5")

	id, err := DecodeID(values, "hotelId")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(5), *id)

	absent, err := DecodeID(values, "boatSupplierId")
	require.NoError(t, err)
	assert.Nil(t, absent)

	values.Set("tourSupplierId", "-1")
	_, err = DecodeID(values, "tourSupplierId")
	require.ErrorIs(t, err, constants.ErrInvalidContinuationState)
}
