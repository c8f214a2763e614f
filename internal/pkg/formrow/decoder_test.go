package formrow

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

func TestIndexedDecodeSparseIndices(t *testing.T) {
	layout := Layout{Mode: ModeIndexed, Prefix: "row", Width: 2}

	values := url.Values{}
	values.Set("row7-input1", "c")
	values.Set("row7-input2", "C")
	values.Set("row0-input2", "A")
	values.Set("row0-input1", "a")
	values.Set("row3-input1", "b")
	values.Set("row3-input2", "B")
	values.Set("unrelated", "x")

	rows, err := layout.Decode(values)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{"a", "A"}, rows[0])
	assert.Equal(t, Row{"b", "B"}, rows[1])
	assert.Equal(t, Row{"c", "C"}, rows[2])
}

func TestIndexedDecodeMissingColumn(t *testing.T) {
	layout := Layout{Mode: ModeIndexed, Prefix: "row", Width: 3}

	values := url.Values{}
	values.Set("row0-input1", "a")
	values.Set("row0-input2", "b")

	rows, err := layout.Decode(values)
	require.ErrorIs(t, err, constants.ErrMalformedRowData)
	assert.Empty(t, rows)
}

func TestIndexedDecodeColumnOutOfRange(t *testing.T) {
	layout := Layout{Mode: ModeIndexed, Prefix: "b-row", Width: 2}

	values := url.Values{}
	values.Set("b-row0-input1", "a")
	values.Set("b-row0-input2", "b")
	values.Set("b-row0-input3", "c")

	_, err := layout.Decode(values)
	require.ErrorIs(t, err, constants.ErrMalformedRowData)
}

func TestPositionalDecodeNumericOrder(t *testing.T) {
	layout := Layout{Mode: ModePositional, Prefix: "price", Width: 2}

	// price10 must sort after price2, not between price1 and price2.
	values := url.Values{}
	values.Set("price10", "f")
	values.Set("price2", "c")
	values.Set("price0", "a")
	values.Set("price1", "b")
	values.Set("price3", "d")
	values.Set("price9", "e")

	rows, err := layout.Decode(values)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{"a", "b"}, rows[0])
	assert.Equal(t, Row{"c", "d"}, rows[1])
	assert.Equal(t, Row{"e", "f"}, rows[2])
}

func TestPositionalDecodeRemainderFails(t *testing.T) {
	layout := Layout{Mode: ModePositional, Prefix: "price", Width: 5}

	values := url.Values{}
	for _, key := range []string{"price0", "price1", "price2"} {
		values.Set(key, "10")
	}

	rows, err := layout.Decode(values)
	require.ErrorIs(t, err, constants.ErrMalformedRowData)
	assert.Empty(t, rows)
}

func TestPositionalDecodeDuplicateSuffix(t *testing.T) {
	layout := Layout{Mode: ModePositional, Prefix: "price", Width: 2}

	values := url.Values{}
	values.Set("price0", "a")
	values.Set("price1", "b")
	values.Set("price01", "c")
	values.Set("price2", "d")

	rows, err := layout.Decode(values)
	require.ErrorIs(t, err, constants.ErrMalformedRowData)
	assert.Empty(t, rows)
}

func TestNamedDecode(t *testing.T) {
	layout := Layout{Mode: ModeNamed, Columns: []string{"fromAddress", "toAddress", "dayPrice"}}

	values := url.Values{}
	values.Add("fromAddress", "Airport")
	values.Add("fromAddress", "Port")
	values.Add("toAddress", "Hotel A")
	values.Add("toAddress", "Hotel B")
	values.Add("dayPrice", "30")
	values.Add("dayPrice", "45")

	rows, err := layout.Decode(values)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, Row{"Airport", "Hotel A", "30"}, rows[0])
	assert.Equal(t, Row{"Port", "Hotel B", "45"}, rows[1])
}

func TestNamedDecodeUnevenColumns(t *testing.T) {
	layout := Layout{Mode: ModeNamed, Columns: []string{"fromAddress", "toAddress"}}

	values := url.Values{}
	values.Add("fromAddress", "Airport")
	values.Add("fromAddress", "Port")
	values.Add("toAddress", "Hotel A")

	_, err := layout.Decode(values)
	require.ErrorIs(t, err, constants.ErrMalformedRowData)
}

func TestLabelsPadding(t *testing.T) {
	rows := Rows{{"BMW", "x"}, {"Fiat", "y"}}

	labels := rows.Labels(4, "Car Model")

	assert.Equal(t, []string{"BMW", "Fiat", "Car Model 3", "Car Model 4"}, labels)
}

func TestPadLabelsNoShortfall(t *testing.T) {
	labels := PadLabels([]string{"a", "b"}, 2, "Item")
	assert.Equal(t, []string{"a", "b"}, labels)
}
