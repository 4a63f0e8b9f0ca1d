package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_SetValuesLengthCheck(t *testing.T) {
	geom := testGeometry(t, 2, 2, 1)
	prop := newProperty(geom, NewSupportedKeyword("PERMX", 100.0, nil, "Permeability"))

	require.Error(t, prop.SetValues([]float64{1, 2, 3}))
	require.NoError(t, prop.SetValues([]float64{1, 2, 3, 4}))
	assert.Equal(t, 4, prop.Len())
	assert.Equal(t, 3.0, prop.At(2))
}

func TestSink_AppendAndDrain(t *testing.T) {
	sink := NewSink(nil)
	sink.Append(SeverityInfo, "first")
	sink.Append(SeverityWarning, "second")

	msgs := sink.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, SeverityWarning, msgs[1].Severity)

	drained := sink.Drain()
	assert.Len(t, drained, 2)
	assert.Zero(t, sink.Len())
}
