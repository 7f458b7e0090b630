package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPorts(t *testing.T) {
	paste := &mockPasteService{}
	conversion := &mockConversionService{}

	ports := NewPorts(paste, conversion)

	assert.Equal(t, paste, ports.Paste)
	assert.Equal(t, conversion, ports.Conversion)
	assert.Nil(t, ports.Document)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrMissingPasteService)
	assert.ErrorIs(t, (&Ports{Conversion: &mockConversionService{}}).Validate(), ErrMissingPasteService)
	assert.ErrorIs(t, (&Ports{Paste: &mockPasteService{}}).Validate(), ErrMissingConversionService)
}
