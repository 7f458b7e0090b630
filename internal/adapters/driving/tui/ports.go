// Package tui provides the interactive paste pad for marktext.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
)

// Ports aggregates the driving ports the paste pad needs.
type Ports struct {
	// Paste classifies and pastes pad content.
	Paste driving.PasteService

	// Conversion exports the pasted tree for the preview.
	Conversion driving.ConversionService

	// Document stores the preview as a document. Optional.
	Document driving.DocumentService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(paste driving.PasteService, conversion driving.ConversionService) *Ports {
	return &Ports{
		Paste:      paste,
		Conversion: conversion,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Paste == nil {
		return ErrMissingPasteService
	}
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	return nil
}
