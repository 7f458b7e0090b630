package tui

import "errors"

// ErrMissingPasteService is returned when the paste service is not provided.
var ErrMissingPasteService = errors.New("tui: paste service is required")

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("tui: conversion service is required")

// ErrNoDocumentService is reported when saving without a document service.
var ErrNoDocumentService = errors.New("tui: saving requires a document service")

// ErrNothingToSave is reported when saving before any analysis.
var ErrNothingToSave = errors.New("tui: nothing to save, analyse the pad first")
