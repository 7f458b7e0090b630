// Package mcp provides an MCP (Model Context Protocol) server adapter for
// marktext. It lets AI assistants classify pasted text, normalise markdown
// and edit stored documents.
package mcp

import "errors"

var (
	// ErrMissingPorts is returned when NewServer is given no ports.
	ErrMissingPorts = errors.New("mcp: ports are required")

	// ErrMissingConversionService is returned when the conversion service is not provided.
	ErrMissingConversionService = errors.New("mcp: conversion service is required")

	// ErrMissingPasteService is returned when the paste service is not provided.
	ErrMissingPasteService = errors.New("mcp: paste service is required")

	// ErrNoDocuments is returned by document tools when no document
	// service is configured.
	ErrNoDocuments = errors.New("mcp: document storage is not configured")
)
