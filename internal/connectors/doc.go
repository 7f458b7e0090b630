// Package connectors holds the markdown sources that folder sync reads
// from. Each connector implements driven.MarkdownSource.
package connectors
