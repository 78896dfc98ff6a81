// Package seo builds page metadata and schema.org JSON-LD for processed games.
//
// Everything here is pure: the same view and site configuration always produce the same
// documents. The only external input parsed is the CMS FAQ payload, whose text is reduced
// to plain text before it is embedded.
package seo
