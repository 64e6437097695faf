// Package domain contains the course content model shared by the harvester,
// the matcher and the renderers: the five searchable content kinds, the
// in-memory content index built by one harvest, and the match records
// produced from it. The types mirror the Canvas JSON payloads but carry no
// transport concerns.
package domain
