// Package domain contains the core entities of the explanation pipeline:
// outlines, sections, tiers, learner metadata, and scoring results. It is
// independent of any transport, storage, or generation backend.
package domain
