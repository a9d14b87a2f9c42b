// Package api contains the HTTP handlers, request/response models, and
// error mapping for the service's two core operations: producing tiered
// outlines for a question and scoring an answer against an outline, plus
// the plain-text export of outlines.
package api
