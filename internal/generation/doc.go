// Package generation provides the boundary interface for the external
// text-generation service used to produce tiered explanations. It
// abstracts the details of the LLM API integration (Gemini), so the
// explanation pipeline never couples to a specific provider.
package generation
