// Package gemini implements the generation.TextGenerator interface using
// Google's Gemini API.
package gemini
