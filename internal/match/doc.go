// Package match ranks known names by their similarity to an unknown one.
//
// It backs the "did you mean" hints of configuration diagnostics:
//   - Normalize: folds case and drops separators before comparing
//   - Levenshtein: edit distance in runes
//   - Suggest: the closest candidates above a similarity threshold
package match
