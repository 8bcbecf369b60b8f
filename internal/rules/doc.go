// Package rules contains the goal-to-parameter rule tables for the
// optimizer service.
//
// Each simulation kind (heat equation, n-body) has a baseline parameter
// bundle and a fixed table mapping recognized goal tokens to pure
// overrides of that baseline. Derivation never fails: an unrecognized or
// empty token simply resolves to the baseline defaults.
//
// Main entry points:
//   - DeriveHeatParams: resolve a heat-equation goal token
//   - DeriveNBodyParams: resolve an n-body goal token and body count
//
// The tables are deliberately data (map literals of override functions)
// rather than branching code, so the full default/override behavior is
// visible in one place and new tokens are a one-line addition.
package rules
