// Package compute provides acceleration backends for the pairwise force
// pass.
//
// The package selects the best available backend at init time:
//
//   - CUDA: GPU force kernel, enabled with the "cuda" build tag
//   - CPU: always available; parallelizes across cores for larger sets
//
// Every backend evaluates the same axis-separable force law with the same
// per-particle summation order, so switching backends never changes the
// trajectory of a seeded run on a given machine.
package compute
