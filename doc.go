// Package pca is the root of an in-memory principal component analysis
// toolkit: center a dataset, estimate its covariance, decompose it, and
// project every sample onto the leading directions.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  : Dense storage, validators, kernels, statistics, Jacobi eigensolver, gonum bridge
//	pca/     : the four pipeline stages, the Result record and the PCA orchestrator
//	dataset/ : delimited text loader and writer (tab-separated by default)
//	scatter/ : before/after 3-D point sets for plotting, encoded as JSON
//
// and one command:
//
//	cmd/pca  : load a table, reduce it, print the reduced rows
//
// Quick example (n = 4 samples, d = 3 features, k = 2):
//
//	[1 0 0]        [ .5 -.5]
//	[0 1 0]  ───▶  [-.5  .5]
//	[0 0 1]        [-.5 -.5]
//	[1 1 1]        [ .5  .5]
//
//	go get github.com/katalvlaran/pca/pca
package pca
