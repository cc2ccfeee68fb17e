// Package pca implements principal component analysis over dense in-memory
// datasets.
//
// The pipeline has four stages, each callable on its own:
//
//	MeanNormalization   n×d samples → centered n×d samples + d means
//	CovarianceMatrix    n×d samples → d×d unbiased covariance
//	SortedEigenvectors  d×d covariance, k → Spectrum (sorted, k retained)
//	Project             d×k basis, n×d centered samples → n×k reduced
//
// Run chains them and returns a Result with every intermediate artifact;
// PCA.Execute wraps Run for callers that only want the reduced rows.
//
// Layout is explicit: SampleMajor holds one sample per row, FeatureMajor one
// feature per row, and every direction matrix holds one direction per column.
//
// Eigenvectors are unique only up to sign (and, for repeated eigenvalues, up
// to rotation within the eigenspace). WithCanonicalSigns fixes the sign; the
// solver choice (WithSolver) decides the rest.
package pca
