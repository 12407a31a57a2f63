// Package batch contains the Batch aggregate: a provider-published pool of a
// donated resource with an available/reserved quantity split. All quantity
// accounting in the system flows through this aggregate, which maintains the
// invariant 0 <= reserved <= total.
package batch
