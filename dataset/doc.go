// Package dataset shapes decision problems at the boundary: CSV decision
// matrices, CSV result tables, and YAML problem files bundling a matrix
// with its impacts, weight specification and method.
//
// The core owns no wire format — this package is the collaborator that
// converts external representations into validated decision values and
// back. Parse errors carry row/column context; structural errors are the
// decision package's own sentinels, surfaced unchanged.
//
// CSV layout (matching the original tool's convention):
//
//	Alternative,Cost,Quality,Time
//	A,250,16,12
//	B,200,20,8
//
// The first column holds alternative labels, the header row names the
// criteria.
package dataset
