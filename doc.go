// Package fourrussians is the root of a small module for Boolean (OR-AND)
// matrix products.
//
// 🚀 What is in here?
//
//	A focused, dependency-light toolkit:
//		• boolmatrix/       row-major boolean storage, row OR, block
//		                    extraction, OR-merge, strict/lenient construction
//		• fourrussians/     the Four Russians product (sequential or parallel),
//		                    a naive reference product and reachability Closure
//		• boolio/           JSON loader/writer and terminal table rendering
//		• cmd/fourrussians  command-line front end
//
// ✨ Guarantees:
//
//   - No aliasing – every block, row or raw export is a copy
//   - Errors, not panics – sentinel errors matched with errors.Is
//   - No global state – logging goes through an injected logr.Logger
//
// Quick example:
//
//	    A = [0 1]      A·A = [1 0]
//	        [1 0]            [0 1]
//
//	go install github.com/katalvlaran/fourrussians/cmd/fourrussians@latest
package fourrussians
