package fourrussians

// Test bridge: exposes unexported block kernels to the fourrussians_test package.
var (
	ExportedBuildSumsTable = buildSumsTable
	ExportedMultiplyBlock  = multiplyBlock
)
