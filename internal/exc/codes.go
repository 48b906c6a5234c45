package exc

const (
	CodeUnknownFatal                  = "T0000"
	CodeFileNotFound                  = "T0001"
	CodeUnsuportedFileSystemOperation = "T0002"
	CodePermissionDenied              = "T0003"
	CodeUnsupportedFileFormat         = "T0004"
	CodeSyntaxNoMatch                 = "T0005"
	CodeSyntaxIncomplete              = "T0006"
	CodeEOF                           = "T0007"
)

// Syntax errors are reported per file and must not stop the other files
// from compiling, so the whole set can be shown at the end of the run.
var defaultNonFatal = map[string]bool{
	CodeSyntaxNoMatch:    true,
	CodeSyntaxIncomplete: true,
}
