package constants

const (
	OutputIndexFilename = "index.html"

	// target filenames inside a module folder: <exam year><suffix>.pdf
	TargetExtension       = ".pdf"
	TargetSolutionsSuffix = "_sols"
	TargetAnnotatedSuffix = "_ann"
)
