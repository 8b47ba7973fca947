package constants

const (
	// first exam year processed by the sorter when nothing else is configured
	LayoutDefaultExamYear = "2018"

	// top-level folders of the index start with this
	LayoutYearPrefix = "EE"

	// source filenames: <level><sep><module number>...
	LayoutLevelLen         = 3
	LayoutModuleNumStart   = 4
	LayoutModuleNumEnd     = 7
	LayoutSolutionsKeyword = "solutions"
	LayoutAnnotateKeyword  = "annotate"
)

var LayoutLevels = []string{"EE1", "EE2", "EE3", "EE4"}
