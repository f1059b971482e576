package gitpath

const (
	// GitDir is the name of the control directory
	GitDir = ".git"

	// ObjectsDir is the name of the objects directory
	ObjectsDir = "objects"

	// RefsDir is the name of the refs directory
	RefsDir = "refs"

	// HeadsDir is the name of the heads directory (branches)
	HeadsDir = "heads"

	// TagsDir is the name of the tags directory
	TagsDir = "tags"

	// BranchesDir is the name of the legacy branches directory
	BranchesDir = "branches"

	// ConfigFile is the name of the config file
	ConfigFile = "config"

	// HeadFile is the name of the HEAD file
	HeadFile = "HEAD"

	// DescriptionFile is the name of the description file
	DescriptionFile = "description"

	// DefaultBranch is the branch HEAD points at after init
	DefaultBranch = "master"
)
