package domain

// ChangeKind tags the kind of change a file underwent.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota
	ChangeAdded
	ChangeDeleted
	ChangeUntracked
	ChangeBinary
)

// String returns the lowercase name of the kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeModified:
		return "modified"
	case ChangeAdded:
		return "added"
	case ChangeDeleted:
		return "deleted"
	case ChangeUntracked:
		return "untracked"
	case ChangeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Reporting maps the kind to the one used in user-facing reports: binary
// changes are reported as plain modifications.
func (k ChangeKind) Reporting() ChangeKind {
	if k == ChangeBinary {
		return ChangeModified
	}
	return k
}

// FileChange is one changed file as reported by a pull or diff summary.
type FileChange struct {
	Path string
	Kind ChangeKind
}
