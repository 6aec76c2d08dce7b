package types

import "errors"

// DefaultBranch is used when the configuration omits a branch.
const DefaultBranch = "main"

// Config identifies the remote repository that holds the CSV blobs plus the
// bearer credential used for writes. Token absence leaves the store readable
// but write-disabled.
type Config struct {
	Owner  string `json:"owner" yaml:"owner"`
	Repo   string `json:"repo" yaml:"repo"`
	Branch string `json:"branch" yaml:"branch"`
	Token  string `json:"-" yaml:"-"`
}

// Config validation errors.
var (
	ErrOwnerEmpty = errors.New("owner must not be empty")
	ErrRepoEmpty  = errors.New("repo must not be empty")
)

// Validate checks that the Config names a repository. Branch and Token are
// optional: a missing branch falls back to DefaultBranch and a missing token
// means read-only operation.
func (c Config) Validate() error {
	if c.Owner == "" {
		return ErrOwnerEmpty
	}
	if c.Repo == "" {
		return ErrRepoEmpty
	}
	return nil
}

// EffectiveBranch returns the configured branch or DefaultBranch.
func (c Config) EffectiveBranch() string {
	if c.Branch == "" {
		return DefaultBranch
	}
	return c.Branch
}

// WriteEnabled reports whether the configuration is sufficient to attempt
// persistence: repository identifiers plus the credential. Possession of
// these four values is the sole write gate.
func (c Config) WriteEnabled() bool {
	return c.Owner != "" && c.Repo != "" && c.EffectiveBranch() != "" && c.Token != ""
}
