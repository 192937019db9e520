// Package git resolves the commit the documentation is being built from.
//
// Two resolvers are provided: ExecResolver shells out to the git binary
// (`git rev-parse HEAD`), RepoResolver reads HEAD through go-git for hosts
// without a git installation. Both return the same normalised form: a
// non-empty ASCII hash with surrounding whitespace removed.
package git
