// Package git implements the repository ports using go-git.
package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ceresdesign/ceres-sync/internal/domain"
	"github.com/ceresdesign/ceres-sync/internal/ports"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

const originRemote = "origin"

// Provider opens path-bound clients and performs clones.
type Provider struct{}

// NewProvider creates a new provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Ensure Provider implements ports.Provider.
var _ ports.Provider = (*Provider)(nil)

// Open binds a client to the working copy rooted at path. A .git entry that
// is a gitdir pointer file (submodule, linked worktree) is followed.
func (p *Provider) Open(path string) (ports.RepositoryClient, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: path, Err: err}
	}
	return &Client{path: path, repo: repo}, nil
}

// Clone creates a working copy of url at path checked out at branch.
func (p *Provider) Clone(ctx context.Context, url, path, branch string) error {
	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		return &domain.RemoteAccessError{Op: "clone", Err: err}
	}
	return nil
}

// Client implements ports.RepositoryClient against one working copy.
type Client struct {
	path string
	repo *git.Repository
}

// Ensure Client implements ports.RepositoryClient.
var _ ports.RepositoryClient = (*Client)(nil)

// CurrentBranch returns the short name of the checked-out branch. For an
// unborn repository the symbolic HEAD target is reported.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	head, err := c.repo.Head()
	if err == nil {
		return head.Name().Short(), nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		ref, rerr := c.repo.Reference(plumbing.HEAD, false)
		if rerr != nil {
			return "", &domain.RepositoryAccessError{Path: c.path, Err: rerr}
		}
		return ref.Target().Short(), nil
	}
	return "", &domain.RepositoryAccessError{Path: c.path, Err: err}
}

// Remotes lists the configured remotes with their first URL.
func (c *Client) Remotes(ctx context.Context) ([]ports.Remote, error) {
	remotes, err := c.repo.Remotes()
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	out := make([]ports.Remote, 0, len(remotes))
	for _, r := range remotes {
		cfg := r.Config()
		url := ""
		if len(cfg.URLs) > 0 {
			url = cfg.URLs[0]
		}
		out = append(out, ports.Remote{Name: cfg.Name, URL: url})
	}
	return out, nil
}

// LastCommit returns the commit HEAD points at, or domain.ErrNoCommits for
// an unborn repository.
func (c *Client) LastCommit(ctx context.Context) (domain.CommitInfo, error) {
	head, err := c.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return domain.CommitInfo{}, domain.ErrNoCommits
		}
		return domain.CommitInfo{}, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return domain.CommitInfo{}, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	return domain.CommitInfo{
		Hash:        head.Hash().String(),
		Message:     strings.SplitN(commit.Message, "\n", 2)[0],
		AuthorName:  commit.Author.Name,
		CommittedAt: commit.Author.When,
	}, nil
}

// Status classifies the working tree into the four status lists, each sorted
// by path.
func (c *Client) Status(ctx context.Context) (domain.WorktreeStatus, error) {
	worktree, err := c.repo.Worktree()
	if err != nil {
		return domain.WorktreeStatus{}, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	status, err := worktree.Status()
	if err != nil {
		return domain.WorktreeStatus{}, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out domain.WorktreeStatus
	for _, path := range paths {
		s := status[path]
		switch {
		case s.Worktree == git.Untracked:
			out.Untracked = append(out.Untracked, path)
		case s.Staging == git.Deleted || s.Worktree == git.Deleted:
			out.Deleted = append(out.Deleted, path)
		case s.Staging == git.Added:
			out.Added = append(out.Added, path)
		case s.Staging == git.Unmodified && s.Worktree == git.Unmodified:
			// clean entry, skip
		default:
			out.Modified = append(out.Modified, path)
		}
	}
	return out, nil
}

// AheadBehind counts local commits missing on origin/branch and vice versa,
// based on the last fetched remote-tracking ref. A missing remote ref means
// nothing is known to differ.
func (c *Client) AheadBehind(ctx context.Context, branch string) (int, int, error) {
	localRef, err := c.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return 0, 0, nil
		}
		return 0, 0, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	remoteRef, err := c.repo.Reference(plumbing.NewRemoteReferenceName(originRemote, branch), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return 0, 0, nil
		}
		return 0, 0, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}

	localSet, err := c.ancestorSet(localRef.Hash())
	if err != nil {
		return 0, 0, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	remoteSet, err := c.ancestorSet(remoteRef.Hash())
	if err != nil {
		return 0, 0, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}

	ahead, behind := 0, 0
	for h := range localSet {
		if _, ok := remoteSet[h]; !ok {
			ahead++
		}
	}
	for h := range remoteSet {
		if _, ok := localSet[h]; !ok {
			behind++
		}
	}
	return ahead, behind, nil
}

// ancestorSet walks the commit graph from h and collects every reachable
// commit hash.
func (c *Client) ancestorSet(h plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	seen := make(map[plumbing.Hash]struct{})
	stack := []plumbing.Hash{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		commit, err := c.repo.CommitObject(cur)
		if err != nil {
			return nil, fmt.Errorf("walk commit %s: %w", cur, err)
		}
		stack = append(stack, commit.ParentHashes...)
	}
	return seen, nil
}

// Fetch updates the remote-tracking refs from origin. Already-up-to-date is
// not an error.
func (c *Client) Fetch(ctx context.Context) error {
	err := c.repo.FetchContext(ctx, &git.FetchOptions{RemoteName: originRemote})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return &domain.RemoteAccessError{Op: "fetch", Err: err}
	}
	return nil
}

// Pull fast-forwards from origin/branch and reports the changed files as a
// diff between the previous and new HEAD trees.
func (c *Client) Pull(ctx context.Context, branch string) ([]domain.FileChange, error) {
	var oldHash plumbing.Hash
	if head, err := c.repo.Head(); err == nil {
		oldHash = head.Hash()
	}

	worktree, err := c.repo.Worktree()
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	err = worktree.PullContext(ctx, &git.PullOptions{
		RemoteName:    originRemote,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.RemoteAccessError{Op: "pull", Err: err}
	}

	head, err := c.repo.Head()
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	if head.Hash() == oldHash {
		return nil, nil
	}
	return c.diffChanges(ctx, oldHash, head.Hash())
}

// diffChanges lists the file changes between two commits. A zero old hash
// means the working copy had no commits; the whole new tree is reported as
// added.
func (c *Client) diffChanges(ctx context.Context, oldHash, newHash plumbing.Hash) ([]domain.FileChange, error) {
	newCommit, err := c.repo.CommitObject(newHash)
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	newTree, err := newCommit.Tree()
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}

	if oldHash.IsZero() {
		var changes []domain.FileChange
		err := newTree.Files().ForEach(func(f *object.File) error {
			changes = append(changes, domain.FileChange{Path: f.Name, Kind: domain.ChangeAdded})
			return nil
		})
		if err != nil {
			return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
		}
		return changes, nil
	}

	oldCommit, err := c.repo.CommitObject(oldHash)
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	oldTree, err := oldCommit.Tree()
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}

	diff, err := object.DiffTreeWithOptions(ctx, oldTree, newTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
	}

	changes := make([]domain.FileChange, 0, len(diff))
	for _, change := range diff {
		action, err := change.Action()
		if err != nil {
			return nil, &domain.RepositoryAccessError{Path: c.path, Err: err}
		}
		fc := domain.FileChange{}
		switch action {
		case merkletrie.Insert:
			fc.Path, fc.Kind = change.To.Name, domain.ChangeAdded
		case merkletrie.Delete:
			fc.Path, fc.Kind = change.From.Name, domain.ChangeDeleted
		default:
			fc.Path, fc.Kind = change.To.Name, domain.ChangeModified
			if patch, perr := change.Patch(); perr == nil {
				for _, fp := range patch.FilePatches() {
					if fp.IsBinary() {
						fc.Kind = domain.ChangeBinary
					}
				}
			}
		}
		changes = append(changes, fc)
	}
	return changes, nil
}

// StageAll stages every change in the working tree.
func (c *Client) StageAll(ctx context.Context) error {
	worktree, err := c.repo.Worktree()
	if err != nil {
		return &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	return nil
}

// Commit records the staged changes.
func (c *Client) Commit(ctx context.Context, message string, author domain.Signature) (string, error) {
	worktree, err := c.repo.Worktree()
	if err != nil {
		return "", &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	return hash.String(), nil
}

// Push publishes the branch to origin. Already-up-to-date is not an error.
func (c *Client) Push(ctx context.Context, branch string) error {
	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err := c.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: originRemote,
		RefSpecs:   []config.RefSpec{refSpec},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return &domain.RemoteAccessError{Op: "push", Err: err}
	}
	return nil
}

// UpdateSubmodules initializes and updates every submodule of the working
// copy.
func (c *Client) UpdateSubmodules(ctx context.Context) error {
	worktree, err := c.repo.Worktree()
	if err != nil {
		return &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	submodules, err := worktree.Submodules()
	if err != nil {
		return &domain.RepositoryAccessError{Path: c.path, Err: err}
	}
	for _, sub := range submodules {
		if err := sub.UpdateContext(ctx, &git.SubmoduleUpdateOptions{Init: true}); err != nil {
			return &domain.RemoteAccessError{Op: "submodule update", Err: err}
		}
	}
	return nil
}
