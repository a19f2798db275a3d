// SPDX-License-Identifier: MPL-2.0

package rename

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gamo/vocab/internal/fsx"
	"github.com/gamo/vocab/pkg/layout"
	"github.com/gamo/vocab/pkg/record"
	"github.com/gamo/vocab/pkg/vocab"
)

const (
	// OverwriteNever fails on any existing destination.
	OverwriteNever OverwritePolicy = "never"
	// OverwriteEmpty replaces an existing destination only if it is empty,
	// such as the placeholder Materialize creates for a newly configured type.
	OverwriteEmpty OverwritePolicy = "empty"
	// OverwriteAlways replaces any existing destination.
	OverwriteAlways OverwritePolicy = "always"
)

const (
	// Pending means the script is loaded and not yet applied.
	Pending State = iota
	// Applied means every move ran and the script was rewritten.
	Applied
)

type (
	// OverwritePolicy decides whether a rename may replace an existing destination.
	OverwritePolicy string

	// State is the engine lifecycle state.
	State int

	// Target is the store a script is applied to.
	Target interface {
		Dir() string
		Folders() []vocab.FolderName
		Extension() vocab.Extension
	}

	// Options configures an Engine.
	Options struct {
		// Script is the parsed rename script.
		Script *record.Script
		// ScriptPath is rewritten on success. Empty disables the rewrite.
		ScriptPath string
		// Overwrite defaults to OverwriteEmpty.
		Overwrite OverwritePolicy
	}

	// Move is one planned file rename.
	Move struct {
		Folder vocab.FolderName
		Change record.Change
		From   string
		To     string
		// Replaces reports whether To exists and will be replaced.
		Replaces bool
	}

	// Plan is the validated batch of moves, in execution order.
	Plan struct {
		Moves []Move
	}

	// Result describes a successful Apply.
	Result struct {
		Moves []Move
		// ScriptRewritten is false when there was nothing to consume.
		ScriptRewritten bool
	}

	// Engine applies one rename script to one store, at most once.
	Engine struct {
		target     Target
		script     *record.Script
		scriptPath string
		policy     OverwritePolicy
		state      State
	}

	// applied is a move that ran, with the backup of the file it replaced.
	applied struct {
		mv     Move
		backup string
	}

	// pathState is the simulated state of one path while planning.
	pathState struct {
		exists bool
		size   int64
	}
)

// String returns the string representation of the OverwritePolicy.
func (p OverwritePolicy) String() string { return string(p) }

// Validate returns an error if the OverwritePolicy is not recognized.
func (p OverwritePolicy) Validate() error {
	switch p {
	case OverwriteNever, OverwriteEmpty, OverwriteAlways:
		return nil
	default:
		return &InvalidOverwritePolicyError{Value: p}
	}
}

// String returns the state name.
func (s State) String() string {
	if s == Applied {
		return "applied"
	}
	return "pending"
}

// New creates a pending Engine.
func New(target Target, opts Options) (*Engine, error) {
	policy := opts.Overwrite
	if policy == "" {
		policy = OverwriteEmpty
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	script := opts.Script
	if script == nil {
		script = &record.Script{}
	}
	return &Engine{
		target:     target,
		script:     script,
		scriptPath: opts.ScriptPath,
		policy:     policy,
		state:      Pending,
	}, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Plan validates the whole batch without touching the disk. Moves are
// checked in execution order against a simulated view of the filesystem, so
// chained instructions ("a to b" then "b to c") validate correctly.
func (e *Engine) Plan() (*Plan, error) {
	ext := e.target.Extension()
	sim := make(map[string]pathState)

	lookup := func(path string) (pathState, error) {
		if st, ok := sim[path]; ok {
			return st, nil
		}
		exists, size, err := fsx.Stat(path)
		if err != nil {
			return pathState{}, &IOError{Op: "stat", Path: path, Err: err}
		}
		st := pathState{exists: exists, size: size}
		sim[path] = st
		return st, nil
	}

	plan := &Plan{}
	for _, folder := range e.target.Folders() {
		carrier := layout.NewCarrier(e.target.Dir(), folder, nil, ext)
		for _, change := range e.script.Changes {
			from := carrier.FilePath(change.From, ext)
			to := carrier.FilePath(change.To, ext)
			if from == to {
				slog.Debug("skipping rename onto itself", "folder", folder, "type", change.From)
				continue
			}

			src, err := lookup(from)
			if err != nil {
				return nil, err
			}
			if !src.exists {
				return nil, &TargetMissingError{Folder: folder, From: change.From, Path: from, Line: change.Line}
			}

			dst, err := lookup(to)
			if err != nil {
				return nil, err
			}
			if dst.exists && !e.mayReplace(dst) {
				return nil, &ConflictError{Folder: folder, To: change.To, Path: to, Line: change.Line, Policy: e.policy}
			}

			plan.Moves = append(plan.Moves, Move{
				Folder:   folder,
				Change:   change,
				From:     from,
				To:       to,
				Replaces: dst.exists,
			})
			sim[to] = src
			sim[from] = pathState{}
		}
	}
	return plan, nil
}

func (e *Engine) mayReplace(dst pathState) bool {
	switch e.policy {
	case OverwriteAlways:
		return true
	case OverwriteEmpty:
		return dst.size == 0
	default:
		return false
	}
}

// Apply validates and executes the batch, then rewrites the script to its
// remainder. On any failure no rename stays applied and the script is not
// rewritten; the engine remains Pending.
func (e *Engine) Apply(ctx context.Context) (*Result, error) {
	if e.state == Applied {
		return nil, ErrAlreadyApplied
	}

	plan, err := e.Plan()
	if err != nil {
		return nil, err
	}

	done := make([]applied, 0, len(plan.Moves))
	for _, mv := range plan.Moves {
		if err := ctx.Err(); err != nil {
			return nil, e.abort(done, &IOError{Op: "rename", Path: mv.From, Err: err})
		}
		step, err := move(mv)
		if err != nil {
			return nil, e.abort(done, err)
		}
		slog.Debug("renamed data file", "folder", mv.Folder, "from", mv.Change.From, "to", mv.Change.To, "replaced", mv.Replaces)
		done = append(done, step)
	}

	rewritten := false
	if e.scriptPath != "" && (e.script.HasChanges() || len(e.script.Skipped) > 0) {
		if err := fsx.WriteFileAtomic(e.scriptPath, []byte(e.script.Remainder())); err != nil {
			return nil, e.abort(done, &IOError{Op: "rewrite script", Path: e.scriptPath, Err: err})
		}
		rewritten = true
	}

	moves := make([]Move, 0, len(done))
	for _, step := range done {
		moves = append(moves, step.mv)
		if step.backup == "" {
			continue
		}
		if err := os.Remove(step.backup); err != nil {
			slog.Warn("failed to remove replaced file backup", "path", step.backup, "error", err)
		}
	}

	e.state = Applied
	slog.Info("rename script applied", "moves", len(moves), "script_rewritten", rewritten)
	return &Result{Moves: moves, ScriptRewritten: rewritten}, nil
}

// move renames mv.From onto mv.To. A destination being replaced is first
// moved to a backup next to it, so the move can be undone.
func move(mv Move) (applied, error) {
	step := applied{mv: mv}
	if mv.Replaces {
		backup, err := reserveBackup(mv.To)
		if err != nil {
			return step, &IOError{Op: "back up", Path: mv.To, Err: err}
		}
		if err := os.Rename(mv.To, backup); err != nil {
			_ = os.Remove(backup)
			return step, &IOError{Op: "back up", Path: mv.To, Err: err}
		}
		step.backup = backup
	}
	if err := os.Rename(mv.From, mv.To); err != nil {
		cause := &IOError{Op: "rename", Path: mv.From, Err: err}
		if step.backup != "" {
			if rerr := os.Rename(step.backup, mv.To); rerr != nil {
				return step, errors.Join(cause, fmt.Errorf("restore %s: %w", mv.To, rerr))
			}
		}
		return step, cause
	}
	return step, nil
}

// reserveBackup creates an unused hidden file name in the directory of path.
func reserveBackup(path string) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.bak")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}

// abort reverts done in reverse order, restoring replaced destinations, and
// returns cause annotated with the outcome.
func (e *Engine) abort(done []applied, cause error) error {
	var revertErrs []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if err := os.Rename(step.mv.To, step.mv.From); err != nil {
			revertErrs = append(revertErrs, fmt.Errorf("revert %s: %w", step.mv.To, err))
			continue
		}
		if step.backup == "" {
			continue
		}
		if err := os.Rename(step.backup, step.mv.To); err != nil {
			revertErrs = append(revertErrs, fmt.Errorf("restore %s from %s: %w", step.mv.To, step.backup, err))
		}
	}
	if len(revertErrs) > 0 {
		return errors.Join(append([]error{cause}, revertErrs...)...)
	}
	if ioErr, ok := cause.(*IOError); ok {
		ioErr.Reverted = len(done) > 0
	}
	return cause
}
