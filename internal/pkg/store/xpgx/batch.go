package xpgx

import (
	sq "github.com/Masterminds/squirrel"
)

type statement struct {
	query       sq.Sqlizer
	guarded     bool
	expect      int64
	mismatchErr error
	returnID    *int64
}

// Batch is an ordered list of statements executed inside one transaction
// by Pool.RunBatch. Later statements may rely on earlier ones, so there is
// no intra-batch parallelism.
type Batch struct {
	stmts []statement
}

func (b *Batch) Add(q sq.Sqlizer) *Batch {
	b.stmts = append(b.stmts, statement{query: q})
	return b
}

// AddGuard appends a statement that must affect exactly expect rows;
// anything else fails the whole batch with mismatchErr. Status-transition
// updates use this to reject replayed or out-of-order steps.
func (b *Batch) AddGuard(q sq.Sqlizer, expect int64, mismatchErr error) *Batch {
	b.stmts = append(b.stmts, statement{
		query:       q,
		guarded:     true,
		expect:      expect,
		mismatchErr: mismatchErr,
	})
	return b
}

// AddReturningID appends a statement ending in RETURNING id and scans the
// generated identifier into dest once the statement runs. dest is only
// valid after the batch commits.
func (b *Batch) AddReturningID(q sq.Sqlizer, dest *int64) *Batch {
	b.stmts = append(b.stmts, statement{query: q, returnID: dest})
	return b
}

func (b *Batch) Len() int {
	return len(b.stmts)
}
