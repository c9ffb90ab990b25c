package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

const selectSolvers = `
SELECT target, mined_in, solver_address, tx_id, reward
FROM block_solvers
`

// ReplaceBlockSolvers deletes the solver set of a target and inserts the new one.
func (s *Store) ReplaceBlockSolvers(ctx context.Context, target uint64, solvers []model.BlockSolver) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("replace_block_solvers", err, start)
	}()

	if err = s.conn.Exec(ctx, `DELETE FROM block_solvers WHERE target = ?`, target); err != nil {
		return fmt.Errorf("delete solvers of block %d: %w", target, err)
	}
	if len(solvers) == 0 {
		return nil
	}

	const query = `
INSERT INTO block_solvers (
	target,
	mined_in,
	solver_address,
	tx_id,
	reward
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare solvers batch: %w", err)
	}
	for _, sv := range solvers {
		if err = batch.Append(target, sv.MinedIn, string(sv.SolverAddress), sv.TxID, sv.Reward); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append solver: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert solvers: %w", err)
	}
	return nil
}

// BlockSolvers returns the solver set of a target block.
func (s *Store) BlockSolvers(ctx context.Context, target uint64) ([]model.BlockSolver, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_solvers", err, start)
	}()

	solvers, err := s.querySolvers(ctx, selectSolvers+`WHERE target = ? ORDER BY tx_id`, target)
	if err != nil {
		return nil, fmt.Errorf("read solvers of block %d: %w", target, err)
	}
	return solvers, nil
}

// BlockSolversByMinedBlock returns solvers whose solution was included in minedIn.
func (s *Store) BlockSolversByMinedBlock(ctx context.Context, minedIn uint64) ([]model.BlockSolver, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_solvers_by_mined_block", err, start)
	}()

	solvers, err := s.querySolvers(ctx, selectSolvers+`WHERE mined_in = ? ORDER BY target, tx_id`, minedIn)
	if err != nil {
		return nil, fmt.Errorf("read solvers mined in block %d: %w", minedIn, err)
	}
	return solvers, nil
}

func (s *Store) querySolvers(ctx context.Context, query string, args ...any) (out []model.BlockSolver, err error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solvers: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			sv      model.BlockSolver
			address string
		)
		if err = rows.Scan(&sv.BlockNum, &sv.MinedIn, &address, &sv.TxID, &sv.Reward); err != nil {
			return nil, fmt.Errorf("scan solver: %w", err)
		}
		sv.SolverAddress = []byte(address)
		out = append(out, sv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solvers: %w", err)
	}
	return out, nil
}
