package blockrepo

import (
	"context"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Storage interface {
		HasBlock(ctx context.Context, blockNum uint64) (bool, error)
		GetBlock(ctx context.Context, blockNum uint64) (model.RepositoryBlock, error)
		AddBlock(ctx context.Context, block model.RepositoryBlock) error
		CleanUpBlocks(ctx context.Context, below uint64) error
		ReplaceBlockSolvers(ctx context.Context, target uint64, solvers []model.BlockSolver) error
	}
	EvictionListener interface {
		NotifyResolution(ctx context.Context, blockNum uint64, resolution model.Resolution) error
	}
)
